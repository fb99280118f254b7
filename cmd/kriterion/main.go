// cmd/kriterion/main.go
package main

import (
	"github.com/mwiater/kriterion/internal/cli"
)

// main starts the kriterion CLI application by delegating to the
// cobra root command defined in the cli package. It does not
// take any arguments and does not return a value.
func main() {
	cli.Execute()
}
