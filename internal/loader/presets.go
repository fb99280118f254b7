// internal/loader/presets.go
package loader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mwiater/kriterion/internal/table"
)

// presetFile is the TOML shape of a filter preset: a list of [[filter]]
// tables, each either a row-id filter or a tool/column filter.
type presetFile struct {
	Filters []presetFilter `toml:"filter"`
}

type presetFilter struct {
	ID     bool   `toml:"id"`
	Tool   string `toml:"tool"`
	Column int    `toml:"column"`
	Value  string `toml:"value"`
}

// LoadPresets decodes a TOML preset file into filter specifications,
// rejecting entries that name neither the row-id filter nor a tool.
func LoadPresets(path string) ([]table.FilterSpec, error) {
	var file presetFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("decode preset: %w", err)
	}
	specs := make([]table.FilterSpec, 0, len(file.Filters))
	for i, f := range file.Filters {
		if !f.ID && f.Tool == "" {
			return nil, fmt.Errorf("preset filter %d: needs either id=true or a tool name", i)
		}
		if f.Column < 0 {
			return nil, fmt.Errorf("preset filter %d: negative column index", i)
		}
		specs = append(specs, table.FilterSpec{
			Tool:   f.Tool,
			Column: f.Column,
			RowID:  f.ID,
			Value:  f.Value,
		})
	}
	return specs, nil
}

// ParseFilterArg converts one command-line filter argument into a spec.
// Accepted forms are "id=value" for the row identifier filter and
// "tool_x_column=value" for a tool column filter, the composite id shape
// the web UI's controls historically used. Malformed composites are
// rejected here so the matcher never sees them.
func ParseFilterArg(arg string) (table.FilterSpec, error) {
	eq := strings.Index(arg, "=")
	if eq < 0 {
		return table.FilterSpec{}, fmt.Errorf("filter %q: missing '='", arg)
	}
	id, value := arg[:eq], arg[eq+1:]
	if id == "id" {
		return table.FilterSpec{RowID: true, Value: value}, nil
	}
	parts := strings.Split(id, "_")
	if len(parts) < 3 {
		return table.FilterSpec{}, fmt.Errorf("filter %q: id must be 'id' or 'tool_x_column'", arg)
	}
	col, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || col < 0 {
		return table.FilterSpec{}, fmt.Errorf("filter %q: bad column index %q", arg, parts[len(parts)-1])
	}
	return table.FilterSpec{Tool: parts[0], Column: col, Value: value}, nil
}
