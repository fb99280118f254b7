// internal/util/util.go
package util

import (
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

// WriteFile writes data to a file with 0o644 permissions.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// TruncateRunes truncates a string to a maximum number of runes,
// appending an ellipsis if truncated.
func TruncateRunes(text string, maxRunes int) string {
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxRunes]) + "…"
}

// TruncateToWidth truncates each line of a string to a specified width in runes.
func TruncateToWidth(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if utf8.RuneCountInString(line) > width {
			lines[i] = TruncateRunes(line, width)
		}
	}
	return strings.Join(lines, "\n")
}

// Path walks a nested structure of maps and slices by the given keys and
// returns the value found, or false when any step is missing. A key that
// parses as an integer indexes a slice; any other key looks up a map.
func Path(data any, keys ...string) (any, bool) {
	cur := data
	for _, key := range keys {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[key]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			idx, err := strconv.Atoi(key)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			cur = node[idx]
		default:
			return nil, false
		}
	}
	return cur, true
}

// PathOr is Path with a fallback value for missing lookups.
func PathOr(fallback any, data any, keys ...string) any {
	if v, ok := Path(data, keys...); ok {
		return v
	}
	return fallback
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
