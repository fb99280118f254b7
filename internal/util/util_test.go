// internal/util/util_test.go
package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	data := []byte("test payload")

	if err := WriteFile(path, data); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(got) != string(data) {
		t.Fatalf("unexpected file contents: got %q want %q", got, data)
	}
}

func TestTruncateRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "no truncation", in: "hello", max: 10, want: "hello"},
		{name: "ascii truncation", in: "helloworld", max: 5, want: "hello…"},
		{name: "multibyte truncation", in: "こんにちは世界", max: 4, want: "こんにち…"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateRunes(tt.in, tt.max); got != tt.want {
				t.Fatalf("TruncateRunes(%q,%d)=%q want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestTruncateToWidth(t *testing.T) {
	t.Parallel()

	input := "line1\nSecondLine"
	want := "line1\nSecon…"

	if got := TruncateToWidth(input, 5); got != want {
		t.Fatalf("TruncateToWidth result mismatch\nwant:\n%s\n\ngot:\n%s", want, got)
	}
}

func TestPath(t *testing.T) {
	t.Parallel()

	doc := map[string]any{
		"tools": []any{
			map[string]any{"name": "cbmc"},
			map[string]any{"name": "esbmc"},
		},
		"meta": map[string]any{"version": "3"},
	}

	tests := []struct {
		name   string
		keys   []string
		want   any
		wantOK bool
	}{
		{name: "nested map", keys: []string{"meta", "version"}, want: "3", wantOK: true},
		{name: "slice index", keys: []string{"tools", "1", "name"}, want: "esbmc", wantOK: true},
		{name: "missing key", keys: []string{"meta", "absent"}},
		{name: "index out of range", keys: []string{"tools", "5"}},
		{name: "non-numeric index", keys: []string{"tools", "x"}},
		{name: "descend into scalar", keys: []string{"meta", "version", "more"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Path(doc, tt.keys...)
			if ok != tt.wantOK {
				t.Fatalf("Path(%v) ok=%v want %v", tt.keys, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Fatalf("Path(%v)=%v want %v", tt.keys, got, tt.want)
			}
		})
	}
}

func TestPathOr(t *testing.T) {
	t.Parallel()

	doc := map[string]any{"a": "b"}
	if got := PathOr("fallback", doc, "a"); got != "b" {
		t.Fatalf("PathOr=%v", got)
	}
	if got := PathOr("fallback", doc, "missing"); got != "fallback" {
		t.Fatalf("PathOr=%v", got)
	}
}
