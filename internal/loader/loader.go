// internal/loader/loader.go
// Package loader reads the benchmark result document and filter presets
// from disk. The result document is validated against a JSON schema before
// decoding so shape problems surface as field-level errors instead of
// half-populated tables.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/mwiater/kriterion/internal/table"
)

// resultSchema describes the minimum shape of a result document: tools
// with typed columns and rows with per-tool results.
var resultSchema = map[string]any{
	"type":     "object",
	"required": []string{"tools", "rows"},
	"properties": map[string]any{
		"tools": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"name", "columns"},
				"properties": map[string]any{
					"name":     map[string]any{"type": "string"},
					"date":     map[string]any{"type": "string"},
					"niceName": map[string]any{"type": "string"},
					"columns": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []string{"type", "title"},
							"properties": map[string]any{
								"type": map[string]any{
									"type": "string",
									"enum": []string{"status", "text", "count", "measure"},
								},
								"title": map[string]any{"type": "string"},
								"unit":  map[string]any{"type": "string"},
							},
						},
					},
				},
			},
		},
		"rows": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"href", "results"},
				"properties": map[string]any{
					"href": map[string]any{"type": "string"},
					"results": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []string{"category"},
							"properties": map[string]any{
								"category": map[string]any{"type": "string"},
								"values": map[string]any{
									"type": "array",
									"items": map[string]any{
										"type": []string{"object", "null"},
										"properties": map[string]any{
											"raw": map[string]any{"type": "string"},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	},
}

// ValidateResults checks a raw result document against the schema and
// returns all violation messages.
func ValidateResults(data []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(resultSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}
	var msgs []string
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return fmt.Errorf("invalid result document: %s", strings.Join(msgs, "; "))
}

// LoadResults reads, validates, and decodes a result document from path.
func LoadResults(path string) (*table.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results: %w", err)
	}
	return ParseResults(data)
}

// ParseResults validates and decodes an in-memory result document.
func ParseResults(data []byte) (*table.Table, error) {
	if err := ValidateResults(data); err != nil {
		return nil, err
	}
	var t table.Table
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode results: %w", err)
	}
	return &t, nil
}
