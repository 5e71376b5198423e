package config

import "encoding/json"

// Schema returns a JSON Schema describing topictree.yaml as indented JSON.
func Schema() []byte {
	schema := map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"title":                "topictree.yaml",
		"description":          "Configuration for topictree — locates the content root holding the topics/ tree and lists the known difficulty levels.",
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"root": map[string]any{
				"type":        "string",
				"description": "Directory containing topics/. Relative paths are resolved against the directory holding topictree.yaml. Defaults to \".\".",
			},
			"levels": map[string]any{
				"type":        "array",
				"description": "Known difficulty levels (e.g. starter, beginner, advanced, expert). Used to warn about unknown levels in course and exercise paths. Must be unique and must not contain '/'.",
				"minItems":    1,
				"uniqueItems": true,
				"items": map[string]any{
					"type":    "string",
					"pattern": "^[^/]+$",
				},
			},
		},
	}

	out, _ := json.MarshalIndent(schema, "", "  ")
	return out
}
