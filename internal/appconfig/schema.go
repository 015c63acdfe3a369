// internal/appconfig/schema.go
package appconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"go.yaml.in/yaml/v3"
)

// schemaDef describes every key a config file may set.
var schemaDef = map[string]any{
	"$schema":              "http://json-schema.org/draft-07/schema#",
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"debug":     map[string]any{"type": "boolean"},
		"logFile":   map[string]any{"type": "string"},
		"candidate": map[string]any{"type": "string", "minLength": 1},
		"candidates": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string", "minLength": 1},
		},
		"format":      map[string]any{"type": "string", "enum": []any{"text", "table", "json", "yaml"}},
		"output":      map[string]any{"type": "string"},
		"pinCpu":      map[string]any{"type": "integer", "minimum": -1},
		"progress":    map[string]any{"type": "boolean"},
		"keepSamples": map[string]any{"type": "boolean"},
	},
}

// ValidateFile checks a JSON or YAML config file against the schema.
func ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read config file %q: %w", path, err)
	}

	var doc gojsonschema.JSONLoader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var parsed map[string]any
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return fmt.Errorf("%w: parse %q: %v", ErrInvalidConfig, path, err)
		}
		if parsed == nil {
			parsed = map[string]any{}
		}
		doc = gojsonschema.NewGoLoader(parsed)
	default:
		doc = gojsonschema.NewBytesLoader(data)
	}

	return validateDocument(path, doc)
}

func validateDocument(name string, doc gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(schemaDef), doc)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, name, err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, name, strings.Join(problems, "; "))
}
