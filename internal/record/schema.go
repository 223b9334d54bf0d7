package record

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// sessionRecordSchema is the shape contract for saved session files.
// Deliberately permissive: only results and the nested answer structure are
// constrained, and unknown fields pass through so records from newer hosts
// still validate.
var sessionRecordSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"filename":  map[string]any{"type": "string"},
		"quizTitle": map[string]any{"type": "string"},
		"gamePin":   map[string]any{"type": "string"},
		"questions": map[string]any{
			"type":  "array",
			"items": questionSchema,
		},
		"questionMetadata": map[string]any{
			"type":  "array",
			"items": questionSchema,
		},
		"results": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":  map[string]any{"type": "string"},
					"score": map[string]any{"type": "number"},
					"answers": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": []any{"object", "null"},
							"properties": map[string]any{
								"isCorrect": map[string]any{"type": "boolean"},
								"timeMs":    map[string]any{"type": "number"},
								"points":    map[string]any{"type": "number"},
							},
						},
					},
					"scores": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "number"},
					},
				},
				"required": []any{"answers"},
			},
		},
	},
	"required": []any{"results"},
}

var questionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"text":       map[string]any{"type": "string"},
		"question":   map[string]any{"type": "string"},
		"type":       map[string]any{"type": "string"},
		"difficulty": map[string]any{"type": "string"},
		"concepts": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Validate checks raw JSON against the session record schema. Decode stays
// forgiving for old records; Validate is the strict path used on import.
func Validate(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile session record schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("session record validation failed: %w", err)
	}
	return nil
}

// compileSchema compiles the schema once and caches it.
// The jsonschema library expects a parsed JSON value, so the definition is
// round-tripped through encoding/json first.
func compileSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(sessionRecordSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://session-record.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
