package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

func jsonBody(data []byte) io.Reader {
	return bytes.NewReader(data)
}

// namedSchema pairs a schema name with its definition for compile caching.
type namedSchema struct {
	name string
	def  map[string]any
}

var adaptationSchema = &namedSchema{
	name: "adaptation",
	def: map[string]any{
		"type":     "object",
		"required": []any{"kid_id", "adapted_text", "reading_level"},
		"properties": map[string]any{
			"kid_id":        map[string]any{"type": "integer"},
			"original_text": map[string]any{"type": "string"},
			"adapted_text":  map[string]any{"type": "string", "minLength": 1},
			"reading_level": map[string]any{
				"type": "string",
				"enum": []any{"beginner", "intermediate", "advanced"},
			},
		},
	},
}

var aiSessionSchema = &namedSchema{
	name: "ai_session",
	def: map[string]any{
		"type":     "object",
		"required": []any{"kid_id", "reading_level", "interactions"},
		"properties": map[string]any{
			"kid_id":        map[string]any{"type": "integer"},
			"reading_level": map[string]any{"type": "string"},
			"interactions":  map[string]any{"type": "integer", "minimum": 0},
			"updated_at":    map[string]any{"type": "string"},
		},
	},
}

// compiled schemas are cached by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validate checks raw JSON against the named schema.
func validate(ns *namedSchema, raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema(ns)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", ns.name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("response failed %q schema: %w", ns.name, err)
	}
	return nil
}

func compiledSchema(ns *namedSchema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(ns.name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a parsed JSON value; round-trip the definition to
	// normalize it.
	defBytes, err := json.Marshal(ns.def)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", ns.name)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, err
	}

	schemaCache.Store(ns.name, compiled)
	return compiled, nil
}
