package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is the JSON shape a classification reply must take. It is sent to
// the model through the backend's native structured output mechanism and
// enforced again locally, since structured output is best effort on some
// backends.
type Schema struct {
	// Name identifies the schema to the backend (tool name for Anthropic,
	// schema name for OpenAI). Kebab-case, e.g. "classification-batch".
	Name string

	// Description guides generation; sent to the model.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any

	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
}

// check validates model output against the schema. Any violation comes back
// as *ErrInvalidResponse carrying the offending content.
func (s *Schema) check(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("reply is not JSON: %w", err),
		}
	}

	s.compileOnce.Do(func() {
		s.compiled, s.compileErr = compileDefinition(s.Name, s.Definition)
	})
	if s.compileErr != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("compile schema %q: %w", s.Name, s.compileErr),
		}
	}

	if err := s.compiled.Validate(parsed); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("schema violation: %w", err),
		}
	}
	return nil
}

func compileDefinition(name string, def map[string]any) (*jsonschema.Schema, error) {
	// The jsonschema compiler wants a parsed JSON value, not a Go map that
	// merely resembles one. Round-trip the definition to normalize it.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(url)
}
