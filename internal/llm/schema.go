package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema describes the JSON shape a request expects back. Declare one
// per output format as a package-level variable, like the
// "practice-questions" schema in practicegen; the compiled form is
// cached on the value.
type Schema struct {
	// Name identifies the schema to the provider (tool name for
	// Anthropic, schema name for OpenAI). Kebab-case.
	Name string

	// Description tells the model what the output represents.
	Description string

	// Definition is the JSON Schema document.
	Definition map[string]any

	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
}

// Check validates model output against the schema. A nil receiver
// accepts anything. Violations come back as bad-output faults so the
// retry layer can give the model one more try.
func (s *Schema) Check(raw json.RawMessage) error {
	if s == nil {
		return nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return badOutput(raw, fmt.Errorf("not valid JSON: %w", err))
	}

	s.compileOnce.Do(s.compile)
	if s.compileErr != nil {
		return fmt.Errorf("schema %q: %w", s.Name, s.compileErr)
	}

	if err := s.compiled.Validate(doc); err != nil {
		return badOutput(raw, err)
	}
	return nil
}

func (s *Schema) compile() {
	// The compiler wants a decoded JSON document, so round-trip the
	// definition map through encoding/json.
	b, err := json.Marshal(s.Definition)
	if err != nil {
		s.compileErr = err
		return
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		s.compileErr = err
		return
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("mem://%s.json", s.Name)
	if err := c.AddResource(url, doc); err != nil {
		s.compileErr = err
		return
	}
	s.compiled, s.compileErr = c.Compile(url)
}
