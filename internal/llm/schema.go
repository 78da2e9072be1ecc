package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a JSON Schema a reply must satisfy. It is compiled on first use.
type Schema struct {
	// Name is a kebab-case identifier, sent as the schema name where the
	// backend asks for one.
	Name        string
	Description string
	Definition  map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

// NewSchema builds a Schema from a JSON Schema definition.
func NewSchema(name, description string, definition map[string]any) *Schema {
	return &Schema{Name: name, Description: description, Definition: definition}
}

// Validate checks raw against the schema. Failures are *Error with
// FailureMalformed.
func (s *Schema) Validate(raw json.RawMessage) error {
	compiled, err := s.compile()
	if err != nil {
		return &Error{Kind: FailureMalformed, Err: err}
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &Error{Kind: FailureMalformed, Err: fmt.Errorf("reply is not JSON: %w", err)}
	}
	if err := compiled.Validate(doc); err != nil {
		return &Error{Kind: FailureMalformed, Err: err}
	}
	return nil
}

// MarshalDefinition renders the definition for backends that take the
// schema as text.
func (s *Schema) MarshalDefinition() ([]byte, error) {
	return json.Marshal(s.Definition)
}

func (s *Schema) compile() (*jsonschema.Schema, error) {
	s.once.Do(func() {
		raw, err := s.MarshalDefinition()
		if err != nil {
			s.err = fmt.Errorf("marshal schema %q: %w", s.Name, err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			s.err = fmt.Errorf("parse schema %q: %w", s.Name, err)
			return
		}

		url := "mem://" + s.Name + ".json"
		c := jsonschema.NewCompiler()
		if err := c.AddResource(url, doc); err != nil {
			s.err = fmt.Errorf("load schema %q: %w", s.Name, err)
			return
		}
		s.compiled, s.err = c.Compile(url)
	})
	return s.compiled, s.err
}
