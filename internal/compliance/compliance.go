// Package compliance checks that an emitted JSON-Schema document is
// actually draft-07 structurally valid, by round-tripping it through a
// real draft-07 implementation rather than trusting the emitter's own
// output. Grounded on the sv-tools-openapi validate package's
// compile-then-validate posture, adapted from santhosh-tekuri/jsonschema's
// v5 API there to v6 here.
package compliance

import (
	"bytes"
	"encoding/json"
	"fmt"

	ischema "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

const resourceURL = "mem://schema.json"

// Check compiles s as a draft-07 schema and reports any structural
// violation santhosh-tekuri/jsonschema/v6 finds (keyword values of the
// wrong type or shape, invalid regexes, and the like). It does not check
// that a lower bound is at most the matching upper bound.
func Check(s *ischema.Schema) error {
	doc, err := decode(s)
	if err != nil {
		return err
	}

	c := jsonschema.NewCompiler()
	c.DefaultDraft(jsonschema.Draft7)
	c.AssertFormat()
	if err := c.AddResource(resourceURL, doc); err != nil {
		return fmt.Errorf("compliance: invalid schema document: %w", err)
	}
	if _, err := c.Compile(resourceURL); err != nil {
		return fmt.Errorf("compliance: %w", err)
	}
	return nil
}

// ValidateSample compiles s and validates sample against it, returning the
// underlying *jsonschema.ValidationError on failure. Used by tests that
// want an independent cross-check of the validator's own verdict.
func ValidateSample(s *ischema.Schema, sample any) error {
	doc, err := decode(s)
	if err != nil {
		return err
	}

	c := jsonschema.NewCompiler()
	c.DefaultDraft(jsonschema.Draft7)
	c.AssertFormat()
	if err := c.AddResource(resourceURL, doc); err != nil {
		return fmt.Errorf("compliance: invalid schema document: %w", err)
	}
	compiled, err := c.Compile(resourceURL)
	if err != nil {
		return fmt.Errorf("compliance: %w", err)
	}
	return compiled.Validate(sample)
}

func decode(s *ischema.Schema) (any, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("compliance: marshal schema: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("compliance: decode schema: %w", err)
	}
	return doc, nil
}
