package schema

import (
	"github.com/invopop/jsonschema"

	"github.com/mcpkit/schema/internal/emit"
	"github.com/mcpkit/schema/internal/types"
	"github.com/mcpkit/schema/internal/validate"
)

// Schema is a compiled schema: a normalized type-expression tree plus the
// JSON-Schema document emitted from it. Obtain one by calling Build on a
// Builder (spec.md §4.A–§4.C describe how the three components it wires
// together divide the work).
type Schema struct {
	normalized *types.Object
	jsonSchema *jsonschema.Schema
}

// newSchema compiles the emitter eagerly: emission is pure and cheap
// relative to validation, and callers overwhelmingly want the JSON-Schema
// document immediately after declaring the schema (e.g. to serve it over
// tools/list).
func newSchema(obj *types.Object) *Schema {
	return &Schema{
		normalized: obj,
		jsonSchema: emit.Object(obj),
	}
}

// Validate checks input against the schema (component D, spec.md §4.D) and
// returns a key-normalized output map on success. On failure it returns a
// *ValidationError carrying every sibling field error collected during the
// walk, never just the first.
func (s *Schema) Validate(input any) (map[string]any, error) {
	out, errs := validate.Object(s.normalized, input)
	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}
	return out, nil
}

// ValidateOutput applies the same schema to a tool's result value, per
// spec.md §4.E: tool output is validated against the identical normalized
// tree used for input, since the subsystem makes no structural distinction
// between the two.
func (s *Schema) ValidateOutput(output any) (map[string]any, error) {
	return s.Validate(output)
}

// JSONSchema returns the emitted JSON-Schema document (component C). The
// returned value is shared by every caller; mutate a copy rather than the
// original if it needs patching for a particular transport.
func (s *Schema) JSONSchema() *jsonschema.Schema {
	return s.jsonSchema
}
