// Package emit walks a normalized schema tree and produces a JSON-Schema
// document. This is component C from the schema subsystem design: it
// consults only the normalized tree (internal/types), never the raw
// declarations, and its output is internally consistent but does not
// attempt full draft-07 coverage.
//
// Unlike the teacher, which builds a *jsonschema.Schema by reflecting over
// a Go struct (github.com/invopop/jsonschema's Reflector) and then patching
// in constraints, there is no Go struct here to reflect over — the
// normalized tree already is the source of truth, so the *jsonschema.Schema
// value is assembled by hand, field by field, the same way the teacher's
// own enhanceSchema does once it has a property in hand.
package emit

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/mcpkit/schema/internal/types"
)

// Object emits the top-level JSON-Schema document for a normalized Object.
func Object(obj *types.Object) *jsonschema.Schema {
	return object(obj)
}

func object(obj *types.Object) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type:       "object",
		Properties: orderedmap.New[string, *jsonschema.Schema](),
	}

	var required []string
	for _, name := range obj.Names {
		field := obj.Fields[name]
		propExpr, isRequired := types.Unwrap(field.Type)
		prop := expr(propExpr)
		applyMetadata(prop, field.Metadata)
		s.Properties.Set(name, prop)
		if isRequired {
			required = append(required, name)
		}
	}
	s.Required = required

	return s
}

// expr emits the JSON-Schema fragment for a single (already-unwrapped)
// type expression, per the table in spec.md §4.C.
func expr(e types.Expr) *jsonschema.Schema {
	switch t := e.(type) {
	case types.Prim:
		return prim(t.Base)
	case types.Enum:
		s := prim(t.Base)
		s.Enum = make([]any, len(t.Values))
		for i, v := range t.Values {
			s.Enum[i] = v
		}
		return s
	case types.Constrained:
		s := expr(t.Inner)
		applyConstraint(s, t.Constraint)
		return s
	case types.Object:
		return object(&t)
	default:
		panic(fmt.Sprintf("emit: unexpected type expression %T", e))
	}
}

func prim(p types.Primitive) *jsonschema.Schema {
	switch p {
	case types.String:
		return &jsonschema.Schema{Type: "string"}
	case types.Integer:
		return &jsonschema.Schema{Type: "integer"}
	case types.Float:
		return &jsonschema.Schema{Type: "number"}
	case types.Boolean:
		return &jsonschema.Schema{Type: "boolean"}
	case types.Any:
		return &jsonschema.Schema{}
	case types.Date, types.Time, types.DateTime, types.NaiveDateTime:
		return &jsonschema.Schema{Type: "string", Format: dateTimeFormat(p)}
	default:
		panic(fmt.Sprintf("emit: unknown primitive %q", p))
	}
}

func dateTimeFormat(p types.Primitive) string {
	switch p {
	case types.Date:
		return "date"
	case types.Time:
		return "time"
	case types.DateTime, types.NaiveDateTime:
		return "date-time"
	default:
		return ""
	}
}

func applyConstraint(s *jsonschema.Schema, c types.Constraint) {
	switch v := c.(type) {
	case types.Gte:
		s.Minimum = json.Number(strconv.FormatFloat(v.Min, 'f', -1, 64))
	case types.Lte:
		s.Maximum = json.Number(strconv.FormatFloat(v.Max, 'f', -1, 64))
	case types.RangeN:
		s.Minimum = json.Number(strconv.FormatFloat(v.Min, 'f', -1, 64))
		s.Maximum = json.Number(strconv.FormatFloat(v.Max, 'f', -1, 64))
	case types.MinLen:
		ml := uint64(v.Min)
		s.MinLength = &ml
	case types.MaxLen:
		ml := uint64(v.Max)
		s.MaxLength = &ml
	case types.LenRange:
		minL, maxL := uint64(v.Min), uint64(v.Max)
		s.MinLength = &minL
		s.MaxLength = &maxL
	default:
		panic(fmt.Sprintf("emit: unknown constraint %T", c))
	}
}

func applyMetadata(s *jsonschema.Schema, metadata []types.MetaEntry) {
	for _, m := range metadata {
		switch m.Key {
		case types.MetaDescription:
			s.Description, _ = m.Value.(string)
		case types.MetaDefault:
			s.Default = m.Value
		case types.MetaFormat:
			s.Format, _ = m.Value.(string)
		case types.MetaType:
			// Already reflected in the property's "type" via the Enum
			// base; not re-emitted as a separate keyword.
		}
	}
}
