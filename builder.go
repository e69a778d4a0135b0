// Package schema implements the MCP schema subsystem: a small DSL for
// declaring a tool's parameter shape, a normalizer, a JSON-Schema emitter,
// and a runtime validator, all agreeing on a single normalized tree
// (spec.md §2–§4).
package schema

import (
	"github.com/mcpkit/schema/internal/normalize"
	"github.com/mcpkit/schema/internal/raw"
	"github.com/mcpkit/schema/internal/types"
)

// Type is a field's type argument: either a bare primitive (String,
// Integer, ...) or the {enum, [...]} surface form produced by EnumOf.
type Type = raw.TypeArg

// Primitive type arguments, per spec.md §3.
var (
	String        = Type{Primitive: types.String}
	Integer       = Type{Primitive: types.Integer}
	Float         = Type{Primitive: types.Float}
	Boolean       = Type{Primitive: types.Boolean}
	Any           = Type{Primitive: types.Any}
	Date          = Type{Primitive: types.Date}
	Time          = Type{Primitive: types.Time}
	DateTime      = Type{Primitive: types.DateTime}
	NaiveDateTime = Type{Primitive: types.NaiveDateTime}
)

// EnumOf is the {enum, [...]} type-argument surface form: the field's type
// itself is a closed set of values, as opposed to the values: option
// applied to an ordinary primitive (see Values). Per spec.md invariant 3,
// the two surfaces normalize identically when given the same values and
// base primitive.
func EnumOf(values ...string) Type {
	return Type{IsEnum: true, Enum: raw.EnumType{Values: values}}
}

// FieldOption configures a single field declaration.
type FieldOption func(*raw.Decl)

// Required marks the field mandatory.
func Required() FieldOption {
	return func(d *raw.Decl) { d.Required = true }
}

// Description sets the field's description metadata.
func Description(s string) FieldOption {
	return func(d *raw.Decl) { d.Description, d.HasDesc = s, true }
}

// Default sets the field's default value metadata.
func Default(v any) FieldOption {
	return func(d *raw.Decl) { d.Default, d.HasDefault = v, true }
}

// Format sets the field's JSON-Schema format metadata (e.g. "email", "uuid").
func Format(s string) FieldOption {
	return func(d *raw.Decl) { d.Format, d.HasFormat = s, true }
}

// Min sets a numeric lower bound.
func Min(n float64) FieldOption {
	return func(d *raw.Decl) { d.Min, d.HasMin = n, true }
}

// Max sets a numeric upper bound.
func Max(n float64) FieldOption {
	return func(d *raw.Decl) { d.Max, d.HasMax = n, true }
}

// MinLength sets a minimum code-point length for string fields.
func MinLength(n int) FieldOption {
	return func(d *raw.Decl) { d.MinLength, d.HasMinLength = n, true }
}

// MaxLength sets a maximum code-point length for string fields.
func MaxLength(n int) FieldOption {
	return func(d *raw.Decl) { d.MaxLength, d.HasMaxLength = n, true }
}

// Values is sugar for an enum: it turns an ordinary primitive field into a
// closed set of allowed values, carrying the declared primitive (or
// "string" by default) as the enum's base type metadata.
func Values(values ...string) FieldOption {
	return func(d *raw.Decl) { d.Values, d.HasValues = values, true }
}

// EnumType overrides the base primitive carried in an enum's type:
// metadata. Meaningful only alongside Values or an EnumOf type argument.
func EnumType(p Primitive) FieldOption {
	return func(d *raw.Decl) { d.EnumType, d.HasEnumType = types.Primitive(p), true }
}

// Primitive re-exports the normalized primitive tag type, for callers who
// need to name one directly (e.g. with EnumType).
type Primitive = types.Primitive

// Builder captures an ordered sequence of raw field declarations (spec.md
// §4.A). Build a Builder with New, declare fields with Field and Object,
// and call Build to produce a compiled Schema.
type Builder struct {
	decls []*raw.Decl
}

// New starts a new schema declaration.
func New() *Builder {
	return &Builder{}
}

// Field declares a leaf field.
func (b *Builder) Field(name string, typ Type, opts ...FieldOption) *Builder {
	d := &raw.Decl{Name: name, Type: typ, HasType: true}
	for _, opt := range opts {
		opt(d)
	}
	b.decls = append(b.decls, d)
	return b
}

// Object declares a nested object field. build is invoked immediately with
// a fresh Builder for the nested scope, matching the DSL's lexical-scope
// semantics (spec.md §4.A).
func (b *Builder) Object(name string, build func(*Builder), opts ...FieldOption) *Builder {
	nested := New()
	build(nested)

	d := &raw.Decl{Name: name, Nested: declsOrEmpty(nested.decls)}
	for _, opt := range opts {
		opt(d)
	}
	b.decls = append(b.decls, d)
	return b
}

// declsOrEmpty ensures an object with zero fields still has a non-nil
// Nested slice, which is what raw.Decl.IsObject checks.
func declsOrEmpty(decls []*raw.Decl) []*raw.Decl {
	if decls == nil {
		return []*raw.Decl{}
	}
	return decls
}

// Build normalizes the declared fields and compiles the emitter and
// validator. It panics on the handful of build-time (programmer) errors
// spec.md §7.1 names — invalid DSL usage that should abort component
// construction, not be reported as a runtime data error.
func (b *Builder) Build() *Schema {
	normalized := normalize.Object(b.decls)
	return newSchema(normalized)
}
