// Package raw captures author-provided schema declarations before any
// interpretation happens. A Decl is produced once per field call, in
// declaration order, by whichever DSL surface the author used (the
// fluent builder or the YAML loader). Nothing here is validated against
// the normalizer's rules; that happens in internal/normalize.
package raw

import "github.com/mcpkit/schema/internal/types"

// EnumType describes the `{enum, [...]}` surface form: a type argument
// that is itself a closed set of values, as opposed to the `values:`
// option sugar applied to an ordinary primitive type.
type EnumType struct {
	Values []string
}

// TypeArg is the type argument passed to Field: either a bare primitive
// or an EnumType. Exactly one of Primitive/Enum is meaningful, selected
// by IsEnum.
type TypeArg struct {
	Primitive types.Primitive
	Enum      EnumType
	IsEnum    bool
}

// Decl is one raw field declaration, in the order it was authored.
type Decl struct {
	Name string

	// Type is unset (zero Primitive, IsEnum false) for nested objects.
	Type    TypeArg
	HasType bool

	// Nested holds the child declarations for an object field, in order.
	// Nested != nil marks this Decl as an object.
	Nested []*Decl

	Required bool

	Description string
	HasDesc     bool

	Default    any
	HasDefault bool

	Format    string
	HasFormat bool

	Min, Max       float64
	HasMin, HasMax bool

	MinLength, MaxLength       int
	HasMinLength, HasMaxLength bool

	// Values is the `values:` option sugar for an enum.
	Values    []string
	HasValues bool

	// EnumType is the `type:` option, meaningful only alongside an enum
	// (either surface form). It overrides the default "string" base.
	EnumType    types.Primitive
	HasEnumType bool
}

// IsObject reports whether this declaration introduces a nested schema.
func (d *Decl) IsObject() bool {
	return d.Nested != nil
}
