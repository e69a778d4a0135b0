// Package normalize folds the raw, ordered declarations produced by a DSL
// surface (internal/raw) into the canonical tagged representation
// (internal/types) that the emitter and the validator both depend on.
//
// This is component B from the schema subsystem design: total over any
// input the capture layer accepted, panicking only on the handful of
// programmer errors spec.md §7.1 calls out (conflicting type and nested
// body, values combined with an explicit enum type argument, and the
// like) — the same fail-fast posture the teacher library takes in
// Validator.validateDiveTags.
package normalize

import (
	"fmt"

	"github.com/mcpkit/schema/internal/raw"
	"github.com/mcpkit/schema/internal/types"
)

// Object normalizes an ordered list of raw declarations into a types.Object.
func Object(decls []*raw.Decl) *types.Object {
	obj := &types.Object{
		Names:  make([]string, 0, len(decls)),
		Fields: make(map[string]types.Field, len(decls)),
	}
	for _, d := range decls {
		field := field(d)
		obj.Names = append(obj.Names, d.Name)
		obj.Fields[d.Name] = field
	}
	return obj
}

func field(d *raw.Decl) types.Field {
	expr := resolveType(d)
	expr = applyConstraint(d, expr)
	if d.Required {
		expr = types.Required{Inner: expr}
	}

	return types.Field{
		Type:     expr,
		Metadata: metadata(d, expr),
	}
}

// resolveType implements spec.md §4.B step 1: nested body beats an
// explicit values/enum/primitive type; values: sugar and the {enum, ...}
// type argument collapse to the same Enum node.
func resolveType(d *raw.Decl) types.Expr {
	if d.IsObject() {
		if d.HasType {
			panic(fmt.Sprintf("field %q: a nested object cannot also declare an explicit type", d.Name))
		}
		return *Object(d.Nested)
	}

	if d.HasValues && d.Type.IsEnum {
		panic(fmt.Sprintf("field %q: values: option cannot be combined with an {enum, ...} type argument", d.Name))
	}

	if d.HasValues {
		return types.Enum{Values: d.Values, Base: enumBase(d)}
	}

	if d.Type.IsEnum {
		return types.Enum{Values: d.Type.Enum.Values, Base: enumBase(d)}
	}

	return types.Prim{Base: d.Type.Primitive}
}

// enumBase resolves the primitive carried in an Enum node's metadata:
// the explicit `type:` option if given, else the declared primitive type
// (when the author wrote `field(:x, :string, values: [...])`), else the
// default of "string".
func enumBase(d *raw.Decl) types.Primitive {
	if d.HasEnumType {
		return d.EnumType
	}
	if d.HasType && d.Type.Primitive != "" {
		return d.Type.Primitive
	}
	return types.String
}

// applyConstraint implements spec.md §4.B step 2: fold min/max (or
// min_length/max_length) into a single Constrained wrapper around the
// type resolved above. Constraints never apply to Object.
func applyConstraint(d *raw.Decl, inner types.Expr) types.Expr {
	if _, isObject := inner.(types.Object); isObject {
		return inner
	}

	switch {
	case d.HasMin && d.HasMax:
		return types.Constrained{Inner: inner, Constraint: types.RangeN{Min: d.Min, Max: d.Max}}
	case d.HasMin:
		return types.Constrained{Inner: inner, Constraint: types.Gte{Min: d.Min}}
	case d.HasMax:
		return types.Constrained{Inner: inner, Constraint: types.Lte{Max: d.Max}}
	case d.HasMinLength && d.HasMaxLength:
		return types.Constrained{Inner: inner, Constraint: types.LenRange{Min: d.MinLength, Max: d.MaxLength}}
	case d.HasMinLength:
		return types.Constrained{Inner: inner, Constraint: types.MinLen{Min: d.MinLength}}
	case d.HasMaxLength:
		return types.Constrained{Inner: inner, Constraint: types.MaxLen{Max: d.MaxLength}}
	default:
		return inner
	}
}

// metadata implements spec.md §4.B step 4: retain only recognized keys,
// injecting type: for enums. Entries come out in a fixed order
// (description, default, format, then type); the order in which the author
// gave the options is not kept.
func metadata(d *raw.Decl, expr types.Expr) []types.MetaEntry {
	var entries []types.MetaEntry

	if d.HasDesc {
		entries = append(entries, types.MetaEntry{Key: types.MetaDescription, Value: d.Description})
	}
	if d.HasDefault {
		entries = append(entries, types.MetaEntry{Key: types.MetaDefault, Value: d.Default})
	}
	if d.HasFormat {
		entries = append(entries, types.MetaEntry{Key: types.MetaFormat, Value: d.Format})
	}

	if base, ok := enumBaseOf(expr); ok {
		entries = append(entries, types.MetaEntry{Key: types.MetaType, Value: string(base)})
	}

	return entries
}

// enumBaseOf finds the Enum node reachable from expr (directly or through
// Required and Constrained wrappers) and returns its base primitive.
func enumBaseOf(expr types.Expr) (types.Primitive, bool) {
	switch t := expr.(type) {
	case types.Enum:
		return t.Base, true
	case types.Required:
		return enumBaseOf(t.Inner)
	case types.Constrained:
		return enumBaseOf(t.Inner)
	default:
		return "", false
	}
}
