package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcpkit/schema/internal/raw"
	"github.com/mcpkit/schema/internal/types"
)

func TestObject_BasicField(t *testing.T) {
	decls := []*raw.Decl{
		{Name: "count", Type: raw.TypeArg{Primitive: types.Integer}, HasType: true,
			Min: 10, Max: 100, HasMin: true, HasMax: true},
	}

	obj := Object(decls)

	require.Equal(t, []string{"count"}, obj.Names)
	field := obj.Fields["count"]

	constrained, ok := field.Type.(types.Constrained)
	require.True(t, ok)
	assert.Equal(t, types.RangeN{Min: 10, Max: 100}, constrained.Constraint)
	assert.Equal(t, types.Prim{Base: types.Integer}, constrained.Inner)
}

func TestObject_Required(t *testing.T) {
	decls := []*raw.Decl{
		{Name: "email", Type: raw.TypeArg{Primitive: types.String}, HasType: true, Required: true},
	}

	obj := Object(decls)
	_, required := types.Unwrap(obj.Fields["email"].Type)
	assert.True(t, required)
}

func TestObject_EnumDuality(t *testing.T) {
	// values: sugar on a plain string field.
	viaValues := Object([]*raw.Decl{
		{Name: "status", Type: raw.TypeArg{Primitive: types.String}, HasType: true,
			Values: []string{"active", "inactive"}, HasValues: true},
	})

	// {enum, [...]} type argument with an explicit base type.
	viaEnumType := Object([]*raw.Decl{
		{Name: "status",
			Type:    raw.TypeArg{IsEnum: true, Enum: raw.EnumType{Values: []string{"active", "inactive"}}},
			HasType: true, EnumType: types.String, HasEnumType: true},
	})

	assert.Equal(t, viaValues.Fields["status"].Type, viaEnumType.Fields["status"].Type)
	assert.Equal(t, viaValues.Fields["status"].Metadata, viaEnumType.Fields["status"].Metadata)
}

func TestObject_Idempotent(t *testing.T) {
	decls := []*raw.Decl{
		{Name: "title", Type: raw.TypeArg{Primitive: types.String}, HasType: true,
			MinLength: 5, MaxLength: 20, HasMinLength: true, HasMaxLength: true,
			Description: "a title", HasDesc: true},
		{Name: "address", Nested: []*raw.Decl{
			{Name: "city", Type: raw.TypeArg{Primitive: types.String}, HasType: true, Required: true},
		}},
	}

	first := Object(decls)
	// Re-normalizing an already-normalized tree is meaningless for this
	// package (it consumes raw.Decl, not types.Object), so idempotence is
	// checked the way it is observable here: normalizing the same raw
	// input twice yields an equal tree.
	second := Object(decls)

	assert.Equal(t, first, second)
}

func TestObject_UnknownOptionsFiltered(t *testing.T) {
	// raw.Decl has no field for unrecognized options at all — the DSL
	// surface itself refuses to carry them — so this asserts the
	// recognized-key allowlist in metadata() directly: only description,
	// default, format, and type (for enums) are ever emitted.
	decls := []*raw.Decl{
		{Name: "x", Type: raw.TypeArg{Primitive: types.String}, HasType: true,
			Description: "d", HasDesc: true, Format: "email", HasFormat: true},
	}
	obj := Object(decls)
	for _, m := range obj.Fields["x"].Metadata {
		assert.Contains(t, []types.MetaKey{types.MetaDescription, types.MetaDefault, types.MetaFormat, types.MetaType}, m.Key)
	}
}

func TestResolveType_PanicsOnNestedWithType(t *testing.T) {
	d := &raw.Decl{
		Name:    "bad",
		Type:    raw.TypeArg{Primitive: types.String},
		HasType: true,
		Nested:  []*raw.Decl{{Name: "inner"}},
	}
	assert.Panics(t, func() { resolveType(d) })
}

func TestResolveType_PanicsOnValuesWithEnumType(t *testing.T) {
	d := &raw.Decl{
		Name:      "bad",
		Type:      raw.TypeArg{IsEnum: true, Enum: raw.EnumType{Values: []string{"a"}}},
		HasType:   true,
		Values:    []string{"a", "b"},
		HasValues: true,
	}
	assert.Panics(t, func() { resolveType(d) })
}
