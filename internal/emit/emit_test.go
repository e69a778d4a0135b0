package emit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcpkit/schema/internal/normalize"
	"github.com/mcpkit/schema/internal/raw"
	"github.com/mcpkit/schema/internal/types"
)

// TestObject_UsernameAgeEmail reproduces spec.md §8 scenario 6 (JSON-Schema
// emission) end to end through normalize -> emit.
func TestObject_UsernameAgeEmail(t *testing.T) {
	decls := []*raw.Decl{
		{Name: "username", Type: raw.TypeArg{Primitive: types.String}, HasType: true,
			Required: true, Description: "User's login name", HasDesc: true,
			MinLength: 3, MaxLength: 12, HasMinLength: true, HasMaxLength: true},
		{Name: "age", Type: raw.TypeArg{Primitive: types.Integer}, HasType: true,
			Min: 0, HasMin: true},
		{Name: "email", Type: raw.TypeArg{Primitive: types.String}, HasType: true,
			Required: true, Format: "email", HasFormat: true},
	}

	obj := normalize.Object(decls)
	s := Object(obj)

	assert.Equal(t, "object", s.Type)
	assert.ElementsMatch(t, []string{"username", "email"}, s.Required)

	username, ok := s.Properties.Get("username")
	require.True(t, ok)
	assert.Equal(t, "string", username.Type)
	assert.Equal(t, "User's login name", username.Description)
	require.NotNil(t, username.MinLength)
	assert.EqualValues(t, 3, *username.MinLength)
	require.NotNil(t, username.MaxLength)
	assert.EqualValues(t, 12, *username.MaxLength)

	age, ok := s.Properties.Get("age")
	require.True(t, ok)
	assert.Equal(t, "integer", age.Type)
	assert.Equal(t, json.Number("0"), age.Minimum)

	email, ok := s.Properties.Get("email")
	require.True(t, ok)
	assert.Equal(t, "string", email.Type)
	assert.Equal(t, "email", email.Format)
}

// TestObject_EnumEmission checks the {type, enum} fragment shape.
func TestObject_EnumEmission(t *testing.T) {
	decls := []*raw.Decl{
		{Name: "status", Type: raw.TypeArg{Primitive: types.String}, HasType: true,
			Values: []string{"active", "inactive", "pending"}, HasValues: true, Required: true},
	}
	obj := normalize.Object(decls)
	s := Object(obj)

	status, ok := s.Properties.Get("status")
	require.True(t, ok)
	assert.Equal(t, "string", status.Type)
	assert.Equal(t, []any{"active", "inactive", "pending"}, status.Enum)
}

// TestObject_NestedRequired checks a nested object round-trips its own
// required set independently of the parent's.
func TestObject_NestedRequired(t *testing.T) {
	decls := []*raw.Decl{
		{Name: "user", Required: true, Nested: []*raw.Decl{
			{Name: "profile", Required: true, Nested: []*raw.Decl{
				{Name: "email", Type: raw.TypeArg{Primitive: types.String}, HasType: true,
					Required: true, Format: "email", HasFormat: true},
			}},
		}},
	}

	obj := normalize.Object(decls)
	s := Object(obj)

	assert.ElementsMatch(t, []string{"user"}, s.Required)

	user, ok := s.Properties.Get("user")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"profile"}, user.Required)

	profile, ok := user.Properties.Get("profile")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"email"}, profile.Required)
}

// TestObject_OmitsAdditionalProperties checks spec.md §9's "open vs.
// closed objects" note: additionalProperties is never set by the emitter.
func TestObject_OmitsAdditionalProperties(t *testing.T) {
	obj := normalize.Object([]*raw.Decl{
		{Name: "x", Type: raw.TypeArg{Primitive: types.String}, HasType: true},
	})
	s := Object(obj)
	assert.Nil(t, s.AdditionalProperties)
}
