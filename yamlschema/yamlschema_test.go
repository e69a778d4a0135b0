package yamlschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FlatFields(t *testing.T) {
	doc := []byte(`
fields:
  - name: username
    type: string
    required: true
    description: "User's login name"
    min_length: 3
    max_length: 12
  - name: age
    type: integer
    min: 0
  - name: email
    type: string
    required: true
    format: email
`)

	s, err := Load(doc)
	require.NoError(t, err)

	out, err := s.Validate(map[string]any{"username": "ada", "email": "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, "ada", out["username"])
}

func TestLoad_NestedObject(t *testing.T) {
	doc := []byte(`
fields:
  - name: user
    required: true
    object:
      - name: email
        type: string
        required: true
`)

	s, err := Load(doc)
	require.NoError(t, err)

	_, err = s.Validate(map[string]any{"user": map[string]any{}})
	assert.Error(t, err)
}

func TestLoad_ValuesEnum(t *testing.T) {
	doc := []byte(`
fields:
  - name: status
    required: true
    values: [active, inactive, pending]
`)

	s, err := Load(doc)
	require.NoError(t, err)

	_, err = s.Validate(map[string]any{"status": "unknown"})
	require.Error(t, err)

	out, err := s.Validate(map[string]any{"status": "active"})
	require.NoError(t, err)
	assert.Equal(t, "active", out["status"])
}

func TestLoad_UnknownTypeIsAnError(t *testing.T) {
	doc := []byte(`
fields:
  - name: x
    type: not_a_real_type
`)
	_, err := Load(doc)
	assert.Error(t, err)
}
