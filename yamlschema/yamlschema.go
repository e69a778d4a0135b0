// Package yamlschema is a second DSL surface for declaring a schema:
// instead of the fluent Go builder, a schema is written as a YAML document
// and parsed into the same field-by-field declarations the builder
// produces, so it normalizes, emits, and validates identically (spec.md
// §2's "DSL capture" step, generalized to a non-Go author).
//
// Grounded on the teacher's tag-string parsing posture (internal/tags):
// convert build-time authoring mistakes into returned errors here, since
// a YAML file is data a program loads at runtime, not Go source a
// programmer writes — unlike the fluent builder, which panics on the same
// class of mistake because it is caught at compile-adjacent time.
package yamlschema

import (
	"fmt"

	"github.com/goccy/go-yaml"

	schema "github.com/mcpkit/schema"
)

// Document is the top-level shape of a YAML schema file.
type Document struct {
	Fields []Decl `yaml:"fields"`
}

// Decl is one field declaration as written in YAML. Object introduces a
// nested schema, and Type is ignored when Object is set. Values turns the
// field into an enum whose base primitive is EnumType if set, else Type if
// set, else string.
type Decl struct {
	Name string `yaml:"name"`

	Type string `yaml:"type,omitempty"`

	Required bool `yaml:"required,omitempty"`

	Description string `yaml:"description,omitempty"`
	Default     any     `yaml:"default,omitempty"`
	Format      string  `yaml:"format,omitempty"`

	Min    *float64 `yaml:"min,omitempty"`
	Max    *float64 `yaml:"max,omitempty"`
	MinLen *int     `yaml:"min_length,omitempty"`
	MaxLen *int     `yaml:"max_length,omitempty"`

	Values   []string `yaml:"values,omitempty"`
	EnumType string   `yaml:"enum_type,omitempty"`

	Object []Decl `yaml:"object,omitempty"`
}

// Load parses a YAML document into a compiled Schema.
func Load(data []byte) (*schema.Schema, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yamlschema: %w", err)
	}

	b, err := toBuilder(doc.Fields)
	if err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func toBuilder(decls []Decl) (*schema.Builder, error) {
	b := schema.New()
	for _, d := range decls {
		if err := apply(b, d); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func apply(b *schema.Builder, d Decl) error {
	opts, err := fieldOptions(d)
	if err != nil {
		return err
	}

	if d.Object != nil {
		var buildErr error
		b.Object(d.Name, func(nested *schema.Builder) {
			for _, child := range d.Object {
				if err := apply(nested, child); err != nil {
					buildErr = err
				}
			}
		}, opts...)
		return buildErr
	}

	typ, err := resolveType(d)
	if err != nil {
		return err
	}
	b.Field(d.Name, typ, opts...)
	return nil
}

func resolveType(d Decl) (schema.Type, error) {
	if len(d.Values) > 0 && d.Type == "" {
		return schema.String, nil // Values() carries the enum; base primitive defaults via EnumType option.
	}
	if d.Type == "" {
		return schema.String, fmt.Errorf("yamlschema: field %q: missing type", d.Name)
	}
	return primitiveByName(d.Name, d.Type)
}

func primitiveByName(field, name string) (schema.Type, error) {
	switch name {
	case "string":
		return schema.String, nil
	case "integer":
		return schema.Integer, nil
	case "float":
		return schema.Float, nil
	case "boolean":
		return schema.Boolean, nil
	case "any":
		return schema.Any, nil
	case "date":
		return schema.Date, nil
	case "time":
		return schema.Time, nil
	case "datetime":
		return schema.DateTime, nil
	case "naive_datetime":
		return schema.NaiveDateTime, nil
	default:
		return schema.Type{}, fmt.Errorf("yamlschema: field %q: unknown type %q", field, name)
	}
}

func fieldOptions(d Decl) ([]schema.FieldOption, error) {
	var opts []schema.FieldOption

	if d.Required {
		opts = append(opts, schema.Required())
	}
	if d.Description != "" {
		opts = append(opts, schema.Description(d.Description))
	}
	if d.Default != nil {
		opts = append(opts, schema.Default(d.Default))
	}
	if d.Format != "" {
		opts = append(opts, schema.Format(d.Format))
	}
	if d.Min != nil {
		opts = append(opts, schema.Min(*d.Min))
	}
	if d.Max != nil {
		opts = append(opts, schema.Max(*d.Max))
	}
	if d.MinLen != nil {
		opts = append(opts, schema.MinLength(*d.MinLen))
	}
	if d.MaxLen != nil {
		opts = append(opts, schema.MaxLength(*d.MaxLen))
	}
	if len(d.Values) > 0 {
		opts = append(opts, schema.Values(d.Values...))
	}
	if d.EnumType != "" {
		p, err := primitiveTag(d.Name, d.EnumType)
		if err != nil {
			return nil, err
		}
		opts = append(opts, schema.EnumType(p))
	}

	return opts, nil
}

func primitiveTag(field, name string) (schema.Primitive, error) {
	typ, err := primitiveByName(field, name)
	if err != nil {
		return "", err
	}
	return typ.Primitive, nil
}
