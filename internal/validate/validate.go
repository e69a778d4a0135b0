// Package validate compiles a normalized schema tree into the runtime
// validation behavior described in spec.md §4.D: it accepts a loose input,
// rejects type/constraint/required violations with path-qualified errors,
// and returns a key-normalized output map on success. This is component D.
//
// Validation never short-circuits across sibling fields (every field's
// errors are collected), but within a single field a type mismatch
// suppresses further constraint checks on that field, matching spec.md §7.
package validate

import (
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/mcpkit/schema/internal/types"
)

// Object validates input against a normalized Object and returns either a
// key-normalized output map or the collected field errors. A non-mapping
// top-level input yields a single ExpectedObject error at the empty path,
// per spec.md §7.
func Object(obj *types.Object, input any) (map[string]any, []FieldError) {
	m, ok := input.(map[string]any)
	if !ok {
		return nil, []FieldError{fieldError(nil, KindExpectedObject, nil)}
	}
	return validateObject(nil, obj, m)
}

func validateObject(path []string, obj *types.Object, input map[string]any) (map[string]any, []FieldError) {
	out := make(map[string]any, len(obj.Names))
	var errs []FieldError

	for _, name := range obj.Names {
		field := obj.Fields[name]
		fieldPath := childPath(path, name)
		value, present := input[name]

		v, ferrs, ok := validateField(fieldPath, field, present, value)
		errs = append(errs, ferrs...)
		if ok {
			out[name] = v
		}
	}

	return out, errs
}

func childPath(path []string, name string) []string {
	p := make([]string, len(path)+1)
	copy(p, path)
	p[len(path)] = name
	return p
}

// validateField handles presence and the Required wrapper (decision tree
// step 1/2 of spec.md §4.D), then delegates to validateUnwrapped.
//
// A declared default satisfies Required on absence (spec.md §9's open
// question, resolved this way per its own suggested reimplementation
// behavior): the default value is substituted and validated as if the
// caller had supplied it, rather than raising MissingRequired.
func validateField(path []string, field types.Field, present bool, value any) (any, []FieldError, bool) {
	expr := field.Type

	if req, isRequired := expr.(types.Required); isRequired {
		if !present {
			if def, ok := field.Meta(types.MetaDefault); ok {
				return validateUnwrapped(path, req.Inner, def)
			}
			return nil, []FieldError{fieldError(path, KindMissingRequired, nil)}, false
		}
		return validateUnwrapped(path, req.Inner, value)
	}

	if !present {
		return nil, nil, false
	}
	return validateUnwrapped(path, expr, value)
}

func validateUnwrapped(path []string, expr types.Expr, value any) (any, []FieldError, bool) {
	switch t := expr.(type) {
	case types.Prim:
		return validatePrim(path, t.Base, value)

	case types.Enum:
		return validateEnum(path, t, value)

	case types.Constrained:
		v, errs, ok := validateUnwrapped(path, t.Inner, value)
		if len(errs) > 0 {
			// A type mismatch (or deeper failure) on the inner expression
			// suppresses the constraint check entirely.
			return v, errs, ok
		}
		if cerr, failed := checkConstraint(path, t.Constraint, v); failed {
			return v, []FieldError{cerr}, false
		}
		return v, nil, true

	case types.Object:
		m, isMap := value.(map[string]any)
		if !isMap {
			return nil, []FieldError{fieldError(path, KindExpectedObject, nil)}, false
		}
		nested, errs := validateObject(path, &t, m)
		return nested, errs, len(errs) == 0

	default:
		panic(fmt.Sprintf("validate: unexpected type expression %T", expr))
	}
}

func validatePrim(path []string, base types.Primitive, value any) (any, []FieldError, bool) {
	switch base {
	case types.String:
		if s, ok := value.(string); ok {
			return s, nil, true
		}
		return nil, mismatch(path, base, value), false

	case types.Integer:
		switch n := value.(type) {
		case int:
			return n, nil, true
		case int64:
			return n, nil, true
		case float64:
			if n == math.Trunc(n) {
				return int64(n), nil, true
			}
		}
		return nil, mismatch(path, base, value), false

	case types.Float:
		switch n := value.(type) {
		case float64:
			return n, nil, true
		case int:
			return float64(n), nil, true
		case int64:
			return float64(n), nil, true
		}
		return nil, mismatch(path, base, value), false

	case types.Boolean:
		if b, ok := value.(bool); ok {
			return b, nil, true
		}
		return nil, mismatch(path, base, value), false

	case types.Any:
		return value, nil, true

	case types.Date, types.Time, types.DateTime, types.NaiveDateTime:
		s, ok := value.(string)
		if !ok {
			return nil, mismatch(path, base, value), false
		}
		parsed, err := time.Parse(layoutFor(base), s)
		if err != nil {
			return nil, mismatch(path, base, value), false
		}
		return parsed, nil, true

	default:
		panic(fmt.Sprintf("validate: unknown primitive %q", base))
	}
}

// validateEnum implements spec.md §4.D: "Enum(vs) -> membership check (in
// vs); the base primitive does not require a separate check." The value
// is stringified for comparison against the (string) enum values.
func validateEnum(path []string, e types.Enum, value any) (any, []FieldError, bool) {
	candidate := stringify(value)
	for _, allowed := range e.Values {
		if allowed == candidate {
			return value, nil, true
		}
	}
	return nil, []FieldError{fieldError(path, KindNotInEnum, map[string]any{
		"allowed": e.Values,
		"value":   value,
	})}, false
}

func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

func mismatch(path []string, expected types.Primitive, got any) []FieldError {
	return []FieldError{fieldError(path, KindTypeMismatch, map[string]any{
		"expected": string(expected),
		"got":      got,
	})}
}

func layoutFor(base types.Primitive) string {
	switch base {
	case types.Date:
		return time.DateOnly
	case types.Time:
		return time.TimeOnly
	case types.NaiveDateTime:
		return "2006-01-02T15:04:05"
	default:
		return time.RFC3339
	}
}

// checkConstraint implements spec.md §4.D's numeric and length bound
// checks. Numeric bounds against a non-numeric value, and length bounds
// against a non-string value, are silently ignored rather than treated as
// errors — spec.md §9 preserves this for min_length/max_length on
// non-string primitives, and the same posture extends to the symmetric
// case of a numeric bound reaching a non-numeric value.
func checkConstraint(path []string, c types.Constraint, value any) (FieldError, bool) {
	switch v := c.(type) {
	case types.Gte:
		if n, ok := toFloat(value); ok && n < v.Min {
			return fieldError(path, KindOutOfRange, map[string]any{"min": v.Min, "value": value}), true
		}
	case types.Lte:
		if n, ok := toFloat(value); ok && n > v.Max {
			return fieldError(path, KindOutOfRange, map[string]any{"max": v.Max, "value": value}), true
		}
	case types.RangeN:
		if n, ok := toFloat(value); ok && (n < v.Min || n > v.Max) {
			return fieldError(path, KindOutOfRange, map[string]any{"min": v.Min, "max": v.Max, "value": value}), true
		}
	case types.MinLen:
		if s, ok := value.(string); ok && utf8.RuneCountInString(s) < v.Min {
			return fieldError(path, KindLengthOutOfRange, map[string]any{"min_length": v.Min, "value": value}), true
		}
	case types.MaxLen:
		if s, ok := value.(string); ok && utf8.RuneCountInString(s) > v.Max {
			return fieldError(path, KindLengthOutOfRange, map[string]any{"max_length": v.Max, "value": value}), true
		}
	case types.LenRange:
		if s, ok := value.(string); ok {
			if n := utf8.RuneCountInString(s); n < v.Min || n > v.Max {
				return fieldError(path, KindLengthOutOfRange, map[string]any{"min_length": v.Min, "max_length": v.Max, "value": value}), true
			}
		}
	}
	return FieldError{}, false
}

func toFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
