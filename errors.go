package schema

import (
	"fmt"
	"strings"

	"github.com/mcpkit/schema/internal/validate"
)

// Kind identifies the category of a validation (data) error.
type Kind = validate.Kind

// Error kinds produced by Validate, per spec.md §4.D and §7.
const (
	KindMissingRequired  = validate.KindMissingRequired
	KindTypeMismatch     = validate.KindTypeMismatch
	KindOutOfRange       = validate.KindOutOfRange
	KindLengthOutOfRange = validate.KindLengthOutOfRange
	KindNotInEnum        = validate.KindNotInEnum
	KindExpectedObject   = validate.KindExpectedObject
)

// FieldError is a single, path-qualified validation failure. Path is empty
// only for the top-level ExpectedObject case (spec.md §7).
type FieldError = validate.FieldError

// dotPath renders a field error's path the way the dispatcher is expected
// to (spec.md §6, advisory): "<kind> at <dot.path>: <context>".
func dotPath(e FieldError) string {
	return strings.Join(e.Path, ".")
}

func fieldErrorString(e FieldError) string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("%s at %s", e.Kind, dotPath(e))
	}
	return fmt.Sprintf("%s at %s: %v", e.Kind, dotPath(e), e.Context)
}

// ValidationError collects every sibling field error from one Validate
// call. It implements error so a caller who only wants pass/fail can still
// use it idiomatically, while a caller who wants the JSON-RPC InvalidParams
// payload (spec.md §6) can range over Errors directly.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "validation failed"
	case 1:
		return fieldErrorString(e.Errors[0])
	default:
		return fmt.Sprintf("%s (and %d more errors)", fieldErrorString(e.Errors[0]), len(e.Errors)-1)
	}
}
