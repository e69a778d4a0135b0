package validate

// Kind identifies the category of a validation (data) error. The error
// vocabulary is defined here and re-exported by the root schema package
// through type aliases, since internal/validate cannot import the root
// package (the root package imports it).
type Kind string

// Error kinds, per spec.md §4.D and §7.
const (
	KindMissingRequired  Kind = "MissingRequired"
	KindTypeMismatch     Kind = "TypeMismatch"
	KindOutOfRange       Kind = "OutOfRange"
	KindLengthOutOfRange Kind = "LengthOutOfRange"
	KindNotInEnum        Kind = "NotInEnum"
	KindExpectedObject   Kind = "ExpectedObject"
)

// FieldError is one validation failure, path-qualified from the root of
// the input.
type FieldError struct {
	Path    []string
	Kind    Kind
	Context map[string]any
}

func fieldError(path []string, kind Kind, context map[string]any) FieldError {
	// Copy the path so each error owns its slice, independent of the
	// caller's.
	p := make([]string, len(path))
	copy(p, path)
	return FieldError{Path: p, Kind: kind, Context: context}
}
