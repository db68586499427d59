package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Operator errors
const (
	// ErrCodeTypeMismatch indicates an operator met an element of the wrong kind,
	// e.g. a non-scalar element passed to sum or cast.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
	// ErrCodeUnsupportedType indicates a coercion target outside {int, float, bool, string}.
	ErrCodeUnsupportedType ErrorCode = "UNSUPPORTED_TYPE"
	// ErrCodeIndexOutOfRange indicates a positional access outside [0, count).
	ErrCodeIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE"
	// ErrCodeRange indicates invalid range bounds, e.g. a negative generator count.
	ErrCodeRange ErrorCode = "RANGE_ERROR"
	// ErrCodeNotFoundOrAmbiguous indicates first/last/single found no qualifying
	// element, or single found more than one.
	ErrCodeNotFoundOrAmbiguous ErrorCode = "NOT_FOUND_OR_AMBIGUOUS"
	// ErrCodeIllegalArgument indicates malformed bound arguments or an operator
	// that cannot produce a value for its input (aggregate on an empty sequence).
	ErrCodeIllegalArgument ErrorCode = "ILLEGAL_ARGUMENT"
)

// Surface errors
const (
	// ErrCodeNotFound indicates a keyed lookup missed.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInvalidInput indicates a request, plan or configuration failed validation.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// IsOperatorCode reports whether code is raised by the operator library.
func IsOperatorCode(code ErrorCode) bool {
	switch code {
	case ErrCodeTypeMismatch, ErrCodeUnsupportedType, ErrCodeIndexOutOfRange,
		ErrCodeRange, ErrCodeNotFoundOrAmbiguous, ErrCodeIllegalArgument:
		return true
	}
	return false
}
