package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the unified error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// HTTPStatus is the status the plan endpoint answers with for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// --- Operator error constructors ---

// TypeMismatch reports that operator met an element it cannot work with.
func TypeMismatch(operator string, value any) *AppError {
	return &AppError{
		Code: ErrCodeTypeMismatch, Message: fmt.Sprintf("%s requires scalar elements, got %T", operator, value),
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    map[string]any{"operator": operator, "type": fmt.Sprintf("%T", value)},
	}
}

// UnsupportedType reports a coercion target outside the closed set.
func UnsupportedType(typeName string) *AppError {
	return &AppError{
		Code: ErrCodeUnsupportedType, Message: fmt.Sprintf("unsupported type %q: must be one of int, float, bool, string", typeName),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"type": typeName},
	}
}

// IndexOutOfRange reports a positional access outside [0, count).
func IndexOutOfRange(index, count int) *AppError {
	return &AppError{
		Code: ErrCodeIndexOutOfRange, Message: fmt.Sprintf("index %d is out of range [0, %d)", index, count),
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    map[string]any{"index": index, "count": count},
	}
}

// Range reports invalid range bounds.
func Range(reason string) *AppError {
	return &AppError{
		Code: ErrCodeRange, Message: reason,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NotFoundOrAmbiguous reports that operator matched matches elements where exactly
// one (single) or at least one (first, last) was required.
func NotFoundOrAmbiguous(operator string, matches int) *AppError {
	msg := fmt.Sprintf("%s: sequence contains no matching element", operator)
	if matches > 1 {
		msg = fmt.Sprintf("%s: sequence contains %d matching elements", operator, matches)
	}
	return &AppError{
		Code: ErrCodeNotFoundOrAmbiguous, Message: msg,
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    map[string]any{"operator": operator, "matches": matches},
	}
}

// IllegalArgument reports malformed bound arguments.
func IllegalArgument(operator, reason string) *AppError {
	return &AppError{
		Code: ErrCodeIllegalArgument, Message: fmt.Sprintf("%s: %s", operator, reason),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"operator": operator},
	}
}

// --- Surface error constructors ---

// NotFound creates a new AppError for a missing key.
func NotFound(resource string, key any) *AppError {
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("The requested %s was not found.", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"resource": resource, "key": fmt.Sprintf("%v", key)},
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		HTTPStatus: http.StatusBadRequest, Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// Internal creates a new AppError for an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}

// Is reports whether err carries an AppError with the given code.
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr) && appErr.Code == code
}

// Wrap converts any error into an AppError. AppErrors (wrapped or not) are
// returned as is, anything else becomes an internal error.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return Internal(err)
}
