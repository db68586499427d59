package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeRange, "bad range", http.StatusBadRequest)
	if err.Code != ErrCodeRange {
		t.Errorf("expected code %s, got %s", ErrCodeRange, err.Code)
	}
	if err.Message != "bad range" {
		t.Errorf("expected message 'bad range', got %q", err.Message)
	}
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, err.HTTPStatus)
	}
}

func TestAppError_TypeMismatch_Details(t *testing.T) {
	err := TypeMismatch("sum", []any{1})
	if err.Code != ErrCodeTypeMismatch {
		t.Errorf("expected TYPE_MISMATCH, got %s", err.Code)
	}
	if err.Details["operator"] != "sum" {
		t.Errorf("expected operator=sum, got %v", err.Details["operator"])
	}
	if err.Details["type"] != "[]interface {}" {
		t.Errorf("expected type=[]interface {}, got %v", err.Details["type"])
	}
}

func TestAppError_IndexOutOfRange_Message(t *testing.T) {
	err := IndexOutOfRange(5, 3)
	if !strings.Contains(err.Message, "index 5") || !strings.Contains(err.Message, "[0, 3)") {
		t.Errorf("unexpected message %q", err.Message)
	}
	if err.Details["index"] != 5 || err.Details["count"] != 3 {
		t.Errorf("unexpected details %v", err.Details)
	}
}

func TestAppError_NotFoundOrAmbiguous_Message(t *testing.T) {
	none := NotFoundOrAmbiguous("single", 0)
	if !strings.Contains(none.Message, "no matching element") {
		t.Errorf("unexpected message %q", none.Message)
	}
	many := NotFoundOrAmbiguous("single", 3)
	if !strings.Contains(many.Message, "3 matching elements") {
		t.Errorf("unexpected message %q", many.Message)
	}
}

func TestAppError_WithCause_Chain(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := IllegalArgument("aggregate", "nil accumulator").WithCause(cause)
	if err.Cause != cause {
		t.Error("expected cause to be set via WithCause")
	}
	if !strings.Contains(err.Error(), "root cause") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
}

func TestAppError_WithDetails_Merge(t *testing.T) {
	err := NotFound("key", "a").WithDetails(map[string]any{
		"extra": "info",
	})
	if err.Details["extra"] != "info" {
		t.Errorf("expected extra=info in details")
	}
	if err.Details["resource"] != "key" {
		t.Error("expected original details to be preserved")
	}

	err.WithDetails(map[string]any{
		"another": "detail",
	})
	if err.Details["another"] != "detail" {
		t.Error("expected another=detail to be merged")
	}
	if err.Details["extra"] != "info" {
		t.Error("expected extra=info to be preserved after second merge")
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := &AppError{}
	err.WithDetail("key", "value")
	if err.Details == nil {
		t.Fatal("expected Details map to be initialized")
	}
	if err.Details["key"] != "value" {
		t.Errorf("expected key=value, got %v", err.Details["key"])
	}
}

func TestAppError_Unwrap_Success(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := Internal(cause)
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	err2 := Range("negative count")
	if err2.Unwrap() != nil {
		t.Error("Unwrap should return nil when no cause")
	}
}

func TestAppError_Constructors_Table(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		code   ErrorCode
		status int
	}{
		{"TypeMismatch", TypeMismatch("max", map[string]any{}), ErrCodeTypeMismatch, http.StatusUnprocessableEntity},
		{"UnsupportedType", UnsupportedType("decimal"), ErrCodeUnsupportedType, http.StatusBadRequest},
		{"IndexOutOfRange", IndexOutOfRange(-1, 0), ErrCodeIndexOutOfRange, http.StatusUnprocessableEntity},
		{"Range", Range("count must not be negative"), ErrCodeRange, http.StatusBadRequest},
		{"NotFoundOrAmbiguous", NotFoundOrAmbiguous("first", 0), ErrCodeNotFoundOrAmbiguous, http.StatusUnprocessableEntity},
		{"IllegalArgument", IllegalArgument("aggregate", "empty sequence"), ErrCodeIllegalArgument, http.StatusBadRequest},
		{"NotFound", NotFound("key", 1), ErrCodeNotFound, http.StatusNotFound},
		{"InvalidInput", InvalidInput("plan", "empty"), ErrCodeInvalidInput, http.StatusBadRequest},
		{"Validation", Validation("bad input"), ErrCodeInvalidInput, http.StatusBadRequest},
		{"Internal", Internal(nil), ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, tc.err.Code)
			}
			if tc.err.HTTPStatus != tc.status {
				t.Errorf("expected status %d, got %d", tc.status, tc.err.HTTPStatus)
			}
		})
	}
}

func TestErrorCode_IsOperatorCode_Table(t *testing.T) {
	operator := []ErrorCode{ErrCodeTypeMismatch, ErrCodeUnsupportedType, ErrCodeIndexOutOfRange, ErrCodeRange, ErrCodeNotFoundOrAmbiguous, ErrCodeIllegalArgument}
	for _, code := range operator {
		if !IsOperatorCode(code) {
			t.Errorf("expected %s to be an operator code", code)
		}
	}

	surface := []ErrorCode{ErrCodeNotFound, ErrCodeInvalidInput, ErrCodeInternal}
	for _, code := range surface {
		if IsOperatorCode(code) {
			t.Errorf("expected %s to NOT be an operator code", code)
		}
	}
}

func TestAppError_ToResponse_Success(t *testing.T) {
	err := UnsupportedType("decimal")
	resp := err.ToResponse()
	if resp.Error.Code != ErrCodeUnsupportedType {
		t.Errorf("expected code UNSUPPORTED_TYPE in response, got %s", resp.Error.Code)
	}
	if resp.Error.Details["type"] != "decimal" {
		t.Error("expected type=decimal in response details")
	}
}

func TestIs_WrappedCode(t *testing.T) {
	wrapped := fmt.Errorf("drain: %w", Range("bad"))
	if !Is(wrapped, ErrCodeRange) {
		t.Error("expected Is to find RANGE_ERROR through wrapping")
	}
	if Is(wrapped, ErrCodeTypeMismatch) {
		t.Error("expected Is to reject a different code")
	}
	if Is(fmt.Errorf("plain"), ErrCodeRange) {
		t.Error("expected Is to be false for plain errors")
	}
}

func TestAppError_AsAppError_Success(t *testing.T) {
	appErr := Internal(nil)
	wrapped := fmt.Errorf("wrap: %w", appErr)

	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to succeed for wrapped AppError")
	}
	if got.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", got.Code)
	}

	if IsAppError(fmt.Errorf("not an app error")) {
		t.Error("expected IsAppError to return false for non-AppError")
	}
}

func TestWrap_Table(t *testing.T) {
	if Wrap(nil) != nil {
		t.Error("Wrap(nil) should return nil")
	}

	orig := TypeMismatch("cast", nil)
	if Wrap(orig) != orig {
		t.Error("Wrap should return the original AppError unchanged")
	}
	if got := Wrap(fmt.Errorf("outer: %w", orig)); got.Code != ErrCodeTypeMismatch {
		t.Errorf("expected TYPE_MISMATCH, got %s", got.Code)
	}

	plain := fmt.Errorf("something broke")
	got := Wrap(plain)
	if got.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", got.Code)
	}
	if got.Cause != plain {
		t.Error("expected cause to be the original error")
	}
}

func TestAppError_ImplementsErrorInterface(t *testing.T) {
	var err error = Range("x")
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		t.Error("stderrors.As should work with AppError")
	}
}
