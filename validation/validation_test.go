package validation

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/kbukum/golinq/errors"
)

func TestValidatorRequired(t *testing.T) {
	if New().Required("name", "sum").HasErrors() {
		t.Error("expected no errors for valid input")
	}
	if !New().Required("name", "   ").HasErrors() {
		t.Error("expected error for whitespace-only required field")
	}
}

func TestValidatorOptionalUUID(t *testing.T) {
	if New().OptionalUUID("id", "").HasErrors() {
		t.Error("empty optional UUID should pass")
	}
	if New().OptionalUUID("id", uuid.New().String()).HasErrors() {
		t.Error("valid UUID should pass")
	}
	if !New().OptionalUUID("id", "nope").HasErrors() {
		t.Error("invalid UUID should fail")
	}
}

func TestValidatorMinOneOfCustom(t *testing.T) {
	v := New().
		Min("count", -1, 0).
		OneOf("output", "set", []string{"array", "list"}).
		Custom(false, "steps", "must not be empty")
	if len(v.Errors()) != 3 {
		t.Fatalf("expected 3 errors, got %v", v.Errors())
	}
	if New().OneOf("output", "", []string{"array"}).HasErrors() {
		t.Error("empty value should be skipped by OneOf")
	}
}

func TestValidator_ValidateNilWhenClean(t *testing.T) {
	if err := New().Validate(); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestValidator_ValidateAppError(t *testing.T) {
	err := New().Required("op", "").Min("count", -2, 0).Validate()
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
	}
	if !strings.Contains(appErr.Message, "op: is required") || !strings.Contains(appErr.Message, "count: must be at least 0") {
		t.Errorf("unexpected message %q", appErr.Message)
	}
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 2 {
		t.Errorf("expected 2 field errors in details, got %v", appErr.Details["fields"])
	}
}

func TestValidator_Merge(t *testing.T) {
	inner := New().Required("op", "").Validate()
	v := New().Merge("steps[1]", inner).Merge("x", nil)
	if len(v.Errors()) != 1 || v.Errors()[0].Field != "steps[1].op" {
		t.Errorf("unexpected merged errors %v", v.Errors())
	}

	v = New().Merge("plan", errors.Range("bad"))
	if v.Errors()[0].Field != "plan" || v.Errors()[0].Message != "bad" {
		t.Errorf("unexpected merged errors %v", v.Errors())
	}
}

type step struct {
	Op     string `yaml:"op" validate:"required"`
	Count  int    `json:"count" validate:"min=0"`
	Output string `mapstructure:"output" validate:"omitempty,oneof=array list"`
	Nested inner  `yaml:"nested"`
}

type inner struct {
	FieldName string `validate:"required"`
}

func TestValidate_StructTags(t *testing.T) {
	ok := step{Op: "sum", Nested: inner{FieldName: "x"}}
	if err := Validate(ok); err != nil {
		t.Fatalf("expected valid struct, got %v", err)
	}

	err := Validate(step{Count: -1, Output: "set"})
	appErr, isApp := errors.AsAppError(err)
	if !isApp {
		t.Fatalf("expected AppError, got %T", err)
	}
	for _, want := range []string{"op: is required", "count: must be at least 0", "output: must be one of: array list", "nested.field_name: is required"} {
		if !strings.Contains(appErr.Message, want) {
			t.Errorf("expected %q in %q", want, appErr.Message)
		}
	}
}

func TestRegisterValidation(t *testing.T) {
	type named struct {
		Kind string `validate:"lowercase_word"`
	}
	if err := RegisterValidation("lowercase_word", func(s string) bool { return s == strings.ToLower(s) }); err != nil {
		t.Fatal(err)
	}
	if err := Validate(named{Kind: "sum"}); err != nil {
		t.Errorf("expected valid, got %v", err)
	}
	if err := Validate(named{Kind: "Sum"}); err == nil {
		t.Error("expected custom validation to fail")
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{"Op": "op", "FieldName": "field_name", "x": "x"}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
