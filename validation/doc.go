// Package validation checks plan documents, request bodies and configuration.
//
// Struct tag validation uses go-playground/validator; programmatic checks
// collect field errors. Both report an INVALID_INPUT AppError whose details
// list every failing field.
//
// # Struct Tag Validation
//
//	type Step struct {
//	    Op    string `yaml:"op" validate:"required"`
//	    Count *int   `yaml:"count" validate:"omitempty,min=0"`
//	}
//	err := validation.Validate(step)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Custom(len(steps) > 0, "steps", "must not be empty")
//	err := v.Validate()
package validation
