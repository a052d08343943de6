package store

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report violations under the json field name, which matches the column
	// name shown to the user.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// checkInput validates an input struct and converts any violations into a
// *ValidationError carrying the entity name and per-field reasons.
func checkInput(entity string, input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	violations := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations[fe.Field()] = reason(fe.Tag())
	}
	return &ValidationError{Entity: entity, Violations: violations}
}

func reason(tag string) string {
	switch tag {
	case "required":
		return "required"
	case "gte", "gt", "lte", "lt", "min", "max":
		return "out_of_range"
	default:
		return tag
	}
}
