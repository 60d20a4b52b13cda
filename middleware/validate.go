package middleware

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/broady/dyngen"
	"github.com/go-playground/validator/v10"
)

// ValidatingInterceptor checks struct samples against their `validate`
// tags before conversion. Samples that are not structs (or pointers to
// structs) pass through untouched. A nil validate uses validator.New().
//
// Generated type declarations carry no tags; this is for hand-written
// types used with declaration emission turned off.
func ValidatingInterceptor(validate *validator.Validate) dyngen.Interceptor {
	if validate == nil {
		validate = validator.New()
	}

	return func(name string, sample any, next dyngen.ConvertFunc) (dyngen.Value, error) {
		if isStruct(sample) {
			if err := validate.Struct(sample); err != nil {
				return nil, validationError(name, err)
			}
		}
		return next(sample)
	}
}

func isStruct(v any) bool {
	t := reflect.TypeOf(v)
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Pointer {
		if reflect.ValueOf(v).IsNil() {
			return false
		}
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

func validationError(name string, err error) error {
	valErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return dyngen.Errorf(dyngen.CodeInvalidArgument, "%s: %v", name, err)
	}
	details := make(map[string]any, len(valErrs))
	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		msg := formatValidationError(ve)
		details[ve.Field()] = msg
		messages = append(messages, ve.Field()+": "+msg)
	}
	return &dyngen.Error{
		Code:    dyngen.CodeInvalidArgument,
		Message: name + ": " + strings.Join(messages, "; "),
		Details: details,
	}
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "min":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", ve.Param())
	case "len":
		return fmt.Sprintf("must have length %s", ve.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
