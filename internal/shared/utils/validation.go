package utils

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/portalkit/portalkit/internal/shared/errors"
)

var (
	validate  *validator.Validate
	digitsRe  = regexp.MustCompile(`^[0-9]+$`)
	postalRe  = regexp.MustCompile(`^[A-Za-z0-9 -]{3,12}$`)
	nameChars = regexp.MustCompile(`^[\p{L} .'-]+$`)
)

func init() {
	validate = validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return digitsRe.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("postal", func(fl validator.FieldLevel) bool {
		return postalRe.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return nameChars.MatchString(fl.Field().String())
	})
}

// ValidateStruct validates s and folds every field failure into a single
// validation error.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !asValidationErrors(err, &validationErrors) {
		return errors.NewValidationError("Validation failed", err.Error())
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, fieldErrorMessage(fieldError))
	}

	return errors.NewValidationError("Validation failed", strings.Join(messages, "; "))
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if ok {
		*target = ve
	}
	return ok && len(ve) > 0
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters long", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "digits":
		return fmt.Sprintf("%s must contain only digits", field)
	case "postal":
		return fmt.Sprintf("%s must be a valid postal code", field)
	case "personname":
		return fmt.Sprintf("%s contains invalid characters", field)
	case "eqfield":
		return fmt.Sprintf("%s must match %s", field, param)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
	}
}
