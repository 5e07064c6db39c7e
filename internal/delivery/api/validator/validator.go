// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"lifeflow/internal/domain/entity"
	"lifeflow/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates bound request bodies
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports JSON field names and knows the domain enums
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	_ = v.RegisterValidation("bloodtype", func(fl validator.FieldLevel) bool {
		return entity.BloodType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("urgency", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()

		return value == "" || entity.Urgency(value).IsValid()
	})

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}

// Describe turns validation errors into a single readable line
func Describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describeField(fe))
	}

	return strings.Join(problems, "; ")
}

func describeField(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_with", "required_without":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "bloodtype":
		return fmt.Sprintf("%s must be one of A+, A-, B+, B-, AB+, AB-, O+, O-", fe.Field())
	case "urgency":
		return fmt.Sprintf("%s must be Urgent or Scheduled", fe.Field())
	case "uuid":
		return fmt.Sprintf("%s must be a UUID", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
