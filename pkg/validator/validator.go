package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errs[field] = field + " is required"
			case "min":
				errs[field] = field + " must be at least " + e.Param()
			case "max":
				errs[field] = field + " must be at most " + e.Param()
			case "oneof":
				errs[field] = field + " must be one of: " + e.Param()
			case "datetime":
				errs[field] = field + " must match the format " + dateTimeHint(e.Param())
			default:
				errs[field] = field + " is invalid"
			}
		}
	}

	return errs
}

// dateTimeHint turns a Go reference layout into the format users know.
func dateTimeHint(layout string) string {
	switch layout {
	case "2006-01-02":
		return "YYYY-MM-DD"
	case "15:04":
		return "HH:MM"
	default:
		return layout
	}
}
