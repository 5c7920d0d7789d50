package validate

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// RollNumberRE is the student roll number form, e.g. 22CSA52.
var RollNumberRE = regexp.MustCompile(`^\d{2}[A-Z]{2,3}\d{2}$`)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("rollnum", func(fl validator.FieldLevel) bool {
		return RollNumberRE.MatchString(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
