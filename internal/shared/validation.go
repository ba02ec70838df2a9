package shared

import (
	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the Brazilian document tags used by
// the request DTOs registered: "cnpj" and "fone".
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("cnpj", func(fl validator.FieldLevel) bool {
		return ValidCNPJ(fl.Field().String())
	})
	_ = v.RegisterValidation("fone", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String())
	})
	return v
}
