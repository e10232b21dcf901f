package service

import (
	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/manpower-erp-api/internal/models"
)

// NewValidator returns a validator with the domain tags registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	registerDomainValidations(v)
	return v
}

func registerDomainValidations(v *validator.Validate) {
	// visa_status accepts only the workflow vocabulary, exact match.
	_ = v.RegisterValidation("visa_status", func(fl validator.FieldLevel) bool {
		return models.VisaStatus(fl.Field().String()).InWorkflow()
	})
}

func ensureValidator(v *validator.Validate) *validator.Validate {
	if v == nil {
		return NewValidator()
	}
	registerDomainValidations(v)
	return v
}
