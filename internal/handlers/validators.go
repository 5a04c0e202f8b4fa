package handlers

import (
	"fmt"

	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom binding tags on gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("plan_role", ValidatePlanRole)
}

// ValidatePlanRole accepts employee, supervisor and hr.
func ValidatePlanRole(fl validator.FieldLevel) bool {
	_, err := domain.ParseRole(fl.Field().String())
	return err == nil
}
