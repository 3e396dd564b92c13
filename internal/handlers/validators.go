package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// salaryPeriodPattern matches a "YYYY-MM" salary period.
var salaryPeriodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// registerCustomValidations installs domain-specific binding validations on
// gin's validator engine. Called once during route registration.
func registerCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("salaryperiod", func(fl validator.FieldLevel) bool {
		return salaryPeriodPattern.MatchString(fl.Field().String())
	})
}
