package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("risk_level", validateRiskLevel)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateRiskLevel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || value == "Low" || value == "Medium" || value == "High"
}
