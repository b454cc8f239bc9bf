package utils

import (
	"regexp"

	"clinicportal-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("user_type", validateUserType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(constvars.RegexInternationalPhoneNumber)
	return re.MatchString(fl.Field().String())
}

func validateUserType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.UserTypePatient, constvars.UserTypeDoctor, constvars.UserTypeAdmin:
		return true
	}
	return false
}
