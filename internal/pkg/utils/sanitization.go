package utils

import (
	"strings"

	"clinicportal-service/internal/pkg/dto/requests"
)

func SanitizeRequestOTP(request *requests.RequestOTP) {
	request.Mobile = strings.TrimSpace(request.Mobile)
	request.ISOCode = strings.ToUpper(strings.TrimSpace(request.ISOCode))
	request.UserType = strings.ToUpper(strings.TrimSpace(request.UserType))
}

func SanitizeValidateOTP(request *requests.ValidateOTP) {
	request.Mobile = strings.TrimSpace(request.Mobile)
	request.ISOCode = strings.ToUpper(strings.TrimSpace(request.ISOCode))
	request.UserType = strings.ToUpper(strings.TrimSpace(request.UserType))
	request.OTP = strings.TrimSpace(request.OTP)
}

func SanitizeCreatePatient(request *requests.CreatePatient) {
	request.FirstName = strings.TrimSpace(request.FirstName)
	request.LastName = strings.TrimSpace(request.LastName)
	request.Email = strings.TrimSpace(request.Email)
	request.Mobile = strings.TrimSpace(request.Mobile)
	request.Address = strings.TrimSpace(request.Address)
}

func SanitizeUpdatePatient(request *requests.UpdatePatient) {
	request.UUID = strings.TrimSpace(request.UUID)
	request.FirstName = strings.TrimSpace(request.FirstName)
	request.LastName = strings.TrimSpace(request.LastName)
	request.Email = strings.TrimSpace(request.Email)
	request.Mobile = strings.TrimSpace(request.Mobile)
	request.Address = strings.TrimSpace(request.Address)
}
