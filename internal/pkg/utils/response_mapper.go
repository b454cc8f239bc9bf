package utils

import (
	"strings"
	"unicode/utf8"

	"clinicportal-service/internal/app/models"
	"clinicportal-service/internal/pkg/constvars"
	"clinicportal-service/internal/pkg/dto/responses"
)

// BuildUserProfile derives the display-oriented profile from the raw backend
// user record. The transform is pure: the same record always yields the same
// profile, and the profile is never mutated independently.
func BuildUserProfile(user *models.User) *responses.UserProfile {
	if user == nil {
		return nil
	}

	firstName := strings.TrimSpace(user.FirstName)
	lastName := strings.TrimSpace(user.LastName)

	displayName := strings.TrimSpace(firstName + " " + lastName)
	if displayName == "" {
		displayName = constvars.ProfileDisplayNamePlaceholder
	}

	initials := firstLetter(firstName) + firstLetter(lastName)
	if initials == "" {
		initials = constvars.ProfileInitialsPlaceholder
	}

	return &responses.UserProfile{
		UUID:           user.UUID,
		DisplayName:    displayName,
		Initials:       initials,
		Role:           strings.ToLower(user.UserType),
		Email:          user.Email,
		Mobile:         user.Mobile,
		MobileVerified: user.MobileVerified,
		EmailVerified:  user.EmailVerified,
	}
}

// firstLetter returns the uppercased first rune of name, or "" when empty.
// Names are not guaranteed ASCII so byte slicing would split multibyte runes.
func firstLetter(name string) string {
	if name == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(name)
	return strings.ToUpper(string(r))
}
