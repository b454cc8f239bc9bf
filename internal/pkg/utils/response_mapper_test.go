package utils

import (
	"testing"

	"clinicportal-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUserProfile(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		profile := BuildUserProfile(&models.User{
			UUID:           "user-1",
			FirstName:      "John",
			LastName:       "Doe",
			Email:          "john@example.com",
			Mobile:         "+15550100001",
			MobileVerified: true,
			UserType:       "PATIENT",
		})
		require.NotNil(t, profile)
		assert.Equal(t, "John Doe", profile.DisplayName)
		assert.Equal(t, "JD", profile.Initials)
		assert.Equal(t, "patient", profile.Role)
		assert.True(t, profile.MobileVerified)
	})

	t.Run("first name only", func(t *testing.T) {
		profile := BuildUserProfile(&models.User{FirstName: "Jane", UserType: "DOCTOR"})
		require.NotNil(t, profile)
		assert.Equal(t, "Jane", profile.DisplayName)
		assert.Equal(t, "J", profile.Initials)
		assert.Equal(t, "doctor", profile.Role)
	})

	t.Run("whitespace names collapse to placeholders", func(t *testing.T) {
		profile := BuildUserProfile(&models.User{FirstName: "  ", LastName: " "})
		require.NotNil(t, profile)
		assert.Equal(t, "User", profile.DisplayName)
		assert.Equal(t, "U", profile.Initials)
	})

	t.Run("casing is preserved, not normalized", func(t *testing.T) {
		profile := BuildUserProfile(&models.User{FirstName: "ana", LastName: "lopez"})
		require.NotNil(t, profile)
		assert.Equal(t, "ana lopez", profile.DisplayName)
		assert.Equal(t, "AL", profile.Initials)
	})

	t.Run("multibyte names keep their first letter", func(t *testing.T) {
		profile := BuildUserProfile(&models.User{FirstName: "Élodie", LastName: "Øster"})
		require.NotNil(t, profile)
		assert.Equal(t, "Élodie Øster", profile.DisplayName)
		assert.Equal(t, "ÉØ", profile.Initials)
	})

	t.Run("nil user yields nil profile", func(t *testing.T) {
		assert.Nil(t, BuildUserProfile(nil))
	})
}
