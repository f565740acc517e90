package utils

import (
	"testing"

	"tg_accessories_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAdminJWT_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-de-test")

	token, err := GenerateAdminJWT(models.Admin{Email: "admin@tgaccessories.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@tgaccessories.com", claims["email"])
	assert.Equal(t, models.RoleAdmin, claims["role"])
}

func TestParseJWT_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-de-test")
	token, err := GenerateAdminJWT(models.Admin{Email: "admin@tgaccessories.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "autre-secret")
	_, err = ParseJWT(token)
	assert.Error(t, err)
}

func TestParseJWT_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-de-test")
	_, err := ParseJWT("pas-un-jwt")
	assert.Error(t, err)
}
