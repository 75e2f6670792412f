package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recyclehero/recyclehero-golang/internal/models"
)

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name string
		user models.User
	}{
		{
			name: "regular user",
			user: models.User{ID: 1, Username: "ana", Role: models.RoleUser},
		},
		{
			name: "admin user",
			user: models.User{ID: 42, Username: "moderator", Role: models.RoleAdmin},
		},
		{
			name: "empty username",
			user: models.User{ID: 7, Username: "", Role: models.RoleUser},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateToken(&tt.user)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			// A JWT is three dot-separated segments.
			assert.Len(t, strings.Split(token, "."), 3)

			claims, err := ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, tt.user.ID, claims.ID)
			assert.Equal(t, tt.user.Username, claims.Username)
			assert.Equal(t, tt.user.Role, claims.Role)
		})
	}
}

func TestGenerateToken_NoExpiry(t *testing.T) {
	token, err := GenerateToken(&models.User{ID: 1, Username: "ana", Role: models.RoleUser})
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateToken_WrongKey(t *testing.T) {
	claims := Claims{ID: 1, Username: "ana", Role: models.RoleUser}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("some-other-key"))
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	assert.Error(t, err)
}

func TestValidateToken_WrongMethod(t *testing.T) {
	// 'none' algorithm tokens must never validate.
	claims := Claims{ID: 1, Username: "ana", Role: models.RoleUser}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	// Tokens normally carry no exp, but if one does it must be honored.
	claims := Claims{
		ID:       1,
		Username: "ana",
		Role:     models.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecretKey)
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	assert.Error(t, err)
}
