package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimbelhub/platform/internal/pkg/models"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 1440, // 24 hours
			Issuer:     "bimbelhub-test",
		},
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name  string
		email string
		role  string
	}{
		{
			name:  "Valid token generation for admin",
			email: "admin@school.example",
			role:  "admin",
		},
		{
			name:  "Valid token generation for instructor",
			email: "teacher@school.example",
			role:  "instructor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := getTestConfig()
			userID := uuid.New()
			orgID := uuid.New()

			token, expiresAt, err := GenerateToken(userID, tt.email, tt.role, orgID, cfg)

			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Greater(t, expiresAt, time.Now().Unix())

			// Expiry should be roughly 24 hours out
			expected := time.Now().Add(24 * time.Hour).Unix()
			assert.InDelta(t, expected, expiresAt, 5)
		})
	}
}

func TestValidateToken(t *testing.T) {
	cfg := getTestConfig()
	userID := uuid.New()
	orgID := uuid.New()

	token, _, err := GenerateToken(userID, "admin@school.example", "admin", orgID, cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, cfg.JWT.Secret)
	require.NoError(t, err)
	require.NotNil(t, claims)

	assert.Equal(t, userID.String(), (*claims)["user_id"])
	assert.Equal(t, "admin@school.example", (*claims)["email"])
	assert.Equal(t, "admin", (*claims)["role"])
	assert.Equal(t, orgID.String(), (*claims)["org_id"])
	assert.Equal(t, cfg.JWT.Issuer, (*claims)["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := getTestConfig()

	token, _, err := GenerateToken(uuid.New(), "admin@school.example", "admin", uuid.New(), cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, "different-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := getTestConfig()

	claims := jwt.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(-time.Hour).Unix(),
		"iss":     cfg.JWT.Issuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	require.NoError(t, err)

	parsed, err := ValidateToken(tokenString, cfg.JWT.Secret)
	assert.Error(t, err)
	assert.Nil(t, parsed)
}
