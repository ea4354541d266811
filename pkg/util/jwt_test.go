package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt-testing"

func TestGenerateTokenPair(t *testing.T) {
	tests := []struct {
		name          string
		userID        string
		email         string
		secret        string
		accessExpiry  time.Duration
		refreshExpiry time.Duration
		wantErr       bool
	}{
		{
			name:          "Valid token generation",
			userID:        "3f1a9a1e-0b5c-4a8f-9d3e-111111111111",
			email:         "owner@example.com",
			secret:        testSecret,
			accessExpiry:  15 * time.Minute,
			refreshExpiry: 7 * 24 * time.Hour,
			wantErr:       false,
		},
		{
			name:          "Second user",
			userID:        "3f1a9a1e-0b5c-4a8f-9d3e-222222222222",
			email:         "another@example.com",
			secret:        testSecret,
			accessExpiry:  15 * time.Minute,
			refreshExpiry: 7 * 24 * time.Hour,
			wantErr:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := GenerateTokenPair(
				tt.userID,
				tt.email,
				tt.secret,
				tt.accessExpiry,
				tt.refreshExpiry,
			)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, tokens)
			} else {
				require.NoError(t, err)
				require.NotNil(t, tokens)
				assert.NotEmpty(t, tokens.AccessToken)
				assert.NotEmpty(t, tokens.RefreshToken)
				assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)
			}
		})
	}
}

func TestValidateToken(t *testing.T) {
	userID := "3f1a9a1e-0b5c-4a8f-9d3e-333333333333"
	email := "owner@example.com"

	tokens, err := GenerateTokenPair(userID, email, testSecret, 15*time.Minute, 7*24*time.Hour)
	require.NoError(t, err)

	t.Run("Valid token", func(t *testing.T) {
		claims, err := ValidateToken(tokens.AccessToken, testSecret)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, email, claims.Email)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		claims, err := ValidateToken(tokens.AccessToken, "wrong-secret")
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("Malformed token", func(t *testing.T) {
		claims, err := ValidateToken("not-a-token", testSecret)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("Expired token", func(t *testing.T) {
		expired, err := GenerateTokenPair(userID, email, testSecret, -1*time.Minute, -1*time.Minute)
		require.NoError(t, err)

		claims, err := ValidateToken(expired.AccessToken, testSecret)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.Nil(t, claims)
	})
}
