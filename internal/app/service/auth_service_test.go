package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeonlog/storefront-admin-backend/internal/app/repository"
	"github.com/yeonlog/storefront-admin-backend/internal/db"
	"github.com/yeonlog/storefront-admin-backend/pkg/util"
)

func setupAuthServiceTest(t *testing.T) AuthService {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	userRepo := repository.NewUserRepository(testDB)
	return NewAuthService(userRepo, "test-secret", 15*time.Minute, 24*time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	authService := setupAuthServiceTest(t)

	user, tokens, err := authService.Register("admin@example.com", "password123", "Admin")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	// 비밀번호는 해시로 저장된다
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.True(t, util.CheckPassword("password123", user.PasswordHash))

	// 이메일 중복은 거부
	_, _, err = authService.Register("admin@example.com", "password456", "Other")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	authService := setupAuthServiceTest(t)

	_, _, err := authService.Register("admin@example.com", "password123", "Admin")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "Valid credentials",
			email:    "admin@example.com",
			password: "password123",
			wantErr:  nil,
		},
		{
			name:     "Wrong password",
			email:    "admin@example.com",
			password: "wrong",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "Unknown email",
			email:    "nobody@example.com",
			password: "password123",
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, tokens, err := authService.Login(tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.email, user.Email)
				assert.NotEmpty(t, tokens.AccessToken)
			}
		})
	}
}

func TestAuthService_GetUserByID(t *testing.T) {
	authService := setupAuthServiceTest(t)

	registered, _, err := authService.Register("admin@example.com", "password123", "Admin")
	require.NoError(t, err)

	user, err := authService.GetUserByID(registered.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.Email, user.Email)

	_, err = authService.GetUserByID("no-such-user")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
