package auth

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/auth"
	"github.com/moderntech-solutions/hrms-backend-go/internal/fixtures"
	"github.com/moderntech-solutions/hrms-backend-go/internal/pkg/jwt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testSessionExp = "1h"
)

func newTestAuthService() (auth.AuthService, jwt.Service) {
	jwtService := jwt.NewJWTService(testSecret, testSessionExp)
	return NewAuthService(fixtures.Credentials(), jwtService), jwtService
}

// tokenContext simulates an authenticated request by decoding the issued
// token the way the verifier middleware would.
func tokenContext(t *testing.T, jwtService jwt.Service, tokenString string) context.Context {
	token, err := jwtService.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

// Test Login with valid credentials
func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	authService, _ := newTestAuthService()

	response, err := authService.Login(ctx, auth.LoginRequest{
		Email:    "admin@moderntech.com",
		Password: "admin123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Greater(t, response.ExpiresAt, time.Now().Unix())
	assert.Equal(t, "admin@moderntech.com", response.User.Email)
	assert.Equal(t, "Admin User", response.User.Name)
	assert.Equal(t, "Administrator", response.User.Role)
}

// Test Login with the second fixture account
func TestAuthService_Login_HRAccount(t *testing.T) {
	ctx := context.Background()
	authService, _ := newTestAuthService()

	response, err := authService.Login(ctx, auth.LoginRequest{
		Email:    "hr@moderntech.com",
		Password: "hr123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "HR Staff", response.User.Role)
}

// Test Login with invalid password
func TestAuthService_Login_InvalidPassword(t *testing.T) {
	ctx := context.Background()
	authService, _ := newTestAuthService()

	_, err := authService.Login(ctx, auth.LoginRequest{
		Email:    "admin@moderntech.com",
		Password: "wrongpassword",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

// Test Login with unknown email; the error must match the wrong-password one
func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	authService, _ := newTestAuthService()

	_, err := authService.Login(ctx, auth.LoginRequest{
		Email:    "nobody@moderntech.com",
		Password: "admin123",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

// Test that login leaves the credential list untouched
func TestAuthService_Login_FailureDoesNotMutate(t *testing.T) {
	ctx := context.Background()
	creds := fixtures.Credentials()
	jwtService := jwt.NewJWTService(testSecret, testSessionExp)
	authService := NewAuthService(creds, jwtService)

	_, _ = authService.Login(ctx, auth.LoginRequest{Email: "admin@moderntech.com", Password: "nope"})

	response, err := authService.Login(ctx, auth.LoginRequest{
		Email:    "admin@moderntech.com",
		Password: "admin123",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, response.Token)
}

// Test CurrentUser round-trips the logged-in user from the token
func TestAuthService_CurrentUser_Success(t *testing.T) {
	ctx := context.Background()
	authService, jwtService := newTestAuthService()

	response, err := authService.Login(ctx, auth.LoginRequest{
		Email:    "admin@moderntech.com",
		Password: "admin123",
	})
	require.NoError(t, err)

	user, err := authService.CurrentUser(tokenContext(t, jwtService, response.Token))
	assert.NoError(t, err)
	assert.Equal(t, response.User, user)
}

// Test CurrentUser without a session
func TestAuthService_CurrentUser_NoSession(t *testing.T) {
	authService, _ := newTestAuthService()

	_, err := authService.CurrentUser(context.Background())
	assert.ErrorIs(t, err, auth.ErrNoSession)
}

// Test Logout revokes the token's jti
func TestAuthService_Logout_RevokesToken(t *testing.T) {
	ctx := context.Background()
	authService, jwtService := newTestAuthService()

	response, err := authService.Login(ctx, auth.LoginRequest{
		Email:    "admin@moderntech.com",
		Password: "admin123",
	})
	require.NoError(t, err)

	token, err := jwtService.JWTAuth().Decode(response.Token)
	require.NoError(t, err)
	jti := token.JwtID()
	require.NotEmpty(t, jti)
	assert.False(t, jwtService.IsTokenRevoked(jti))

	sessionCtx := tokenContext(t, jwtService, response.Token)
	assert.NoError(t, authService.Logout(sessionCtx))
	assert.True(t, jwtService.IsTokenRevoked(jti))
}

// Test Logout is idempotent, with and without a session
func TestAuthService_Logout_Idempotent(t *testing.T) {
	ctx := context.Background()
	authService, jwtService := newTestAuthService()

	assert.NoError(t, authService.Logout(context.Background()))

	response, err := authService.Login(ctx, auth.LoginRequest{
		Email:    "admin@moderntech.com",
		Password: "admin123",
	})
	require.NoError(t, err)

	sessionCtx := tokenContext(t, jwtService, response.Token)
	assert.NoError(t, authService.Logout(sessionCtx))
	assert.NoError(t, authService.Logout(sessionCtx))
}

// Test a custom credential list built the same way the fixtures are
func TestAuthService_Login_CustomCredential(t *testing.T) {
	ctx := context.Background()
	hashed, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	creds := []auth.Credential{{
		Email:        "tester@moderntech.com",
		PasswordHash: string(hashed),
		Name:         "Tester",
		Role:         "HR Staff",
	}}
	jwtService := jwt.NewJWTService(testSecret, testSessionExp)
	authService := NewAuthService(creds, jwtService)

	response, err := authService.Login(ctx, auth.LoginRequest{Email: "tester@moderntech.com", Password: "s3cret"})
	assert.NoError(t, err)
	assert.Equal(t, "Tester", response.User.Name)
}
