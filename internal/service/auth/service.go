package auth

import (
	"context"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/auth"
	"github.com/moderntech-solutions/hrms-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	credentials []auth.Credential
	jwt.Service
}

// NewAuthService builds the session holder over the fixed credential list.
// There is no registration path; the list never changes at runtime.
func NewAuthService(credentials []auth.Credential, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		credentials: credentials,
		Service:     jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	var match *auth.Credential
	for i := range a.credentials {
		if a.credentials[i].Email == req.Email {
			match = &a.credentials[i]
			break
		}
	}
	// Unknown email and wrong password produce the same error.
	if match == nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(match.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	user := auth.SessionUser{
		Email: match.Email,
		Name:  match.Name,
		Role:  match.Role,
	}

	token, expiresAt, err := a.GenerateSessionToken(user)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout implements auth.AuthService. Revoking an absent or already-revoked
// session is a no-op, so repeated logouts are safe.
func (a *AuthServiceImpl) Logout(ctx context.Context) error {
	token, claims, err := jwtauth.FromContext(ctx)
	if err != nil || token == nil {
		return nil
	}
	if jti, ok := claims["jti"].(string); ok && jti != "" {
		a.RevokeToken(jti)
	}
	return nil
}

// CurrentUser implements auth.AuthService.
func (a *AuthServiceImpl) CurrentUser(ctx context.Context) (auth.SessionUser, error) {
	token, claims, err := jwtauth.FromContext(ctx)
	if err != nil || token == nil {
		return auth.SessionUser{}, auth.ErrNoSession
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)
	if email == "" {
		// Malformed persisted session degrades to "absent".
		return auth.SessionUser{}, auth.ErrNoSession
	}

	return auth.SessionUser{Email: email, Name: name, Role: role}, nil
}
