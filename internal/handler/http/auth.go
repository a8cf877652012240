package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/auth"
	"github.com/moderntech-solutions/hrms-backend-go/internal/handler/http/response"
	"github.com/moderntech-solutions/hrms-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.SessionCookie(result.Token, result.ExpiresAt))
	slog.Info("User logged in", "email", result.User.Email)
	response.SuccessWithMessage(w, "Login successful", result)
}

// Logout implements AuthHandler. Clearing an already-absent session is fine;
// logout always succeeds.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.authService.Logout(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.ExpiredSessionCookie())
	response.SuccessWithMessage(w, "Logged out", nil)
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	user, err := a.authService.CurrentUser(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, user)
}
