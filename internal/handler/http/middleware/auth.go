package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/auth"
	"github.com/moderntech-solutions/hrms-backend-go/internal/handler/http/response"
	"github.com/moderntech-solutions/hrms-backend-go/internal/pkg/jwt"
)

// AuthRequired gates the protected views. A missing, malformed or revoked
// session token yields 401; it is never treated as a server fault.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil || token == nil {
				response.Unauthorized(w, "Authentication required")
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "session" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			if jti, ok := claims["jti"].(string); ok && jwtService.IsTokenRevoked(jti) {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
