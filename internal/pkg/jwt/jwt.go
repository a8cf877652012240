package jwt

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/auth"
)

// SessionCookieName is "jwt" so jwtauth's default cookie lookup finds it.
const SessionCookieName = "jwt"

// Service signs and verifies the session token that stands in for the
// dashboard's persisted session record. The claims are exactly the sanitized
// user plus bookkeeping (jti, exp, type).
type Service interface {
	GenerateSessionToken(user auth.SessionUser) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	SessionCookie(token string, expiresAt int64) *http.Cookie
	ExpiredSessionCookie() *http.Cookie
	RevokeToken(tokenID string)
	IsTokenRevoked(tokenID string) bool
}

type JWTService struct {
	sessionExpiration string
	tokenAuth         *jwtauth.JWTAuth
	revokedTokens     map[string]int64
	mu                sync.RWMutex
}

func NewJWTService(secretKey string, sessionExpiration string) Service {
	return &JWTService{
		sessionExpiration: sessionExpiration,
		tokenAuth:         jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:     make(map[string]int64),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateSessionToken(user auth.SessionUser) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.sessionExpiration)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"jti":   uuid.NewString(),
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
		"type":  "session",
		"exp":   expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) SessionCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
}

// ExpiredSessionCookie clears the session cookie on logout.
func (j *JWTService) ExpiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) RevokeToken(tokenID string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[tokenID] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(tokenID string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[tokenID]
	return revoked
}
