package auth

import "context"

// AuthService is the session holder contract: login against the fixed
// credential list, logout, and the current-user read.
type AuthService interface {
	// Login succeeds iff the (email, password) pair matches one entry of the
	// credential list. On success it returns the sanitized user plus a signed
	// session token; on failure it returns ErrInvalidCredentials and changes
	// nothing.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Logout revokes the session token found in ctx, if any. Idempotent.
	Logout(ctx context.Context) error

	// CurrentUser returns the sanitized user decoded from the verified
	// session token in ctx, or ErrNoSession when none is present. A malformed
	// token is treated as absent, never as a server fault.
	CurrentUser(ctx context.Context) (SessionUser, error)
}
