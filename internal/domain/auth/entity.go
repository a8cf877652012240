package auth

// SessionUser is the sanitized account shape stored in the session token and
// returned to the client. It never carries the password hash.
type SessionUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Credential is one entry of the fixed login list.
type Credential struct {
	Email        string
	PasswordHash string
	Name         string
	Role         string
}
