package ports

import "time"

// TokenClaims is the identity a validated token asserts.
type TokenClaims struct {
	Email     string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and validates signed bearer tokens. The embedded
// role is a snapshot taken at issuance; there is no revocation, a token
// stays valid until natural expiry.
type TokenService interface {
	Issue(email, role string) (string, error)
	// Validate returns the claims, or an error satisfying
	// errors.Is(err, domain.ErrTokenInvalid) for any rejection cause.
	Validate(token string) (*TokenClaims, error)
}
