package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/ports"
)

const defaultTokenTTL = 24 * time.Hour

// tokenClaims is the JWT payload: registered sub/iat/exp plus the role
// snapshot taken at issuance.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256-signed JWTs. The secret and
// TTL are fixed at construction and never change for the process
// lifetime, so the service is safe for concurrent use.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token asserting email+role, expiring after the
// configured TTL. Callers never choose the TTL.
func (s *TokenService) Issue(email, role string) (string, error) {
	now := s.now().UTC()
	claims := tokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a token string. Every rejection satisfies
// errors.Is(err, domain.ErrTokenInvalid); the wrapped cause (malformed,
// signature mismatch, expired) is kept for logging only.
func (s *TokenService) Validate(token string) (*ports.TokenClaims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, fmt.Errorf("%w: malformed", domain.ErrTokenInvalid)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, fmt.Errorf("%w: signature mismatch", domain.ErrTokenInvalid)
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%w: expired", domain.ErrTokenInvalid)
		default:
			return nil, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
		}
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", domain.ErrTokenInvalid)
	}

	out := &ports.TokenClaims{Email: claims.Subject, Role: claims.Role}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
