package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/api/metrics"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/ports"
)

const (
	principalEmailKey = "principal_email"
	principalRoleKey  = "principal_role"
	filterRanKey      = "auth_filter_ran"
)

// Principal is the request-scoped identity populated by Authenticate.
type Principal struct {
	Email       string
	Authorities []string
}

// HasAuthority reports whether the principal carries the given role.
func (p Principal) HasAuthority(role string) bool {
	for _, a := range p.Authorities {
		if a == role {
			return true
		}
	}
	return false
}

// PrincipalFrom extracts the authenticated principal, if any, from the
// request context.
func PrincipalFrom(c echo.Context) (Principal, bool) {
	email, _ := c.Get(principalEmailKey).(string)
	if email == "" {
		return Principal{}, false
	}
	role, _ := c.Get(principalRoleKey).(string)
	return Principal{Email: email, Authorities: []string{role}}, true
}

// Authenticate extracts and validates a bearer token, populating the
// request-scoped principal on success. It never rejects: a missing,
// malformed or invalid token leaves the request anonymous and defers the
// allow/deny decision entirely to the rule table. Guarded so it runs at
// most once per inbound request, even when the chain is re-entered.
func Authenticate(tokens ports.TokenService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if ran, _ := c.Get(filterRanKey).(bool); ran {
				return next(c)
			}
			c.Set(filterRanKey, true)

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				// Invalid token is equivalent to no token. The cause is
				// logged for diagnostics, never exposed to the client.
				metrics.TokenRejectionsTotal.Inc()
				log.Debug().Err(err).Str("path", c.Request().URL.Path).Msg("bearer token rejected")
				return next(c)
			}

			c.Set(principalEmailKey, claims.Email)
			c.Set(principalRoleKey, claims.Role)
			return next(c)
		}
	}
}
