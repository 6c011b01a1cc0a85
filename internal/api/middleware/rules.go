package middleware

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/labstack/echo/v4"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/api/metrics"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
)

// requirementKind discriminates what a matched rule demands.
type requirementKind int

const (
	permitAll requirementKind = iota
	authenticated
	hasAnyRole
)

// Requirement is what a rule demands from the request's principal.
type Requirement struct {
	kind  requirementKind
	roles []string
}

// PermitAll allows the request regardless of the principal.
func PermitAll() Requirement { return Requirement{kind: permitAll} }

// Authenticated allows any non-anonymous principal.
func Authenticated() Requirement { return Requirement{kind: authenticated} }

// HasAnyRole allows principals carrying at least one of the given roles.
func HasAnyRole(roles ...string) Requirement {
	return Requirement{kind: hasAnyRole, roles: roles}
}

// MethodAny matches every HTTP method.
const MethodAny = "*"

// Rule binds an HTTP method (or MethodAny) and a path pattern to a
// requirement. Patterns support `*` for a single segment and a trailing
// `**` for zero or more segments.
type Rule struct {
	Method  string
	Pattern string
	Require Requirement
}

// RuleTable is an ordered set of rules evaluated first-match: the first
// rule whose method and pattern match decides the outcome, regardless of
// whether a later rule is more specific. Built once at startup and
// read-only afterwards, so safe for concurrent use.
type RuleTable struct {
	rules []Rule
}

// NewRuleTable validates the patterns and fixes the evaluation order.
// An invalid pattern is a programming error and panics at startup.
func NewRuleTable(rules ...Rule) *RuleTable {
	for _, r := range rules {
		if !doublestar.ValidatePattern(r.Pattern) {
			panic(fmt.Sprintf("rules: invalid path pattern %q", r.Pattern))
		}
	}
	return &RuleTable{rules: rules}
}

// Decide evaluates the table for one request. It returns nil to allow,
// domain.ErrUnauthenticated when a protected rule meets an anonymous
// principal, and domain.ErrForbidden when the principal is present but
// lacks every required role. When no rule matches, the default is
// authentication required (fail-closed).
func (t *RuleTable) Decide(method, path string, principal Principal, authenticated bool) error {
	require := Authenticated()
	for _, r := range t.rules {
		if r.Method != MethodAny && r.Method != method {
			continue
		}
		ok, _ := doublestar.Match(r.Pattern, path)
		if !ok {
			continue
		}
		require = r.Require
		break
	}

	switch require.kind {
	case permitAll:
		return nil
	case hasAnyRole:
		if !authenticated {
			return domain.ErrUnauthenticated
		}
		for _, role := range require.roles {
			if principal.HasAuthority(role) {
				return nil
			}
		}
		return domain.ErrForbidden
	default:
		if !authenticated {
			return domain.ErrUnauthenticated
		}
		return nil
	}
}

// Enforce is the echo middleware form of the table: it consults the
// filter-populated principal and converts a deny into the matching
// domain error for the central error handler to render.
func (t *RuleTable) Enforce() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := PrincipalFrom(c)
			err := t.Decide(c.Request().Method, c.Request().URL.Path, principal, ok)
			switch err {
			case nil:
				metrics.AuthzDecisionsTotal.WithLabelValues("allowed").Inc()
				return next(c)
			case domain.ErrUnauthenticated:
				metrics.AuthzDecisionsTotal.WithLabelValues("unauthenticated").Inc()
			case domain.ErrForbidden:
				metrics.AuthzDecisionsTotal.WithLabelValues("forbidden").Inc()
			}
			return err
		}
	}
}
