package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
)

func userPrincipal(role string) Principal {
	return Principal{Email: "someone@example.com", Authorities: []string{role}}
}

func TestRuleTable_PermitAllAllowsAnonymous(t *testing.T) {
	table := NewRuleTable(
		Rule{Method: "GET", Pattern: "/api/crops/**", Require: PermitAll()},
	)

	if err := table.Decide(http.MethodGet, "/api/crops/abc", Principal{}, false); err != nil {
		t.Fatalf("expected allow, got %v", err)
	}
}

func TestRuleTable_FirstMatchWins(t *testing.T) {
	// the broad permit rule is declared first; the stricter rule for the
	// same paths never fires
	table := NewRuleTable(
		Rule{Method: "GET", Pattern: "/api/recipes/**", Require: PermitAll()},
		Rule{Method: "GET", Pattern: "/api/recipes/secret", Require: HasAnyRole(domain.RoleAdmin)},
	)

	if err := table.Decide(http.MethodGet, "/api/recipes/secret", Principal{}, false); err != nil {
		t.Fatalf("expected the earlier permit rule to win, got %v", err)
	}
}

func TestRuleTable_DeclarationOrderFlipsOutcome(t *testing.T) {
	table := NewRuleTable(
		Rule{Method: "GET", Pattern: "/api/recipes/secret", Require: HasAnyRole(domain.RoleAdmin)},
		Rule{Method: "GET", Pattern: "/api/recipes/**", Require: PermitAll()},
	)

	if err := table.Decide(http.MethodGet, "/api/recipes/secret", Principal{}, false); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if err := table.Decide(http.MethodGet, "/api/recipes/other", Principal{}, false); err != nil {
		t.Fatalf("expected allow for the broad rule, got %v", err)
	}
}

func TestRuleTable_AnonymousVsWrongRole(t *testing.T) {
	table := NewRuleTable(
		Rule{Method: "POST", Pattern: "/api/crops/**", Require: HasAnyRole(domain.RoleAdmin)},
	)

	if err := table.Decide(http.MethodPost, "/api/crops", Principal{}, false); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("anonymous: expected ErrUnauthenticated, got %v", err)
	}
	if err := table.Decide(http.MethodPost, "/api/crops", userPrincipal(domain.RoleUser), true); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("wrong role: expected ErrForbidden, got %v", err)
	}
	if err := table.Decide(http.MethodPost, "/api/crops", userPrincipal(domain.RoleAdmin), true); err != nil {
		t.Fatalf("admin: expected allow, got %v", err)
	}
}

func TestRuleTable_NoMatchFailsClosed(t *testing.T) {
	table := NewRuleTable(
		Rule{Method: "GET", Pattern: "/api/crops/**", Require: PermitAll()},
	)

	if err := table.Decide(http.MethodGet, "/api/unlisted", Principal{}, false); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected fail-closed ErrUnauthenticated, got %v", err)
	}
	if err := table.Decide(http.MethodGet, "/api/unlisted", userPrincipal(domain.RoleUser), true); err != nil {
		t.Fatalf("authenticated principal should pass the default, got %v", err)
	}
}

func TestRuleTable_MethodAnyMatchesEveryMethod(t *testing.T) {
	table := NewRuleTable(
		Rule{Method: MethodAny, Pattern: "/api/auth/**", Require: PermitAll()},
	)

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
		if err := table.Decide(method, "/api/auth/login", Principal{}, false); err != nil {
			t.Fatalf("%s: expected allow, got %v", method, err)
		}
	}
}

func TestRuleTable_PatternSegments(t *testing.T) {
	table := NewRuleTable(
		Rule{Method: "GET", Pattern: "/api/users/*/favorite-crops/**", Require: HasAnyRole(domain.RoleUser)},
	)
	p := userPrincipal(domain.RoleUser)

	// single `*` spans exactly one segment
	if err := table.Decide(http.MethodGet, "/api/users/u1/favorite-crops", p, true); err != nil {
		t.Fatalf("expected match with one user segment, got %v", err)
	}
	if err := table.Decide(http.MethodGet, "/api/users/u1/favorite-crops/c9", p, true); err != nil {
		t.Fatalf("expected match with trailing segment, got %v", err)
	}
	// a path with extra segments before favorite-crops falls through to
	// the fail-closed default, which still admits an authenticated user
	if err := table.Decide(http.MethodGet, "/api/users/a/b/favorite-crops", Principal{}, false); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected default to apply, got %v", err)
	}
}

func TestRuleTable_TrailingDoubleStarMatchesBarePath(t *testing.T) {
	table := NewRuleTable(
		Rule{Method: "GET", Pattern: "/api/crops/**", Require: PermitAll()},
	)

	if err := table.Decide(http.MethodGet, "/api/crops", Principal{}, false); err != nil {
		t.Fatalf("expected /api/crops to match /api/crops/**, got %v", err)
	}
}

func TestRuleTable_EnforceReturnsDomainErrors(t *testing.T) {
	table := NewRuleTable(
		Rule{Method: "DELETE", Pattern: "/api/crops/**", Require: HasAnyRole(domain.RoleAdmin)},
	)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/crops/c1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := table.Enforce()(func(c echo.Context) error {
		called = true
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if called {
		t.Fatalf("next handler ran despite a deny")
	}
}

func TestRuleTable_EnforceAllowsMatchingPrincipal(t *testing.T) {
	table := NewRuleTable(
		Rule{Method: "DELETE", Pattern: "/api/crops/**", Require: HasAnyRole(domain.RoleAdmin)},
	)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/crops/c1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(principalEmailKey, "admin@example.com")
	c.Set(principalRoleKey, domain.RoleAdmin)

	called := false
	handler := table.Enforce()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusNoContent)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestNewRuleTable_PanicsOnInvalidPattern(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for invalid pattern")
		}
	}()
	NewRuleTable(Rule{Method: "GET", Pattern: "/api/[", Require: PermitAll()})
}
