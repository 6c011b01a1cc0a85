package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
)

func render(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(err, c)

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, resp.Error
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrUnauthenticated, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrTokenInvalid, http.StatusUnauthorized},
		{domain.ErrEmailTaken, http.StatusConflict},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrCropNotFound, http.StatusNotFound},
		{domain.ErrRecipeNotFound, http.StatusNotFound},
		{domain.ErrIngredientNotFound, http.StatusNotFound},
		{domain.ErrCategoryNotFound, http.StatusNotFound},
		{domain.ErrCourseNotFound, http.StatusNotFound},
		{domain.ErrMeasurementNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		code, _ := render(t, tc.err)
		if code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
	}
}

func TestErrorHandler_WrappedErrorsStillMap(t *testing.T) {
	code, msg := render(t, fmt.Errorf("%w: expired", domain.ErrTokenInvalid))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrapped token error, got %d", code)
	}
	// the wrapped cause never reaches the client
	if msg != "invalid token" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	code, _ := render(t, echo.NewHTTPError(http.StatusNotFound, "route not found"))
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
}

func TestErrorHandler_UnknownErrorIsOpaque500(t *testing.T) {
	code, msg := render(t, fmt.Errorf("mongo: socket closed"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal details leaked: %q", msg)
	}
}
