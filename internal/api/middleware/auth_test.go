package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campuscompass/guidance-system/internal/core/service"
)

func newAuthRequest(t *testing.T, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func authStatus(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestAuth_ValidTokenSetsAccountID(t *testing.T) {
	tokens, err := service.NewTokenService("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	token, err := tokens.Issue("acct-42")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	c, _ := newAuthRequest(t, "Bearer "+token)
	called := false
	handler := Auth(tokens)(func(c echo.Context) error {
		called = true
		id, ok := AccountID(c)
		if !ok || id != "acct-42" {
			t.Fatalf("expected account_id acct-42, got %q (ok=%v)", id, ok)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !called {
		t.Fatalf("next handler was not invoked")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	tokens, _ := service.NewTokenService("test-secret", time.Hour)

	c, _ := newAuthRequest(t, "")
	err := Auth(tokens)(func(c echo.Context) error { return nil })(c)
	if got := authStatus(t, err); got != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", got)
	}
}

func TestAuth_BadScheme(t *testing.T) {
	tokens, _ := service.NewTokenService("test-secret", time.Hour)

	c, _ := newAuthRequest(t, "Basic abc123")
	err := Auth(tokens)(func(c echo.Context) error { return nil })(c)
	if got := authStatus(t, err); got != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", got)
	}
}

func TestAuth_TamperedToken(t *testing.T) {
	tokens, _ := service.NewTokenService("test-secret", time.Hour)
	token, _ := tokens.Issue("acct-42")

	// Flip the final signature character.
	last := token[len(token)-1]
	if last == 'A' {
		last = 'B'
	} else {
		last = 'A'
	}
	tampered := token[:len(token)-1] + string(last)

	c, _ := newAuthRequest(t, "Bearer "+tampered)
	err := Auth(tokens)(func(c echo.Context) error { return nil })(c)
	if got := authStatus(t, err); got != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", got)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	tokens, _ := service.NewTokenService("test-secret", time.Hour)

	// Same secret, a TTL short enough to wait out.
	short, _ := service.NewTokenService("test-secret", time.Millisecond)
	token, _ := short.Issue("acct-42")
	time.Sleep(5 * time.Millisecond)

	c, _ := newAuthRequest(t, "Bearer "+token)
	err := Auth(tokens)(func(c echo.Context) error { return nil })(c)
	if got := authStatus(t, err); got != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", got)
	}
}

func TestAccountID_Unset(t *testing.T) {
	c, _ := newAuthRequest(t, "")
	if _, ok := AccountID(c); ok {
		t.Fatalf("expected no account id on an unauthenticated context")
	}
}
