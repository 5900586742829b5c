package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campuscompass/guidance-system/internal/core/domain"
	"github.com/campuscompass/guidance-system/internal/core/ports"
)

// stubAccountService is a canned ports.AccountService for handler tests.
type stubAccountService struct {
	registerToken   string
	registerAccount *domain.Account
	registerErr     error
	registerIn      ports.RegisterInput

	loginToken   string
	loginAccount *domain.Account
	loginErr     error

	profile    *domain.Account
	profileErr error

	updated   *domain.Account
	updateErr error
	updateIn  ports.UpdateProfileInput

	rateErr      error
	ratedID      string
	ratedValue   int
	ratedAccount string
}

func (s *stubAccountService) Register(_ context.Context, in ports.RegisterInput) (string, *domain.Account, error) {
	s.registerIn = in
	if s.registerErr != nil {
		return "", nil, s.registerErr
	}
	return s.registerToken, s.registerAccount, nil
}

func (s *stubAccountService) Login(_ context.Context, email, password string) (string, *domain.Account, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return s.loginToken, s.loginAccount, nil
}

func (s *stubAccountService) GetProfile(_ context.Context, accountID string) (*domain.Account, error) {
	if s.profileErr != nil {
		return nil, s.profileErr
	}
	return s.profile, nil
}

func (s *stubAccountService) UpdateProfile(_ context.Context, accountID string, in ports.UpdateProfileInput) (*domain.Account, error) {
	s.updateIn = in
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return s.updated, nil
}

func (s *stubAccountService) RateResource(_ context.Context, accountID, resourceID string, rating int) error {
	s.ratedAccount = accountID
	s.ratedID = resourceID
	s.ratedValue = rating
	return s.rateErr
}

func testAccount() *domain.Account {
	return &domain.Account{
		ID:           "acct-1",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$secret",
		Year:         domain.Year1st,
		Experience:   domain.ExperienceBeginner,
		Languages:    []string{"python"},
		LearningPath: []domain.LearningPathEntry{},
		Ratings:      map[string]int{},
		CreatedAt:    time.Now().UTC(),
	}
}

// newJSONContext builds an echo context with the request validator wired the
// same way the router wires it.
func newJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestAuthHandler_Register_Created(t *testing.T) {
	svc := &stubAccountService{registerToken: "tok", registerAccount: testAccount()}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(http.MethodPost, "/register", `{
		"email": "a@x.com",
		"password": "secret1",
		"year": "1st",
		"languages": ["python", "go"]
	}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp authResponse
	decodeBody(t, rec, &resp)
	if resp.Token != "tok" {
		t.Fatalf("expected token in response, got %q", resp.Token)
	}
	if resp.Profile.Email != "a@x.com" {
		t.Fatalf("expected profile, got %+v", resp.Profile)
	}
	if len(svc.registerIn.Languages) != 2 {
		t.Fatalf("expected languages forwarded, got %v", svc.registerIn.Languages)
	}

	// The hash must not leak through any field of the payload.
	if strings.Contains(rec.Body.String(), "secret") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_CommaSeparatedLanguages(t *testing.T) {
	svc := &stubAccountService{registerToken: "tok", registerAccount: testAccount()}
	h := NewAuthHandler(svc)

	c, _ := newJSONContext(http.MethodPost, "/register", `{
		"email": "a@x.com",
		"password": "secret1",
		"year": "1st",
		"languages": "python,go"
	}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if len(svc.registerIn.Languages) != 2 || svc.registerIn.Languages[0] != "python" {
		t.Fatalf("expected split languages, got %v", svc.registerIn.Languages)
	}
}

func TestAuthHandler_Register_ValidationFailures(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing email", `{"password": "secret1", "year": "1st"}`},
		{"bad email", `{"email": "nope", "password": "secret1", "year": "1st"}`},
		{"short password", `{"email": "a@x.com", "password": "five5", "year": "1st"}`},
		{"missing year", `{"email": "a@x.com", "password": "secret1"}`},
		{"bad year", `{"email": "a@x.com", "password": "secret1", "year": "9th"}`},
		{"bad experience", `{"email": "a@x.com", "password": "secret1", "year": "1st", "coding_experience": "guru"}`},
		{"malformed json", `{`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewAuthHandler(&stubAccountService{})
			c, rec := newJSONContext(http.MethodPost, "/register", tc.body)
			if err := h.Register(c); err != nil {
				t.Fatalf("Register: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			var resp errorResponse
			decodeBody(t, rec, &resp)
			if resp.Error == "" {
				t.Fatalf("expected error message in body")
			}
		})
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	h := NewAuthHandler(&stubAccountService{registerErr: domain.ErrEmailTaken})

	c, rec := newJSONContext(http.MethodPost, "/register", `{
		"email": "a@x.com", "password": "secret1", "year": "1st"
	}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_OK(t *testing.T) {
	svc := &stubAccountService{loginToken: "tok", loginAccount: testAccount()}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(http.MethodPost, "/login", `{"email": "a@x.com", "password": "secret1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp authResponse
	decodeBody(t, rec, &resp)
	if resp.Token != "tok" || resp.Profile.ID != "acct-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Login_UnknownAndWrongPasswordLookAlike(t *testing.T) {
	// Both failure modes must produce an identical 401 body so a caller
	// cannot probe which emails are registered.
	bodies := make([]string, 0, 2)
	for _, loginErr := range []error{domain.ErrAccountNotFound, domain.ErrBadCredentials} {
		h := NewAuthHandler(&stubAccountService{loginErr: loginErr})
		c, rec := newJSONContext(http.MethodPost, "/login", `{"email": "a@x.com", "password": "nope"}`)
		if err := h.Login(c); err != nil {
			t.Fatalf("Login: %v", err)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %v, got %d", loginErr, rec.Code)
		}
		bodies = append(bodies, rec.Body.String())
	}
	if bodies[0] != bodies[1] {
		t.Fatalf("401 bodies differ: %q vs %q", bodies[0], bodies[1])
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAccountService{})

	c, rec := newJSONContext(http.MethodPost, "/login", `{"email": "a@x.com"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	h := NewAuthHandler(&stubAccountService{})

	c, rec := newJSONContext(http.MethodPost, "/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp successResponse
	decodeBody(t, rec, &resp)
	if !resp.Success {
		t.Fatalf("expected success true")
	}
}
