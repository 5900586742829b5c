package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/campuscompass/guidance-system/internal/core/domain"
)

func TestProfileHandler_Get_OK(t *testing.T) {
	account := testAccount()
	account.LearningPath = []domain.LearningPathEntry{
		{Topic: "T3", Status: domain.PathNotStarted, AddedAt: time.Now().UTC()},
		{Topic: "T1", Status: domain.PathCompleted, AddedAt: time.Now().UTC().Add(-time.Hour)},
	}
	h := NewProfileHandler(&stubAccountService{profile: account})

	c, rec := newJSONContext(http.MethodGet, "/profile", "")
	c.Set("account_id", "acct-1")
	if err := h.Get(c); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp profileResponse
	decodeBody(t, rec, &resp)
	if resp.ID != "acct-1" {
		t.Fatalf("unexpected profile: %+v", resp)
	}
	if len(resp.LearningPath) != 2 || resp.LearningPath[0].Topic != "T3" {
		t.Fatalf("learning path order must be preserved: %+v", resp.LearningPath)
	}
}

func TestProfileHandler_Get_NoClaims(t *testing.T) {
	h := NewProfileHandler(&stubAccountService{})

	c, rec := newJSONContext(http.MethodGet, "/profile", "")
	if err := h.Get(c); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestProfileHandler_Get_NotFound(t *testing.T) {
	h := NewProfileHandler(&stubAccountService{profileErr: domain.ErrAccountNotFound})

	c, rec := newJSONContext(http.MethodGet, "/profile", "")
	c.Set("account_id", "acct-gone")
	if err := h.Get(c); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestProfileHandler_Update_OK(t *testing.T) {
	svc := &stubAccountService{updated: testAccount()}
	h := NewProfileHandler(svc)

	c, rec := newJSONContext(http.MethodPut, "/profile", `{
		"year": "2nd",
		"learning_path": [{"topic": "T3"}, {"topic": "T4", "status": "in-progress"}]
	}`)
	c.Set("account_id", "acct-1")
	if err := h.Update(c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if svc.updateIn.Year == nil || *svc.updateIn.Year != "2nd" {
		t.Fatalf("expected year forwarded, got %+v", svc.updateIn.Year)
	}
	if svc.updateIn.Experience != nil {
		t.Fatalf("absent field must stay nil")
	}
	if len(svc.updateIn.LearningPath) != 2 || svc.updateIn.LearningPath[1].Status != "in-progress" {
		t.Fatalf("unexpected entries: %+v", svc.updateIn.LearningPath)
	}
}

func TestProfileHandler_Update_Validation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad year", `{"year": "9th"}`},
		{"bad status", `{"learning_path": [{"topic": "T", "status": "done"}]}`},
		{"entry without topic", `{"learning_path": [{"status": "completed"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewProfileHandler(&stubAccountService{})
			c, rec := newJSONContext(http.MethodPut, "/profile", tc.body)
			c.Set("account_id", "acct-1")
			if err := h.Update(c); err != nil {
				t.Fatalf("Update: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestProfileHandler_Update_NoClaims(t *testing.T) {
	h := NewProfileHandler(&stubAccountService{})

	c, rec := newJSONContext(http.MethodPut, "/profile", `{"year": "2nd"}`)
	if err := h.Update(c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestProfileHandler_Rate_OK(t *testing.T) {
	svc := &stubAccountService{}
	h := NewProfileHandler(svc)

	c, rec := newJSONContext(http.MethodPost, "/rate", `{"resource_id": "r1", "rating": 4}`)
	c.Set("account_id", "acct-1")
	if err := h.Rate(c); err != nil {
		t.Fatalf("Rate: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.ratedAccount != "acct-1" || svc.ratedID != "r1" || svc.ratedValue != 4 {
		t.Fatalf("unexpected rate call: %s %s %d", svc.ratedAccount, svc.ratedID, svc.ratedValue)
	}
}

func TestProfileHandler_Rate_Validation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing resource", `{"rating": 3}`},
		{"rating too low", `{"resource_id": "r1", "rating": 0}`},
		{"rating too high", `{"resource_id": "r1", "rating": 6}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewProfileHandler(&stubAccountService{})
			c, rec := newJSONContext(http.MethodPost, "/rate", tc.body)
			c.Set("account_id", "acct-1")
			if err := h.Rate(c); err != nil {
				t.Fatalf("Rate: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestProfileHandler_Rate_UnknownResource(t *testing.T) {
	h := NewProfileHandler(&stubAccountService{rateErr: domain.ErrResourceNotFound})

	c, rec := newJSONContext(http.MethodPost, "/rate", `{"resource_id": "not.in.catalog", "rating": 4}`)
	c.Set("account_id", "acct-1")
	if err := h.Rate(c); err != nil {
		t.Fatalf("Rate: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var resp errorResponse
	decodeBody(t, rec, &resp)
	if resp.Error != "resource not found" {
		t.Fatalf("unexpected error body: %q", resp.Error)
	}
}

func TestProfileHandler_Rate_UnknownAccount(t *testing.T) {
	h := NewProfileHandler(&stubAccountService{rateErr: domain.ErrAccountNotFound})

	c, rec := newJSONContext(http.MethodPost, "/rate", `{"resource_id": "r1", "rating": 4}`)
	c.Set("account_id", "acct-gone")
	if err := h.Rate(c); err != nil {
		t.Fatalf("Rate: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
