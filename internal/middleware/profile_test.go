package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ministudio/internal/domain"
)

func TestProfileFromHeaders(t *testing.T) {
	var got domain.User
	handler := Profile(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = UserFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/designs", nil)
	req.Header.Set("X-User-Id", "user-42")
	req.Header.Set("X-User-Email", "owner@example.com")
	req.Header.Set("X-User-Role", "Freelancer")
	req.Header.Set("X-User-Plan", "PRO")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got.ID != "user-42" || got.Email != "owner@example.com" {
		t.Fatalf("identity mismatch: %+v", got)
	}
	if got.Role != domain.UserRoleFreelancer {
		t.Fatalf("role = %s, want freelancer", got.Role)
	}
	if got.Plan != domain.UserPlanPro {
		t.Fatalf("plan = %s, want pro", got.Plan)
	}
}

func TestProfileAnonymousDefault(t *testing.T) {
	var got domain.User
	handler := Profile(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = UserFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/designs", nil)
	req.Header.Set("X-User-Plan", "pro") // ignored without an id
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got.ID != "anonymous" || got.Plan != domain.UserPlanFree || got.Role != domain.UserRoleUser {
		t.Fatalf("anonymous default mismatch: %+v", got)
	}
}

func TestUserFromContextWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	u := UserFromContext(req.Context())
	if u.ID != "anonymous" {
		t.Fatalf("fallback user = %+v", u)
	}
}
