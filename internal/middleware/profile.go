package middleware

import (
	"context"
	"net/http"
	"strings"

	"ministudio/internal/domain"
)

type profileContextKey struct{}

// ProfileKey locates the resolved user profile in a request context.
var ProfileKey = profileContextKey{}

// Profile resolves the caller identity from the X-User-* headers set by the
// upstream gateway. Authentication itself happens upstream; this middleware
// only translates trusted headers into a domain user. Requests without an
// X-User-Id run as an anonymous free-plan user.
func Profile(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := domain.User{
			ID:     strings.TrimSpace(r.Header.Get("X-User-Id")),
			Email:  strings.TrimSpace(r.Header.Get("X-User-Email")),
			Name:   strings.TrimSpace(r.Header.Get("X-User-Name")),
			Locale: LocaleFromContext(r.Context()),
			Role:   parseRole(r.Header.Get("X-User-Role")),
			Plan:   parsePlan(r.Header.Get("X-User-Plan")),
		}
		if user.ID == "" {
			user.ID = "anonymous"
			user.Role = domain.UserRoleUser
			user.Plan = domain.UserPlanFree
		}
		ctx := context.WithValue(r.Context(), ProfileKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the resolved profile, or the anonymous user when
// the middleware did not run.
func UserFromContext(ctx context.Context) domain.User {
	if u, ok := ctx.Value(ProfileKey).(domain.User); ok {
		return u
	}
	return domain.User{ID: "anonymous", Role: domain.UserRoleUser, Plan: domain.UserPlanFree}
}

func parseRole(s string) domain.UserRole {
	switch domain.UserRole(strings.ToLower(strings.TrimSpace(s))) {
	case domain.UserRoleFreelancer:
		return domain.UserRoleFreelancer
	case domain.UserRoleAdmin:
		return domain.UserRoleAdmin
	default:
		return domain.UserRoleUser
	}
}

func parsePlan(s string) domain.UserPlan {
	if domain.UserPlan(strings.ToLower(strings.TrimSpace(s))) == domain.UserPlanPro {
		return domain.UserPlanPro
	}
	return domain.UserPlanFree
}
