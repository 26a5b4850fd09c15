package domain

import "time"

// UserRole enumerates supported roles.
type UserRole string

const (
	UserRoleUser       UserRole = "user"
	UserRoleFreelancer UserRole = "freelancer"
	UserRoleAdmin      UserRole = "admin"
)

// UserPlan enumerates billing plans.
type UserPlan string

const (
	UserPlanFree UserPlan = "free"
	UserPlanPro  UserPlan = "pro"
)

// User represents the authenticated account resolved by the upstream gateway.
type User struct {
	ID        string
	Email     string
	Name      string
	Locale    string
	Role      UserRole
	Plan      UserPlan
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFree reports whether the user is on the free plan.
func (u User) IsFree() bool {
	return u.Plan == UserPlanFree
}

// CanGenerateMerchandise reports whether merchandise mockups are unlocked.
// Freelancers produce assets for clients, so the role unlocks merchandise
// even on the free plan.
func (u User) CanGenerateMerchandise() bool {
	return u.Plan == UserPlanPro || u.Role == UserRoleFreelancer || u.Role == UserRoleAdmin
}

// CanGenerateVideo reports whether video previews are unlocked.
func (u User) CanGenerateVideo() bool {
	return u.Plan == UserPlanPro || u.Role == UserRoleAdmin
}

// CanGenerateBrandKit reports whether full brand kits are unlocked.
func (u User) CanGenerateBrandKit() bool {
	return u.Plan == UserPlanPro || u.Role == UserRoleAdmin
}
