package auth

// Role is the closed set of account roles on the platform.
// Anything outside the set parses to RoleUnknown, and every consumer treats
// RoleUnknown as unauthenticated. It never grants access to anything.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleRecruiter Role = "recruiter"
	RoleCandidate Role = "candidate"

	// RoleUnknown doubles as "no role required" when used as a route requirement.
	RoleUnknown Role = ""
)

// ParseRole maps a raw role string onto the closed enum.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin, RoleRecruiter, RoleCandidate:
		return Role(s)
	}
	return RoleUnknown
}

// Known reports whether r is one of the three platform roles.
func (r Role) Known() bool {
	return r == RoleAdmin || r == RoleRecruiter || r == RoleCandidate
}

// Session identifies an authenticated user for the duration of a visit.
// It is created on login or restore, destroyed on logout, and read by every
// authorization decision. Consumers receive it by reference and never
// re-derive it themselves.
type Session struct {
	UserID      string `json:"id"`
	Role        Role   `json:"role"`
	DisplayName string `json:"name"`
	Email       string `json:"email"`
	CompanyName string `json:"company,omitempty"`
}
