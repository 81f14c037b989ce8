package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorizeWaitsWhileLoading(t *testing.T) {
	// Even with a role requirement, a loading session must not redirect.
	d := Authorize(nil, true, RoleAdmin)
	assert.Equal(t, DecisionWait, d.Kind)
}

func TestAuthorizeNoSessionRedirectsToLogin(t *testing.T) {
	for _, required := range []Role{RoleUnknown, RoleAdmin, RoleRecruiter, RoleCandidate} {
		d := Authorize(nil, false, required)
		assert.Equal(t, DecisionRedirectToLogin, d.Kind, "required=%q", required)
		assert.Equal(t, LoginRoute, d.Target)
	}
}

func TestAuthorizeRoleMismatchRedirectsHome(t *testing.T) {
	cases := []struct {
		role     Role
		required Role
		home     string
	}{
		{RoleAdmin, RoleRecruiter, "/admin/dashboard"},
		{RoleAdmin, RoleCandidate, "/admin/dashboard"},
		{RoleRecruiter, RoleAdmin, "/recruiter/dashboard"},
		{RoleRecruiter, RoleCandidate, "/recruiter/dashboard"},
		{RoleCandidate, RoleAdmin, "/candidate/dashboard"},
		{RoleCandidate, RoleRecruiter, "/candidate/dashboard"},
	}
	for _, tc := range cases {
		session := &Session{UserID: "u1", Role: tc.role}
		d := Authorize(session, false, tc.required)
		assert.Equal(t, DecisionRedirectToDashboard, d.Kind, "%s -> %s", tc.role, tc.required)
		assert.Equal(t, tc.home, d.Target)
	}
}

func TestAuthorizeMatchingRoleAllows(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleRecruiter, RoleCandidate} {
		session := &Session{UserID: "u1", Role: role}
		assert.Equal(t, DecisionAllow, Authorize(session, false, role).Kind)
	}
}

func TestAuthorizePublicRouteAllowsAnySession(t *testing.T) {
	session := &Session{UserID: "u1", Role: RoleCandidate}
	assert.Equal(t, DecisionAllow, Authorize(session, false, RoleUnknown).Kind)
}

func TestAuthorizeUnknownRoleNeverAllowed(t *testing.T) {
	// A role outside the closed set is treated as unauthenticated on gated
	// routes, never granted access.
	session := &Session{UserID: "u1", Role: Role("superuser")}
	d := Authorize(session, false, RoleAdmin)
	assert.Equal(t, DecisionRedirectToLogin, d.Kind)
	assert.Equal(t, LoginRoute, d.Target)
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleRecruiter, ParseRole("recruiter"))
	assert.Equal(t, RoleCandidate, ParseRole("candidate"))
	assert.Equal(t, RoleUnknown, ParseRole("root"))
	assert.Equal(t, RoleUnknown, ParseRole(""))
	assert.False(t, RoleUnknown.Known())
}
