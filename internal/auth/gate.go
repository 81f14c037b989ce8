package auth

// DecisionKind is the outcome of an access gate check.
type DecisionKind int

const (
	// DecisionWait means the session is still loading. The caller must
	// re-evaluate once it resolves instead of redirecting away from a
	// destination that may turn out to be valid.
	DecisionWait DecisionKind = iota
	DecisionAllow
	DecisionRedirectToLogin
	DecisionRedirectToDashboard
)

// Decision is what the gate hands back. It carries no side effects: the
// caller performs the actual redirect using Target.
type Decision struct {
	Kind   DecisionKind
	Target string
}

// LoginRoute is where unauthenticated visitors land.
const LoginRoute = "/auth"

// DashboardRoute maps a role to its home route. Unknown roles fall back to
// the login route, never to an elevated destination.
func DashboardRoute(r Role) string {
	switch r {
	case RoleAdmin:
		return "/admin/dashboard"
	case RoleRecruiter:
		return "/recruiter/dashboard"
	case RoleCandidate:
		return "/candidate/dashboard"
	}
	return LoginRoute
}

// Authorize decides whether the current session may view a destination that
// requires requiredRole. Pass RoleUnknown for public destinations. The rules
// are evaluated in order:
//
//  1. session still loading        -> Wait
//  2. no session                   -> redirect to login
//  3. role mismatch on gated route -> redirect to the session's own dashboard
//     (an unrecognized role redirects to login instead)
//  4. otherwise                    -> Allow
//
// The decision is a pure function of the session and the requirement; it
// never consults application or job state.
func Authorize(session *Session, loading bool, requiredRole Role) Decision {
	if loading {
		return Decision{Kind: DecisionWait}
	}
	if session == nil {
		return Decision{Kind: DecisionRedirectToLogin, Target: LoginRoute}
	}
	if requiredRole != RoleUnknown && session.Role != requiredRole {
		if !session.Role.Known() {
			return Decision{Kind: DecisionRedirectToLogin, Target: LoginRoute}
		}
		return Decision{Kind: DecisionRedirectToDashboard, Target: DashboardRoute(session.Role)}
	}
	return Decision{Kind: DecisionAllow}
}
