package auth

// Decision is the outcome of evaluating a policy against a session state.
type Decision int

const (
	// DecisionPending means a resolution is in flight: the caller must wait
	// (or render a neutral state), never treat it as allow or deny.
	DecisionPending Decision = iota
	DecisionAllow
	DecisionDeny
)

// String returns the decision name for logs.
func (d Decision) String() string {
	switch d {
	case DecisionPending:
		return "pending"
	case DecisionAllow:
		return "allow"
	case DecisionDeny:
		return "deny"
	default:
		return "unknown"
	}
}

// Policy is the set of roles allowed to reach a route subtree. Policies are
// fixed at route-registration time; an empty policy is a configuration error
// and always denies.
type Policy []Role

// NewPolicy builds a policy from the given roles.
func NewPolicy(roles ...Role) Policy { return Policy(roles) }

// Allows reports whether the role is a member of the policy.
func (p Policy) Allows(role Role) bool {
	for _, r := range p {
		if r == role {
			return true
		}
	}
	return false
}

// Evaluate decides whether the session state may reach a subtree guarded by
// the policy. It is total and pure: the same inputs always yield the same
// decision.
//
//   - Pending while the state is loading (no terminal decision during a
//     resolution).
//   - Deny when no principal is resolved, when the policy is empty, or when
//     the principal's role is not a member of the policy. RoleUnknown is never
//     a member of any policy, so unrecognized role strings fail closed here.
//   - Allow otherwise.
func Evaluate(state State, policy Policy) Decision {
	if state.Loading {
		return DecisionPending
	}
	if state.Principal == nil {
		return DecisionDeny
	}
	if len(policy) == 0 {
		return DecisionDeny
	}
	if !state.Principal.Role.Known() {
		return DecisionDeny
	}
	if !policy.Allows(state.Principal.Role) {
		return DecisionDeny
	}
	return DecisionAllow
}
