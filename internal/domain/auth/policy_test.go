package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func principal(role Role) *Principal {
	return &Principal{ID: "u1", DisplayName: "Sarah Johnson", Email: "sarah.johnson@medcenter.com", Role: role}
}

func TestEvaluate_PendingWhileLoading(t *testing.T) {
	policy := NewPolicy(RoleDoctor)

	// Loading always wins, even with a resolved principal present.
	assert.Equal(t, DecisionPending, Evaluate(State{Loading: true}, policy))
	assert.Equal(t, DecisionPending, Evaluate(State{Loading: true, Principal: principal(RoleDoctor)}, policy))
}

func TestEvaluate_DenyWithoutPrincipal(t *testing.T) {
	policies := []Policy{
		NewPolicy(RoleAdmin),
		NewPolicy(RoleAdmin, RoleDoctor, RoleNurse, RoleReceptionist, RolePatient),
	}
	for _, p := range policies {
		assert.Equal(t, DecisionDeny, Evaluate(State{}, p))
	}
}

func TestEvaluate_AllowForMemberRole(t *testing.T) {
	// Profile {id: u1, full_name: Sarah Johnson, role: doctor} through a
	// guard allowing doctors.
	state := State{Principal: principal(ParseRole("doctor"))}
	assert.Equal(t, DecisionAllow, Evaluate(state, NewPolicy(RoleDoctor)))
	assert.Equal(t, DecisionAllow, Evaluate(state, NewPolicy(RoleAdmin, RoleDoctor, RoleNurse)))
}

func TestEvaluate_DenyForNonMemberRole(t *testing.T) {
	state := State{Principal: principal(RoleDoctor)}
	assert.Equal(t, DecisionDeny, Evaluate(state, NewPolicy(RoleAdmin, RoleNurse, RoleReceptionist)))
}

func TestEvaluate_EmptyPolicyAlwaysDenies(t *testing.T) {
	// An empty allowed-role set is a route configuration error.
	assert.Equal(t, DecisionDeny, Evaluate(State{Principal: principal(RoleAdmin)}, Policy{}))
	assert.Equal(t, DecisionDeny, Evaluate(State{Principal: principal(RoleAdmin)}, nil))
}

func TestEvaluate_UnknownRoleDeniedEverywhere(t *testing.T) {
	state := State{Principal: principal(ParseRole("surgeon"))}
	assert.Equal(t, DecisionDeny, Evaluate(state, NewPolicy(RoleAdmin, RoleDoctor, RoleNurse, RoleReceptionist, RolePatient)))
}

func TestEvaluate_Pure(t *testing.T) {
	state := State{Principal: principal(RoleNurse)}
	policy := NewPolicy(RoleNurse)
	first := Evaluate(state, policy)
	for range 10 {
		assert.Equal(t, first, Evaluate(state, policy))
	}
}

func TestPolicy_Allows(t *testing.T) {
	p := NewPolicy(RoleAdmin, RoleReceptionist)
	assert.True(t, p.Allows(RoleAdmin))
	assert.True(t, p.Allows(RoleReceptionist))
	assert.False(t, p.Allows(RoleDoctor))
	assert.False(t, p.Allows(RoleUnknown))
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "pending", DecisionPending.String())
	assert.Equal(t, "allow", DecisionAllow.String())
	assert.Equal(t, "deny", DecisionDeny.String())
}
