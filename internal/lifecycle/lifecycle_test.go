package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recruiteryu/platform/internal/auth"
)

func pendingApp() Record {
	return Record{
		ID:          "a1",
		JobID:       "j1",
		CandidateID: "c1",
		RecruiterID: "r1",
		Status:      StatusPending,
	}
}

func owner() Actor {
	return Actor{ID: "r1", Role: auth.RoleRecruiter}
}

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		name   string
		from   Status
		to     Status
		wantOK bool
	}{
		{"pending to approved", StatusPending, StatusApproved, true},
		{"pending to rejected", StatusPending, StatusRejected, true},
		{"pending to hired skips approval", StatusPending, StatusHired, false},
		{"approved to hired", StatusApproved, StatusHired, true},
		{"approved to rejected", StatusApproved, StatusRejected, false},
		{"approved back to pending", StatusApproved, StatusPending, false},
		{"pending to pending", StatusPending, StatusPending, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := pendingApp()
			rec.Status = tc.from
			updated, err := Transition(rec, owner(), tc.to)
			if tc.wantOK {
				require.NoError(t, err)
				assert.Equal(t, tc.to, updated.Status)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}

func TestTerminalStatesRejectEveryActor(t *testing.T) {
	actors := []Actor{
		{ID: "r1", Role: auth.RoleRecruiter},
		{ID: "r2", Role: auth.RoleRecruiter},
		{ID: "c1", Role: auth.RoleCandidate},
		{ID: "admin", Role: auth.RoleAdmin},
	}
	for _, from := range []Status{StatusRejected, StatusHired} {
		for _, actor := range actors {
			for _, to := range []Status{StatusPending, StatusApproved, StatusRejected, StatusHired} {
				rec := pendingApp()
				rec.Status = from
				_, err := Transition(rec, actor, to)
				assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s by %s", from, to, actor.Role)
			}
		}
	}
}

func TestTransitionAuthority(t *testing.T) {
	rec := pendingApp()

	// A recruiter who doesn't own the job has no say.
	_, err := Transition(rec, Actor{ID: "r2", Role: auth.RoleRecruiter}, StatusApproved)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	// Neither does the candidate, nor an admin.
	_, err = Transition(rec, Actor{ID: "c1", Role: auth.RoleCandidate}, StatusApproved)
	assert.ErrorIs(t, err, ErrNotAuthorized)
	_, err = Transition(rec, Actor{ID: "a1", Role: auth.RoleAdmin}, StatusApproved)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestTransitionIsIdempotentRejecting(t *testing.T) {
	rec := pendingApp()

	updated, err := Transition(rec, owner(), StatusApproved)
	require.NoError(t, err)

	// The same call again must fail: approved has no approved edge.
	_, err = Transition(updated, owner(), StatusApproved)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRecruiterFlowScenario(t *testing.T) {
	// pending -> approved -> (rejected refused) -> hired
	rec := pendingApp()

	rec, err := Transition(rec, owner(), StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, rec.Status)

	_, err = Transition(rec, owner(), StatusRejected)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusApproved, rec.Status)

	rec, err = Transition(rec, owner(), StatusHired)
	require.NoError(t, err)
	assert.Equal(t, StatusHired, rec.Status)
}

func TestWithdraw(t *testing.T) {
	me := Actor{ID: "c1", Role: auth.RoleCandidate}

	// Pending applications may be withdrawn by their owner.
	assert.NoError(t, Withdraw(pendingApp(), me))

	// Someone else's application may not.
	assert.ErrorIs(t, Withdraw(pendingApp(), Actor{ID: "c2", Role: auth.RoleCandidate}), ErrNotAuthorized)
	assert.ErrorIs(t, Withdraw(pendingApp(), owner()), ErrNotAuthorized)

	// Once decided, withdrawal is off the table even for the owner.
	for _, status := range []Status{StatusApproved, StatusRejected, StatusHired} {
		rec := pendingApp()
		rec.Status = status
		assert.ErrorIs(t, Withdraw(rec, me), ErrInvalidTransition, "status=%s", status)
	}
}

func TestParseStatus(t *testing.T) {
	assert.Equal(t, StatusPending, ParseStatus("pending"))
	assert.Equal(t, Status(""), ParseStatus("shortlisted"))
	assert.True(t, StatusHired.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusApproved.Terminal())
}
