package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/royalrinse/carwash-booking/internal/httperr"
	"github.com/royalrinse/carwash-booking/internal/models"
)

func TestParseAction(t *testing.T) {
	for _, raw := range []string{"approve", "reject", "complete"} {
		action, err := ParseAction(raw)
		assert.NoError(t, err)
		assert.Equal(t, Action(raw), action)
	}

	_, err := ParseAction("archive")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeUnknownAction))

	_, err = ParseAction("")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeUnknownAction))
}

func TestNextStatus(t *testing.T) {
	tests := []struct {
		current Status
		action  Action
		want    Status
		ok      bool
	}{
		{StatusPending, ActionApprove, StatusApproved, true},
		{StatusPending, ActionReject, StatusRejected, true},
		{StatusApproved, ActionComplete, StatusCompleted, true},

		{StatusPending, ActionComplete, StatusPending, false},
		{StatusApproved, ActionApprove, StatusApproved, false},
		{StatusApproved, ActionReject, StatusApproved, false},
		{StatusRejected, ActionApprove, StatusRejected, false},
		{StatusRejected, ActionComplete, StatusRejected, false},
		{StatusCompleted, ActionApprove, StatusCompleted, false},
		{StatusCompleted, ActionComplete, StatusCompleted, false},
	}

	for _, tt := range tests {
		next, err := NextStatus(tt.current, tt.action)
		if tt.ok {
			assert.NoError(t, err, "%s + %s", tt.current, tt.action)
		} else {
			assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition), "%s + %s", tt.current, tt.action)
		}
		assert.Equal(t, tt.want, next, "%s + %s", tt.current, tt.action)
	}
}

func TestApplyApproveRecordsTechnician(t *testing.T) {
	b := &models.Booking{Status: string(StatusPending)}

	err := Apply(b, ActionApprove, "Sam")

	assert.NoError(t, err)
	assert.Equal(t, string(StatusApproved), b.Status)
	assert.Equal(t, "Sam", b.Technician)
}

func TestApplyApproveWithoutTechnician(t *testing.T) {
	b := &models.Booking{Status: string(StatusPending)}

	err := Apply(b, ActionApprove, "")

	assert.NoError(t, err)
	assert.Equal(t, string(StatusApproved), b.Status)
	assert.Empty(t, b.Technician)
}

func TestApplyRejectedStatusUnchangedOnBadAction(t *testing.T) {
	b := &models.Booking{Status: string(StatusRejected)}

	err := Apply(b, ActionComplete, "")

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
	assert.Equal(t, string(StatusRejected), b.Status)
}

func TestMarkPaid(t *testing.T) {
	b := &models.Booking{}

	assert.NoError(t, MarkPaid(b))
	assert.True(t, b.Paid)

	err := MarkPaid(b)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAlreadyPaid))
	assert.True(t, b.Paid)
}
