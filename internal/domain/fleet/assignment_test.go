package fleet

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssignment(t *testing.T) *DriverAssignment {
	t.Helper()
	a, err := NewDriverAssignment(uuid.New(), uuid.New(), time.Now(), "Roadshow day 1")
	require.NoError(t, err)
	return a
}

func TestNewDriverAssignment(t *testing.T) {
	a := newTestAssignment(t)
	assert.Equal(t, AssignmentStatusAssigned, a.Status)
	assert.Equal(t, ApprovalStatusPending, a.ApprovalStatus)

	_, err := NewDriverAssignment(uuid.Nil, uuid.New(), time.Now(), "")
	assert.Error(t, err)
}

func TestAssignmentApprovalFlow(t *testing.T) {
	t.Run("approve records timestamp", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.Approve())
		assert.Equal(t, ApprovalStatusApproved, a.ApprovalStatus)
		assert.NotNil(t, a.ApprovedAt)
	})

	t.Run("reject requires reason and cancels work", func(t *testing.T) {
		a := newTestAssignment(t)
		assert.Error(t, a.Reject("  "))
		require.NoError(t, a.Reject("vehicle unavailable"))
		assert.Equal(t, ApprovalStatusRejected, a.ApprovalStatus)
		assert.Equal(t, AssignmentStatusCancelled, a.Status)
		assert.NotNil(t, a.RejectedAt)
	})

	t.Run("cannot approve twice", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.Approve())
		assert.Error(t, a.Approve())
		assert.Error(t, a.Reject("too late"))
	})
}

func TestAssignmentWorkFlow(t *testing.T) {
	t.Run("unapproved assignment cannot start", func(t *testing.T) {
		a := newTestAssignment(t)
		assert.Error(t, a.Start())
	})

	t.Run("approved assignment runs to completion", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.Approve())
		require.NoError(t, a.Start())
		assert.NotNil(t, a.ActualStart)
		require.NoError(t, a.Complete())
		assert.Equal(t, AssignmentStatusCompleted, a.Status)
		assert.NotNil(t, a.ActualEnd)
	})

	t.Run("completed assignment cannot be cancelled", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.Approve())
		require.NoError(t, a.Start())
		require.NoError(t, a.Complete())
		assert.Error(t, a.Cancel())
	})

	t.Run("cancel from assigned state", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.Cancel())
		assert.Equal(t, AssignmentStatusCancelled, a.Status)
	})
}
