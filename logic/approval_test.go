package logic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/privops/elevate/directory"
	"github.com/privops/elevate/models"
	"github.com/stretchr/testify/assert"
)

func TestListPendingApprovals(t *testing.T) {
	t.Run("Maps_Directory_Records", func(t *testing.T) {
		submitted := testClock.Add(-30 * time.Minute)
		dir := &fakeDirectory{
			roleDefs: map[string]directory.RoleDefinition{"R1": {ID: "R1", Name: "Incident Responder"}},
			approvals: []directory.ApprovalRecord{
				{RequestID: "req-1", PrincipalID: "P2", RoleID: "R1", Scope: "S1",
					Justification: "Investigating incident INC-1234", Duration: 4 * time.Hour, SubmittedAt: submitted},
			},
		}
		engine := newTestEngine(dir, nil)
		pending, err := engine.ListPendingApprovals(context.Background(), "A1")
		assert.Nil(t, err)
		if assert.Len(t, pending, 1) {
			assert.Equal(t, "req-1", pending[0].RequestID)
			assert.Equal(t, "Incident Responder", pending[0].RoleName)
			assert.Equal(t, submitted, pending[0].SubmittedAt)
		}
	})
	t.Run("Empty_Queue_Returns_Empty_Slice", func(t *testing.T) {
		engine := newTestEngine(&fakeDirectory{}, nil)
		pending, err := engine.ListPendingApprovals(context.Background(), "A1")
		assert.Nil(t, err)
		assert.Empty(t, pending)
	})
	t.Run("Backend_Error_Is_Surfaced", func(t *testing.T) {
		dir := &fakeDirectory{approvalsErr: errors.New("queue unavailable")}
		engine := newTestEngine(dir, nil)
		_, err := engine.ListPendingApprovals(context.Background(), "A1")
		assert.NotNil(t, err)
	})
}

func TestDecideApproval(t *testing.T) {
	t.Run("Approve_Forwards_To_Backend", func(t *testing.T) {
		dir := &fakeDirectory{decisionOK: true}
		engine := newTestEngine(dir, nil)
		ok, err := engine.DecideApproval(context.Background(), models.ApprovalDecision{
			RequestID: "req-1", ActorID: "A1", Approve: true,
		})
		assert.Nil(t, err)
		assert.True(t, ok)
		assert.Equal(t, 1, dir.decisionCalls)
	})
	t.Run("Deny_With_Reason_Forwards_To_Backend", func(t *testing.T) {
		dir := &fakeDirectory{decisionOK: true}
		engine := newTestEngine(dir, nil)
		ok, err := engine.DecideApproval(context.Background(), models.ApprovalDecision{
			RequestID: "req-1", ActorID: "A1", Approve: false, Comment: "Ticket lacks change approval",
		})
		assert.Nil(t, err)
		assert.True(t, ok)
		assert.Equal(t, 1, dir.decisionCalls)
	})
	t.Run("Deny_Without_Reason_Never_Reaches_Backend", func(t *testing.T) {
		dir := &fakeDirectory{}
		engine := newTestEngine(dir, nil)
		ok, err := engine.DecideApproval(context.Background(), models.ApprovalDecision{
			RequestID: "req-1", ActorID: "A1", Approve: false,
		})
		assert.False(t, ok)
		if assert.NotNil(t, err) {
			assert.Contains(t, err.Error(), "a reason is required when denying a request")
		}
		assert.Equal(t, 0, dir.totalCalls)
	})
	t.Run("Whitespace_Reason_Does_Not_Count", func(t *testing.T) {
		dir := &fakeDirectory{}
		engine := newTestEngine(dir, nil)
		ok, err := engine.DecideApproval(context.Background(), models.ApprovalDecision{
			RequestID: "req-1", ActorID: "A1", Approve: false, Comment: "   ",
		})
		assert.False(t, ok)
		assert.NotNil(t, err)
		assert.Equal(t, 0, dir.totalCalls)
	})
	t.Run("Missing_Actor_Rejected_Locally", func(t *testing.T) {
		dir := &fakeDirectory{}
		engine := newTestEngine(dir, nil)
		ok, err := engine.DecideApproval(context.Background(), models.ApprovalDecision{
			RequestID: "req-1", Approve: true,
		})
		assert.False(t, ok)
		assert.NotNil(t, err)
		assert.Equal(t, 0, dir.totalCalls)
	})
	t.Run("Local_Rejection_Is_A_PolicyRejection", func(t *testing.T) {
		engine := newTestEngine(&fakeDirectory{}, nil)
		_, err := engine.DecideApproval(context.Background(), models.ApprovalDecision{
			RequestID: "req-1", ActorID: "A1", Approve: false,
		})
		var rejection *PolicyRejection
		assert.True(t, errors.As(err, &rejection))
	})
	t.Run("Backend_Authorization_Error_Is_Surfaced", func(t *testing.T) {
		dir := &fakeDirectory{decisionErr: errors.New("actor is not an eligible approver")}
		engine := newTestEngine(dir, nil)
		ok, err := engine.DecideApproval(context.Background(), models.ApprovalDecision{
			RequestID: "req-1", ActorID: "A1", Approve: true,
		})
		assert.False(t, ok)
		if assert.NotNil(t, err) {
			assert.Contains(t, err.Error(), "not an eligible approver")
		}
	})
}
