package logic

import (
	"context"
	"testing"
	"time"

	"github.com/privops/elevate/models"
	"github.com/stretchr/testify/assert"
)

func TestDisabledEngine(t *testing.T) {
	engine := NewEngine(EngineConfig{Enabled: false})
	ctx := context.Background()

	t.Run("Constructed_When_Feature_Off", func(t *testing.T) {
		_, ok := engine.(*disabledEngine)
		assert.True(t, ok)
	})
	t.Run("Constructed_When_No_Directory_Wired", func(t *testing.T) {
		e := NewEngine(EngineConfig{Enabled: true})
		_, ok := e.(*disabledEngine)
		assert.True(t, ok)
	})
	t.Run("Activate_Returns_Fixed_Failure", func(t *testing.T) {
		result := engine.Activate(ctx, validRequest())
		assert.Equal(t, models.StatusFailed, result.Status)
		assert.Equal(t, ErrElevationDisabled.Error(), result.ErrorMessage)
	})
	t.Run("GetActivationStatus_Returns_Fixed_Failure", func(t *testing.T) {
		result := engine.GetActivationStatus(ctx, "req-1")
		assert.Equal(t, models.StatusFailed, result.Status)
		assert.Equal(t, ErrElevationDisabled.Error(), result.ErrorMessage)
	})
	t.Run("Extend_Returns_Fixed_Failure", func(t *testing.T) {
		result := engine.Extend(ctx, validRequest())
		assert.Equal(t, models.StatusFailed, result.Status)
		assert.Equal(t, ErrElevationDisabled.Error(), result.ErrorMessage)
	})
	t.Run("Deactivate_Returns_Disabled_Error", func(t *testing.T) {
		ok, err := engine.Deactivate(ctx, "P1", "R1", "S1")
		assert.False(t, ok)
		assert.Equal(t, ErrElevationDisabled, err)
	})
	t.Run("DecideApproval_Returns_Disabled_Error", func(t *testing.T) {
		ok, err := engine.DecideApproval(ctx, models.ApprovalDecision{RequestID: "req-1", ActorID: "A1", Approve: true})
		assert.False(t, ok)
		assert.Equal(t, ErrElevationDisabled, err)
	})
	t.Run("List_Operations_Return_Empty_Without_Error", func(t *testing.T) {
		roles, err := engine.EligibleRoles(ctx, "P1", "S1")
		assert.Nil(t, err)
		assert.Empty(t, roles)

		grants, err := engine.ActiveGrants(ctx, "P1")
		assert.Nil(t, err)
		assert.Empty(t, grants)

		pending, err := engine.ListPendingApprovals(ctx, "A1")
		assert.Nil(t, err)
		assert.Empty(t, pending)

		history, err := engine.ActivationHistory(ctx, "P1", time.Time{}, time.Time{})
		assert.Nil(t, err)
		assert.Empty(t, history)
	})
	t.Run("RequestNetworkAccess_Returns_Fixed_Failure", func(t *testing.T) {
		result := engine.RequestNetworkAccess(ctx, validNetworkRequest())
		assert.Equal(t, models.StatusFailed, result.Status)
		assert.Equal(t, ErrElevationDisabled.Error(), result.ErrorMessage)
	})
}
