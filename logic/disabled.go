package logic

import (
	"context"
	"time"

	"github.com/privops/elevate/models"
	"golang.org/x/exp/slog"
)

// disabledEngine - returned when JIT elevation is administratively off.
// Every operation returns a fixed not-enabled failure, logs a warning, and
// never panics, so callers can hold the Engine interface unconditionally.
type disabledEngine struct{}

func (d *disabledEngine) warn(operation string) {
	slog.Warn("jit elevation operation called while feature is disabled", "operation", operation)
}

func (d *disabledEngine) Activate(ctx context.Context, req models.ActivationRequest) models.ActivationResult {
	d.warn("Activate")
	return failedActivation(req, ErrElevationDisabled.Error())
}

func (d *disabledEngine) GetActivationStatus(ctx context.Context, requestID string) models.ActivationResult {
	d.warn("GetActivationStatus")
	return models.ActivationResult{
		RequestID:    requestID,
		Status:       models.StatusFailed,
		ErrorMessage: ErrElevationDisabled.Error(),
	}
}

func (d *disabledEngine) Deactivate(ctx context.Context, principalID, roleID, scope string) (bool, error) {
	d.warn("Deactivate")
	return false, ErrElevationDisabled
}

func (d *disabledEngine) Extend(ctx context.Context, req models.ActivationRequest) models.ActivationResult {
	d.warn("Extend")
	return failedActivation(req, ErrElevationDisabled.Error())
}

func (d *disabledEngine) EligibleRoles(ctx context.Context, principalID, scope string) ([]models.EligibleRole, error) {
	d.warn("EligibleRoles")
	return []models.EligibleRole{}, nil
}

func (d *disabledEngine) ActiveGrants(ctx context.Context, principalID string) ([]models.ActiveRoleGrant, error) {
	d.warn("ActiveGrants")
	return []models.ActiveRoleGrant{}, nil
}

func (d *disabledEngine) ListPendingApprovals(ctx context.Context, approverID string) ([]models.PendingApproval, error) {
	d.warn("ListPendingApprovals")
	return []models.PendingApproval{}, nil
}

func (d *disabledEngine) DecideApproval(ctx context.Context, decision models.ApprovalDecision) (bool, error) {
	d.warn("DecideApproval")
	return false, ErrElevationDisabled
}

func (d *disabledEngine) RequestNetworkAccess(ctx context.Context, req models.JitNetworkAccessRequest) models.JitNetworkAccessResult {
	d.warn("RequestNetworkAccess")
	return failedNetworkAccess(req, ErrElevationDisabled.Error())
}

func (d *disabledEngine) ActivationHistory(ctx context.Context, principalID string, start, end time.Time) ([]models.ActivationResult, error) {
	d.warn("ActivationHistory")
	return []models.ActivationResult{}, nil
}
