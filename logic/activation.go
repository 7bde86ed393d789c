package logic

import (
	"context"

	"github.com/privops/elevate/models"
	"golang.org/x/exp/slog"
)

const extensionPrefix = "Extension: "

// Activate - validates and submits a role activation request. Policy
// rejections and collaborator faults are both reported through the result;
// a rejected request never contacts the directory.
func (e *elevationEngine) Activate(ctx context.Context, req models.ActivationRequest) models.ActivationResult {
	if err := ValidateRequestShape(&req); err != nil {
		return failedActivation(req, "invalid activation request: "+err.Error())
	}
	if err := ValidateElevationRequest(req.Duration, req.Justification, req.TicketNumber, req.TicketSystem, e.cfg.RolePolicy); err != nil {
		slog.Info("activation rejected by policy",
			"principal", req.PrincipalID, "role", req.RoleID, "reason", err.Error())
		return failedActivation(req, err.Error())
	}

	roleName := e.resolveRoleName(ctx, req.RoleID)
	highPrivilege := IsHighPrivilegeRole(roleName, e.cfg.RolePolicy)

	startsAt := e.now()
	expiresAt := startsAt.Add(req.Duration)
	receipt, err := e.cfg.Directory.SubmitActivation(ctx, req, startsAt, expiresAt)
	if err != nil {
		slog.Error("directory rejected activation submission",
			"principal", req.PrincipalID, "role", req.RoleID, "error", err)
		return failedActivation(req, "activation submission failed: "+err.Error())
	}

	if !receipt.ExpiresAt.IsZero() {
		expiresAt = receipt.ExpiresAt
	}
	result := models.ActivationResult{
		RequestID:        receipt.RequestID,
		Status:           MapRequestStatus(receipt.Status),
		RoleID:           req.RoleID,
		RoleName:         roleName,
		Scope:            req.Scope,
		RequiresApproval: receipt.RequiresApproval,
		ExpiresAt:        expiresAt,
	}

	e.emitAudit(ctx, req, roleName, highPrivilege)
	e.publishEvent("submitted", receipt.RequestID, req.PrincipalID, req.RoleID, req.Scope)
	return result
}

// GetActivationStatus - re-queries the directory for a request's current
// state and maps it to the canonical vocabulary
func (e *elevationEngine) GetActivationStatus(ctx context.Context, requestID string) models.ActivationResult {
	if requestID == "" {
		return models.ActivationResult{Status: models.StatusFailed, ErrorMessage: "request id is required"}
	}
	externalStatus, err := e.cfg.Directory.GetRequestStatus(ctx, requestID)
	if err != nil {
		return models.ActivationResult{
			RequestID:    requestID,
			Status:       models.StatusFailed,
			ErrorMessage: "status lookup failed: " + err.Error(),
		}
	}
	return models.ActivationResult{RequestID: requestID, Status: MapRequestStatus(externalStatus)}
}

// Deactivate - asks the directory to end an active grant early
func (e *elevationEngine) Deactivate(ctx context.Context, principalID, roleID, scope string) (bool, error) {
	if principalID == "" || roleID == "" {
		return false, rejectPolicy("principal id and role id are required")
	}
	ok, err := e.cfg.Directory.SubmitDeactivation(ctx, principalID, roleID, scope)
	if err != nil {
		slog.Error("deactivation failed", "principal", principalID, "role", roleID, "error", err)
		return false, err
	}
	if ok {
		e.publishEvent("deactivated", "", principalID, roleID, scope)
	}
	return ok, nil
}

// Extend - models an extension as a fresh activation carrying the additional
// duration, so every extension passes through the same policy gates as a new
// request. The original justification is validated before the extension
// prefix is applied; the prefix must not let a too-short justification slip
// past the minimum-length check.
func (e *elevationEngine) Extend(ctx context.Context, req models.ActivationRequest) models.ActivationResult {
	if err := ValidateElevationRequest(req.Duration, req.Justification, req.TicketNumber, req.TicketSystem, e.cfg.RolePolicy); err != nil {
		return failedActivation(req, err.Error())
	}
	req.Justification = extensionPrefix + req.Justification
	return e.Activate(ctx, req)
}

// EligibleRoles - roles the principal may activate, straight from the directory
func (e *elevationEngine) EligibleRoles(ctx context.Context, principalID, scope string) ([]models.EligibleRole, error) {
	return e.cfg.Directory.ListEligibleRoles(ctx, principalID, scope)
}

// ActiveGrants - currently live grants for a principal. Grants whose expiry
// has passed are filtered out; an ActiveRoleGrant ceases to exist the instant
// its window closes.
func (e *elevationEngine) ActiveGrants(ctx context.Context, principalID string) ([]models.ActiveRoleGrant, error) {
	grants, err := e.cfg.Directory.ListActiveGrants(ctx, principalID)
	if err != nil {
		return nil, err
	}
	now := e.now()
	active := make([]models.ActiveRoleGrant, 0, len(grants))
	for _, grant := range grants {
		if !grant.IsActive(now) {
			continue
		}
		if grant.RoleName == "" {
			grant.RoleName = e.resolveRoleName(ctx, grant.RoleID)
		}
		active = append(active, grant)
	}
	return active, nil
}

// resolveRoleName - asks the directory for the role's display name, falling
// back to the locally known static table so a lookup failure never fails the
// surrounding request
func (e *elevationEngine) resolveRoleName(ctx context.Context, roleID string) string {
	definition, err := e.cfg.Directory.ResolveRoleName(ctx, roleID)
	if err == nil && definition.Name != "" {
		return definition.Name
	}
	if err != nil {
		slog.Debug("role name lookup failed, using static table", "role", roleID, "error", err)
	}
	return e.cfg.RoleNames.Lookup(roleID)
}

func (e *elevationEngine) emitAudit(ctx context.Context, req models.ActivationRequest, roleName string, highPrivilege bool) {
	if !e.cfg.AuditEnabled {
		return
	}
	rec := models.AuditRecord{
		Timestamp:           e.now(),
		PrincipalID:         req.PrincipalID,
		RoleID:              req.RoleID,
		RoleName:            roleName,
		DurationHours:       req.Duration.Hours(),
		TicketNumber:        orNone(req.TicketNumber),
		TicketSystem:        orNone(req.TicketSystem),
		JustificationLength: len(req.Justification),
		Scope:               req.Scope,
	}
	recordAudit(ctx, rec, highPrivilege, e.cfg.AuditSinks)
}

func failedActivation(req models.ActivationRequest, message string) models.ActivationResult {
	return models.ActivationResult{
		Status:       models.StatusFailed,
		RoleID:       req.RoleID,
		Scope:        req.Scope,
		ErrorMessage: message,
	}
}

func orNone(value string) string {
	if value == "" {
		return "none"
	}
	return value
}
