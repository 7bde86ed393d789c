package logic

import (
	"context"
	"strings"

	"github.com/privops/elevate/models"
	"golang.org/x/exp/slog"
)

// ListPendingApprovals - requests waiting on this approver. Which requests an
// approver may act on is the directory's call; re-implementing approver
// eligibility here would drift from the backend's own policy metadata.
func (e *elevationEngine) ListPendingApprovals(ctx context.Context, approverID string) ([]models.PendingApproval, error) {
	records, err := e.cfg.Directory.ListPendingApprovals(ctx, approverID)
	if err != nil {
		return nil, err
	}
	pending := make([]models.PendingApproval, 0, len(records))
	for _, record := range records {
		pending = append(pending, models.PendingApproval{
			RequestID:     record.RequestID,
			PrincipalID:   record.PrincipalID,
			RoleID:        record.RoleID,
			RoleName:      e.resolveRoleName(ctx, record.RoleID),
			Scope:         record.Scope,
			Justification: record.Justification,
			Duration:      record.Duration,
			SubmittedAt:   record.SubmittedAt,
		})
	}
	return pending, nil
}

// DecideApproval - forwards an approve/deny decision to the directory. A
// denial requires a written reason; that much is checked locally before the
// backend is contacted. Whether the actor is authorized to decide is the
// directory's judgment and any such rejection is surfaced unchanged.
func (e *elevationEngine) DecideApproval(ctx context.Context, decision models.ApprovalDecision) (bool, error) {
	if err := ValidateRequestShape(&decision); err != nil {
		return false, rejectPolicy("invalid approval decision: %s", err.Error())
	}
	if !decision.Approve && strings.TrimSpace(decision.Comment) == "" {
		return false, rejectPolicy("a reason is required when denying a request")
	}
	ok, err := e.cfg.Directory.SubmitApprovalDecision(ctx, decision.RequestID, decision.Approve, decision.ActorID, decision.Comment)
	if err != nil {
		slog.Error("approval decision failed",
			"request", decision.RequestID, "actor", decision.ActorID, "error", err)
		return false, err
	}
	if ok {
		eventType := "approved"
		if !decision.Approve {
			eventType = "denied"
		}
		e.publishEvent(eventType, decision.RequestID, "", "", "")
	}
	return ok, nil
}
