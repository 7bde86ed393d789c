package logic

import (
	"context"
	"sort"
	"time"

	"github.com/privops/elevate/models"
)

// ActivationHistory - historical activation state for a principal within the
// bounding window, newest first. Pure read composition: fetch, map statuses,
// resolve role names with the same fallback the write path uses.
func (e *elevationEngine) ActivationHistory(ctx context.Context, principalID string, start, end time.Time) ([]models.ActivationResult, error) {
	if principalID == "" {
		return nil, rejectPolicy("principal id is required")
	}
	records, err := e.cfg.Directory.QueryHistory(ctx, principalID, start, end)
	if err != nil {
		return nil, err
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].SubmittedAt.After(records[j].SubmittedAt)
	})
	results := make([]models.ActivationResult, 0, len(records))
	for _, record := range records {
		results = append(results, models.ActivationResult{
			RequestID:        record.RequestID,
			Status:           MapRequestStatus(record.Status),
			RoleID:           record.RoleID,
			RoleName:         e.resolveRoleName(ctx, record.RoleID),
			Scope:            record.Scope,
			RequiresApproval: record.RequiresApproval,
			ExpiresAt:        record.ExpiresAt,
		})
	}
	return results, nil
}
