package logic

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/google/uuid"
	"github.com/privops/elevate/database"
	"github.com/privops/elevate/models"
	"golang.org/x/exp/slog"
)

// recordAudit - emits one structured audit log line and appends the record to
// every configured sink. High-privilege activations are logged at warning
// level for enhanced visibility; they are never blocked. Sink failures are
// logged and swallowed so auditing can never fail an elevation.
func recordAudit(ctx context.Context, rec models.AuditRecord, highPrivilege bool, sinks []AuditSink) {
	attrs := []interface{}{
		"principal", rec.PrincipalID,
		"role_id", rec.RoleID,
		"role_name", rec.RoleName,
		"duration_hours", rec.DurationHours,
		"ticket_number", rec.TicketNumber,
		"ticket_system", rec.TicketSystem,
		"justification_length", rec.JustificationLength,
		"scope", rec.Scope,
	}
	if highPrivilege {
		slog.Warn("high-privilege elevation submitted", attrs...)
	} else {
		slog.Info("elevation submitted", attrs...)
	}
	for _, sink := range sinks {
		if err := sink.Record(ctx, rec); err != nil {
			slog.Error("audit sink write failed", "error", err)
		}
	}
}

// databaseAuditSink - appends audit records to the server's audit table
type databaseAuditSink struct{}

func (s *databaseAuditSink) Record(ctx context.Context, rec models.AuditRecord) error {
	value, err := json.Marshal(&rec)
	if err != nil {
		return err
	}
	return database.Insert(uuid.NewString(), string(value), database.AUDIT_TABLE_NAME)
}

// FetchAuditRecords - reads the persisted audit trail, newest first. Records
// that no longer parse are skipped rather than failing the whole read.
func FetchAuditRecords() ([]models.AuditRecord, error) {
	collection, err := database.FetchRecords(database.AUDIT_TABLE_NAME)
	if err != nil {
		if database.IsEmptyRecord(err) {
			return []models.AuditRecord{}, nil
		}
		return nil, err
	}
	records := make([]models.AuditRecord, 0, len(collection))
	for key, value := range collection {
		var rec models.AuditRecord
		if err := json.Unmarshal([]byte(value), &rec); err != nil {
			slog.Warn("skipping unreadable audit record", "key", key, "error", err)
			continue
		}
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})
	return records, nil
}
