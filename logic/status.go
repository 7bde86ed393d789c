package logic

import (
	"strings"

	"github.com/privops/elevate/models"
)

// statusTable - maps the directory backend's status vocabulary (lowercased)
// to canonical statuses. Approved unions the backend's admin-approved and
// self-approved terminal states; Denied unions admin and policy denials.
// A new backend string is a one-line addition here.
var statusTable = map[string]models.RequestStatus{
	"submitted":           models.StatusSubmitted,
	"pendingevaluation":   models.StatusSubmitted,
	"pendingprovisioning": models.StatusSubmitted,
	"pendingscheduling":   models.StatusSubmitted,
	"scheduled":           models.StatusSubmitted,

	"pendingapproval":             models.StatusPendingApproval,
	"pendingadmindecision":        models.StatusPendingApproval,
	"pendingapprovalprovisioning": models.StatusPendingApproval,

	"approved":      models.StatusApproved,
	"adminapproved": models.StatusApproved,
	"selfapproved":  models.StatusApproved,
	"granted":       models.StatusApproved,

	"denied":       models.StatusDenied,
	"admindenied":  models.StatusDenied,
	"policydenied": models.StatusDenied,
	"selfdenied":   models.StatusDenied,

	"provisioned": models.StatusProvisioned,
	"active":      models.StatusProvisioned,
	"fulfilled":   models.StatusProvisioned,

	"failed":             models.StatusFailed,
	"provisioningfailed": models.StatusFailed,
	"timedout":           models.StatusFailed,
	"invalid":            models.StatusFailed,

	"canceled":  models.StatusCanceled,
	"cancelled": models.StatusCanceled,
	"withdrawn": models.StatusCanceled,

	"revoked":       models.StatusRevoked,
	"adminrevoked":  models.StatusRevoked,
	"deprovisioned": models.StatusRevoked,

	"expired": models.StatusExpired,
}

// MapRequestStatus - normalizes a backend status string to a canonical status.
// Case-insensitive and total: an unrecognized string degrades to Submitted so
// that unexpected backend vocabulary reads as "request is in flight" rather
// than breaking the caller.
func MapRequestStatus(externalStatus string) models.RequestStatus {
	if status, ok := statusTable[strings.ToLower(strings.TrimSpace(externalStatus))]; ok {
		return status
	}
	return models.StatusSubmitted
}
