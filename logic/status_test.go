package logic

import (
	"testing"

	"github.com/privops/elevate/models"
	"github.com/stretchr/testify/assert"
)

func TestMapRequestStatus(t *testing.T) {
	t.Run("Known_Vocabulary", func(t *testing.T) {
		cases := map[string]models.RequestStatus{
			"Submitted":                   models.StatusSubmitted,
			"PendingEvaluation":           models.StatusSubmitted,
			"PendingProvisioning":         models.StatusSubmitted,
			"PendingApproval":             models.StatusPendingApproval,
			"PendingAdminDecision":        models.StatusPendingApproval,
			"PendingApprovalProvisioning": models.StatusPendingApproval,
			"AdminApproved":               models.StatusApproved,
			"SelfApproved":                models.StatusApproved,
			"Granted":                     models.StatusApproved,
			"AdminDenied":                 models.StatusDenied,
			"PolicyDenied":                models.StatusDenied,
			"Denied":                      models.StatusDenied,
			"Provisioned":                 models.StatusProvisioned,
			"Active":                      models.StatusProvisioned,
			"ProvisioningFailed":          models.StatusFailed,
			"TimedOut":                    models.StatusFailed,
			"Canceled":                    models.StatusCanceled,
			"Cancelled":                   models.StatusCanceled,
			"Withdrawn":                   models.StatusCanceled,
			"Revoked":                     models.StatusRevoked,
			"AdminRevoked":                models.StatusRevoked,
			"Expired":                     models.StatusExpired,
		}
		for external, expected := range cases {
			assert.Equal(t, expected, MapRequestStatus(external), "mapping of %q", external)
		}
	})
	t.Run("Case_Insensitive", func(t *testing.T) {
		assert.Equal(t, models.StatusProvisioned, MapRequestStatus("PROVISIONED"))
		assert.Equal(t, models.StatusPendingApproval, MapRequestStatus("pendingapproval"))
		assert.Equal(t, models.StatusDenied, MapRequestStatus("  Denied  "))
	})
	t.Run("Unrecognized_Defaults_To_Submitted", func(t *testing.T) {
		assert.Equal(t, models.StatusSubmitted, MapRequestStatus("SomeNewBackendState"))
		assert.Equal(t, models.StatusSubmitted, MapRequestStatus(""))
	})
}
