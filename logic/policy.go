package logic

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/privops/elevate/models"
)

// PolicyRejection - a local validation failure. It never reaches the
// directory backend and always carries a specific human-readable reason.
type PolicyRejection struct {
	Reason string
}

func (e *PolicyRejection) Error() string {
	return e.Reason
}

func rejectPolicy(format string, args ...interface{}) error {
	return &PolicyRejection{Reason: fmt.Sprintf(format, args...)}
}

var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("protocol", checkProtocol)
	return v
}

// checkProtocol - restricts port entries to the protocols a firewall window
// can express
func checkProtocol(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "tcp", "udp", "*":
		return true
	}
	return false
}

// ValidateRequestShape - fail-fast structural check for programmer errors
// (missing required fields, out-of-range ports). Runs before any policy gate
// or collaborator call.
func ValidateRequestShape(req interface{}) error {
	return requestValidator.Struct(req)
}

// ValidateElevationRequest - the policy gate shared by role activation and
// network access. Checks run in order and short-circuit on the first failure;
// each failure carries its own reportable reason.
func ValidateElevationRequest(duration time.Duration, justification, ticketNumber, ticketSystem string, policy models.ElevationPolicy) error {
	if policy.MaxDuration > 0 && duration > policy.MaxDuration {
		return rejectPolicy("requested duration exceeds maximum allowed (%s)", formatHours(policy.MaxDuration))
	}
	if policy.RequireTicketNumber && ticketNumber == "" {
		return rejectPolicy("a ticket number is required by policy")
	}
	if ticketSystem != "" && len(policy.ApprovedTicketSystems) > 0 && !containsFold(policy.ApprovedTicketSystems, ticketSystem) {
		return rejectPolicy("ticket system %q is not approved, approved systems: %s",
			ticketSystem, strings.Join(policy.ApprovedTicketSystems, ", "))
	}
	if len(strings.TrimSpace(justification)) < policy.MinJustificationLength {
		return rejectPolicy("justification too short, policy requires at least %d characters", policy.MinJustificationLength)
	}
	return nil
}

// IsHighPrivilegeRole - reports whether a resolved role name is flagged for
// enhanced audit visibility. A visibility concern, never a gate.
func IsHighPrivilegeRole(roleName string, policy models.ElevationPolicy) bool {
	return containsFold(policy.HighPrivilegeRoles, roleName)
}

func containsFold(list []string, value string) bool {
	for _, entry := range list {
		if strings.EqualFold(entry, value) {
			return true
		}
	}
	return false
}

// formatHours - renders a duration as whole or fractional hours for policy
// rejection messages
func formatHours(d time.Duration) string {
	hours := d.Hours()
	return strconv.FormatFloat(hours, 'f', -1, 64) + " hours"
}
