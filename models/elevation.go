package models

import "time"

// EligibleRole - a (principal, role, scope) tuple the principal may activate.
// Snapshot of directory state; never mutated locally.
type EligibleRole struct {
	PrincipalID           string        `json:"principal_id"`
	RoleID                string        `json:"role_id"`
	RoleName              string        `json:"role_name,omitempty"`
	Scope                 string        `json:"scope"`
	EligibleFrom          time.Time     `json:"eligible_from,omitempty"`
	EligibleUntil         time.Time     `json:"eligible_until,omitempty"` // zero value means open-ended
	MaxActivation         time.Duration `json:"max_activation,omitempty"`
	RequiresApproval      bool          `json:"requires_approval"`
	RequiresJustification bool          `json:"requires_justification"`
}

// ActivationRequest - a caller's request to activate an eligible role.
// Immutable once submitted.
type ActivationRequest struct {
	PrincipalID   string        `json:"principal_id" validate:"required"`
	RoleID        string        `json:"role_id" validate:"required"`
	Scope         string        `json:"scope" validate:"required"`
	Duration      time.Duration `json:"duration" validate:"required,gt=0"`
	Justification string        `json:"justification"`
	TicketNumber  string        `json:"ticket_number,omitempty"`
	TicketSystem  string        `json:"ticket_system,omitempty"`
}

// ActivationResult - outcome of an activation submission or status query
type ActivationResult struct {
	RequestID        string        `json:"request_id,omitempty"`
	Status           RequestStatus `json:"status"`
	RoleID           string        `json:"role_id,omitempty"`
	RoleName         string        `json:"role_name,omitempty"`
	Scope            string        `json:"scope,omitempty"`
	RequiresApproval bool          `json:"requires_approval,omitempty"`
	ExpiresAt        time.Time     `json:"expires_at,omitempty"`
	ErrorMessage     string        `json:"error_message,omitempty"`
}

// ActiveRoleGrant - a currently live elevation, computed by filtering directory
// state to grants whose expiry has not passed
type ActiveRoleGrant struct {
	PrincipalID string    `json:"principal_id"`
	RoleID      string    `json:"role_id"`
	RoleName    string    `json:"role_name,omitempty"`
	Scope       string    `json:"scope"`
	ActivatedAt time.Time `json:"activated_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// IsActive - reports whether the grant window covers the given instant
func (g *ActiveRoleGrant) IsActive(at time.Time) bool {
	return !g.ActivatedAt.After(at) && at.Before(g.ExpiresAt)
}

// PendingApproval - a request sitting in the manual approval queue
type PendingApproval struct {
	RequestID     string        `json:"request_id"`
	PrincipalID   string        `json:"principal_id"`
	RoleID        string        `json:"role_id"`
	RoleName      string        `json:"role_name,omitempty"`
	Scope         string        `json:"scope"`
	Justification string        `json:"justification"`
	Duration      time.Duration `json:"duration"`
	SubmittedAt   time.Time     `json:"submitted_at"`
}

// ApprovalDecision - an approver's terminal action on a pending request
type ApprovalDecision struct {
	RequestID string `json:"request_id" validate:"required"`
	ActorID   string `json:"actor_id" validate:"required"`
	Approve   bool   `json:"approve"`
	Comment   string `json:"comment,omitempty"` // required as the reason when denying
}

// ElevationPolicy - the organizational policy document a request is validated
// against before anything is submitted to the directory backend. Role
// activation and network access each carry their own instance.
type ElevationPolicy struct {
	MaxDuration            time.Duration `json:"max_duration" yaml:"maxduration"`
	RequireTicketNumber    bool          `json:"require_ticket_number" yaml:"requireticketnumber"`
	ApprovedTicketSystems  []string      `json:"approved_ticket_systems" yaml:"approvedticketsystems"`
	MinJustificationLength int           `json:"min_justification_length" yaml:"minjustificationlength"`
	HighPrivilegeRoles     []string      `json:"high_privilege_roles" yaml:"highprivilegeroles"`
}

// AuditRecord - the append-only compliance record emitted for every accepted
// submission. The field set is fixed; the justification itself is never
// recorded, only its length.
type AuditRecord struct {
	Timestamp           time.Time `json:"timestamp"`
	PrincipalID         string    `json:"principal"`
	RoleID              string    `json:"role_id"`
	RoleName            string    `json:"role_name"`
	DurationHours       float64   `json:"duration_hours"`
	TicketNumber        string    `json:"ticket_number"`
	TicketSystem        string    `json:"ticket_system"`
	JustificationLength int       `json:"justification_length"`
	Scope               string    `json:"scope"`
}

// ElevationEvent - lifecycle event published to the message queue when a
// broker is configured
type ElevationEvent struct {
	Type        string    `json:"type"` // submitted, approved, denied, deactivated, network_access
	RequestID   string    `json:"request_id,omitempty"`
	PrincipalID string    `json:"principal_id,omitempty"`
	RoleID      string    `json:"role_id,omitempty"`
	Scope       string    `json:"scope,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
