// Package directory defines the contracts of the external identity/role
// directory service and the network access service the elevation engine
// depends on. Concrete clients are provided by the deployment; this package
// carries only the interfaces and the raw record types they exchange.
package directory

import (
	"context"
	"time"

	"github.com/privops/elevate/models"
)

// RoleDefinition - display metadata for a role as known to the directory
type RoleDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// SubmissionReceipt - what the directory returns for a submitted activation.
// Status is in the backend's own vocabulary.
type SubmissionReceipt struct {
	RequestID        string    `json:"request_id"`
	Status           string    `json:"status"`
	ExpiresAt        time.Time `json:"expires_at,omitempty"`
	RequiresApproval bool      `json:"requires_approval"`
}

// ApprovalRecord - a raw pending-approval entry from the directory
type ApprovalRecord struct {
	RequestID     string        `json:"request_id"`
	PrincipalID   string        `json:"principal_id"`
	RoleID        string        `json:"role_id"`
	Scope         string        `json:"scope"`
	Justification string        `json:"justification"`
	Duration      time.Duration `json:"duration"`
	SubmittedAt   time.Time     `json:"submitted_at"`
}

// RequestRecord - a raw historical request entry from the directory
type RequestRecord struct {
	RequestID        string    `json:"request_id"`
	PrincipalID      string    `json:"principal_id"`
	RoleID           string    `json:"role_id"`
	Scope            string    `json:"scope"`
	Status           string    `json:"status"`
	RequiresApproval bool      `json:"requires_approval"`
	SubmittedAt      time.Time `json:"submitted_at"`
	ExpiresAt        time.Time `json:"expires_at,omitempty"`
}

// Service - the identity & role directory the engine submits activations to.
// The directory remains the single source of truth for request state; the
// engine persists nothing itself.
type Service interface {
	ListEligibleRoles(ctx context.Context, principalID, scope string) ([]models.EligibleRole, error)
	ListActiveGrants(ctx context.Context, principalID string) ([]models.ActiveRoleGrant, error)
	ResolveRoleName(ctx context.Context, roleID string) (RoleDefinition, error)
	SubmitActivation(ctx context.Context, req models.ActivationRequest, startsAt, expiresAt time.Time) (SubmissionReceipt, error)
	SubmitDeactivation(ctx context.Context, principalID, roleID, scope string) (bool, error)
	GetRequestStatus(ctx context.Context, requestID string) (string, error)
	ListPendingApprovals(ctx context.Context, approverID string) ([]ApprovalRecord, error)
	SubmitApprovalDecision(ctx context.Context, requestID string, approve bool, actorID, comment string) (bool, error)
	QueryHistory(ctx context.Context, principalID string, start, end time.Time) ([]RequestRecord, error)
}

// AccessWindowResult - what the network access service returns for an applied
// window. PortStatus maps port number to the backend's status vocabulary.
type AccessWindowResult struct {
	RequestID  string         `json:"request_id"`
	PortStatus map[int]string `json:"port_status"`
	ExpiresAt  time.Time      `json:"expires_at,omitempty"`
}

// NetworkService - the host-level firewall service that applies bounded
// network access windows
type NetworkService interface {
	ApplyAccessWindow(ctx context.Context, resourceID string, ports []models.PortRequest, allowedSourceIP string, duration time.Duration) (AccessWindowResult, error)
}
