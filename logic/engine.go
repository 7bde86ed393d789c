package logic

import (
	"context"
	"time"

	"github.com/privops/elevate/directory"
	"github.com/privops/elevate/models"
	"github.com/privops/elevate/servercfg"
	"golang.org/x/exp/slog"
)

// ErrElevationDisabled - returned by every stub operation when JIT elevation
// is administratively turned off
const ErrElevationDisabled = models.Error("jit elevation is not enabled on this server")

// Engine - the full contract surface of the elevation engine. Operations that
// produce a result type report operational failures inside the result; list
// and boolean operations report them as error values. Callers never see a
// panic for an operational fault.
type Engine interface {
	Activate(ctx context.Context, req models.ActivationRequest) models.ActivationResult
	GetActivationStatus(ctx context.Context, requestID string) models.ActivationResult
	Deactivate(ctx context.Context, principalID, roleID, scope string) (bool, error)
	Extend(ctx context.Context, req models.ActivationRequest) models.ActivationResult

	EligibleRoles(ctx context.Context, principalID, scope string) ([]models.EligibleRole, error)
	ActiveGrants(ctx context.Context, principalID string) ([]models.ActiveRoleGrant, error)

	ListPendingApprovals(ctx context.Context, approverID string) ([]models.PendingApproval, error)
	DecideApproval(ctx context.Context, decision models.ApprovalDecision) (bool, error)

	RequestNetworkAccess(ctx context.Context, req models.JitNetworkAccessRequest) models.JitNetworkAccessResult

	ActivationHistory(ctx context.Context, principalID string, start, end time.Time) ([]models.ActivationResult, error)
}

// AuditSink - an append-only destination for audit records
type AuditSink interface {
	Record(ctx context.Context, rec models.AuditRecord) error
}

// EngineConfig - everything the engine needs, assembled once at startup.
// Business logic never branches on the enabled flag; construction picks the
// concrete implementation.
type EngineConfig struct {
	Enabled       bool
	Directory     directory.Service
	Network       directory.NetworkService
	RolePolicy    models.ElevationPolicy
	NetworkPolicy models.NetworkAccessPolicy
	RoleNames     RoleNameTable
	AuditEnabled  bool
	AuditSinks    []AuditSink
	// PublishEvent - optional lifecycle event hook, wired to the message
	// queue by the server entrypoint. Fire-and-forget.
	PublishEvent func(models.ElevationEvent)
	// Now - clock override for tests
	Now func() time.Time
}

// DirectoryProviderFunc - set by the deployment to supply the concrete
// directory client. Left nil, the server runs with the disabled stub.
var DirectoryProviderFunc func() (directory.Service, error)

// PublishEventFunc - set by the server entrypoint to forward lifecycle
// events to the message queue
var PublishEventFunc func(models.ElevationEvent)

// NetworkProviderFunc - set by the deployment to supply the concrete network
// access client
var NetworkProviderFunc func() (directory.NetworkService, error)

// NewEngine - constructs the elevation engine from config. Returns the
// disabled stub when the feature is off or no directory provider is wired,
// so the rest of the system can depend on the interface unconditionally.
func NewEngine(cfg EngineConfig) Engine {
	if !cfg.Enabled || cfg.Directory == nil {
		if cfg.Enabled {
			slog.Warn("jit elevation enabled but no directory service is configured, falling back to disabled stub")
		}
		return &disabledEngine{}
	}
	if cfg.RoleNames == nil {
		cfg.RoleNames = DefaultRoleNames
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &elevationEngine{cfg: cfg}
}

// NewEngineFromServerConfig - assembles the engine from server configuration
// and the registered collaborator providers
func NewEngineFromServerConfig() Engine {
	cfg := EngineConfig{
		Enabled:       servercfg.IsJITElevationEnabled(),
		RolePolicy:    servercfg.GetElevationPolicy(),
		NetworkPolicy: servercfg.GetNetworkAccessPolicy(),
		RoleNames:     DefaultRoleNames,
		AuditEnabled:  servercfg.IsAuditLoggingEnabled(),
		PublishEvent:  PublishEventFunc,
	}
	if cfg.Enabled && DirectoryProviderFunc != nil {
		dir, err := DirectoryProviderFunc()
		if err != nil {
			slog.Error("failed to initialize directory service", "error", err)
		} else {
			cfg.Directory = dir
		}
	}
	if cfg.Enabled && NetworkProviderFunc != nil {
		netSvc, err := NetworkProviderFunc()
		if err != nil {
			slog.Error("failed to initialize network access service", "error", err)
		} else {
			cfg.Network = netSvc
		}
	}
	if cfg.AuditEnabled {
		cfg.AuditSinks = append(cfg.AuditSinks, &databaseAuditSink{})
	}
	return NewEngine(cfg)
}

// elevationEngine - the live engine. Holds no mutable state between requests;
// every result is computed per call and the directory remains the single
// source of truth.
type elevationEngine struct {
	cfg EngineConfig
}

func (e *elevationEngine) now() time.Time {
	return e.cfg.Now().UTC()
}

func (e *elevationEngine) publishEvent(eventType, requestID, principalID, roleID, scope string) {
	if e.cfg.PublishEvent == nil {
		return
	}
	e.cfg.PublishEvent(models.ElevationEvent{
		Type:        eventType,
		RequestID:   requestID,
		PrincipalID: principalID,
		RoleID:      roleID,
		Scope:       scope,
		Timestamp:   e.now(),
	})
}
