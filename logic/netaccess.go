package logic

import (
	"context"
	"fmt"

	"github.com/privops/elevate/models"
	"golang.org/x/exp/slog"
)

// connectionHintFormats - suggested client invocations for well-known ports,
// derived purely from (host, port). Injectable would be overkill; the table
// is data, not behavior.
var connectionHintFormats = map[int]string{
	22:   "ssh <user>@%s",
	443:  "https://%s/",
	3306: "mysql -h %s -P 3306",
	3389: "mstsc /v:%s:3389",
	5432: "psql -h %s -p 5432",
	5985: "Enter-PSSession -ComputerName %s",
}

// RequestNetworkAccess - validates and submits a bounded network port access
// request. Mirrors the activation path but is governed by the network access
// policy document, which is configured independently of the role policy.
func (e *elevationEngine) RequestNetworkAccess(ctx context.Context, req models.JitNetworkAccessRequest) models.JitNetworkAccessResult {
	if e.cfg.Network == nil {
		slog.Warn("network access requested but no network access service is configured",
			"resource", req.ResourceID)
		return failedNetworkAccess(req, "network access service is not configured")
	}
	if err := ValidateRequestShape(&req); err != nil {
		return failedNetworkAccess(req, "invalid network access request: "+err.Error())
	}

	policy := e.cfg.NetworkPolicy
	if req.Duration == 0 {
		req.Duration = policy.DefaultDuration
	}
	if err := ValidateElevationRequest(req.Duration, req.Justification, "", "", policy.ElevationPolicy); err != nil {
		slog.Info("network access rejected by policy",
			"resource", req.ResourceID, "reason", err.Error())
		return failedNetworkAccess(req, err.Error())
	}

	// per-port duration overrides are bounded by the same maximum
	ports := make([]models.PortRequest, 0, len(req.Ports))
	for _, port := range req.Ports {
		if port.Duration == 0 {
			port.Duration = req.Duration
		} else if policy.MaxDuration > 0 && port.Duration > policy.MaxDuration {
			return failedNetworkAccess(req, fmt.Sprintf(
				"port %d requested duration exceeds maximum allowed (%s)", port.Port, formatHours(policy.MaxDuration)))
		}
		if port.SourceIP == "" {
			port.SourceIP = req.SourceIP
		}
		ports = append(ports, port)
	}

	now := e.now()
	window, err := e.cfg.Network.ApplyAccessWindow(ctx, req.ResourceID, ports, req.SourceIP, req.Duration)
	if err != nil {
		slog.Error("network access window could not be applied",
			"resource", req.ResourceID, "error", err)
		return failedNetworkAccess(req, "network access request failed: "+err.Error())
	}

	host := req.ResourceAddress
	if host == "" {
		host = req.ResourceID
	}
	grants := make([]models.PortGrant, 0, len(ports))
	for _, port := range ports {
		grants = append(grants, models.PortGrant{
			Port:           port.Port,
			Protocol:       port.Protocol,
			Status:         MapRequestStatus(window.PortStatus[port.Port]),
			SourceIP:       port.SourceIP,
			ExpiresAt:      now.Add(port.Duration),
			ConnectionHint: connectionHint(host, port.Port),
		})
	}

	e.emitNetworkAudit(ctx, req)
	e.publishEvent("network_access", window.RequestID, "", "", req.ResourceID)
	return models.JitNetworkAccessResult{
		RequestID:  window.RequestID,
		ResourceID: req.ResourceID,
		Status:     overallPortStatus(grants),
		Ports:      grants,
	}
}

// connectionHint - suggested client command for a granted port, empty when
// the port is not a recognized service
func connectionHint(host string, port int) string {
	format, ok := connectionHintFormats[port]
	if !ok {
		return ""
	}
	return fmt.Sprintf(format, host)
}

// overallPortStatus - the request-level status is Approved only when every
// port cleared; a single pending port keeps the whole request pending
func overallPortStatus(grants []models.PortGrant) models.RequestStatus {
	overall := models.StatusApproved
	for _, grant := range grants {
		switch grant.Status {
		case models.StatusDenied, models.StatusFailed:
			return grant.Status
		case models.StatusApproved, models.StatusProvisioned:
			continue
		default:
			overall = grant.Status
		}
	}
	return overall
}

func (e *elevationEngine) emitNetworkAudit(ctx context.Context, req models.JitNetworkAccessRequest) {
	if !e.cfg.AuditEnabled {
		return
	}
	rec := models.AuditRecord{
		Timestamp:           e.now(),
		PrincipalID:         req.SourceIP,
		RoleID:              "jit-network-access",
		RoleName:            "JIT Network Access",
		DurationHours:       req.Duration.Hours(),
		TicketNumber:        "none",
		TicketSystem:        "none",
		JustificationLength: len(req.Justification),
		Scope:               req.ResourceID,
	}
	recordAudit(ctx, rec, false, e.cfg.AuditSinks)
}

func failedNetworkAccess(req models.JitNetworkAccessRequest, message string) models.JitNetworkAccessResult {
	return models.JitNetworkAccessResult{
		ResourceID:   req.ResourceID,
		Status:       models.StatusFailed,
		ErrorMessage: message,
	}
}
