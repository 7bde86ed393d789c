package logic

import (
	"context"
	"time"

	"github.com/privops/elevate/directory"
	"github.com/privops/elevate/models"
)

// fakeDirectory - spy implementation of directory.Service recording every
// remote call so tests can assert rejected requests never reach the backend
type fakeDirectory struct {
	eligibleRoles []models.EligibleRole
	activeGrants  []models.ActiveRoleGrant
	roleDefs      map[string]directory.RoleDefinition
	roleErr       error
	receipt       directory.SubmissionReceipt
	submitErr     error
	statusResp    string
	statusErr     error
	deactivateOK  bool
	deactivateErr error
	approvals     []directory.ApprovalRecord
	approvalsErr  error
	decisionOK    bool
	decisionErr   error
	history       []directory.RequestRecord
	historyErr    error

	submitCalls     int
	statusCalls     int
	deactivateCalls int
	decisionCalls   int
	resolveCalls    int
	totalCalls      int
}

func (f *fakeDirectory) ListEligibleRoles(ctx context.Context, principalID, scope string) ([]models.EligibleRole, error) {
	f.totalCalls++
	return f.eligibleRoles, nil
}

func (f *fakeDirectory) ListActiveGrants(ctx context.Context, principalID string) ([]models.ActiveRoleGrant, error) {
	f.totalCalls++
	return f.activeGrants, nil
}

func (f *fakeDirectory) ResolveRoleName(ctx context.Context, roleID string) (directory.RoleDefinition, error) {
	f.totalCalls++
	f.resolveCalls++
	if f.roleErr != nil {
		return directory.RoleDefinition{}, f.roleErr
	}
	if def, ok := f.roleDefs[roleID]; ok {
		return def, nil
	}
	return directory.RoleDefinition{}, f.roleErr
}

func (f *fakeDirectory) SubmitActivation(ctx context.Context, req models.ActivationRequest, startsAt, expiresAt time.Time) (directory.SubmissionReceipt, error) {
	f.totalCalls++
	f.submitCalls++
	if f.submitErr != nil {
		return directory.SubmissionReceipt{}, f.submitErr
	}
	return f.receipt, nil
}

func (f *fakeDirectory) SubmitDeactivation(ctx context.Context, principalID, roleID, scope string) (bool, error) {
	f.totalCalls++
	f.deactivateCalls++
	return f.deactivateOK, f.deactivateErr
}

func (f *fakeDirectory) GetRequestStatus(ctx context.Context, requestID string) (string, error) {
	f.totalCalls++
	f.statusCalls++
	return f.statusResp, f.statusErr
}

func (f *fakeDirectory) ListPendingApprovals(ctx context.Context, approverID string) ([]directory.ApprovalRecord, error) {
	f.totalCalls++
	return f.approvals, f.approvalsErr
}

func (f *fakeDirectory) SubmitApprovalDecision(ctx context.Context, requestID string, approve bool, actorID, comment string) (bool, error) {
	f.totalCalls++
	f.decisionCalls++
	return f.decisionOK, f.decisionErr
}

func (f *fakeDirectory) QueryHistory(ctx context.Context, principalID string, start, end time.Time) ([]directory.RequestRecord, error) {
	f.totalCalls++
	return f.history, f.historyErr
}

// fakeNetwork - spy implementation of directory.NetworkService
type fakeNetwork struct {
	window     directory.AccessWindowResult
	err        error
	applyCalls int
}

func (f *fakeNetwork) ApplyAccessWindow(ctx context.Context, resourceID string, ports []models.PortRequest, allowedSourceIP string, duration time.Duration) (directory.AccessWindowResult, error) {
	f.applyCalls++
	if f.err != nil {
		return directory.AccessWindowResult{}, f.err
	}
	return f.window, nil
}

// captureSink - audit sink retaining every record written to it
type captureSink struct {
	records []models.AuditRecord
}

func (s *captureSink) Record(ctx context.Context, rec models.AuditRecord) error {
	s.records = append(s.records, rec)
	return nil
}

var testClock = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testPolicy() models.ElevationPolicy {
	return models.ElevationPolicy{
		MaxDuration:            8 * time.Hour,
		RequireTicketNumber:    false,
		ApprovedTicketSystems:  []string{"ServiceNow", "Jira"},
		MinJustificationLength: 10,
		HighPrivilegeRoles:     []string{"Global Administrator"},
	}
}

func testNetworkPolicy() models.NetworkAccessPolicy {
	return models.NetworkAccessPolicy{
		ElevationPolicy: models.ElevationPolicy{
			MaxDuration:            4 * time.Hour,
			MinJustificationLength: 10,
		},
		DefaultDuration: time.Hour,
	}
}

func newTestEngine(dir *fakeDirectory, netSvc *fakeNetwork, sinks ...AuditSink) *elevationEngine {
	cfg := EngineConfig{
		Enabled:       true,
		Directory:     dir,
		RolePolicy:    testPolicy(),
		NetworkPolicy: testNetworkPolicy(),
		RoleNames:     DefaultRoleNames,
		AuditEnabled:  len(sinks) > 0,
		AuditSinks:    sinks,
		Now:           func() time.Time { return testClock },
	}
	if netSvc != nil {
		cfg.Network = netSvc
	}
	return NewEngine(cfg).(*elevationEngine)
}

func validNetworkRequest() models.JitNetworkAccessRequest {
	return models.JitNetworkAccessRequest{
		ResourceID:      "vm-1",
		ResourceAddress: "10.0.0.4",
		Ports: []models.PortRequest{
			{Port: 22, Protocol: "tcp"},
			{Port: 3389, Protocol: "tcp"},
		},
		Justification: "Debugging production host",
		SourceIP:      "203.0.113.7",
		Duration:      2 * time.Hour,
	}
}

func validRequest() models.ActivationRequest {
	return models.ActivationRequest{
		PrincipalID:   "P1",
		RoleID:        "R1",
		Scope:         "S1",
		Duration:      4 * time.Hour,
		Justification: "Investigating incident INC-1234",
		TicketNumber:  "INC-1234",
		TicketSystem:  "ServiceNow",
	}
}
