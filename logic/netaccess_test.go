package logic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/privops/elevate/directory"
	"github.com/privops/elevate/models"
	"github.com/stretchr/testify/assert"
)

func TestRequestNetworkAccess(t *testing.T) {
	t.Run("Grants_Ports_With_Connection_Hints", func(t *testing.T) {
		netSvc := &fakeNetwork{
			window: directory.AccessWindowResult{
				RequestID:  "net-1",
				PortStatus: map[int]string{22: "Approved", 3389: "Approved"},
			},
		}
		engine := newTestEngine(&fakeDirectory{}, netSvc)
		result := engine.RequestNetworkAccess(context.Background(), validNetworkRequest())
		assert.Equal(t, models.StatusApproved, result.Status)
		assert.Equal(t, "net-1", result.RequestID)
		if assert.Len(t, result.Ports, 2) {
			assert.Equal(t, "ssh <user>@10.0.0.4", result.Ports[0].ConnectionHint)
			assert.Equal(t, "mstsc /v:10.0.0.4:3389", result.Ports[1].ConnectionHint)
			assert.Equal(t, testClock.Add(2*time.Hour), result.Ports[0].ExpiresAt)
			assert.Equal(t, "203.0.113.7", result.Ports[0].SourceIP)
		}
		assert.Equal(t, 1, netSvc.applyCalls)
	})
	t.Run("Zero_Duration_Uses_Policy_Default", func(t *testing.T) {
		netSvc := &fakeNetwork{
			window: directory.AccessWindowResult{RequestID: "net-2", PortStatus: map[int]string{22: "Approved", 3389: "Approved"}},
		}
		engine := newTestEngine(&fakeDirectory{}, netSvc)
		req := validNetworkRequest()
		req.Duration = 0
		result := engine.RequestNetworkAccess(context.Background(), req)
		assert.Equal(t, models.StatusApproved, result.Status)
		// default is one hour in the test policy
		assert.Equal(t, testClock.Add(time.Hour), result.Ports[0].ExpiresAt)
	})
	t.Run("Port_Override_Takes_Precedence", func(t *testing.T) {
		netSvc := &fakeNetwork{
			window: directory.AccessWindowResult{RequestID: "net-3", PortStatus: map[int]string{22: "Approved", 3389: "Approved"}},
		}
		engine := newTestEngine(&fakeDirectory{}, netSvc)
		req := validNetworkRequest()
		req.Ports[0].Duration = 30 * time.Minute
		req.Ports[0].SourceIP = "198.51.100.9"
		result := engine.RequestNetworkAccess(context.Background(), req)
		assert.Equal(t, testClock.Add(30*time.Minute), result.Ports[0].ExpiresAt)
		assert.Equal(t, "198.51.100.9", result.Ports[0].SourceIP)
		assert.Equal(t, testClock.Add(2*time.Hour), result.Ports[1].ExpiresAt)
		assert.Equal(t, "203.0.113.7", result.Ports[1].SourceIP)
	})
	t.Run("Port_Override_Over_Maximum_Never_Reaches_Backend", func(t *testing.T) {
		netSvc := &fakeNetwork{}
		engine := newTestEngine(&fakeDirectory{}, netSvc)
		req := validNetworkRequest()
		req.Ports[0].Duration = 6 * time.Hour
		result := engine.RequestNetworkAccess(context.Background(), req)
		assert.Equal(t, models.StatusFailed, result.Status)
		assert.Contains(t, result.ErrorMessage, "port 22 requested duration exceeds maximum allowed (4 hours)")
		assert.Equal(t, 0, netSvc.applyCalls)
	})
	t.Run("Request_Duration_Over_Maximum_Never_Reaches_Backend", func(t *testing.T) {
		netSvc := &fakeNetwork{}
		engine := newTestEngine(&fakeDirectory{}, netSvc)
		req := validNetworkRequest()
		req.Duration = 5 * time.Hour
		result := engine.RequestNetworkAccess(context.Background(), req)
		assert.Equal(t, models.StatusFailed, result.Status)
		assert.Contains(t, result.ErrorMessage, "exceeds maximum allowed (4 hours)")
		assert.Equal(t, 0, netSvc.applyCalls)
	})
	t.Run("Short_Justification_Never_Reaches_Backend", func(t *testing.T) {
		netSvc := &fakeNetwork{}
		engine := newTestEngine(&fakeDirectory{}, netSvc)
		req := validNetworkRequest()
		req.Justification = "debug"
		result := engine.RequestNetworkAccess(context.Background(), req)
		assert.Equal(t, models.StatusFailed, result.Status)
		assert.Contains(t, result.ErrorMessage, "justification too short")
		assert.Equal(t, 0, netSvc.applyCalls)
	})
	t.Run("Unrecognized_Port_Has_No_Hint", func(t *testing.T) {
		netSvc := &fakeNetwork{
			window: directory.AccessWindowResult{RequestID: "net-4", PortStatus: map[int]string{8080: "Approved"}},
		}
		engine := newTestEngine(&fakeDirectory{}, netSvc)
		req := validNetworkRequest()
		req.Ports = []models.PortRequest{{Port: 8080, Protocol: "tcp"}}
		result := engine.RequestNetworkAccess(context.Background(), req)
		if assert.Len(t, result.Ports, 1) {
			assert.Empty(t, result.Ports[0].ConnectionHint)
		}
	})
	t.Run("Hint_Host_Falls_Back_To_Resource_Id", func(t *testing.T) {
		netSvc := &fakeNetwork{
			window: directory.AccessWindowResult{RequestID: "net-5", PortStatus: map[int]string{22: "Approved", 3389: "Approved"}},
		}
		engine := newTestEngine(&fakeDirectory{}, netSvc)
		req := validNetworkRequest()
		req.ResourceAddress = ""
		result := engine.RequestNetworkAccess(context.Background(), req)
		assert.Equal(t, "ssh <user>@vm-1", result.Ports[0].ConnectionHint)
	})
	t.Run("Pending_Port_Keeps_Request_Pending", func(t *testing.T) {
		netSvc := &fakeNetwork{
			window: directory.AccessWindowResult{
				RequestID:  "net-6",
				PortStatus: map[int]string{22: "Approved", 3389: "PendingApproval"},
			},
		}
		engine := newTestEngine(&fakeDirectory{}, netSvc)
		result := engine.RequestNetworkAccess(context.Background(), validNetworkRequest())
		assert.Equal(t, models.StatusPendingApproval, result.Status)
	})
	t.Run("Denied_Port_Fails_The_Request", func(t *testing.T) {
		netSvc := &fakeNetwork{
			window: directory.AccessWindowResult{
				RequestID:  "net-7",
				PortStatus: map[int]string{22: "Denied", 3389: "Approved"},
			},
		}
		engine := newTestEngine(&fakeDirectory{}, netSvc)
		result := engine.RequestNetworkAccess(context.Background(), validNetworkRequest())
		assert.Equal(t, models.StatusDenied, result.Status)
	})
	t.Run("Unconfigured_Network_Service_Fails_Cleanly", func(t *testing.T) {
		// a live engine with no network service wired must reject, not panic
		engine := newTestEngine(&fakeDirectory{}, nil)
		result := engine.RequestNetworkAccess(context.Background(), validNetworkRequest())
		assert.Equal(t, models.StatusFailed, result.Status)
		assert.Contains(t, result.ErrorMessage, "network access service is not configured")
	})
	t.Run("Backend_Fault_Becomes_Failed_Result", func(t *testing.T) {
		netSvc := &fakeNetwork{err: errors.New("firewall api unreachable")}
		engine := newTestEngine(&fakeDirectory{}, netSvc)
		result := engine.RequestNetworkAccess(context.Background(), validNetworkRequest())
		assert.Equal(t, models.StatusFailed, result.Status)
		assert.Contains(t, result.ErrorMessage, "firewall api unreachable")
	})
	t.Run("Audit_Record_Carries_Length_Not_Content", func(t *testing.T) {
		sink := &captureSink{}
		netSvc := &fakeNetwork{
			window: directory.AccessWindowResult{RequestID: "net-8", PortStatus: map[int]string{22: "Approved", 3389: "Approved"}},
		}
		engine := newTestEngine(&fakeDirectory{}, netSvc, sink)
		req := validNetworkRequest()
		engine.RequestNetworkAccess(context.Background(), req)
		if assert.Len(t, sink.records, 1) {
			assert.Equal(t, "jit-network-access", sink.records[0].RoleID)
			assert.Equal(t, len(req.Justification), sink.records[0].JustificationLength)
			assert.Equal(t, "vm-1", sink.records[0].Scope)
		}
	})
}
