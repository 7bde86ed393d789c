package models

import "time"

// APIActivationRequest - role activation request as accepted on the wire,
// durations expressed in hours
type APIActivationRequest struct {
	PrincipalID   string  `json:"principal_id"`
	RoleID        string  `json:"role_id"`
	Scope         string  `json:"scope"`
	DurationHours float64 `json:"duration_hours"`
	Justification string  `json:"justification"`
	TicketNumber  string  `json:"ticket_number,omitempty"`
	TicketSystem  string  `json:"ticket_system,omitempty"`
}

// ConvertToActivationRequest - converts the wire shape into the engine's request type
func (a *APIActivationRequest) ConvertToActivationRequest() ActivationRequest {
	return ActivationRequest{
		PrincipalID:   a.PrincipalID,
		RoleID:        a.RoleID,
		Scope:         a.Scope,
		Duration:      hoursToDuration(a.DurationHours),
		Justification: a.Justification,
		TicketNumber:  a.TicketNumber,
		TicketSystem:  a.TicketSystem,
	}
}

// APIPortRequest - per-port entry as accepted on the wire
type APIPortRequest struct {
	Port          int     `json:"port"`
	Protocol      string  `json:"protocol"`
	SourceIP      string  `json:"source_ip,omitempty"`
	DurationHours float64 `json:"duration_hours,omitempty"`
}

// APINetworkAccessRequest - network access request as accepted on the wire
type APINetworkAccessRequest struct {
	ResourceID      string           `json:"resource_id"`
	ResourceAddress string           `json:"resource_address,omitempty"`
	Ports           []APIPortRequest `json:"ports"`
	Justification   string           `json:"justification"`
	SourceIP        string           `json:"source_ip,omitempty"`
	DurationHours   float64          `json:"duration_hours,omitempty"`
}

// ConvertToNetworkAccessRequest - converts the wire shape into the engine's request type
func (a *APINetworkAccessRequest) ConvertToNetworkAccessRequest() JitNetworkAccessRequest {
	ports := make([]PortRequest, 0, len(a.Ports))
	for _, p := range a.Ports {
		ports = append(ports, PortRequest{
			Port:     p.Port,
			Protocol: p.Protocol,
			SourceIP: p.SourceIP,
			Duration: hoursToDuration(p.DurationHours),
		})
	}
	return JitNetworkAccessRequest{
		ResourceID:      a.ResourceID,
		ResourceAddress: a.ResourceAddress,
		Ports:           ports,
		Justification:   a.Justification,
		SourceIP:        a.SourceIP,
		Duration:        hoursToDuration(a.DurationHours),
	}
}

func hoursToDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}
