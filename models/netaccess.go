package models

import "time"

// PortRequest - a single (port, protocol) entry in a network access request.
// SourceIP and Duration override the request-level values when set.
type PortRequest struct {
	Port     int           `json:"port" validate:"required,min=1,max=65535"`
	Protocol string        `json:"protocol" validate:"required,protocol"`
	SourceIP string        `json:"source_ip,omitempty" validate:"omitempty,ip|cidr"`
	Duration time.Duration `json:"duration,omitempty"`
}

// JitNetworkAccessRequest - a bounded request to open specific ports on a
// resource to a specific source address
type JitNetworkAccessRequest struct {
	ResourceID      string        `json:"resource_id" validate:"required"`
	ResourceAddress string        `json:"resource_address,omitempty"` // host used for connection hints; falls back to ResourceID
	Ports           []PortRequest `json:"ports" validate:"required,min=1,dive"`
	Justification   string        `json:"justification"`
	SourceIP        string        `json:"source_ip,omitempty" validate:"omitempty,ip|cidr"`
	Duration        time.Duration `json:"duration,omitempty"` // zero means use the policy default
}

// PortGrant - per-port outcome of a network access request
type PortGrant struct {
	Port           int           `json:"port"`
	Protocol       string        `json:"protocol"`
	Status         RequestStatus `json:"status"`
	SourceIP       string        `json:"source_ip,omitempty"`
	ExpiresAt      time.Time     `json:"expires_at,omitempty"`
	ConnectionHint string        `json:"connection_hint,omitempty"`
}

// JitNetworkAccessResult - outcome of a network access request
type JitNetworkAccessResult struct {
	RequestID    string        `json:"request_id,omitempty"`
	ResourceID   string        `json:"resource_id"`
	Status       RequestStatus `json:"status"`
	Ports        []PortGrant   `json:"ports,omitempty"`
	ErrorMessage string        `json:"error_message,omitempty"`
}

// NetworkAccessPolicy - the policy document governing JIT network access.
// Kept separate from the role activation policy; the two are configured
// independently even though the validation pattern is shared.
type NetworkAccessPolicy struct {
	ElevationPolicy `yaml:",inline"`
	DefaultDuration time.Duration `json:"default_duration" yaml:"defaultduration"`
}
