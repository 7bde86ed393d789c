package models

// RequestStatus - canonical state of an elevation or network access request,
// independent of the directory backend's own status vocabulary
type RequestStatus string

const (
	// StatusSubmitted - request was handed to the backend and is in flight
	StatusSubmitted RequestStatus = "Submitted"
	// StatusPendingApproval - request is waiting on a manual approval decision
	StatusPendingApproval RequestStatus = "PendingApproval"
	// StatusApproved - request is cleared to provision but not necessarily active yet
	StatusApproved RequestStatus = "Approved"
	// StatusDenied - request was denied by an approver or by backend policy
	StatusDenied RequestStatus = "Denied"
	// StatusProvisioned - the grant is live; this is the only status that implies
	// an actually-active grant
	StatusProvisioned RequestStatus = "Provisioned"
	// StatusFailed - request was rejected locally or failed at the backend
	StatusFailed RequestStatus = "Failed"
	// StatusCanceled - request was withdrawn before completion
	StatusCanceled RequestStatus = "Canceled"
	// StatusRevoked - a previously active grant was pulled early
	StatusRevoked RequestStatus = "Revoked"
	// StatusExpired - the grant's window has passed
	StatusExpired RequestStatus = "Expired"
)
