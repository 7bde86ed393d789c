// Package cli is the HTTP client used by jitctl to talk to the elevation
// server's REST API.
package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/privops/elevate/models"
)

// Client - a thin client over the server's REST API
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// New - creates a client for the given server
func New(baseURL, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) request(method, route string, body, response interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, c.BaseURL+route, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		var errResp models.ErrorResponse
		if json.Unmarshal(data, &errResp) == nil && errResp.Message != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}
	if response == nil {
		return nil
	}
	var envelope models.SuccessResponse
	envelope.Response = response
	return json.Unmarshal(data, &envelope)
}

// Elevate - submits a role activation request
func (c *Client) Elevate(req models.APIActivationRequest) (*models.ActivationResult, error) {
	var result models.ActivationResult
	if err := c.request(http.MethodPost, "/api/v1/elevation", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Extend - submits an elevation extension
func (c *Client) Extend(req models.APIActivationRequest) (*models.ActivationResult, error) {
	var result models.ActivationResult
	if err := c.request(http.MethodPost, "/api/v1/elevation/extend", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Status - fetches the canonical status of a request
func (c *Client) Status(requestID string) (*models.ActivationResult, error) {
	var result models.ActivationResult
	if err := c.request(http.MethodGet, "/api/v1/elevation/"+url.PathEscape(requestID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Deactivate - ends an active grant early
func (c *Client) Deactivate(roleID, scope string) error {
	query := url.Values{}
	query.Set("role", roleID)
	if scope != "" {
		query.Set("scope", scope)
	}
	return c.request(http.MethodDelete, "/api/v1/elevation?"+query.Encode(), nil, nil)
}

// EligibleRoles - roles the caller may activate
func (c *Client) EligibleRoles(scope string) ([]models.EligibleRole, error) {
	route := "/api/v1/roles/eligible"
	if scope != "" {
		route += "?scope=" + url.QueryEscape(scope)
	}
	var roles []models.EligibleRole
	if err := c.request(http.MethodGet, route, nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// ActiveGrants - the caller's currently live grants
func (c *Client) ActiveGrants() ([]models.ActiveRoleGrant, error) {
	var grants []models.ActiveRoleGrant
	if err := c.request(http.MethodGet, "/api/v1/grants/active", nil, &grants); err != nil {
		return nil, err
	}
	return grants, nil
}

// PendingApprovals - requests awaiting the caller's decision
func (c *Client) PendingApprovals() ([]models.PendingApproval, error) {
	var pending []models.PendingApproval
	if err := c.request(http.MethodGet, "/api/v1/approvals", nil, &pending); err != nil {
		return nil, err
	}
	return pending, nil
}

// Decide - approves or denies a pending request
func (c *Client) Decide(requestID string, approve bool, comment string) error {
	body := models.ApprovalDecision{Approve: approve, Comment: comment}
	return c.request(http.MethodPost, "/api/v1/approvals/"+url.PathEscape(requestID), body, nil)
}

// NetworkAccess - requests a bounded network access window
func (c *Client) NetworkAccess(req models.APINetworkAccessRequest) (*models.JitNetworkAccessResult, error) {
	var result models.JitNetworkAccessResult
	if err := c.request(http.MethodPost, "/api/v1/netaccess", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AuditRecords - the server's persisted audit trail, newest first (admin)
func (c *Client) AuditRecords() ([]models.AuditRecord, error) {
	var records []models.AuditRecord
	if err := c.request(http.MethodGet, "/api/v1/audit", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// History - a principal's activation history within a bounded window
func (c *Client) History(principal string, start, end time.Time) ([]models.ActivationResult, error) {
	query := url.Values{}
	query.Set("principal", principal)
	if !start.IsZero() {
		query.Set("start", start.Format(time.RFC3339))
	}
	if !end.IsZero() {
		query.Set("end", end.Format(time.RFC3339))
	}
	var history []models.ActivationResult
	if err := c.request(http.MethodGet, "/api/v1/elevation/history?"+query.Encode(), nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// PrettyPrint - prints any response as indented json
func PrettyPrint(data interface{}) {
	body, _ := json.MarshalIndent(data, "", "    ")
	fmt.Println(string(body))
}
