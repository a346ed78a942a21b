package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Config represents the configuration for the hub client
type Config struct {
	// BaseURL is the base URL of the hub API
	BaseURL string
	// HTTPClient is an optional custom HTTP client
	HTTPClient *http.Client
	// Timeout is the default request timeout
	Timeout time.Duration
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "http://localhost:8080",
		HTTPClient: http.DefaultClient,
		Timeout:    10 * time.Second,
	}
}

// Client is the employee hub API client. Login stores the session token on
// the client; subsequent calls send it as a bearer token.
type Client struct {
	config *Config
	client *http.Client
	token  string
}

// NewClient creates a new hub client with the given configuration
func NewClient(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		config: config,
		client: client,
	}
}

// Token returns the session token obtained by the last successful Login.
func (c *Client) Token() string {
	return c.token
}

// SetToken installs a session token minted elsewhere, e.g. by hubctl token.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Identity is the authenticated user as reported by the hub.
type Identity struct {
	Email      string `json:"email"`
	Role       string `json:"role"`
	Country    string `json:"country"`
	Department string `json:"department"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a login response
type LoginResponse struct {
	Ok       bool      `json:"ok"`
	Identity *Identity `json:"identity"`
	Token    string    `json:"token"`
}

// Login authenticates against the hub and stores the session token on the
// client for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}

	endpoint := fmt.Sprintf("%s/api/auth/login", c.config.BaseURL)
	var resp LoginResponse
	if err := c.post(ctx, endpoint, &LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}

	c.token = resp.Token
	return &resp, nil
}

// Logout revokes the current session and clears the stored token.
func (c *Client) Logout(ctx context.Context) error {
	endpoint := fmt.Sprintf("%s/api/auth/logout", c.config.BaseURL)
	var resp map[string]string
	if err := c.post(ctx, endpoint, struct{}{}, &resp); err != nil {
		return err
	}

	c.token = ""
	return nil
}

// Card represents one rendered catalog entry
type Card struct {
	Kind        string `json:"kind"`
	ID          int64  `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	Body        string `json:"body"`
	Completed   bool   `json:"completed,omitempty"`
	CanComplete bool   `json:"can_complete,omitempty"`
	CanEdit     bool   `json:"can_edit,omitempty"`
	CanDelete   bool   `json:"can_delete,omitempty"`
}

// CatalogResponse represents a rendered catalog
type CatalogResponse struct {
	Ok    bool   `json:"ok"`
	Cards []Card `json:"cards"`
}

// ListTraining returns the training catalog visible to the logged-in user.
func (c *Client) ListTraining(ctx context.Context) (*CatalogResponse, error) {
	endpoint := fmt.Sprintf("%s/api/training", c.config.BaseURL)
	var resp CatalogResponse
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListPolicies returns the policy catalog visible to the logged-in user.
func (c *Client) ListPolicies(ctx context.Context) (*CatalogResponse, error) {
	endpoint := fmt.Sprintf("%s/api/policies", c.config.BaseURL)
	var resp CatalogResponse
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CompleteTraining marks a training module done for the logged-in user and
// returns the re-rendered catalog.
func (c *Client) CompleteTraining(ctx context.Context, moduleID int64) (*CatalogResponse, error) {
	if moduleID <= 0 {
		return nil, errors.New("module id is required")
	}

	endpoint := fmt.Sprintf("%s/api/training/%d/complete", c.config.BaseURL, moduleID)
	var resp CatalogResponse
	if err := c.post(ctx, endpoint, struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteTraining removes a training module. The confirmed flag carries the
// outcome of the caller's confirmation prompt; false leaves the catalog
// unchanged.
func (c *Client) DeleteTraining(ctx context.Context, moduleID int64, confirmed bool) (*CatalogResponse, error) {
	if moduleID <= 0 {
		return nil, errors.New("module id is required")
	}

	endpoint := fmt.Sprintf("%s/api/training/%d?confirm=%t", c.config.BaseURL, moduleID, confirmed)
	var resp CatalogResponse
	if err := c.delete(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeletePolicy removes a policy, subject to the same confirmation flag as
// DeleteTraining.
func (c *Client) DeletePolicy(ctx context.Context, policyID int64, confirmed bool) (*CatalogResponse, error) {
	if policyID <= 0 {
		return nil, errors.New("policy id is required")
	}

	endpoint := fmt.Sprintf("%s/api/policies/%d?confirm=%t", c.config.BaseURL, policyID, confirmed)
	var resp CatalogResponse
	if err := c.delete(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// EditorState represents the modal editor's current state
type EditorState struct {
	Open     bool   `json:"open"`
	Kind     string `json:"kind,omitempty"`
	Mode     string `json:"mode,omitempty"`
	TargetID int64  `json:"target_id,omitempty"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}

// EditorResponse represents an editor response
type EditorResponse struct {
	Ok    bool        `json:"ok"`
	State EditorState `json:"state"`
}

// OpenEditorRequest represents an editor open request
type OpenEditorRequest struct {
	Kind     string `json:"kind"`
	TargetID *int64 `json:"target_id,omitempty"`
}

// OpenEditor opens the modal editor on a catalog entry, or on a blank create
// form when targetID is nil.
func (c *Client) OpenEditor(ctx context.Context, kind string, targetID *int64) (*EditorResponse, error) {
	if kind == "" {
		return nil, errors.New("kind is required")
	}

	endpoint := fmt.Sprintf("%s/api/editor/open", c.config.BaseURL)
	var resp EditorResponse
	if err := c.post(ctx, endpoint, &OpenEditorRequest{Kind: kind, TargetID: targetID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SaveEditorRequest represents an editor save request
type SaveEditorRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// SaveEditor submits the editor form. A 422 response means validation failed
// and the editor stayed open with the returned state.
func (c *Client) SaveEditor(ctx context.Context, title, body string) (*EditorResponse, error) {
	endpoint := fmt.Sprintf("%s/api/editor/save", c.config.BaseURL)
	var resp EditorResponse
	if err := c.post(ctx, endpoint, &SaveEditorRequest{Title: title, Body: body}, &resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnprocessableEntity {
			return &resp, err
		}
		return nil, err
	}
	return &resp, nil
}

// CloseEditor discards the editor draft.
func (c *Client) CloseEditor(ctx context.Context) (*EditorResponse, error) {
	endpoint := fmt.Sprintf("%s/api/editor/close", c.config.BaseURL)
	var resp EditorResponse
	if err := c.post(ctx, endpoint, struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AuditEntry represents one recorded catalog mutation
type AuditEntry struct {
	ID         string    `json:"id"`
	Actor      string    `json:"actor"`
	Action     string    `json:"action"`
	Kind       string    `json:"kind"`
	TargetID   int64     `json:"target_id"`
	Title      string    `json:"title"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AuditResponse represents an audit trail response
type AuditResponse struct {
	Ok      bool         `json:"ok"`
	Entries []AuditEntry `json:"entries"`
}

// AuditTrail returns the recorded catalog mutations, admins only.
func (c *Client) AuditTrail(ctx context.Context) ([]AuditEntry, error) {
	endpoint := fmt.Sprintf("%s/api/audit", c.config.BaseURL)
	var resp AuditResponse
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return resp.Entries, nil
}

// ThemeResponse represents a theme response
type ThemeResponse struct {
	Ok    bool   `json:"ok"`
	Theme string `json:"theme"`
}

// Theme returns the stored display theme preference.
func (c *Client) Theme(ctx context.Context) (string, error) {
	endpoint := fmt.Sprintf("%s/api/theme", c.config.BaseURL)
	var resp ThemeResponse
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return "", err
	}
	return resp.Theme, nil
}

// SetTheme stores a display theme preference, "dark" or "light".
func (c *Client) SetTheme(ctx context.Context, theme string) error {
	if theme == "" {
		return errors.New("theme is required")
	}

	endpoint := fmt.Sprintf("%s/api/theme", c.config.BaseURL)
	var resp ThemeResponse
	return c.put(ctx, endpoint, map[string]string{"theme": theme}, &resp)
}

// APIError defines a standardized error response from the API
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (Status: %d)", e.Message, e.StatusCode)
}

func (c *Client) post(ctx context.Context, endpoint string, req interface{}, resp interface{}) error {
	return c.send(ctx, http.MethodPost, endpoint, req, resp)
}

func (c *Client) put(ctx context.Context, endpoint string, req interface{}, resp interface{}) error {
	return c.send(ctx, http.MethodPut, endpoint, req, resp)
}

func (c *Client) get(ctx context.Context, endpoint string, resp interface{}) error {
	return c.send(ctx, http.MethodGet, endpoint, nil, resp)
}

func (c *Client) delete(ctx context.Context, endpoint string, resp interface{}) error {
	return c.send(ctx, http.MethodDelete, endpoint, nil, resp)
}

// send performs a request to the specified endpoint and unmarshals the
// response into the specified response object
func (c *Client) send(ctx context.Context, method, endpoint string, req interface{}, resp interface{}) error {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	var body *bytes.Buffer
	if req != nil {
		reqBody, err := json.Marshal(req)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(reqBody)
	} else {
		body = &bytes.Buffer{}
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(httpResp.Body)

		apiErr := APIError{StatusCode: httpResp.StatusCode}
		if err := json.Unmarshal(respBody, &apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = fmt.Sprintf("request failed with status code %d", httpResp.StatusCode)
		}

		// Validation responses still carry a usable editor state.
		if httpResp.StatusCode == http.StatusUnprocessableEntity && resp != nil {
			json.Unmarshal(respBody, resp)
		}
		return &apiErr
	}

	if resp != nil {
		if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
