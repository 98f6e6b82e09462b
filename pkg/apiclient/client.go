// Package apiclient is a typed client for the content API, used by the
// admin tooling to read and write team members and job postings.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cenit-labs.backend/internal/domain/entities"
)

const defaultTimeout = 30 * time.Second

// AdminPasswordHeader carries the admin password on write requests.
const AdminPasswordHeader = "X-Admin-Password"

type Client struct {
	baseURL       string
	adminPassword string
	httpClient    *http.Client
}

type Option func(*Client)

// WithAdminPassword attaches the admin password to every request.
func WithAdminPassword(password string) Option {
	return func(c *Client) { c.adminPassword = password }
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// UploadResult is the response of an image upload.
type UploadResult struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl"`
}

func (c *Client) ListTeamMembers(ctx context.Context) ([]*entities.TeamMember, error) {
	var members []*entities.TeamMember
	if err := c.do(ctx, http.MethodGet, "/api/team", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (c *Client) GetTeamMember(ctx context.Context, id string) (*entities.TeamMember, error) {
	var member entities.TeamMember
	if err := c.do(ctx, http.MethodGet, "/api/team/"+id, nil, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (c *Client) CreateTeamMember(ctx context.Context, member *entities.TeamMember) (*entities.TeamMember, error) {
	var created entities.TeamMember
	if err := c.do(ctx, http.MethodPost, "/api/team", member, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTeamMember sends a full replacement and returns the stored
// representation.
func (c *Client) UpdateTeamMember(ctx context.Context, member *entities.TeamMember) (*entities.TeamMember, error) {
	var updated entities.TeamMember
	if err := c.do(ctx, http.MethodPut, "/api/team/"+member.ID, member, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteTeamMember(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/team/"+id, nil, nil)
}

func (c *Client) ReorderTeamMembers(ctx context.Context, updates []entities.OrderUpdate) error {
	return c.do(ctx, http.MethodPut, "/api/team", updates, nil)
}

func (c *Client) ListJobs(ctx context.Context) ([]*entities.Job, error) {
	var jobs []*entities.Job
	if err := c.do(ctx, http.MethodGet, "/api/jobs", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *Client) CreateJob(ctx context.Context, job *entities.Job) (*entities.Job, error) {
	var created entities.Job
	if err := c.do(ctx, http.MethodPost, "/api/jobs", job, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateJob(ctx context.Context, job *entities.Job) (*entities.Job, error) {
	var updated entities.Job
	if err := c.do(ctx, http.MethodPut, "/api/jobs/"+job.ID, job, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteJob(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/jobs/"+id, nil, nil)
}

// UploadImage sends a base64 data URL and returns the hosted image URL.
func (c *Client) UploadImage(ctx context.Context, dataURL, filename string) (*UploadResult, error) {
	body := map[string]string{"image": dataURL}
	if filename != "" {
		body["filename"] = filename
	}
	var result UploadResult
	if err := c.do(ctx, http.MethodPost, "/api/upload", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.adminPassword != "" {
		req.Header.Set(AdminPasswordHeader, c.adminPassword)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func errorMessage(raw []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return strings.TrimSpace(string(raw))
}
