// Package api provides the HTTP client for the jobdoc-generator backend:
// document rendering, accounts, uploaded documents and job tracking.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/careercraft/careercraft/internal/draft"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Error represents a failed backend call.
type Error struct {
	Op      string
	URL     string
	Status  int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s failed for %s: %s: %v", e.Op, e.URL, e.Message, e.Cause)
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s failed for %s: HTTP %d: %s", e.Op, e.URL, e.Status, e.Message)
	}
	return fmt.Sprintf("%s failed for %s: %s", e.Op, e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the client.
type Options struct {
	Timeout time.Duration
	Token   string
	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

// Client talks to one backend base URL. The zero Options give sensible
// defaults; the token can be set later after login.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string, opts *Options) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	if opts != nil {
		if opts.Timeout > 0 {
			c.http = &http.Client{Timeout: opts.Timeout}
		}
		if opts.HTTPClient != nil {
			c.http = opts.HTTPClient
		}
		c.token = opts.Token
	}
	return c
}

// SetToken installs the bearer credential used on authenticated calls.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the installed bearer credential.
func (c *Client) Token() string { return c.token }

// newRequest builds a request with the bearer header when a token is set.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// doJSON sends a JSON request and decodes a JSON response into out. A nil
// reqBody sends no body; a nil out discards the response body.
func (c *Client) doJSON(ctx context.Context, op, method, path string, reqBody, out any) error {
	var body io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return &Error{Op: op, URL: c.baseURL + path, Message: "encode request", Cause: err}
		}
		body = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return &Error{Op: op, URL: c.baseURL + path, Message: "create request", Cause: err}
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Op: op, URL: c.baseURL + path, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(op, path, resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Op: op, URL: c.baseURL + path, Message: "decode response", Cause: err}
	}
	return nil
}

// statusError turns a non-success response into an Error, preferring the
// server-provided detail message.
func (c *Client) statusError(op, path string, resp *http.Response) *Error {
	msg := http.StatusText(resp.StatusCode)
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(data) > 0 {
		var detail struct {
			Detail string `json:"detail"`
			ErrMsg string `json:"error"`
		}
		if json.Unmarshal(data, &detail) == nil {
			if detail.Detail != "" {
				msg = detail.Detail
			} else if detail.ErrMsg != "" {
				msg = detail.ErrMsg
			}
		}
	}
	return &Error{Op: op, URL: c.baseURL + path, Status: resp.StatusCode, Message: msg}
}

// FetchProfile retrieves the logged-in user's profile for merging into
// drafts. Requires a token.
func (c *Client) FetchProfile(ctx context.Context) (map[string]any, error) {
	if c.token == "" {
		return nil, ErrNoToken
	}
	var profile map[string]any
	if err := c.doJSON(ctx, "fetch profile", http.MethodGet, "/me", nil, &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// ListTemplates returns the template identifiers for a document shape in
// server order. The caller treats the first entry as the default choice.
func (c *Client) ListTemplates(ctx context.Context, shape *draft.Shape) ([]string, error) {
	path := fmt.Sprintf("/api/%s/templates", shape.Name)
	var out struct {
		Templates []string `json:"templates"`
	}
	if err := c.doJSON(ctx, "list templates", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Templates, nil
}

// Preview renders the draft with the chosen template and returns the HTML
// markup.
func (c *Client) Preview(ctx context.Context, shape *draft.Shape, template string, d draft.Draft) (string, error) {
	path := fmt.Sprintf("/api/%s/preview", shape.Name)
	data, err := c.postRender(ctx, "preview", path, shape, template, d)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Download renders the draft to a PDF and returns the bytes.
func (c *Client) Download(ctx context.Context, shape *draft.Shape, template string, d draft.Draft) ([]byte, error) {
	path := fmt.Sprintf("/api/%s/download", shape.Name)
	return c.postRender(ctx, "download", path, shape, template, d)
}

// postRender posts {template, <payload key>: draft} and returns the raw
// response body.
func (c *Client) postRender(ctx context.Context, op, path string, shape *draft.Shape, template string, d draft.Draft) ([]byte, error) {
	payload := map[string]any{
		"template":       template,
		shape.PayloadKey: d,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, &Error{Op: op, URL: c.baseURL + path, Message: "encode request", Cause: err}
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(data))
	if err != nil {
		return nil, &Error{Op: op, URL: c.baseURL + path, Message: "create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Op: op, URL: c.baseURL + path, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(op, path, resp)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Op: op, URL: c.baseURL + path, Message: "read response", Cause: err}
	}
	return body, nil
}

// GenerateBody asks the backend's AI endpoint to write a cover-letter body
// from the draft context and the user's instruction.
func (c *Client) GenerateBody(ctx context.Context, d draft.Draft, instruction string) (string, error) {
	payload := map[string]any{
		"context":    d,
		"user_input": instruction,
	}
	var out struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := c.doJSON(ctx, "generate body", http.MethodPost, "/api/cover-letter/generate-ai", payload, &out); err != nil {
		return "", err
	}
	return out.GeneratedText, nil
}
