package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

// Document is one uploaded file on the documents screen.
type Document struct {
	Filename   string `json:"filename"`
	Size       int64  `json:"size"`
	UploadedAt string `json:"uploaded_at"`
}

// ListDocuments returns the user's uploaded documents. Requires a token.
func (c *Client) ListDocuments(ctx context.Context) ([]Document, error) {
	if c.token == "" {
		return nil, ErrNoToken
	}
	var docs []Document
	if err := c.doJSON(ctx, "list documents", http.MethodGet, "/documents", nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// UploadDocument uploads one file as multipart form data under the "file"
// field. Requires a token.
func (c *Client) UploadDocument(ctx context.Context, filename string, r io.Reader) error {
	if c.token == "" {
		return ErrNoToken
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("api: create upload form: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("api: read upload content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("api: finish upload form: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/documents/upload", &buf)
	if err != nil {
		return &Error{Op: "upload document", URL: c.baseURL + "/documents/upload", Message: "create request", Cause: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Op: "upload document", URL: c.baseURL + "/documents/upload", Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError("upload document", "/documents/upload", resp)
	}
	return nil
}

// DownloadDocument fetches an uploaded file's bytes. The token rides in
// the query string, matching the backend's download links.
func (c *Client) DownloadDocument(ctx context.Context, filename string) ([]byte, error) {
	if c.token == "" {
		return nil, ErrNoToken
	}
	path := fmt.Sprintf("/documents/download/%s?token=%s",
		url.PathEscape(filename), url.QueryEscape(c.token))

	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, &Error{Op: "download document", URL: c.baseURL + path, Message: "create request", Cause: err}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Op: "download document", URL: c.baseURL + path, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError("download document", path, resp)
	}
	return io.ReadAll(resp.Body)
}

// DeleteDocument removes an uploaded file. Requires a token.
func (c *Client) DeleteDocument(ctx context.Context, filename string) error {
	if c.token == "" {
		return ErrNoToken
	}
	path := "/documents/delete/" + url.PathEscape(filename)
	return c.doJSON(ctx, "delete document", http.MethodDelete, path, nil, nil)
}
