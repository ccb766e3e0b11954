// Package api is the typed HTTP client for the health shop backend. It
// attaches the stored bearer token to every request, enforces a fixed request
// timeout, and purges durable credentials whenever any response comes back 401.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"

	"healthshop-client/internal/config"
	"healthshop-client/internal/credentials"
	"healthshop-client/internal/domain"
)

// APIError carries the status and the backend-provided message of a failed
// request. The message is shown to users verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

// Is lets callers match 404 responses with errors.Is(err, domain.ErrNotFound).
func (e *APIError) Is(target error) bool {
	return target == domain.ErrNotFound && e.Status == http.StatusNotFound
}

// Client issues JSON requests against the backend.
type Client struct {
	baseURL string
	http    *http.Client
	creds   *credentials.Store
	logger  *log.Logger
}

// New builds a Client from config. creds supplies the bearer token and is
// cleared when the backend rejects it.
func New(cfg config.Client, creds *credentials.Store, logger *log.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		creds:   creds,
		logger:  logger,
	}
}

// errorBody is the backend's error envelope.
type errorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.creds.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		if resp.StatusCode == http.StatusUnauthorized {
			// Global invalidation rule: a rejected token is purged no matter
			// which call observed the rejection.
			if err := c.creds.Clear(); err != nil && c.logger != nil {
				c.logger.Printf("clear credentials after 401: %v", err)
			}
		}
		apiErr := &APIError{Status: resp.StatusCode}
		var eb errorBody
		if data, readErr := io.ReadAll(resp.Body); readErr == nil {
			if json.Unmarshal(data, &eb) == nil && eb.Message != "" {
				apiErr.Message = eb.Message
			}
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, query url.Values, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, query, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// IsTimeout reports whether err is a request timeout.
func IsTimeout(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// IsUnreachable reports whether err looks like the server cannot be reached
// at all (refused connection, DNS failure) rather than an application error.
func IsUnreachable(err error) bool {
	var oe *net.OpError
	return errors.As(err, &oe)
}

// StatusOf returns the HTTP status of an API error, or 0 for transport errors.
func StatusOf(err error) int {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Status
	}
	return 0
}
