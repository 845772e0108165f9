package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// TokenSource supplies the bearer credential for a request, if one exists.
// It is injected at construction so the client never reads ambient state.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// TokenSourceFunc adapts a function to the TokenSource interface.
type TokenSourceFunc func(ctx context.Context) (string, bool)

func (f TokenSourceFunc) Token(ctx context.Context) (string, bool) { return f(ctx) }

// ErrUnauthenticated is returned when the upstream rejects the credential.
// The injected OnUnauthenticated callback has already run by the time a
// caller sees this error.
var ErrUnauthenticated = errors.New("upstream rejected credential")

// APIError is a non-2xx upstream response carrying the server-provided message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream responded %d: %s", e.Status, e.Message)
}

// Client issues authenticated requests against the marketplace API. It does
// not retry, queue or de-duplicate; every call is a single request/response.
type Client struct {
	baseURL           string
	httpClient        *http.Client
	tokens            TokenSource
	onUnauthenticated func(ctx context.Context)
}

// NewClient creates a Client for the given base URL. tokens may be nil for a
// client that only hits public endpoints; onUnauthenticated may be nil when
// no session teardown is wanted (tests).
func NewClient(baseURL string, httpClient *http.Client, tokens TokenSource, onUnauthenticated func(ctx context.Context)) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:           strings.TrimRight(baseURL, "/"),
		httpClient:        httpClient,
		tokens:            tokens,
		onUnauthenticated: onUnauthenticated,
	}
}

// do issues one request. body (if non-nil) is JSON-encoded; out (if non-nil)
// receives the decoded response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body for %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request for %s %s: %w", method, path, err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.decorate(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	return c.consume(ctx, method, path, resp, out)
}

// decorate attaches the bearer credential (when available) and a request id
// for upstream log correlation.
func (c *Client) decorate(ctx context.Context, req *http.Request) {
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.tokens != nil {
		if token, ok := c.tokens.Token(ctx); ok && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

// consume maps the response status and decodes the body into out.
func (c *Client) consume(ctx context.Context, method, path string, resp *http.Response, out any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read upstream response for %s %s: %w", method, path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Client-wide side effect, not scoped to the failing call.
		if c.onUnauthenticated != nil {
			c.onUnauthenticated(ctx)
		}
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthenticated)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: serverMessage(data)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode upstream response for %s %s: %w", method, path, err)
	}
	return nil
}

// serverMessage extracts the human-readable message from an upstream error
// body, falling back to a generic one.
func serverMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return "request failed"
}
