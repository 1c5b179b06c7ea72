package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stitchdesk/stitchdesk/internal/client/token"
	"github.com/stitchdesk/stitchdesk/internal/common"
	"github.com/stitchdesk/stitchdesk/internal/logging"
)

// ResponseHook runs after every response, before classification. Hooks must
// not read the response body.
type ResponseHook func(resp *http.Response)

// Options fixes the construction-time parameters of a Client.
type Options struct {
	BaseURL      string
	AssetBaseURL string
	Timeout      time.Duration
}

// Client wraps net/http for the StitchDesk REST backend. Resource services
// never touch transport details directly; they go through the verb methods
// and UploadFile.
type Client struct {
	opts   Options
	http   *http.Client
	tokens token.Store
	log    logging.Logger
	hooks  []ResponseHook
}

// New constructs a Client. The clear-token-on-401 reaction is registered
// here as an ordinary post-response hook. It is a one-shot reactive cleanup:
// the Client never re-authenticates or replays a request.
func New(opts Options, tokens token.Store, log logging.Logger) *Client {
	c := &Client{
		opts:   opts,
		http:   &http.Client{Timeout: opts.Timeout},
		tokens: tokens,
		log:    log,
	}
	c.OnResponse(func(resp *http.Response) {
		if resp.StatusCode == http.StatusUnauthorized {
			_ = tokens.Clear()
		}
	})
	return c
}

// OnResponse registers a hook invoked after every response.
func (c *Client) OnResponse(h ResponseHook) {
	c.hooks = append(c.hooks, h)
}

// AssetURL resolves a backend-relative asset path (e.g. a brand logo
// reference) against the configured asset base URL.
func (c *Client) AssetURL(path string) string {
	return strings.TrimRight(c.opts.AssetBaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// Get performs a GET request. Query may be nil. The decoded response body is
// written into out when out is non-nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, query, nil, out)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, nil, body, out)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, nil, body, out)
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any, out any) error {
	return c.doJSON(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}
	return c.do(ctx, method, path, query, "application/json", reader, out)
}

// do performs exactly one request. It injects the bearer token when one is
// stored, runs the registered response hooks, and classifies failures.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader, out any) error {
	u := strings.TrimRight(c.opts.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u = u + "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	if t, ok := c.tokens.Get(); ok {
		req.Header.Set(common.AuthHeaderName, "Bearer "+t)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	for _, h := range c.hooks {
		h(resp)
	}

	if resp.StatusCode >= 400 {
		return c.classify(ctx, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// classify maps an error status to the failure taxonomy. The body is parsed
// as the generic error payload; absent or malformed bodies fall back to the
// HTTP status text.
func (c *Client) classify(ctx context.Context, resp *http.Response) error {
	var eb errorBody
	data, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(data, &eb)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return common.ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrNotFound
	case http.StatusUnprocessableEntity:
		return &ValidationError{Message: eb.Message, Fields: eb.Errors}
	default:
		msg := eb.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		c.log.Warn(ctx, "backend error", "status", resp.StatusCode, "message", msg)
		return &APIError{Status: resp.StatusCode, Message: msg}
	}
}
