package gateway

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

const defaultTimeout = 15 * time.Second

// HTTPRequester is the net/http implementation of Requester. It authenticates
// with a bot token and decodes JSON response bodies.
type HTTPRequester struct {
	baseURL string
	token   string
	client  *http.Client
	log     *zap.Logger
}

// Option configures an HTTPRequester.
type Option func(*HTTPRequester)

// WithHTTPClient replaces the underlying HTTP client, e.g. to set a custom
// transport or timeout policy.
func WithHTTPClient(c *http.Client) Option {
	return func(r *HTTPRequester) { r.client = c }
}

// WithLogger installs a request logger. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *HTTPRequester) { r.log = l }
}

// NewHTTPRequester builds a requester against baseURL (e.g.
// "https://api.lumachat.dev/v1") authenticating with the given bot token.
func NewHTTPRequester(baseURL, token string, opts ...Option) *HTTPRequester {
	r := &HTTPRequester{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: defaultTimeout},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Request implements Requester. Non-2xx responses are mapped to *APIError,
// using the body's "message" field when the API supplies one. An empty 2xx
// body yields a nil map.
func (r *HTTPRequester) Request(ctx context.Context, method, path string, body []byte) (map[string]any, error) {
	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
	if err != nil {
		return nil, &APIError{Message: err.Error()}
	}
	req.Header.Set("Authorization", "Bot "+r.token)
	req.Header.Set("User-Agent", "wirecast (github.com/lumachat/wirecast)")
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &APIError{Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: err.Error()}
	}
	r.log.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}
	if len(data) == 0 {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "malformed response body: " + err.Error()}
	}
	return m, nil
}

// errorMessage pulls the API's "message" field out of an error body, falling
// back to the raw body text.
func errorMessage(data []byte) string {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err == nil {
		if s, ok := m["message"].(string); ok && s != "" {
			return s
		}
	}
	return strings.TrimSpace(string(data))
}
