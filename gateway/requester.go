// Package gateway resolves and caches the realtime gateway descriptor: the
// websocket URL plus the recommended shard count for opening connections.
package gateway

import (
	"context"
	"fmt"
)

// Requester performs one authenticated call against the remote HTTP API and
// returns the decoded JSON body. Implementations own timeouts and transport
// concerns; this package issues at most one logical request per descriptor
// fetch and never retries.
type Requester interface {
	Request(ctx context.Context, method, path string, body []byte) (map[string]any, error)
}

// APIError reports a failed or rejected remote request, carrying the upstream
// status and message. A zero StatusCode means the request never reached the
// API (transport failure).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("gateway: request failed: %s", e.Message)
	}
	return fmt.Sprintf("gateway: api error (status %d): %s", e.StatusCode, e.Message)
}
