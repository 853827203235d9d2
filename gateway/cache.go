package gateway

import (
	"context"
	"net/http"
	"sync/atomic"

	json "github.com/goccy/go-json"
)

// BotEndpoint is the well-known path the descriptor is fetched from.
const BotEndpoint = "/gateway/bot"

// Descriptor describes how to open realtime connections: the websocket URL
// and the shard count the API recommends for this bot.
type Descriptor struct {
	URL                   string
	RecommendedShardCount int
}

// Cache is a process-lifetime, single-slot cache of the gateway descriptor.
// The slot is populated on first Get via the Requester and never invalidated
// or refreshed; there is no eviction and no reset.
//
// Population is guarded by a compare-and-swap, not a lock. Several callers
// observing an empty slot may each issue the fetch; the fetch is idempotent,
// one result wins the swap, and the extra round trips are an accepted cost.
// Callers that need single-flight semantics must coordinate around Get
// themselves.
type Cache struct {
	req  Requester
	slot atomic.Pointer[Descriptor]
}

// NewCache builds an empty cache that populates itself through req.
func NewCache(req Requester) *Cache {
	return &Cache{req: req}
}

// Get returns the cached descriptor, fetching it on first use. A populated
// slot is returned immediately with no I/O. On request failure the slot
// stays empty, a *APIError is returned, and the next caller retries the
// fetch; retry policy is the caller's, not this layer's.
func (c *Cache) Get(ctx context.Context) (Descriptor, error) {
	if d := c.slot.Load(); d != nil {
		return *d, nil
	}
	m, err := c.req.Request(ctx, http.MethodGet, BotEndpoint, nil)
	if err != nil {
		if _, ok := err.(*APIError); ok {
			return Descriptor{}, err
		}
		return Descriptor{}, &APIError{Message: err.Error()}
	}
	d, err := parseDescriptor(m)
	if err != nil {
		return Descriptor{}, err
	}
	c.slot.CompareAndSwap(nil, &d)
	return *c.slot.Load(), nil
}

// parseDescriptor extracts the two descriptor fields from the response body.
// "shards" defaults to 1 when absent or null.
func parseDescriptor(m map[string]any) (Descriptor, error) {
	u, ok := m["url"].(string)
	if !ok || u == "" {
		return Descriptor{}, &APIError{Message: "gateway response missing url"}
	}
	shards := 1
	switch n := m["shards"].(type) {
	case nil:
		// default
	case float64:
		shards = int(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			shards = int(i)
		}
	case int:
		shards = n
	default:
		return Descriptor{}, &APIError{Message: "gateway response has malformed shards"}
	}
	return Descriptor{URL: u, RecommendedShardCount: shards}, nil
}
