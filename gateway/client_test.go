package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumachat/wirecast/gateway"
)

func TestHTTPRequester_AuthAndDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bot sekrit", r.Header.Get("Authorization"))
		assert.Equal(t, gateway.BotEndpoint, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"wss://gateway.example","shards":4}`))
	}))
	defer srv.Close()

	req := gateway.NewHTTPRequester(srv.URL, "sekrit")
	m, err := req.Request(context.Background(), http.MethodGet, gateway.BotEndpoint, nil)
	require.NoError(t, err)
	assert.Equal(t, "wss://gateway.example", m["url"])
	assert.Equal(t, 4.0, m["shards"])
}

func TestHTTPRequester_ErrorStatusCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"401: Unauthorized"}`))
	}))
	defer srv.Close()

	req := gateway.NewHTTPRequester(srv.URL, "bad")
	_, err := req.Request(context.Background(), http.MethodGet, gateway.BotEndpoint, nil)
	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "401: Unauthorized", apiErr.Message)
}

func TestHTTPRequester_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	req := gateway.NewHTTPRequester(srv.URL, "tok")
	m, err := req.Request(context.Background(), http.MethodGet, "/anything", nil)
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestHTTPRequester_TransportFailure(t *testing.T) {
	req := gateway.NewHTTPRequester("http://127.0.0.1:1", "tok")
	_, err := req.Request(context.Background(), http.MethodGet, gateway.BotEndpoint, nil)
	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.StatusCode)
}
