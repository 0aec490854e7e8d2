package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestyClientGetSendsQueryHeadersAndAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, []string{"go", "rust"}, r.URL.Query()["topic"])
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "alice", user)
		assert.Equal(t, "secret", pass)
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewRestyClient(2 * time.Second)
	defer c.Close()

	resp, err := c.Get(context.Background(), srv.URL, Request{
		Query:   url.Values{"topic": {"go", "rust"}},
		Headers: map[string]string{"Accept": "application/json"},
		Auth:    &BasicAuth{Username: "alice", Password: "secret"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode())
	assert.JSONEq(t, `{"ok":true}`, string(resp.Body()))
}

func TestRestyClientGetOmitsAuthorizationWithoutCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Empty(t, r.URL.RawQuery)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewRestyClient(0)
	defer c.Close()

	resp, err := c.Get(context.Background(), srv.URL, Request{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
}

func TestRestyClientGetTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	target := srv.URL
	srv.Close()

	c := NewRestyClient(time.Second)
	defer c.Close()

	_, err := c.Get(context.Background(), target, Request{})
	require.Error(t, err)
}

func TestRestyClientCloseIsIdempotent(t *testing.T) {
	c := NewRestyClient(time.Second)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}
