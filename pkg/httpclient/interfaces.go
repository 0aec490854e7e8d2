package httpclient

import (
	"context"
	"net/url"
)

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// BasicAuth carries credentials for the Authorization header.
type BasicAuth struct {
	Username string
	Password string
}

// Request holds the per-call options of a GET.
type Request struct {
	Query   url.Values
	Headers map[string]string
	Auth    *BasicAuth
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
type Client interface {
	Get(ctx context.Context, url string, req Request) (Response, error)
	Close() error
}
