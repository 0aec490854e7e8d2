package httpclient

import (
	"context"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyClient adapts resty.Client to the httpclient.Client interface.
type RestyClient struct {
	client    *resty.Client
	closeOnce sync.Once
}

// NewRestyClient creates a new RestyClient with the specified timeout.
func NewRestyClient(timeout time.Duration) *RestyClient {
	return &RestyClient{client: newRestyBaseClient(timeout)}
}

// newRestyBaseClient creates a new resty.Client with the specified timeout.
// A non-positive timeout keeps resty's default of no timeout.
func newRestyBaseClient(timeout time.Duration) *resty.Client {
	c := resty.New()
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	// The catalog is commonly served over plain http on localhost.
	c.SetDisableWarn(true)
	return c
}

// Get performs an HTTP GET request with the specified context, URL, and request options.
// resty reads and closes the response body before returning, on success and failure alike.
func (r *RestyClient) Get(ctx context.Context, url string, opts Request) (Response, error) {
	req := r.client.R().SetContext(ctx)
	if len(opts.Query) > 0 {
		req.SetQueryParamsFromValues(opts.Query)
	}
	if len(opts.Headers) > 0 {
		req.SetHeaders(opts.Headers)
	}
	if opts.Auth != nil {
		req.SetBasicAuth(opts.Auth.Username, opts.Auth.Password)
	}
	resp, err := req.Get(url)
	if err != nil {
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

// Close releases idle connections held by the underlying transport.
func (r *RestyClient) Close() error {
	r.closeOnce.Do(func() {
		r.client.GetClient().CloseIdleConnections()
	})
	return nil
}

// restyResponseAdapter adapts resty.Response to the httpclient.Response interface.
type restyResponseAdapter struct {
	resp *resty.Response
}

func (r *restyResponseAdapter) Body() []byte    { return r.resp.Body() }
func (r *restyResponseAdapter) StatusCode() int { return r.resp.StatusCode() }
