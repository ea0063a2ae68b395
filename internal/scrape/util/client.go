package util

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	DefaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	DefaultAccept         = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	DefaultAcceptLanguage = "en-US,en;q=0.5"
)

type ClientOptions struct {
	UserAgent      string
	Accept         string
	AcceptLanguage string
	Limiter        *HostLimiter
	HTTP           *http.Client // nil uses a client with a 30s ceiling
}

// Client is the request configuration shared by every source. It is built
// once and never mutated, so scrapers use it concurrently without locking.
type Client struct {
	hc      *http.Client
	header  http.Header
	limiter *HostLimiter
}

func NewClient(opts ClientOptions) *Client {
	h := http.Header{}
	h.Set("User-Agent", FirstNonEmpty(opts.UserAgent, DefaultUserAgent))
	h.Set("Accept", FirstNonEmpty(opts.Accept, DefaultAccept))
	h.Set("Accept-Language", FirstNonEmpty(opts.AcceptLanguage, DefaultAcceptLanguage))

	hc := opts.HTTP
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{hc: hc, header: h, limiter: opts.Limiter}
}

// Header returns a copy of the headers sent with every request.
func (c *Client) Header() http.Header { return c.header.Clone() }

// Get fetches rawURL with the shared headers and returns the body and status.
// Status handling is left to the caller.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header = c.header.Clone()

	if err := c.limiter.WaitURL(ctx, rawURL); err != nil {
		return nil, 0, err
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, res.StatusCode, fmt.Errorf("read body: %w", err)
	}
	return body, res.StatusCode, nil
}
