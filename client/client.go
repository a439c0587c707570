// Package client holds the configured HTTP client the query executor
// runs against. Connection setup (TLS, proxies, auth) belongs to the
// round tripper the caller plugs in.
package client

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/slok/promquery/log"
)

// Config is the configuration to create a Client.
type Config struct {
	// Address is the base URL of the query API, including the API
	// prefix, e.g. "http://127.0.0.1:9090/api/v1".
	Address string
	// Timeout is the whole-request timeout of the HTTP client.
	Timeout time.Duration
	// RoundTripper replaces or instruments the transport.
	RoundTripper http.RoundTripper
	// Logger is the logger used by query execution.
	Logger log.Logger
}

func (c *Config) defaults() {
	const defTimeout = 10 * time.Second

	if c.Timeout == 0 {
		c.Timeout = defTimeout
	}
	if c.RoundTripper == nil {
		c.RoundTripper = http.DefaultTransport
	}
	if c.Logger == nil {
		c.Logger = log.Dummy
	}
}

// Client is a configured query API client. It is safe for concurrent
// use, every query execution is independent.
type Client struct {
	baseURL string
	httpCli *http.Client
	logger  log.Logger
}

// New validates the configuration and returns a ready to use Client.
func New(cfg Config) (*Client, error) {
	cfg.defaults()

	u, err := url.Parse(cfg.Address)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid address %q", cfg.Address)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("invalid address %q: missing scheme or host", cfg.Address)
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.Address, "/"),
		httpCli: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: cfg.RoundTripper,
		},
		logger: cfg.Logger,
	}, nil
}

// BaseURL returns the base URL endpoints get appended to.
func (c *Client) BaseURL() string { return c.baseURL }

// HTTPClient returns the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client { return c.httpCli }

// Logger returns the client logger.
func (c *Client) Logger() log.Logger { return c.logger }
