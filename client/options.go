package client

// Functional options that configure the Client during construction.
// Keeping them in a standalone file makes it easy to discover all
// available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option mutates the Client during New().
type Option func(*Client) error

// WithHTTPClient injects a custom *http.Client. Useful for setting
// transport timeouts, tracing, custom TLS settings, etc.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("nil http client")
		}
		c.http = hc
		return nil
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("timeout must be positive")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the client's transport such that every
// request/response is logged when enabled is true.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			transport := c.http.Transport
			if transport == nil {
				transport = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: transport}
		}
		return nil
	}
}

// WithLocalStore attaches a device-local store. It backs guest-mode
// task and journal operations and persists the session token across
// restarts.
func WithLocalStore(ls GuestStore) Option {
	return func(c *Client) error {
		if ls == nil {
			return fmt.Errorf("nil local store")
		}
		c.local = ls
		c.session = NewSessionManager(ls)
		return nil
	}
}
