package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
//
// Options only record settings; the http.Client and its transport chain are
// assembled after all options ran, so their order does not matter.
type Option func(*Client) error

// WithHTTPClient makes the SDK issue requests through a copy of hc. The
// caller's client is never modified. Its Timeout is kept unless
// WithHTTPTimeout is also given.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.userHTTP = hc
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse bound on a single request including reading the response.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.timeout = d
		return nil
	}
}

// WithDebugLogging dumps every request and response at debug level when
// enabled is true. Bearer tokens are redacted from the dumps.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = enabled
		return nil
	}
}

// WithTracing wraps the transport with OpenTelemetry instrumentation so each
// call produces a client span and propagates trace context.
func WithTracing(enabled bool) Option {
	return func(c *Client) error {
		c.tracing = enabled
		return nil
	}
}

// WithRelayBypass controls the ngrok bypass header. It is on by default.
func WithRelayBypass(enabled bool) Option {
	return func(c *Client) error {
		c.relayBypass = enabled
		return nil
	}
}

// WithLogger sets the logger used for request failures and debug dumps.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.logger = l
		return nil
	}
}
