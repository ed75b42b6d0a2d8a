// Package client is the Go SDK for the Bazaar storefront backend.
//
// Every operation issues exactly one HTTP request and returns either the
// decoded response or a *RequestError. The client never retries, caches or
// queues work.
package client

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/bazaar-shop/bazaar/client/devmode"
	"github.com/bazaar-shop/bazaar/client/internal/api"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// defaultHTTPTimeout bounds a request when no timeout option is given and
// no caller http.Client is supplied.
const defaultHTTPTimeout = 30 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
	backend *api.Backend

	// Recorded by options; http is built from them after all options ran.
	userHTTP *http.Client
	timeout  time.Duration

	debug       bool
	tracing     bool
	relayBypass bool

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for the backend at baseURL.
// Additional options can be provided via functional arguments.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("baseURL cannot be empty")
	}

	c := &Client{
		baseURL:     baseURL,
		logger:      log.Logger,
		relayBypass: true,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.buildHTTPClient()
	c.wrapTransport()
	c.backend = api.NewBackend(c.http, c.baseURL, c.logger)
	return c, nil
}

// buildHTTPClient settles the http.Client from the recorded options. A
// caller client is copied and keeps its own timeout unless WithHTTPTimeout
// was given.
func (c *Client) buildHTTPClient() {
	if c.userHTTP != nil {
		cp := *c.userHTTP
		c.http = &cp
	} else {
		c.http = &http.Client{Timeout: defaultHTTPTimeout}
	}
	if c.timeout > 0 {
		c.http.Timeout = c.timeout
	}
}

// wrapTransport composes the transport chain, innermost first:
// base, debug dump, OpenTelemetry, relay bypass header.
func (c *Client) wrapTransport() {
	rt := c.http.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	if c.debug {
		rt = &debugTransport{base: rt, logger: c.logger}
	}
	if c.tracing {
		rt = otelhttp.NewTransport(rt)
	}
	if c.relayBypass {
		rt = &relayBypassTransport{base: rt}
	}
	c.http.Transport = rt
}

// relayBypassTransport adds the development tunnel bypass header to every request.
type relayBypassTransport struct {
	base http.RoundTripper
}

func (t *relayBypassTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	cloned.Header.Set(devmode.RelayBypassHeader, devmode.RelayBypassValue)
	return t.base.RoundTrip(cloned)
}

func (t *relayBypassTransport) CloseIdleConnections() { closeIdle(t.base) }

// closeIdle forwards to rt when it can drop idle connections, so
// http.Client.CloseIdleConnections reaches the base transport through our
// wrappers.
func closeIdle(rt http.RoundTripper) {
	type closeIdler interface{ CloseIdleConnections() }
	if ci, ok := rt.(closeIdler); ok {
		ci.CloseIdleConnections()
	}
}

// BaseURL returns the backend base URL the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// Close releases idle connections. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	c.http.CloseIdleConnections()
	return nil
}

// --------------------------------------------------------------------
// Address operations
// --------------------------------------------------------------------

// ListAddresses returns the caller's saved addresses as sent by the backend.
func (c *Client) ListAddresses(ctx context.Context, token string) (Document, error) {
	return api.ListAddresses(ctx, c.backend, token)
}

// CreateAddress stores a new delivery address.
func (c *Client) CreateAddress(ctx context.Context, req CreateAddressRequest, token string) (Document, error) {
	return api.CreateAddress(ctx, c.backend, req, token)
}

// --------------------------------------------------------------------
// Auth operations
// --------------------------------------------------------------------

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (Document, error) {
	return api.Register(ctx, c.backend, req)
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (Document, error) {
	return api.Login(ctx, c.backend, req)
}

// Logout ends the session behind token.
func (c *Client) Logout(ctx context.Context, token string) (Document, error) {
	return api.Logout(ctx, c.backend, token)
}

// VerifyToken reports whether token is still accepted. It never fails:
// a 401, any other error status and network failures all yield false.
func (c *Client) VerifyToken(ctx context.Context, token string) bool {
	return api.VerifyToken(ctx, c.backend, token)
}

// --------------------------------------------------------------------
// Cart operations
// --------------------------------------------------------------------

// AddToCart adds a product to the caller's cart.
func (c *Client) AddToCart(ctx context.Context, req AddToCartRequest, token string) (Document, error) {
	return api.AddToCart(ctx, c.backend, req, token)
}

// FetchCart returns the caller's cart.
func (c *Client) FetchCart(ctx context.Context, token string) (Document, error) {
	return api.FetchCart(ctx, c.backend, token)
}

// UpdateCartItem sets the quantity of a cart item.
func (c *Client) UpdateCartItem(ctx context.Context, req UpdateCartItemRequest, token string) (Document, error) {
	return api.UpdateCartItem(ctx, c.backend, req, token)
}

// DeleteCartItem removes a single item from the cart.
func (c *Client) DeleteCartItem(ctx context.Context, itemID, token string) (Document, error) {
	return api.DeleteCartItem(ctx, c.backend, itemID, token)
}

// ClearCart empties the cart.
func (c *Client) ClearCart(ctx context.Context, token string) (Document, error) {
	return api.ClearCart(ctx, c.backend, token)
}

// --------------------------------------------------------------------
// Catalogue operations
// --------------------------------------------------------------------

// FetchCategories lists all categories.
func (c *Client) FetchCategories(ctx context.Context) ([]Category, error) {
	return api.FetchCategories(ctx, c.backend)
}

// FetchProducts returns one page of products.
func (c *Client) FetchProducts(ctx context.Context, q ProductQuery) (*ProductResponse, error) {
	return api.FetchProducts(ctx, c.backend, q)
}

// FetchProductDetails returns the product with the given id.
func (c *Client) FetchProductDetails(ctx context.Context, id string) (*Product, error) {
	return api.FetchProductDetails(ctx, c.backend, id)
}

// CreateRating rates a product.
func (c *Client) CreateRating(ctx context.Context, productID string, req RatingRequest, token string) (Document, error) {
	return api.CreateRating(ctx, c.backend, productID, req, token)
}

// --------------------------------------------------------------------
// Checkout operations
// --------------------------------------------------------------------

// CreateOrder places an order for the cart, delivered to addressID.
func (c *Client) CreateOrder(ctx context.Context, addressID, token string) (Document, error) {
	return api.CreateOrder(ctx, c.backend, addressID, token)
}

// FetchOrders lists the caller's orders.
func (c *Client) FetchOrders(ctx context.Context, token string) (Document, error) {
	return api.FetchOrders(ctx, c.backend, token)
}

// MakePayment records a payment for an order.
func (c *Client) MakePayment(ctx context.Context, req PaymentRequest, token string) (Document, error) {
	return api.MakePayment(ctx, c.backend, req, token)
}

// --------------------------------------------------------------------
// User operations
// --------------------------------------------------------------------

// FetchUserDetails returns the account that owns token.
func (c *Client) FetchUserDetails(ctx context.Context, token string) (*User, error) {
	return api.FetchUserDetails(ctx, c.backend, token)
}
