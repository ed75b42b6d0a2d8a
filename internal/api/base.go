package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	sdkerrors "github.com/bazaar-shop/bazaar/client/internal/errors"
)

// RequestIDHeader carries a per-request UUID so client and backend logs can
// be correlated.
const RequestIDHeader = "X-Request-ID"

// Backend executes API calls against a single base URL. All calls share the
// caller's *http.Client, so transport wrappers (debug, tracing, relay
// bypass) apply uniformly.
type Backend struct {
	rest   *resty.Client
	logger zerolog.Logger
}

// NewBackend builds a Backend on top of httpClient.
func NewBackend(httpClient *http.Client, baseURL string, logger zerolog.Logger) *Backend {
	rest := resty.NewWithClient(httpClient).
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetLogger(restyLogger{logger}).
		SetDisableWarn(true)
	return &Backend{rest: rest, logger: logger}
}

// call describes one API operation.
type call struct {
	op         string // used in errors and logs, e.g. "fetch addresses"
	method     string
	path       string // may contain {name} placeholders
	pathParams map[string]string
	query      string // pre-encoded, order preserved
	token      string // bearer token; empty for public endpoints
	body       any
}

// execute issues exactly one request and returns the response whatever its
// status. Only transport failures are returned as errors.
func (b *Backend) execute(ctx context.Context, c call) (*resty.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, sdkerrors.NewNetworkError(c.op, c.method, c.path, err)
	}

	req := b.rest.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader(RequestIDHeader, uuid.NewString())
	if c.token != "" {
		req.SetAuthToken(c.token)
	}
	if c.body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(c.body)
	}
	if len(c.pathParams) > 0 {
		req.SetPathParams(c.pathParams)
	}

	url := c.path
	if c.query != "" {
		url += "?" + c.query
	}

	start := time.Now()
	resp, err := req.Execute(c.method, url)
	requestDuration.WithLabelValues(c.op).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(c.op, "error").Inc()
		return nil, sdkerrors.NewNetworkError(c.op, c.method, c.path, err)
	}
	requestsTotal.WithLabelValues(c.op, strconv.Itoa(resp.StatusCode())).Inc()
	return resp, nil
}

// do executes c, rejects non-2xx responses and decodes the body into T.
// Failures are logged before they are returned.
func do[T any](ctx context.Context, b *Backend, c call) (T, error) {
	var out T
	resp, err := b.execute(ctx, c)
	if err != nil {
		b.logFailure(c, resp, err)
		return out, err
	}
	if !resp.IsSuccess() {
		err := sdkerrors.NewHTTPError(c.op, c.method, c.path, resp.StatusCode(), resp.Body())
		b.logFailure(c, resp, err)
		return out, err
	}
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		derr := sdkerrors.NewDecodeError(c.op, c.method, c.path, resp.StatusCode(), resp.Body(), err)
		b.logFailure(c, resp, derr)
		return out, derr
	}
	return out, nil
}

func (b *Backend) logFailure(c call, resp *resty.Response, err error) {
	ev := b.logger.Error().Err(err).
		Str("operation", c.op).
		Str("method", c.method).
		Str("path", c.path)
	if resp != nil {
		ev = ev.Int("status_code", resp.StatusCode()).
			Str("request_id", resp.Request.Header.Get(RequestIDHeader))
	}
	ev.Msgf("error during %s", c.op)
}

// restyLogger routes resty's internal messages into zerolog.
type restyLogger struct{ l zerolog.Logger }

func (r restyLogger) Errorf(format string, v ...interface{}) { r.l.Error().Msgf(format, v...) }
func (r restyLogger) Warnf(format string, v ...interface{})  { r.l.Warn().Msgf(format, v...) }
func (r restyLogger) Debugf(format string, v ...interface{}) { r.l.Debug().Msgf(format, v...) }
