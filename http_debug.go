package client

import (
	"bytes"
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog"
)

// debugTransport logs a full dump of each request and response at debug
// level. Enable it with WithDebugLogging(true), BAZAAR_DEBUG=true or
// DEBUG=true. Bodies are logged verbatim (passwords included), so keep it
// out of production.
type debugTransport struct {
	base   http.RoundTripper
	logger zerolog.Logger
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		dt.logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Str("request_dump", string(redactAuthorization(reqDump, req))).
			Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		dt.logger.Debug().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		dt.logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Int("status_code", resp.StatusCode).
			Str("response_dump", string(respDump)).
			Msg("HTTP response")
	}
	return resp, nil
}

func (dt *debugTransport) CloseIdleConnections() { closeIdle(dt.base) }

// redactAuthorization replaces the Authorization header value in dump.
func redactAuthorization(dump []byte, req *http.Request) []byte {
	auth := req.Header.Get("Authorization")
	if auth == "" {
		return dump
	}
	return bytes.ReplaceAll(dump, []byte(auth), []byte("Bearer [REDACTED]"))
}

// debugLoggingRequested checks BAZAAR_DEBUG and the general DEBUG flag.
func debugLoggingRequested() bool {
	return os.Getenv("BAZAAR_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
