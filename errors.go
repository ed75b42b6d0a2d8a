package client

import (
	"net/http"

	sdkerrors "github.com/bazaar-shop/bazaar/client/internal/errors"
)

// RequestError is the single error kind returned by API operations.
type RequestError = sdkerrors.RequestError

// ErrProductNotFound is wrapped by the error FetchProductDetails returns when
// the backend answers 2xx with success=false.
var ErrProductNotFound = sdkerrors.ErrProductNotFound

// AsRequestError extracts a *RequestError from err's chain.
func AsRequestError(err error) (*RequestError, bool) { return sdkerrors.AsRequestError(err) }

// IsStatus reports whether err carries the given HTTP status code.
func IsStatus(err error, code int) bool { return sdkerrors.IsStatus(err, code) }

// IsUnauthorized reports whether the backend rejected the bearer token.
func IsUnauthorized(err error) bool { return sdkerrors.IsStatus(err, http.StatusUnauthorized) }
