package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	sdkerrors "github.com/bazaar-shop/bazaar/client/internal/errors"
	"github.com/bazaar-shop/bazaar/client/internal/types"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	defaultSort  = "name"
)

// FetchProducts returns one page of the catalogue.
func FetchProducts(ctx context.Context, b *Backend, q types.ProductQuery) (*types.ProductResponse, error) {
	return do[*types.ProductResponse](ctx, b, call{
		op:     "fetch products",
		method: http.MethodGet,
		path:   "/products",
		query:  EncodeProductQuery(q),
	})
}

// FetchProductDetails returns a single product. A 2xx envelope with
// success=false is reported as ErrProductNotFound.
func FetchProductDetails(ctx context.Context, b *Backend, id string) (*types.Product, error) {
	c := call{
		op:         "fetch product details",
		method:     http.MethodGet,
		path:       "/products/{id}",
		pathParams: map[string]string{"id": id},
	}
	env, err := do[types.ProductEnvelope](ctx, b, c)
	if err != nil {
		return nil, err
	}
	if !env.Success || env.Product == nil {
		err := &sdkerrors.RequestError{
			Operation:  c.op,
			Method:     c.method,
			Path:       c.path,
			StatusCode: http.StatusOK,
			Status:     http.StatusText(http.StatusOK),
			Err:        sdkerrors.ErrProductNotFound,
		}
		b.logFailure(c, nil, err)
		return nil, err
	}
	return env.Product, nil
}

// EncodeProductQuery renders q in the fixed order page, limit, sort,
// category, minPrice, maxPrice, search. Optional filters are omitted when
// unset.
func EncodeProductQuery(q types.ProductQuery) string {
	page, limit, sort := q.Page, q.Limit, q.Sort
	if page <= 0 {
		page = defaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if sort == "" {
		sort = defaultSort
	}

	var sb strings.Builder
	add := func(k, v string) {
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(k))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(v))
	}
	add("page", strconv.Itoa(page))
	add("limit", strconv.Itoa(limit))
	add("sort", sort)
	if q.Category != "" {
		add("category", q.Category)
	}
	if q.MinPrice != nil {
		add("minPrice", formatNumber(*q.MinPrice))
	}
	if q.MaxPrice != nil {
		add("maxPrice", formatNumber(*q.MaxPrice))
	}
	if q.Search != "" {
		add("search", q.Search)
	}
	return sb.String()
}

// formatNumber renders f in shortest form: 10, 10.5, 0.25.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
