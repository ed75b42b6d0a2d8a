package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	sdkerrors "github.com/bazaar-shop/bazaar/client/internal/errors"
	"github.com/bazaar-shop/bazaar/client/internal/types"
)

// operations calls every endpoint that returns an error, keyed by op name.
var operations = map[string]func(context.Context, *Backend) error{
	"fetch addresses": func(ctx context.Context, b *Backend) error {
		_, err := ListAddresses(ctx, b, "tok")
		return err
	},
	"create address": func(ctx context.Context, b *Backend) error {
		_, err := CreateAddress(ctx, b, types.CreateAddressRequest{City: "Pune"}, "tok")
		return err
	},
	"register": func(ctx context.Context, b *Backend) error {
		_, err := Register(ctx, b, types.RegisterRequest{Email: "a@b.c"})
		return err
	},
	"log in": func(ctx context.Context, b *Backend) error {
		_, err := Login(ctx, b, types.LoginRequest{Email: "a@b.c"})
		return err
	},
	"log out": func(ctx context.Context, b *Backend) error {
		_, err := Logout(ctx, b, "tok")
		return err
	},
	"add item to cart": func(ctx context.Context, b *Backend) error {
		_, err := AddToCart(ctx, b, types.AddToCartRequest{ProductID: "p1", Quantity: 1}, "tok")
		return err
	},
	"fetch cart items": func(ctx context.Context, b *Backend) error {
		_, err := FetchCart(ctx, b, "tok")
		return err
	},
	"update cart item": func(ctx context.Context, b *Backend) error {
		_, err := UpdateCartItem(ctx, b, types.UpdateCartItemRequest{ItemID: "i1", Quantity: 2}, "tok")
		return err
	},
	"delete cart item": func(ctx context.Context, b *Backend) error {
		_, err := DeleteCartItem(ctx, b, "i1", "tok")
		return err
	},
	"clear cart": func(ctx context.Context, b *Backend) error {
		_, err := ClearCart(ctx, b, "tok")
		return err
	},
	"fetch categories": func(ctx context.Context, b *Backend) error {
		_, err := FetchCategories(ctx, b)
		return err
	},
	"create order": func(ctx context.Context, b *Backend) error {
		_, err := CreateOrder(ctx, b, "a1", "tok")
		return err
	},
	"fetch orders": func(ctx context.Context, b *Backend) error {
		_, err := FetchOrders(ctx, b, "tok")
		return err
	},
	"make payment": func(ctx context.Context, b *Backend) error {
		_, err := MakePayment(ctx, b, types.PaymentRequest{OrderID: "o1", Amount: 10}, "tok")
		return err
	},
	"fetch products": func(ctx context.Context, b *Backend) error {
		_, err := FetchProducts(ctx, b, types.ProductQuery{})
		return err
	},
	"fetch product details": func(ctx context.Context, b *Backend) error {
		_, err := FetchProductDetails(ctx, b, "p1")
		return err
	},
	"create rating": func(ctx context.Context, b *Backend) error {
		_, err := CreateRating(ctx, b, "p1", types.RatingRequest{Rating: 4}, "tok")
		return err
	},
	"fetch user details": func(ctx context.Context, b *Backend) error {
		_, err := FetchUserDetails(ctx, b, "tok")
		return err
	},
}

func TestEveryOperation_RejectsNon2xx(t *testing.T) {
	t.Parallel()
	responses := []struct {
		status  int
		body    string
		message string
	}{
		{http.StatusBadRequest, `{"message":"Quantity must be positive"}`, "Quantity must be positive"},
		{http.StatusUnauthorized, ``, "Unauthorized"},
		{http.StatusNotFound, `not json`, "Not Found"},
		{http.StatusInternalServerError, `{"error":"db down"}`, "Internal Server Error"},
		{http.StatusServiceUnavailable, `{"message":"Maintenance"}`, "Maintenance"},
	}

	for op, call := range operations {
		for _, rs := range responses {
			b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
				respond(w, rs.status, rs.body)
			})
			err := call(context.Background(), b)
			if err == nil {
				t.Errorf("%s: status %d: expected error", op, rs.status)
				continue
			}
			var re *sdkerrors.RequestError
			if !errors.As(err, &re) {
				t.Errorf("%s: status %d: expected *RequestError, got %T", op, rs.status, err)
				continue
			}
			if re.StatusCode != rs.status {
				t.Errorf("%s: status code = %d, want %d", op, re.StatusCode, rs.status)
			}
			if re.Operation != op {
				t.Errorf("operation = %q, want %q", re.Operation, op)
			}
			if want := "failed to " + op + ": " + rs.message; err.Error() != want {
				t.Errorf("%s: status %d: message = %q, want %q", op, rs.status, err.Error(), want)
			}
			if !strings.Contains(err.Error(), rs.message) {
				t.Errorf("%s: status %d: message %q missing %q", op, rs.status, err.Error(), rs.message)
			}
		}
	}
}
