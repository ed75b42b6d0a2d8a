package client_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/bazaar-shop/bazaar/client"
)

func ExampleClient_FetchProducts() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Println(r.Method, r.URL.RequestURI())
		_, _ = io.WriteString(w, `{"success":true,"products":[],"metadata":{"total":5,"page":2,"pages":1}}`)
	}))
	defer srv.Close()

	c, err := client.New(srv.URL)
	if err != nil {
		panic(err)
	}
	defer c.Close()

	res, err := c.FetchProducts(context.Background(), client.ProductQuery{Page: 2, Limit: 10, Sort: "price"})
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Success, res.Metadata.Total, res.Metadata.Page, res.Metadata.Pages)
	// Output:
	// GET /products?page=2&limit=10&sort=price
	// true 5 2 1
}

func ExampleClient_CreateAddress() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"_id":"a1","city":"Pune"}`)
	}))
	defer srv.Close()

	c, err := client.New(srv.URL)
	if err != nil {
		panic(err)
	}
	defer c.Close()

	doc, err := c.CreateAddress(context.Background(), client.CreateAddressRequest{
		AddressLine1: "1 Main St",
		City:         "Pune",
		Zipcode:      "411001",
		State:        "MH",
	}, "tok")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(doc))
	// Output:
	// {"_id":"a1","city":"Pune"}
}
