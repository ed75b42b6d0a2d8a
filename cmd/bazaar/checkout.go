package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bazaar-shop/bazaar/client"
)

func newAddressesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addresses",
		Short: "Manage delivery addresses",
	}
	cmd.AddCommand(newAddressesListCmd(a), newAddressesCreateCmd(a))
	return cmd
}

func newAddressesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved addresses",
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			tok, err := a.token(ctx)
			if err != nil {
				return err
			}
			doc, err := a.client.ListAddresses(ctx, tok)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), doc)
		}),
	}
}

func newAddressesCreateCmd(a *app) *cobra.Command {
	var req client.CreateAddressRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Save a new address",
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			tok, err := a.token(ctx)
			if err != nil {
				return err
			}
			doc, err := a.client.CreateAddress(ctx, req, tok)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), doc)
		}),
	}

	cmd.Flags().StringVar(&req.AddressLine1, "line1", "", "Street address (required)")
	cmd.Flags().StringVar(&req.City, "city", "", "City (required)")
	cmd.Flags().StringVar(&req.Zipcode, "zipcode", "", "Postal code (required)")
	cmd.Flags().StringVar(&req.State, "state", "", "State (required)")
	cmd.Flags().BoolVar(&req.IsDefault, "default", false, "Make this the default address")
	for _, f := range []string{"line1", "city", "zipcode", "state"} {
		_ = cmd.MarkFlagRequired(f)
	}

	return cmd
}

func newOrdersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Place and list orders",
	}
	cmd.AddCommand(newOrdersCreateCmd(a), newOrdersListCmd(a))
	return cmd
}

func newOrdersCreateCmd(a *app) *cobra.Command {
	var addressID string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Order the current cart",
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			tok, err := a.token(ctx)
			if err != nil {
				return err
			}
			doc, err := a.client.CreateOrder(ctx, addressID, tok)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), doc)
		}),
	}

	cmd.Flags().StringVar(&addressID, "address-id", "", "Delivery address id (required)")
	_ = cmd.MarkFlagRequired("address-id")

	return cmd
}

func newOrdersListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your orders",
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			tok, err := a.token(ctx)
			if err != nil {
				return err
			}
			doc, err := a.client.FetchOrders(ctx, tok)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), doc)
		}),
	}
}

func newPayCmd(a *app) *cobra.Command {
	var req client.PaymentRequest

	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Pay for an order",
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			tok, err := a.token(ctx)
			if err != nil {
				return err
			}
			if req.TransactionID == "" {
				req.TransactionID = uuid.NewString()
			}
			a.log.Debug().Str("order_id", req.OrderID).Str("transaction_id", req.TransactionID).Msg("paying")
			doc, err := a.client.MakePayment(ctx, req, tok)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), doc)
		}),
	}

	cmd.Flags().StringVar(&req.OrderID, "order-id", "", "Order id (required)")
	cmd.Flags().StringVar(&req.PaymentMethod, "method", "card", "Payment method")
	cmd.Flags().Float64Var(&req.Amount, "amount", 0, "Amount (required)")
	cmd.Flags().StringVar(&req.TransactionID, "transaction-id", "", "Transaction id (random when empty)")
	_ = cmd.MarkFlagRequired("order-id")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
