package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bazaar-shop/bazaar/client"
)

func newCartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
	}
	cmd.AddCommand(
		newCartAddCmd(a),
		newCartListCmd(a),
		newCartUpdateCmd(a),
		newCartRemoveCmd(a),
		newCartClearCmd(a),
	)
	return cmd
}

func newCartAddCmd(a *app) *cobra.Command {
	var req client.AddToCartRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product to the cart",
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			tok, err := a.token(ctx)
			if err != nil {
				return err
			}
			doc, err := a.client.AddToCart(ctx, req, tok)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), doc)
		}),
	}

	cmd.Flags().StringVar(&req.ProductID, "product-id", "", "Product id (required)")
	cmd.Flags().IntVar(&req.Quantity, "quantity", 1, "Quantity")
	_ = cmd.MarkFlagRequired("product-id")

	return cmd
}

func newCartListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the cart",
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			tok, err := a.token(ctx)
			if err != nil {
				return err
			}
			doc, err := a.client.FetchCart(ctx, tok)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), doc)
		}),
	}
}

func newCartUpdateCmd(a *app) *cobra.Command {
	var req client.UpdateCartItemRequest

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change the quantity of a cart item",
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			tok, err := a.token(ctx)
			if err != nil {
				return err
			}
			doc, err := a.client.UpdateCartItem(ctx, req, tok)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), doc)
		}),
	}

	cmd.Flags().StringVar(&req.ItemID, "item-id", "", "Cart item id (required)")
	cmd.Flags().IntVar(&req.Quantity, "quantity", 0, "New quantity (required)")
	_ = cmd.MarkFlagRequired("item-id")
	_ = cmd.MarkFlagRequired("quantity")

	return cmd
}

func newCartRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <item-id>",
		Short: "Remove an item from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			tok, err := a.token(ctx)
			if err != nil {
				return err
			}
			doc, err := a.client.DeleteCartItem(ctx, args[0], tok)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), doc)
		}),
	}
}

func newCartClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			tok, err := a.token(ctx)
			if err != nil {
				return err
			}
			doc, err := a.client.ClearCart(ctx, tok)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), doc)
		}),
	}
}
