package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bazaar-shop/bazaar/client"
)

func newProductsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the catalogue",
	}
	cmd.AddCommand(newProductsListCmd(a), newProductsGetCmd(a))
	return cmd
}

func newProductsListCmd(a *app) *cobra.Command {
	var q client.ProductQuery
	var minPrice, maxPrice float64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of products",
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("min-price") {
				q.MinPrice = &minPrice
			}
			if cmd.Flags().Changed("max-price") {
				q.MaxPrice = &maxPrice
			}
			res, err := a.client.FetchProducts(ctx, q)
			if err != nil {
				return err
			}
			a.log.Debug().Int("returned", len(res.Products)).Int("total", res.Metadata.Total).Msg("fetched products")
			return printJSON(cmd.OutOrStdout(), res)
		}),
	}

	cmd.Flags().IntVar(&q.Page, "page", 1, "Page number")
	cmd.Flags().IntVar(&q.Limit, "limit", 20, "Products per page")
	cmd.Flags().StringVar(&q.Sort, "sort", "name", "Sort key")
	cmd.Flags().StringVar(&q.Category, "category", "", "Category id filter")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "Minimum price")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "Maximum price")
	cmd.Flags().StringVar(&q.Search, "search", "", "Free-text search")

	return cmd
}

func newProductsGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <product-id>",
		Short: "Show a single product",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			p, err := a.client.FetchProductDetails(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), p)
		}),
	}
}

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			cats, err := a.client.FetchCategories(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), cats)
		}),
	}
}

func newRateCmd(a *app) *cobra.Command {
	var req client.RatingRequest

	cmd := &cobra.Command{
		Use:   "rate <product-id>",
		Short: "Rate a product",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			tok, err := a.token(ctx)
			if err != nil {
				return err
			}
			doc, err := a.client.CreateRating(ctx, args[0], req, tok)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), doc)
		}),
	}

	cmd.Flags().Float64Var(&req.Rating, "rating", 0, "Rating value (required)")
	cmd.Flags().StringVar(&req.Comments, "comments", "", "Review text")
	_ = cmd.MarkFlagRequired("rating")

	return cmd
}
