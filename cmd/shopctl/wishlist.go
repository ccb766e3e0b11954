package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func wishlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Manage saved products",
	}
	cmd.AddCommand(wishlistShowCmd(), wishlistAddCmd(), wishlistRemoveCmd())
	return cmd
}

func wishlistShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "List saved products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			if err := a.wishlist.FetchWishlist(cmd.Context()); err != nil {
				return err
			}
			items := a.wishlist.Items()
			if len(items) == 0 {
				fmt.Println("Wishlist is empty")
				return nil
			}
			printProducts(items)
			return nil
		},
	}
}

func wishlistAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-id>",
		Short: "Save a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			if err := a.wishlist.AddToWishlist(cmd.Context(), productID); err != nil {
				return err
			}
			fmt.Printf("Product %d saved\n", productID)
			return nil
		},
	}
}

func wishlistRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Unsave a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			if err := a.wishlist.RemoveFromWishlist(cmd.Context(), productID); err != nil {
				return err
			}
			fmt.Printf("Product %d removed\n", productID)
			return nil
		},
	}
}
