package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func cartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
	}
	cmd.AddCommand(cartShowCmd(), cartAddCmd(), cartUpdateCmd(), cartRemoveCmd(), cartCouponCmd())
	return cmd
}

func cartShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show cart contents and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			if err := a.cart.FetchCart(cmd.Context()); err != nil {
				return err
			}
			return printCart(a)
		},
	}
}

func cartAddCmd() *cobra.Command {
	var quantity int
	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			if quantity < 1 {
				quantity = 1
			}
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			if err := a.cart.AddToCart(cmd.Context(), productID, quantity); err != nil {
				return err
			}
			return printCart(a)
		},
	}
	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "units to add")
	return cmd
}

func cartUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <item-id> <quantity>",
		Short: "Set the quantity of a cart line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid cart item id %q", args[0])
			}
			quantity, err := strconv.Atoi(args[1])
			if err != nil || quantity < 1 {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			if err := a.cart.UpdateQty(cmd.Context(), itemID, quantity); err != nil {
				return err
			}
			return printCart(a)
		},
	}
}

func cartRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <item-id>",
		Short: "Remove a cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid cart item id %q", args[0])
			}
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			if err := a.cart.RemoveItem(cmd.Context(), itemID); err != nil {
				return err
			}
			return printCart(a)
		},
	}
}

func cartCouponCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coupon <code>",
		Short: "Validate a coupon against the current cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			if err := a.cart.FetchCart(cmd.Context()); err != nil {
				return err
			}
			coupon, err := a.cart.RedeemCoupon(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Coupon %s applied: ", coupon.Code)
			if coupon.DiscountType == "PERCENTAGE" {
				fmt.Printf("%.0f%% off\n", coupon.DiscountValue)
			} else {
				fmt.Printf("%s off\n", moneyf(coupon.DiscountValue))
			}
			return printCart(a)
		},
	}
}

func printCart(a *app) error {
	items := a.cart.Items()
	if len(items) == 0 {
		fmt.Println("Cart is empty")
		return nil
	}
	w := newTable(os.Stdout)
	fmt.Fprintln(w, "ITEM\tPRODUCT\tNAME\tUNIT\tQTY\tTOTAL")
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%d\t%s\n",
			item.ID, item.ProductID, item.ProductName,
			moneyf(item.EffectiveUnitPrice()), item.Quantity, moneyf(item.TotalPrice))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d items, subtotal %s", a.cart.Count(), money(a.cart.Total()))
	if coupon := a.cart.Coupon(); coupon != nil {
		fmt.Printf(", coupon %s saves %s, to pay %s",
			coupon.Code, money(a.cart.Discount()), money(a.cart.FinalTotal()))
	}
	fmt.Println()
	return nil
}
