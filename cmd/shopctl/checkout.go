package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"healthshop-client/internal/api"
	"healthshop-client/internal/checkout"
)

func checkoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Preview the order summary or place the order",
	}
	cmd.AddCommand(checkoutPreviewCmd(), checkoutPlaceCmd())
	return cmd
}

func checkoutPreviewCmd() *cobra.Command {
	var couponCode string
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the checkout breakdown for the current cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			if err := a.cart.FetchCart(cmd.Context()); err != nil {
				return err
			}
			if couponCode != "" {
				if _, err := a.cart.RedeemCoupon(cmd.Context(), couponCode); err != nil {
					return err
				}
			}
			printSummary(a)
			return nil
		},
	}
	cmd.Flags().StringVar(&couponCode, "coupon", "", "coupon code to apply")
	return cmd
}

func checkoutPlaceCmd() *cobra.Command {
	var in api.CreateOrderInput
	cmd := &cobra.Command{
		Use:   "place",
		Short: "Place the order from the current cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.ShippingName == "" || in.ShippingAddress == "" || in.ShippingCity == "" ||
				in.ShippingState == "" || in.ShippingZip == "" {
				return fmt.Errorf("shipping name, address, city, state and zip are required")
			}
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			order, err := a.client.CreateOrder(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Printf("Order %s placed: %d items, %s", order.OrderNumber, len(order.Items), moneyf(order.FinalAmount))
			if order.DiscountAmount > 0 {
				fmt.Printf(" (after %s discount)", moneyf(order.DiscountAmount))
			}
			fmt.Println()
			return nil
		},
	}
	cmd.Flags().StringVar(&in.ShippingName, "name", "", "recipient name")
	cmd.Flags().StringVar(&in.ShippingAddress, "address", "", "street address")
	cmd.Flags().StringVar(&in.ShippingCity, "city", "", "city")
	cmd.Flags().StringVar(&in.ShippingState, "state", "", "state")
	cmd.Flags().StringVar(&in.ShippingZip, "zip", "", "zip code")
	cmd.Flags().StringVar(&in.ShippingPhone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&in.PaymentMethod, "payment", "CARD", "payment method")
	cmd.Flags().StringVar(&in.CouponCode, "coupon", "", "coupon code")
	return cmd
}

func printSummary(a *app) {
	summary := checkout.Summarize(a.cart.Total(), a.cart.Discount())
	fmt.Printf("Subtotal: %s\n", money(summary.Subtotal))
	if summary.Shipping.IsZero() {
		fmt.Println("Shipping: free")
	} else {
		fmt.Printf("Shipping: %s (free over %s, add %s to qualify)\n",
			money(summary.Shipping), money(checkout.FreeShippingThreshold),
			money(checkout.FreeShippingGap(summary.Subtotal)))
	}
	fmt.Printf("Tax:      %s\n", money(summary.Tax))
	if !summary.Discount.IsZero() {
		fmt.Printf("Discount: -%s\n", money(summary.Discount))
	}
	fmt.Printf("Total:    %s\n", money(summary.Total))
}
