package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"healthshop-client/internal/api"
	"healthshop-client/internal/domain"
)

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative operations (requires the ADMIN role)",
	}
	cmd.AddCommand(adminStatsCmd(), adminAIStatsCmd(), adminUsersCmd(), adminOrdersCmd(),
		adminCouponsCmd(), adminProductsCmd())
	return cmd
}

func adminStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the store dashboard summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			stats, err := a.client.AdminStats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Users:    %d\n", stats.TotalUsers)
			fmt.Printf("Products: %d\n", stats.TotalProducts)
			fmt.Printf("Orders:   %d\n", stats.TotalOrders)
			fmt.Printf("Revenue:  %s\n", moneyf(stats.TotalRevenue))
			return nil
		},
	}
}

func adminAIStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ai-stats",
		Short: "Show health-profile and assistant usage stats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			stats, err := a.client.AdminAIStats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Health profiles:  %d\n", stats.TotalHealthProfiles)
			fmt.Printf("Avg health score: %.1f\n", stats.AvgHealthScore)
			for _, g := range stats.TopHealthGoals {
				fmt.Printf("  goal %-20s %d\n", g.Label, g.Value)
			}
			for _, ag := range stats.AgeGroupDistribution {
				fmt.Printf("  ages %-20s %d\n", ag.Label, ag.Value)
			}
			return nil
		},
	}
}

func adminUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List registered users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			users, err := a.client.AdminUsers(cmd.Context())
			if err != nil {
				return err
			}
			w := newTable(os.Stdout)
			fmt.Fprintln(w, "ID\tEMAIL\tNAME\tROLE")
			for _, u := range users {
				fmt.Fprintf(w, "%d\t%s\t%s %s\t%s\n", u.ID, u.Email, u.FirstName, u.LastName, u.Role)
			}
			return w.Flush()
		},
	}
}

func adminOrdersCmd() *cobra.Command {
	var pageNum, size int
	var setStatus string
	cmd := &cobra.Command{
		Use:   "orders [order-id]",
		Short: "List all orders, or update one order's status",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				if setStatus == "" {
					return fmt.Errorf("--status is required when an order id is given")
				}
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid order id %q", args[0])
				}
				order, err := a.client.AdminUpdateOrderStatus(cmd.Context(), id, setStatus)
				if err != nil {
					return err
				}
				fmt.Printf("Order %s is now %s\n", order.OrderNumber, order.Status)
				return nil
			}
			page, err := a.client.AdminOrders(cmd.Context(), pageNum, size)
			if err != nil {
				return err
			}
			w := newTable(os.Stdout)
			fmt.Fprintln(w, "ID\tORDER\tDATE\tTOTAL\tSTATUS")
			for _, o := range page.Content {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					o.ID, o.OrderNumber, o.CreatedAt.Format("2006-01-02"), moneyf(o.FinalAmount), o.Status)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&pageNum, "page", 0, "page number, starting at 0")
	cmd.Flags().IntVar(&size, "size", 10, "page size")
	cmd.Flags().StringVar(&setStatus, "status", "", "new status for the given order")
	return cmd
}

func adminCouponsCmd() *cobra.Command {
	var create, remove string
	var discountType string
	var discountValue, minPurchase float64
	cmd := &cobra.Command{
		Use:   "coupons",
		Short: "List, create or delete coupons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			if create != "" {
				coupon := domain.Coupon{
					Code:          create,
					DiscountType:  domain.DiscountType(discountType),
					DiscountValue: discountValue,
					Active:        true,
				}
				if minPurchase > 0 {
					coupon.MinPurchaseAmount = &minPurchase
				}
				created, err := a.client.AdminCreateCoupon(cmd.Context(), coupon)
				if err != nil {
					return err
				}
				fmt.Printf("Coupon %s created (id %d)\n", created.Code, created.ID)
				return nil
			}
			if remove != "" {
				id, err := strconv.ParseInt(remove, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid coupon id %q", remove)
				}
				if err := a.client.AdminDeleteCoupon(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Printf("Coupon %d deleted\n", id)
				return nil
			}
			coupons, err := a.client.AdminCoupons(cmd.Context())
			if err != nil {
				return err
			}
			w := newTable(os.Stdout)
			fmt.Fprintln(w, "ID\tCODE\tTYPE\tVALUE\tACTIVE")
			for _, c := range coupons {
				fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%t\n", c.ID, c.Code, c.DiscountType, c.DiscountValue, c.Active)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&create, "create", "", "create a coupon with this code")
	cmd.Flags().StringVar(&discountType, "type", "PERCENTAGE", "discount type: PERCENTAGE or FIXED")
	cmd.Flags().Float64Var(&discountValue, "value", 0, "discount value")
	cmd.Flags().Float64Var(&minPurchase, "min-purchase", 0, "minimum purchase amount")
	cmd.Flags().StringVar(&remove, "delete", "", "delete the coupon with this id")
	return cmd
}

func adminProductsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage the catalog",
	}
	cmd.AddCommand(adminProductCreateCmd(), adminProductUpdateCmd(), adminProductDeleteCmd())
	return cmd
}

// productInputFlags binds the shared create/update flag set. discount maps to
// ProductInput.DiscountPrice only when set above zero.
func productInputFlags(cmd *cobra.Command, in *api.ProductInput, discount *float64) {
	cmd.Flags().StringVar(&in.Name, "name", "", "product name")
	cmd.Flags().StringVar(&in.Description, "description", "", "product description")
	cmd.Flags().Float64Var(&in.Price, "price", 0, "list price")
	cmd.Flags().Float64Var(discount, "discount-price", 0, "discounted price, 0 for none")
	cmd.Flags().IntVar(&in.Stock, "stock", 0, "units in stock")
	cmd.Flags().StringVar(&in.Brand, "brand", "", "brand")
	cmd.Flags().Int64Var(&in.CategoryID, "category", 0, "category id")
	cmd.Flags().StringSliceVar(&in.Tags, "tags", nil, "tags")
	cmd.Flags().StringSliceVar(&in.HealthGoals, "goals", nil, "health goals")
	cmd.Flags().StringVar(&in.Dosage, "dosage", "", "dosage guidance")
	cmd.Flags().BoolVar(&in.Featured, "featured", false, "feature on the home page")
}

func adminProductCreateCmd() *cobra.Command {
	var in api.ProductInput
	var discount float64
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a product to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.Name == "" {
				return fmt.Errorf("--name is required")
			}
			if in.Price <= 0 {
				return fmt.Errorf("--price must be positive")
			}
			if discount > 0 {
				in.DiscountPrice = &discount
			}
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			created, err := a.client.AdminCreateProduct(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Printf("Product %d created: %s at %s\n", created.ID, created.Name, moneyf(created.EffectivePrice()))
			return nil
		},
	}
	productInputFlags(cmd, &in, &discount)
	return cmd
}

func adminProductUpdateCmd() *cobra.Command {
	var in api.ProductInput
	var discount float64
	cmd := &cobra.Command{
		Use:   "update <product-id>",
		Short: "Update a catalog product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			if discount > 0 {
				in.DiscountPrice = &discount
			}
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			updated, err := a.client.AdminUpdateProduct(cmd.Context(), id, in)
			if err != nil {
				return err
			}
			fmt.Printf("Product %d updated: %s at %s\n", updated.ID, updated.Name, moneyf(updated.EffectivePrice()))
			return nil
		},
	}
	productInputFlags(cmd, &in, &discount)
	return cmd
}

func adminProductDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <product-id>",
		Short: "Remove a product from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			if err := a.client.AdminDeleteProduct(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Product %d deleted\n", id)
			return nil
		},
	}
}
