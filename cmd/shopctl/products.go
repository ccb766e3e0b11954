package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"healthshop-client/internal/api"
	"healthshop-client/internal/domain"
	"healthshop-client/internal/search"
)

func productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the catalog",
	}
	cmd.AddCommand(productsListCmd(), productsShowCmd(), productsFeaturedCmd(), productsTrendingCmd(),
		productsNewCmd(), productsGoalCmd(), productsReviewsCmd(), productsRelatedCmd())
	return cmd
}

func productsListCmd() *cobra.Command {
	var q api.ProductQuery
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products with optional filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			page, err := a.client.Products(cmd.Context(), q)
			if err != nil {
				return err
			}
			printProducts(page.Content)
			fmt.Printf("page %d of %d (%d products)\n", page.Number+1, page.TotalPages, page.TotalElements)
			return nil
		},
	}
	cmd.Flags().StringVar(&q.Search, "search", "", "match name, description or brand")
	cmd.Flags().Int64Var(&q.CategoryID, "category", 0, "category id")
	cmd.Flags().StringVar(&q.HealthGoal, "goal", "", "health goal filter")
	cmd.Flags().StringVar(&q.AgeGroup, "age-group", "", "suitable age group filter")
	cmd.Flags().Float64Var(&q.MinPrice, "min-price", 0, "minimum effective price")
	cmd.Flags().Float64Var(&q.MaxPrice, "max-price", 0, "maximum effective price")
	cmd.Flags().StringVar(&q.SortBy, "sort", "", "sort by: price, rating, popularity, newest")
	cmd.Flags().StringVar(&q.SortDir, "dir", "", "sort direction: asc or desc")
	cmd.Flags().IntVar(&q.Page, "page", 0, "page number, starting at 0")
	cmd.Flags().IntVar(&q.Size, "size", 12, "page size")
	return cmd
}

func productsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one product in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			a := newApp()
			p, err := a.client.Product(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("%s  [%d]\n", p.Name, p.ID)
			fmt.Printf("  brand:    %s\n", p.Brand)
			fmt.Printf("  price:    %s\n", priceOf(p.Price, p.DiscountPrice))
			fmt.Printf("  stock:    %d\n", p.Stock)
			fmt.Printf("  rating:   %.1f (%d reviews)\n", p.AverageRating, p.ReviewCount)
			if p.CategoryName != "" {
				fmt.Printf("  category: %s\n", p.CategoryName)
			}
			if len(p.HealthGoals) > 0 {
				fmt.Printf("  goals:    %s\n", strings.Join(p.HealthGoals, ", "))
			}
			if p.Dosage != "" {
				fmt.Printf("  dosage:   %s\n", p.Dosage)
			}
			if p.Description != "" {
				fmt.Printf("\n%s\n", p.Description)
			}
			return nil
		},
	}
}

func productsFeaturedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "featured",
		Short: "List featured products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			products, err := a.client.FeaturedProducts(cmd.Context())
			if err != nil {
				return err
			}
			printProducts(products)
			return nil
		},
	}
}

func productsTrendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trending",
		Short: "List trending products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			products, err := a.client.TrendingProducts(cmd.Context())
			if err != nil {
				return err
			}
			printProducts(products)
			return nil
		},
	}
}

func productsNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "List new arrivals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			products, err := a.client.NewArrivals(cmd.Context())
			if err != nil {
				return err
			}
			printProducts(products)
			return nil
		},
	}
}

func productsGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goal <health-goal>",
		Short: "List products matching a health goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			products, err := a.client.ProductsByHealthGoal(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printProducts(products)
			return nil
		},
	}
}

func productsReviewsCmd() *cobra.Command {
	var pageNum int
	cmd := &cobra.Command{
		Use:   "reviews <product-id>",
		Short: "List reviews for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			a := newApp()
			page, err := a.client.ProductReviews(cmd.Context(), productID, pageNum)
			if err != nil {
				return err
			}
			w := newTable(os.Stdout)
			fmt.Fprintln(w, "RATING\tBY\tTITLE\tCOMMENT")
			for _, r := range page.Content {
				fmt.Fprintf(w, "%d/5\t%s\t%s\t%s\n", r.Rating, r.UserName, r.Title, r.Comment)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Printf("page %d of %d (%d reviews)\n", page.Number+1, page.TotalPages, page.TotalElements)
			return nil
		},
	}
	cmd.Flags().IntVar(&pageNum, "page", 0, "page number, starting at 0")
	return cmd
}

func productsRelatedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "related <product-id>",
		Short: "List products frequently bought together with one product",
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
			products, err := a.client.FrequentlyBoughtTogether(cmd.Context(), productID)
			if err != nil {
				return err
			}
			printProducts(products)
			return nil
		},
	}
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			categories, err := a.client.Categories(cmd.Context())
			if err != nil {
				return err
			}
			w := newTable(os.Stdout)
			fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
			for _, c := range categories {
				fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Name, c.Description)
			}
			return w.Flush()
		},
	}
}

// searchCmd runs an interactive search-as-you-type loop over stdin. Each
// line reschedules the debounced query, so pasting several lines quickly
// only fires the last one.
func searchCmd() *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Interactive product search (type, results follow; empty line quits)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			done := make(chan struct{}, 1)
			ta := search.NewTypeahead(a.client, search.DefaultDelay, size, func(query string, products []domain.Product, err error) {
				if err != nil {
					fmt.Printf("search %q: %v\n", query, err)
				} else {
					fmt.Printf("results for %q:\n", query)
					printProducts(products)
				}
				select {
				case done <- struct{}{}:
				default:
				}
			})
			defer ta.Cancel()

			scanner := bufio.NewScanner(os.Stdin)
			fmt.Print("> ")
			for scanner.Scan() {
				query := strings.TrimSpace(scanner.Text())
				if query == "" {
					return nil
				}
				ta.Input(cmd.Context(), query)
				<-done
				fmt.Print("> ")
			}
			return scanner.Err()
		},
	}
	cmd.Flags().IntVar(&size, "size", 5, "results per query")
	return cmd
}

func printProducts(products []domain.Product) {
	w := newTable(os.Stdout)
	fmt.Fprintln(w, "ID\tNAME\tBRAND\tPRICE\tRATING\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.1f\t%d\n",
			p.ID, p.Name, p.Brand, priceOf(p.Price, p.DiscountPrice), p.AverageRating, p.Stock)
	}
	w.Flush()
}
