package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"healthshop-client/internal/api"
)

func reviewCmd() *cobra.Command {
	var rating int
	var title, comment string
	cmd := &cobra.Command{
		Use:   "review <product-id>",
		Short: "Submit a review for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			if rating < 1 || rating > 5 {
				return fmt.Errorf("rating must be between 1 and 5")
			}
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			review, err := a.client.CreateReview(cmd.Context(), api.CreateReviewInput{
				ProductID: productID,
				Rating:    rating,
				Title:     title,
				Comment:   comment,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Review %d posted: %d/5 on product %d\n", review.ID, review.Rating, review.ProductID)
			return nil
		},
	}
	cmd.Flags().IntVarP(&rating, "rating", "r", 0, "star rating from 1 to 5")
	cmd.Flags().StringVarP(&title, "title", "t", "", "review title")
	cmd.Flags().StringVarP(&comment, "comment", "c", "", "review text")
	return cmd
}

func recommendationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recommendations",
		Short: "List personalized product picks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			products, err := a.client.Recommendations(cmd.Context(), a.auth.User().UserID)
			if err != nil {
				return err
			}
			if len(products) == 0 {
				fmt.Println("No recommendations yet. Fill in your health profile to get picks.")
				return nil
			}
			printProducts(products)
			return nil
		},
	}
}
