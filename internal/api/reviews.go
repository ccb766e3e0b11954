package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"healthshop-client/internal/domain"
)

type CreateReviewInput struct {
	ProductID int64  `json:"productId"`
	Rating    int    `json:"rating"`
	Title     string `json:"title,omitempty"`
	Comment   string `json:"comment,omitempty"`
}

// ProductReviews pages through the reviews of one product.
func (c *Client) ProductReviews(ctx context.Context, productID int64, page int) (*domain.Page[domain.Review], error) {
	q := url.Values{"page": []string{strconv.Itoa(page)}}
	var out domain.Page[domain.Review]
	if err := c.get(ctx, fmt.Sprintf("/api/reviews/product/%d", productID), q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateReview submits a review for a purchased product.
func (c *Client) CreateReview(ctx context.Context, in CreateReviewInput) (*domain.Review, error) {
	var out domain.Review
	if err := c.post(ctx, "/api/reviews", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
