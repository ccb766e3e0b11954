package api

import (
	"context"
	"fmt"

	"healthshop-client/internal/domain"
)

// HealthScore fetches the user's computed health score dashboard.
func (c *Client) HealthScore(ctx context.Context) (*domain.HealthScore, error) {
	var out domain.HealthScore
	if err := c.get(ctx, "/api/ai/health-score", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type interactionCheckInput struct {
	ProductIDs         []int64  `json:"productIds"`
	CurrentMedications []string `json:"currentMedications"`
}

// CheckInteractions screens a set of products against the user's medications.
func (c *Client) CheckInteractions(ctx context.Context, productIDs []int64, medications []string) (*domain.InteractionReport, error) {
	var out domain.InteractionReport
	in := interactionCheckInput{ProductIDs: productIDs, CurrentMedications: medications}
	if err := c.post(ctx, "/api/ai/interaction-check", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type compareInput struct {
	ProductIDs []int64 `json:"productIds"`
}

// CompareProducts builds a side-by-side comparison of 2-4 products.
func (c *Client) CompareProducts(ctx context.Context, productIDs []int64) (*domain.Comparison, error) {
	var out domain.Comparison
	if err := c.post(ctx, "/api/ai/compare", compareInput{ProductIDs: productIDs}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Dosage returns a personalized dosage suggestion for one product.
func (c *Client) Dosage(ctx context.Context, productID int64) (*domain.Dosage, error) {
	var out domain.Dosage
	if err := c.get(ctx, fmt.Sprintf("/api/ai/dosage/%d", productID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PurchaseInsights(ctx context.Context) (*domain.PurchaseInsights, error) {
	var out domain.PurchaseInsights
	if err := c.get(ctx, "/api/ai/purchase-insights", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) HealthInsights(ctx context.Context) (*domain.HealthInsights, error) {
	var out domain.HealthInsights
	if err := c.get(ctx, "/api/ai/health-insights", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) NutritionGaps(ctx context.Context) (*domain.NutritionGapAnalysis, error) {
	var out domain.NutritionGapAnalysis
	if err := c.get(ctx, "/api/ai/nutrition-gaps", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DailyTips(ctx context.Context) ([]domain.HealthTip, error) {
	var out []domain.HealthTip
	if err := c.get(ctx, "/api/ai/daily-tips", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type chatInput struct {
	Message string               `json:"message"`
	History []domain.ChatMessage `json:"history,omitempty"`
}

// Chat sends a message to the shopping assistant along with prior turns.
func (c *Client) Chat(ctx context.Context, message string, history []domain.ChatMessage) (*domain.ChatReply, error) {
	var out domain.ChatReply
	if err := c.post(ctx, "/api/ai/chat", chatInput{Message: message, History: history}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type symptomInput struct {
	SymptomDescription string `json:"symptomDescription"`
}

// SymptomSearch maps a free-text symptom description to suggested products.
func (c *Client) SymptomSearch(ctx context.Context, description string) (*domain.ChatReply, error) {
	var out domain.ChatReply
	if err := c.post(ctx, "/api/chat/symptoms", symptomInput{SymptomDescription: description}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Recommendations lists personalized product picks for a user.
func (c *Client) Recommendations(ctx context.Context, userID int64) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.get(ctx, fmt.Sprintf("/api/recommendations/%d", userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FrequentlyBoughtTogether lists companion products for one product.
func (c *Client) FrequentlyBoughtTogether(ctx context.Context, productID int64) ([]domain.Product, error) {
	var out []domain.Product
	path := fmt.Sprintf("/api/recommendations/product/%d/frequently-bought-together", productID)
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
