package domain

// Shapes returned by the AI endpoints. The client renders these as-is.

type ScoreDimension struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Status string `json:"status"`
	Tip    string `json:"tip,omitempty"`
}

type HealthScore struct {
	OverallScore        int              `json:"overallScore"`
	Grade               string           `json:"grade"`
	Summary             string           `json:"summary,omitempty"`
	Dimensions          []ScoreDimension `json:"dimensions,omitempty"`
	Improvements        []string         `json:"improvements,omitempty"`
	RecommendedProducts []Product        `json:"recommendedProducts,omitempty"`
}

type InteractionWarning struct {
	Severity       string `json:"severity"`
	Product1       string `json:"product1"`
	Product2       string `json:"product2"`
	Description    string `json:"description,omitempty"`
	Recommendation string `json:"recommendation,omitempty"`
}

type InteractionInfo struct {
	Product1 string `json:"product1"`
	Product2 string `json:"product2"`
	Benefit  string `json:"benefit,omitempty"`
}

type InteractionReport struct {
	Warnings []InteractionWarning `json:"warnings"`
	// The wire name carries a typo from the backend DTO; it is part of the contract.
	SafeCombinations []InteractionInfo `json:"safeCombinatons,omitempty"`
	OverallRisk      string            `json:"overallRisk"`
	GeneralAdvice    []string          `json:"generalAdvice,omitempty"`
}

type ComparisonProduct struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	Brand         string            `json:"brand,omitempty"`
	Price         float64           `json:"price"`
	DiscountPrice *float64          `json:"discountPrice,omitempty"`
	Rating        float64           `json:"rating"`
	ReviewCount   int               `json:"reviewCount"`
	ImageURL      string            `json:"imageUrl,omitempty"`
	HealthGoals   StringList        `json:"healthGoals,omitempty"`
	DietaryInfo   StringList        `json:"dietaryInfo,omitempty"`
	Dosage        string            `json:"dosage,omitempty"`
	Ingredients   string            `json:"ingredients,omitempty"`
	Scores        map[string]string `json:"scores,omitempty"`
}

type ComparisonDimension struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Comparison struct {
	Products               []ComparisonProduct   `json:"products"`
	AIRecommendedID        int64                 `json:"aiRecommendedId,omitempty"`
	AIRecommendationReason string                `json:"aiRecommendationReason,omitempty"`
	Dimensions             []ComparisonDimension `json:"dimensions,omitempty"`
}

type Dosage struct {
	ProductName      string   `json:"productName"`
	RecommendedDose  string   `json:"recommendedDosage"`
	Timing           string   `json:"timing,omitempty"`
	Frequency        string   `json:"frequency,omitempty"`
	Tips             []string `json:"tips,omitempty"`
	Warnings         []string `json:"warnings,omitempty"`
	PersonalizedNote string   `json:"personalizedNote,omitempty"`
}

type MonthlySpend struct {
	Month      string  `json:"month"`
	Amount     float64 `json:"amount"`
	OrderCount int     `json:"orderCount"`
}

type PurchaseInsights struct {
	TotalOrders            int            `json:"totalOrders"`
	TotalSpent             float64        `json:"totalSpent"`
	TopCategory            string         `json:"topCategory,omitempty"`
	TopHealthGoals         []string       `json:"topHealthGoals,omitempty"`
	SpendingTrend          []MonthlySpend `json:"spendingTrend,omitempty"`
	ReorderSuggestions     []Product      `json:"reorderSuggestions,omitempty"`
	NextPurchasePrediction string         `json:"nextPurchasePrediction,omitempty"`
	Insights               []string       `json:"insights,omitempty"`
}

type HealthTip struct {
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

type NutritionGap struct {
	Nutrient           string `json:"nutrient"`
	CurrentStatus      string `json:"currentStatus"`
	FulfillmentPercent int    `json:"fulfillmentPercent"`
	Recommendation     string `json:"recommendation,omitempty"`
}

type NutritionGapAnalysis struct {
	Gaps              []NutritionGap `json:"gaps"`
	SuggestedProducts []Product      `json:"suggestedProducts,omitempty"`
}

type HealthInsights struct {
	HealthScore       *HealthScore          `json:"healthScore,omitempty"`
	PurchaseInsights  *PurchaseInsights     `json:"purchaseInsights,omitempty"`
	PersonalizedPicks []Product             `json:"personalizedPicks,omitempty"`
	DailyTips         []HealthTip           `json:"dailyTips,omitempty"`
	NutritionGaps     *NutritionGapAnalysis `json:"nutritionGaps,omitempty"`
}

type ChatMessage struct {
	Role              string    `json:"role"`
	Content           string    `json:"content"`
	Products          []Product `json:"products,omitempty"`
	FollowUpQuestions []string  `json:"followUpQuestions,omitempty"`
}

type ChatReply struct {
	Message             string    `json:"message"`
	IdentifiedSymptoms  []string  `json:"identifiedSymptoms,omitempty"`
	SuggestedCategories []string  `json:"suggestedCategories,omitempty"`
	SuggestedProducts   []Product `json:"suggestedProducts,omitempty"`
	FollowUpQuestions   []string  `json:"followUpQuestions,omitempty"`
	Severity            string    `json:"severity,omitempty"`
	LifestyleTips       []string  `json:"lifestyleTips,omitempty"`
}

type LabelValue struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

type AdminAIStats struct {
	TotalHealthProfiles  int          `json:"totalHealthProfiles"`
	TopHealthGoals       []LabelValue `json:"topHealthGoals,omitempty"`
	TopSymptoms          []LabelValue `json:"topSymptoms,omitempty"`
	AgeGroupDistribution []LabelValue `json:"ageGroupDistribution,omitempty"`
	AvgHealthScore       float64      `json:"avgHealthScore"`
	RecentAIActivity     []string     `json:"recentAiActivity,omitempty"`
}
