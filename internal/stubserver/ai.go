package stubserver

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"healthshop-client/internal/domain"
)

// The AI endpoints return deterministic answers derived from the stored
// profile, catalog and order history so client flows are reproducible.

func (a *api) healthScore(c *gin.Context) {
	c.JSON(http.StatusOK, a.buildHealthScore(currentUserID(c)))
}

func (a *api) buildHealthScore(userID int64) domain.HealthScore {
	score := 50
	dimensions := []domain.ScoreDimension{}
	improvements := []string{}

	profile, hasProfile := a.store.profileFor(userID)
	if hasProfile {
		score += 10
		if bmi, ok := profile.BMI(); ok {
			status := domain.BMICategory(bmi)
			dimScore := 60
			if status == "Normal" {
				dimScore = 90
				score += 15
			} else {
				improvements = append(improvements, "Work toward a BMI in the normal range")
			}
			dimensions = append(dimensions, domain.ScoreDimension{
				Name:   "Body Composition",
				Score:  dimScore,
				Status: status,
				Tip:    fmt.Sprintf("Your BMI is %.1f (%s)", bmi, status),
			})
		}
		if len(profile.HealthGoals) > 0 {
			score += 5
			dimensions = append(dimensions, domain.ScoreDimension{
				Name:   "Goal Setting",
				Score:  80,
				Status: "On track",
				Tip:    "Health goals set: " + strings.Join(profile.HealthGoals, ", "),
			})
		}
	} else {
		improvements = append(improvements, "Complete your health profile for a personalized score")
	}

	if orders := a.store.ordersFor(userID); len(orders) > 0 {
		score += 10
		dimensions = append(dimensions, domain.ScoreDimension{
			Name:   "Supplement Routine",
			Score:  75,
			Status: "Active",
			Tip:    fmt.Sprintf("%d orders placed", len(orders)),
		})
	}

	if score > 100 {
		score = 100
	}
	grade := "C"
	switch {
	case score >= 90:
		grade = "A"
	case score >= 75:
		grade = "B"
	case score >= 60:
		grade = "C+"
	}
	return domain.HealthScore{
		OverallScore:        score,
		Grade:               grade,
		Summary:             "Score derived from your profile completeness and supplement routine.",
		Dimensions:          dimensions,
		Improvements:        improvements,
		RecommendedProducts: capProducts(a.store.productList(), 3),
	}
}

func (a *api) interactionCheck(c *gin.Context) {
	var req struct {
		ProductIDs         []int64  `json:"productIds"`
		CurrentMedications []string `json:"currentMedications"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid payload")
		return
	}
	names := make([]string, 0, len(req.ProductIDs))
	for _, id := range req.ProductIDs {
		if p, ok := a.store.product(id); ok {
			names = append(names, p.Name)
		}
	}
	report := domain.InteractionReport{
		Warnings:    []domain.InteractionWarning{},
		OverallRisk: "LOW",
		GeneralAdvice: []string{
			"Take supplements with food unless directed otherwise.",
			"Consult a healthcare professional before combining supplements with prescription medication.",
		},
	}
	if len(req.CurrentMedications) > 0 && len(names) > 0 {
		report.OverallRisk = "MODERATE"
		report.Warnings = append(report.Warnings, domain.InteractionWarning{
			Severity:       "MODERATE",
			Product1:       names[0],
			Product2:       req.CurrentMedications[0],
			Description:    "Supplements can alter the absorption of some medications.",
			Recommendation: "Separate doses by at least two hours.",
		})
	}
	for i := 0; i+1 < len(names); i += 2 {
		report.SafeCombinations = append(report.SafeCombinations, domain.InteractionInfo{
			Product1: names[i],
			Product2: names[i+1],
			Benefit:  "No known adverse interaction.",
		})
	}
	c.JSON(http.StatusOK, report)
}

func (a *api) compareProducts(c *gin.Context) {
	var req struct {
		ProductIDs []int64 `json:"productIds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if len(req.ProductIDs) < 2 || len(req.ProductIDs) > 4 {
		errorJSON(c, http.StatusBadRequest, "Select between 2 and 4 products to compare")
		return
	}
	cmp := domain.Comparison{
		Dimensions: []domain.ComparisonDimension{
			{Name: "Value", Description: "Price relative to dose"},
			{Name: "Rating", Description: "Average customer rating"},
		},
	}
	var best domain.ComparisonProduct
	for _, id := range req.ProductIDs {
		p, ok := a.store.product(id)
		if !ok {
			errorJSON(c, http.StatusNotFound, "Product not found")
			return
		}
		entry := domain.ComparisonProduct{
			ID:            p.ID,
			Name:          p.Name,
			Brand:         p.Brand,
			Price:         p.Price,
			DiscountPrice: p.DiscountPrice,
			Rating:        p.AverageRating,
			ReviewCount:   p.ReviewCount,
			ImageURL:      p.ImageURL,
			HealthGoals:   p.HealthGoals,
			DietaryInfo:   p.DietaryInfo,
			Dosage:        p.Dosage,
			Ingredients:   p.Ingredients,
		}
		cmp.Products = append(cmp.Products, entry)
		if entry.Rating > best.Rating {
			best = entry
		}
	}
	cmp.AIRecommendedID = best.ID
	cmp.AIRecommendationReason = fmt.Sprintf("%s has the highest customer rating of the compared products.", best.Name)
	c.JSON(http.StatusOK, cmp)
}

func (a *api) dosage(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid product id")
		return
	}
	p, ok := a.store.product(productID)
	if !ok {
		errorJSON(c, http.StatusNotFound, "Product not found")
		return
	}
	dose := p.Dosage
	if dose == "" {
		dose = "Follow the label directions"
	}
	out := domain.Dosage{
		ProductName:     p.Name,
		RecommendedDose: dose,
		Timing:          "With a meal",
		Frequency:       "Daily",
		Tips:            []string{"Stay consistent; most supplements need weeks of regular use."},
		Warnings:        []string{"Do not exceed the stated dose."},
	}
	if profile, ok := a.store.profileFor(currentUserID(c)); ok && profile.AgeGroup != "" {
		out.PersonalizedNote = fmt.Sprintf("Suggestion adjusted for the %s age group.", profile.AgeGroup)
	}
	c.JSON(http.StatusOK, out)
}

func (a *api) purchaseInsights(c *gin.Context) {
	c.JSON(http.StatusOK, a.buildPurchaseInsights(currentUserID(c)))
}

func (a *api) buildPurchaseInsights(userID int64) domain.PurchaseInsights {
	orders := a.store.ordersFor(userID)
	out := domain.PurchaseInsights{
		TotalOrders:   len(orders),
		SpendingTrend: []domain.MonthlySpend{},
	}
	byMonth := map[string]*domain.MonthlySpend{}
	goalCount := map[string]int{}
	for _, o := range orders {
		out.TotalSpent += o.FinalAmount
		month := o.CreatedAt.Format("2006-01")
		entry, ok := byMonth[month]
		if !ok {
			entry = &domain.MonthlySpend{Month: month}
			byMonth[month] = entry
		}
		entry.Amount += o.FinalAmount
		entry.OrderCount++
		for _, item := range o.Items {
			if p, ok := a.store.product(item.ProductID); ok {
				for _, goal := range p.HealthGoals {
					goalCount[goal]++
				}
			}
		}
	}
	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)
	for _, m := range months {
		out.SpendingTrend = append(out.SpendingTrend, *byMonth[m])
	}
	out.TopHealthGoals = topLabels(goalCount, 3)
	if len(orders) > 0 {
		out.Insights = []string{fmt.Sprintf("You have placed %d orders totalling %.2f.", len(orders), out.TotalSpent)}
		out.ReorderSuggestions = capProducts(a.store.productList(), 3)
		out.NextPurchasePrediction = "Based on your cadence, expect to reorder within 30 days."
	}
	return out
}

func (a *api) healthInsights(c *gin.Context) {
	userID := currentUserID(c)
	score := a.buildHealthScore(userID)
	purchases := a.buildPurchaseInsights(userID)
	gaps := a.buildNutritionGaps(userID)
	c.JSON(http.StatusOK, domain.HealthInsights{
		HealthScore:       &score,
		PurchaseInsights:  &purchases,
		PersonalizedPicks: capProducts(a.store.productList(), 4),
		DailyTips:         dailyTipList(),
		NutritionGaps:     &gaps,
	})
}

func (a *api) nutritionGaps(c *gin.Context) {
	c.JSON(http.StatusOK, a.buildNutritionGaps(currentUserID(c)))
}

func (a *api) buildNutritionGaps(userID int64) domain.NutritionGapAnalysis {
	gaps := []domain.NutritionGap{
		{Nutrient: "Vitamin D", CurrentStatus: "Likely low", FulfillmentPercent: 40, Recommendation: "Most adults benefit from supplementation in winter months."},
		{Nutrient: "Omega-3", CurrentStatus: "Unknown", FulfillmentPercent: 55, Recommendation: "Add fatty fish twice a week or a fish oil supplement."},
	}
	if profile, ok := a.store.profileFor(userID); ok && profile.DietaryPreferences.Contains("vegan") {
		gaps = append(gaps, domain.NutritionGap{
			Nutrient:           "Vitamin B12",
			CurrentStatus:      "At risk",
			FulfillmentPercent: 20,
			Recommendation:     "B12 supplementation is essential on a vegan diet.",
		})
	}
	return domain.NutritionGapAnalysis{
		Gaps:              gaps,
		SuggestedProducts: capProducts(a.store.productList(), 3),
	}
}

func (a *api) dailyTips(c *gin.Context) {
	c.JSON(http.StatusOK, dailyTipList())
}

func dailyTipList() []domain.HealthTip {
	return []domain.HealthTip{
		{Icon: "droplet", Title: "Hydrate first", Description: "Drink a glass of water before your morning supplements.", Category: "Routine"},
		{Icon: "sun", Title: "Morning light", Description: "Ten minutes of daylight supports vitamin D production.", Category: "Lifestyle"},
		{Icon: "moon", Title: "Magnesium at night", Description: "Magnesium is best taken in the evening for sleep support.", Category: "Timing"},
	}
}

func (a *api) chat(c *gin.Context) {
	var req struct {
		Message string               `json:"message"`
		History []domain.ChatMessage `json:"history"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid payload")
		return
	}
	reply := a.replyFor(req.Message)
	c.JSON(http.StatusOK, reply)
}

func (a *api) symptomSearch(c *gin.Context) {
	var req struct {
		SymptomDescription string `json:"symptomDescription"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid payload")
		return
	}
	reply := a.replyFor(req.SymptomDescription)
	reply.Severity = "MILD"
	reply.LifestyleTips = []string{"Prioritize sleep and hydration while symptoms persist."}
	c.JSON(http.StatusOK, reply)
}

// replyFor matches the message against catalog health goals and suggests
// whatever fits; it is keyword matching, not a language model.
func (a *api) replyFor(message string) domain.ChatReply {
	lower := strings.ToLower(message)
	var matched []domain.Product
	symptoms := []string{}
	for _, p := range a.store.productList() {
		for _, goal := range p.HealthGoals {
			if strings.Contains(lower, strings.ToLower(goal)) {
				matched = append(matched, p)
				symptoms = appendUnique(symptoms, goal)
				break
			}
		}
	}
	if len(matched) == 0 {
		return domain.ChatReply{
			Message:           "Tell me more about what you are looking for, for example energy, sleep or immunity.",
			FollowUpQuestions: []string{"What health goal matters most to you right now?"},
		}
	}
	return domain.ChatReply{
		Message:            fmt.Sprintf("I found %d products that match what you described.", len(matched)),
		IdentifiedSymptoms: symptoms,
		SuggestedProducts:  capProducts(matched, 4),
		FollowUpQuestions:  []string{"Would you like dosage guidance for any of these?"},
	}
}

func (a *api) recommendations(c *gin.Context) {
	// the path carries a user id but picks are derived from the caller's profile
	products := a.store.productList()
	if profile, ok := a.store.profileFor(currentUserID(c)); ok && len(profile.HealthGoals) > 0 {
		filtered := filterProducts(products, func(p domain.Product) bool {
			for _, goal := range profile.HealthGoals {
				if p.HealthGoals.Contains(goal) {
					return true
				}
			}
			return false
		})
		if len(filtered) > 0 {
			products = filtered
		}
	}
	c.JSON(http.StatusOK, capProducts(products, 6))
}

func (a *api) frequentlyBoughtTogether(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid product id")
		return
	}
	p, ok := a.store.product(productID)
	if !ok {
		errorJSON(c, http.StatusNotFound, "Product not found")
		return
	}
	companions := filterProducts(a.store.productList(), func(other domain.Product) bool {
		return other.ID != p.ID && other.CategoryID == p.CategoryID
	})
	c.JSON(http.StatusOK, capProducts(companions, 4))
}

func (a *api) adminAIStats(c *gin.Context) {
	profiles := a.store.profileList()
	goalCount := map[string]int{}
	groupCount := map[string]int{}
	for _, p := range profiles {
		for _, goal := range p.HealthGoals {
			goalCount[goal]++
		}
		if p.AgeGroup != "" {
			groupCount[p.AgeGroup]++
		}
	}
	c.JSON(http.StatusOK, domain.AdminAIStats{
		TotalHealthProfiles:  len(profiles),
		TopHealthGoals:       toLabelValues(goalCount),
		AgeGroupDistribution: toLabelValues(groupCount),
		AvgHealthScore:       72.5,
	})
}

func topLabels(counts map[string]int, n int) []string {
	pairs := toLabelValues(counts)
	out := make([]string, 0, n)
	for i := 0; i < len(pairs) && i < n; i++ {
		out = append(out, pairs[i].Label)
	}
	return out
}

func toLabelValues(counts map[string]int) []domain.LabelValue {
	out := make([]domain.LabelValue, 0, len(counts))
	for label, count := range counts {
		out = append(out, domain.LabelValue{Label: label, Value: int64(count)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}
