package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func aiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ai",
		Short: "Personalized health insights",
	}
	cmd.AddCommand(aiScoreCmd(), aiTipsCmd(), aiGapsCmd(), aiInsightsCmd(), aiHealthInsightsCmd(),
		aiDosageCmd(), aiInteractionsCmd(), aiCompareCmd(), aiChatCmd(), aiSymptomsCmd())
	return cmd
}

func aiScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Show the health score dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			score, err := a.client.HealthScore(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Health score: %d (%s)\n", score.OverallScore, score.Grade)
			if score.Summary != "" {
				fmt.Println(score.Summary)
			}
			for _, d := range score.Dimensions {
				fmt.Printf("  %-20s %3d  %s\n", d.Name, d.Score, d.Status)
			}
			for _, imp := range score.Improvements {
				fmt.Printf("  - %s\n", imp)
			}
			return nil
		},
	}
}

func aiTipsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tips",
		Short: "Show today's health tips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			tips, err := a.client.DailyTips(cmd.Context())
			if err != nil {
				return err
			}
			for _, tip := range tips {
				fmt.Printf("%s: %s\n", tip.Title, tip.Description)
			}
			return nil
		},
	}
}

func aiGapsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gaps",
		Short: "Show the nutrition gap analysis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			analysis, err := a.client.NutritionGaps(cmd.Context())
			if err != nil {
				return err
			}
			for _, gap := range analysis.Gaps {
				fmt.Printf("%-12s %3d%%  %s\n", gap.Nutrient, gap.FulfillmentPercent, gap.CurrentStatus)
				if gap.Recommendation != "" {
					fmt.Printf("             %s\n", gap.Recommendation)
				}
			}
			return nil
		},
	}
}

func aiInsightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Show purchase insights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			insights, err := a.client.PurchaseInsights(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Orders: %d, spent: %s\n", insights.TotalOrders, moneyf(insights.TotalSpent))
			if len(insights.TopHealthGoals) > 0 {
				fmt.Printf("Top goals: %s\n", strings.Join(insights.TopHealthGoals, ", "))
			}
			for _, m := range insights.SpendingTrend {
				fmt.Printf("  %s  %s in %d orders\n", m.Month, moneyf(m.Amount), m.OrderCount)
			}
			for _, line := range insights.Insights {
				fmt.Println(line)
			}
			return nil
		},
	}
}

func aiHealthInsightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health-insights",
		Short: "Show the combined health dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			insights, err := a.client.HealthInsights(cmd.Context())
			if err != nil {
				return err
			}
			if score := insights.HealthScore; score != nil {
				fmt.Printf("Health score: %d (%s)\n", score.OverallScore, score.Grade)
			}
			if purchases := insights.PurchaseInsights; purchases != nil {
				fmt.Printf("Orders: %d, spent: %s\n", purchases.TotalOrders, moneyf(purchases.TotalSpent))
			}
			if gaps := insights.NutritionGaps; gaps != nil {
				for _, gap := range gaps.Gaps {
					fmt.Printf("  gap: %-12s %3d%%\n", gap.Nutrient, gap.FulfillmentPercent)
				}
			}
			for _, tip := range insights.DailyTips {
				fmt.Printf("  tip: %s\n", tip.Title)
			}
			if len(insights.PersonalizedPicks) > 0 {
				fmt.Println("\nPicks for you:")
				printProducts(insights.PersonalizedPicks)
			}
			return nil
		},
	}
}

func aiDosageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dosage <product-id>",
		Short: "Show dosage guidance for a product",
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
			dosage, err := a.client.Dosage(cmd.Context(), productID)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %s, %s, %s\n", dosage.ProductName, dosage.RecommendedDose, dosage.Frequency, dosage.Timing)
			for _, tip := range dosage.Tips {
				fmt.Printf("  tip: %s\n", tip)
			}
			for _, warning := range dosage.Warnings {
				fmt.Printf("  warning: %s\n", warning)
			}
			if dosage.PersonalizedNote != "" {
				fmt.Println(dosage.PersonalizedNote)
			}
			return nil
		},
	}
}

func aiInteractionsCmd() *cobra.Command {
	var medications []string
	cmd := &cobra.Command{
		Use:   "interactions <product-id>...",
		Short: "Check products against each other and your medications",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productIDs, err := parseIDs(args)
			if err != nil {
				return err
			}
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			report, err := a.client.CheckInteractions(cmd.Context(), productIDs, medications)
			if err != nil {
				return err
			}
			fmt.Printf("Overall risk: %s\n", report.OverallRisk)
			for _, w := range report.Warnings {
				fmt.Printf("  [%s] %s + %s: %s\n", w.Severity, w.Product1, w.Product2, w.Description)
				if w.Recommendation != "" {
					fmt.Printf("    %s\n", w.Recommendation)
				}
			}
			for _, s := range report.SafeCombinations {
				fmt.Printf("  ok: %s + %s\n", s.Product1, s.Product2)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&medications, "medications", nil, "current medications")
	return cmd
}

func aiCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <product-id> <product-id> [product-id...]",
		Short: "Compare 2-4 products side by side",
		Args:  cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			productIDs, err := parseIDs(args)
			if err != nil {
				return err
			}
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			cmp, err := a.client.CompareProducts(cmd.Context(), productIDs)
			if err != nil {
				return err
			}
			for _, p := range cmp.Products {
				marker := " "
				if p.ID == cmp.AIRecommendedID {
					marker = "*"
				}
				fmt.Printf("%s %-40s %s  %.1f (%d reviews)\n",
					marker, p.Name, priceOf(p.Price, p.DiscountPrice), p.Rating, p.ReviewCount)
			}
			if cmp.AIRecommendationReason != "" {
				fmt.Printf("\n%s\n", cmp.AIRecommendationReason)
			}
			return nil
		},
	}
}

func aiChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat <message>",
		Short: "Ask the shopping assistant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			reply, err := a.client.Chat(cmd.Context(), strings.Join(args, " "), nil)
			if err != nil {
				return err
			}
			fmt.Println(reply.Message)
			if len(reply.SuggestedProducts) > 0 {
				printProducts(reply.SuggestedProducts)
			}
			for _, q := range reply.FollowUpQuestions {
				fmt.Printf("  ? %s\n", q)
			}
			return nil
		},
	}
}

func aiSymptomsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symptoms <description>",
		Short: "Find products for a symptom description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			reply, err := a.client.SymptomSearch(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Println(reply.Message)
			if len(reply.IdentifiedSymptoms) > 0 {
				fmt.Printf("Identified: %s\n", strings.Join(reply.IdentifiedSymptoms, ", "))
			}
			if len(reply.SuggestedProducts) > 0 {
				printProducts(reply.SuggestedProducts)
			}
			for _, tip := range reply.LifestyleTips {
				fmt.Printf("  - %s\n", tip)
			}
			return nil
		},
	}
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid product id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
