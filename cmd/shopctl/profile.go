package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"healthshop-client/internal/domain"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View or update the health profile",
	}
	cmd.AddCommand(profileShowCmd(), profileSetCmd())
	return cmd
}

func profileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the health profile with derived BMI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			p, err := a.client.HealthProfile(cmd.Context())
			if err != nil {
				return err
			}
			printProfile(os.Stdout, *p)
			return nil
		},
	}
}

func profileSetCmd() *cobra.Command {
	var p domain.HealthProfile
	var goals, allergies, dietary, conditions []string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update the health profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p.HealthGoals = domain.StringList(goals)
			p.Allergies = domain.StringList(allergies)
			p.DietaryPreferences = domain.StringList(dietary)
			p.MedicalConditions = domain.StringList(conditions)
			a, err := newAuthedApp()
			if err != nil {
				return err
			}
			updated, err := a.client.UpdateHealthProfile(cmd.Context(), p)
			if err != nil {
				return err
			}
			printProfile(os.Stdout, *updated)
			return nil
		},
	}
	cmd.Flags().IntVar(&p.Age, "age", 0, "age in years")
	cmd.Flags().StringVar(&p.Gender, "gender", "", "gender")
	cmd.Flags().Float64Var(&p.Height, "height", 0, "height in cm")
	cmd.Flags().Float64Var(&p.Weight, "weight", 0, "weight in kg")
	cmd.Flags().StringSliceVar(&goals, "goals", nil, "health goals")
	cmd.Flags().StringSliceVar(&allergies, "allergies", nil, "known allergies")
	cmd.Flags().StringSliceVar(&dietary, "dietary", nil, "dietary preferences")
	cmd.Flags().StringSliceVar(&conditions, "conditions", nil, "medical conditions")
	return cmd
}

func printProfile(w io.Writer, p domain.HealthProfile) {
	if p.Age > 0 {
		fmt.Fprintf(w, "Age:     %d (%s)\n", p.Age, p.AgeGroup)
	}
	if p.Gender != "" {
		fmt.Fprintf(w, "Gender:  %s\n", p.Gender)
	}
	if p.Height > 0 {
		fmt.Fprintf(w, "Height:  %.0f cm\n", p.Height)
	}
	if p.Weight > 0 {
		fmt.Fprintf(w, "Weight:  %.1f kg\n", p.Weight)
	}
	if bmi, ok := p.BMI(); ok {
		fmt.Fprintf(w, "BMI:     %.1f (%s)\n", bmi, domain.BMICategory(bmi))
	}
	if len(p.HealthGoals) > 0 {
		fmt.Fprintf(w, "Goals:   %s\n", strings.Join(p.HealthGoals, ", "))
	}
	if len(p.Allergies) > 0 {
		fmt.Fprintf(w, "Allergies: %s\n", strings.Join(p.Allergies, ", "))
	}
	if len(p.DietaryPreferences) > 0 {
		fmt.Fprintf(w, "Dietary: %s\n", strings.Join(p.DietaryPreferences, ", "))
	}
	if len(p.MedicalConditions) > 0 {
		fmt.Fprintf(w, "Conditions: %s\n", strings.Join(p.MedicalConditions, ", "))
	}
}
