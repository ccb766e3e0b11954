package main

import (
	"strings"
	"testing"

	"healthshop-client/internal/domain"
)

func TestPrintProfileRendersAllListFields(t *testing.T) {
	p := domain.HealthProfile{
		Age:                35,
		AgeGroup:           "ADULT",
		Height:             180,
		Weight:             72,
		HealthGoals:        domain.StringList{"immunity"},
		Allergies:          domain.StringList{"peanuts"},
		DietaryPreferences: domain.StringList{"vegan"},
		MedicalConditions:  domain.StringList{"hypertension", "asthma"},
	}
	var sb strings.Builder
	printProfile(&sb, p)
	out := sb.String()

	for _, want := range []string{
		"Goals:   immunity",
		"Allergies: peanuts",
		"Dietary: vegan",
		"Conditions: hypertension, asthma",
		"BMI:     22.2",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
}
