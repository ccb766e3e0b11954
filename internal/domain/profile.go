package domain

// Age groups used by the recommendation endpoints.
const (
	AgeGroupTeen       = "TEEN"
	AgeGroupYoungAdult = "YOUNG_ADULT"
	AgeGroupAdult      = "ADULT"
	AgeGroupMiddleAged = "MIDDLE_AGED"
	AgeGroupSenior     = "SENIOR"
)

// HealthProfile is user-supplied demographic and goal data. It is opaque to
// the client beyond display and form editing; the backend AI endpoints consume it.
type HealthProfile struct {
	ID                 int64      `json:"id,omitempty"`
	Age                int        `json:"age,omitempty"`
	Gender             string     `json:"gender,omitempty"`
	Height             float64    `json:"height,omitempty"` // cm
	Weight             float64    `json:"weight,omitempty"` // kg
	HealthGoals        StringList `json:"healthGoals,omitempty"`
	Allergies          StringList `json:"allergies,omitempty"`
	DietaryPreferences StringList `json:"dietaryPreferences,omitempty"`
	MedicalConditions  StringList `json:"medicalConditions,omitempty"`
	AgeGroup           string     `json:"ageGroup,omitempty"`
}

// BMI derives body mass index from height (cm) and weight (kg). The second
// return value is false when either measurement is missing.
func (p HealthProfile) BMI() (float64, bool) {
	if p.Height <= 0 || p.Weight <= 0 {
		return 0, false
	}
	m := p.Height / 100
	return p.Weight / (m * m), true
}

// BMICategory labels a BMI value using the standard bands.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}
