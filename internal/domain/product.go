package domain

import "time"

type Product struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	Slug              string     `json:"slug,omitempty"`
	Description       string     `json:"description,omitempty"`
	Ingredients       string     `json:"ingredients,omitempty"`
	Benefits          string     `json:"benefits,omitempty"`
	Price             float64    `json:"price"`
	DiscountPrice     *float64   `json:"discountPrice,omitempty"`
	Stock             int        `json:"stock"`
	Brand             string     `json:"brand,omitempty"`
	ImageURL          string     `json:"imageUrl,omitempty"`
	Images            StringList `json:"images,omitempty"`
	CategoryID        int64      `json:"categoryId,omitempty"`
	CategoryName      string     `json:"categoryName,omitempty"`
	Tags              StringList `json:"tags,omitempty"`
	HealthGoals       StringList `json:"healthGoals,omitempty"`
	SuitableAgeGroups StringList `json:"suitableAgeGroups,omitempty"`
	DietaryInfo       StringList `json:"dietaryInfo,omitempty"`
	AllergenInfo      StringList `json:"allergenInfo,omitempty"`
	Dosage            string     `json:"dosage,omitempty"`
	AverageRating     float64    `json:"averageRating"`
	ReviewCount       int        `json:"reviewCount"`
	PurchaseCount     int        `json:"purchaseCount"`
	Featured          bool       `json:"featured"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// EffectivePrice is the discounted price when one is set, the list price otherwise.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}
