package stubserver

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"healthshop-client/internal/domain"
)

func ptr(v float64) *float64 { return &v }

// seedStore loads a small but representative catalog so the CLI and the
// client tests have something to shop against.
func seedStore(s *memStore) {
	vitamins := s.addCategory(domain.Category{Name: "Vitamins", Slug: "vitamins", Description: "Daily essential vitamins"})
	minerals := s.addCategory(domain.Category{Name: "Minerals", Slug: "minerals", Description: "Minerals and trace elements"})
	omega := s.addCategory(domain.Category{Name: "Omega & Fish Oil", Slug: "omega-fish-oil", Description: "Essential fatty acids"})
	herbal := s.addCategory(domain.Category{Name: "Herbal", Slug: "herbal", Description: "Herbal and botanical extracts"})

	now := time.Now().UTC()
	products := []domain.Product{
		{
			Name: "Vitamin D3 2000 IU", Slug: "vitamin-d3-2000", Brand: "SunWell",
			Description: "High-strength vitamin D3 for bone and immune support.",
			Price:       12.99, Stock: 120, CategoryID: vitamins.ID, CategoryName: vitamins.Name,
			HealthGoals: domain.StringList{"immunity", "bone health"},
			Tags:        domain.StringList{"vitamin d", "daily"},
			Dosage:      "1 capsule daily with food",
			Featured:    true, AverageRating: 4.7, ReviewCount: 182, PurchaseCount: 940,
			CreatedAt: now.AddDate(0, -6, 0),
		},
		{
			Name: "Vitamin C 1000mg", Slug: "vitamin-c-1000", Brand: "SunWell",
			Description: "Buffered vitamin C with rose hips.",
			Price:       9.49, DiscountPrice: ptr(7.99), Stock: 200,
			CategoryID: vitamins.ID, CategoryName: vitamins.Name,
			HealthGoals: domain.StringList{"immunity", "energy"},
			Dosage:      "1 tablet daily",
			AverageRating: 4.5, ReviewCount: 96, PurchaseCount: 610,
			CreatedAt: now.AddDate(0, -4, 0),
		},
		{
			Name: "Magnesium Glycinate 400mg", Slug: "magnesium-glycinate", Brand: "MinerCore",
			Description: "Chelated magnesium for sleep and muscle recovery.",
			Price:       18.50, Stock: 80, CategoryID: minerals.ID, CategoryName: minerals.Name,
			HealthGoals: domain.StringList{"sleep", "muscle recovery"},
			Dosage:      "2 capsules in the evening",
			Featured:    true, AverageRating: 4.8, ReviewCount: 251, PurchaseCount: 1210,
			CreatedAt: now.AddDate(0, -2, 0),
		},
		{
			Name: "Zinc Picolinate 30mg", Slug: "zinc-picolinate", Brand: "MinerCore",
			Description: "Highly absorbable zinc for immune function.",
			Price:       8.25, Stock: 150, CategoryID: minerals.ID, CategoryName: minerals.Name,
			HealthGoals: domain.StringList{"immunity", "skin health"},
			AverageRating: 4.3, ReviewCount: 44, PurchaseCount: 305,
			CreatedAt: now.AddDate(0, -8, 0),
		},
		{
			Name: "Omega-3 Fish Oil 1000mg", Slug: "omega-3-fish-oil", Brand: "DeepBlue",
			Description: "Molecularly distilled EPA/DHA fish oil.",
			Price:       21.99, DiscountPrice: ptr(17.59), Stock: 95,
			CategoryID: omega.ID, CategoryName: omega.Name,
			HealthGoals: domain.StringList{"heart health", "brain health"},
			Dosage:      "2 softgels daily with meals",
			Featured:    true, AverageRating: 4.6, ReviewCount: 312, PurchaseCount: 1480,
			CreatedAt: now.AddDate(0, -12, 0),
		},
		{
			Name: "Vegan Algae Omega-3", Slug: "vegan-algae-omega-3", Brand: "DeepBlue",
			Description: "Plant-sourced DHA from sustainably grown algae.",
			Price:       27.99, Stock: 60, CategoryID: omega.ID, CategoryName: omega.Name,
			HealthGoals: domain.StringList{"heart health", "brain health"},
			DietaryInfo: domain.StringList{"vegan", "gluten-free"},
			AverageRating: 4.4, ReviewCount: 58, PurchaseCount: 240,
			CreatedAt: now.AddDate(0, -1, 0),
		},
		{
			Name: "Ashwagandha KSM-66 600mg", Slug: "ashwagandha-ksm66", Brand: "RootLeaf",
			Description: "Full-spectrum ashwagandha root extract for stress support.",
			Price:       16.75, Stock: 110, CategoryID: herbal.ID, CategoryName: herbal.Name,
			HealthGoals: domain.StringList{"stress", "sleep", "energy"},
			Dosage:      "1 capsule twice daily",
			AverageRating: 4.5, ReviewCount: 139, PurchaseCount: 720,
			CreatedAt: now.AddDate(0, -3, 0),
		},
		{
			Name: "Turmeric Curcumin with BioPerine", Slug: "turmeric-curcumin", Brand: "RootLeaf",
			Description: "Curcumin extract with black pepper for absorption.",
			Price:       14.99, DiscountPrice: ptr(11.99), Stock: 135,
			CategoryID: herbal.ID, CategoryName: herbal.Name,
			HealthGoals: domain.StringList{"joint health", "inflammation"},
			AverageRating: 4.2, ReviewCount: 77, PurchaseCount: 410,
			CreatedAt: now.AddDate(0, -9, 0),
		},
		{
			Name: "Vitamin B12 Methylcobalamin", Slug: "vitamin-b12", Brand: "SunWell",
			Description: "Active-form B12 lozenges, essential on plant-based diets.",
			Price:       10.49, Stock: 170, CategoryID: vitamins.ID, CategoryName: vitamins.Name,
			HealthGoals: domain.StringList{"energy", "brain health"},
			DietaryInfo: domain.StringList{"vegan"},
			AverageRating: 4.6, ReviewCount: 121, PurchaseCount: 530,
			CreatedAt: now.AddDate(0, -5, 0),
		},
		{
			Name: "Probiotic 50 Billion CFU", Slug: "probiotic-50b", Brand: "FloraBio",
			Description: "Ten-strain probiotic blend for digestive balance.",
			Price:       29.99, Stock: 70, CategoryID: herbal.ID, CategoryName: herbal.Name,
			HealthGoals: domain.StringList{"digestion", "immunity"},
			Dosage:      "1 capsule daily on an empty stomach",
			Featured:    true, AverageRating: 4.7, ReviewCount: 203, PurchaseCount: 880,
			CreatedAt: now.AddDate(0, 0, -10),
		},
	}
	for _, p := range products {
		s.addProduct(p)
	}

	expired := now.AddDate(0, -1, 0)
	minPurchase := 30.0
	s.addCoupon(domain.Coupon{Code: "WELCOME10", DiscountType: domain.DiscountPercentage, DiscountValue: 10, Active: true})
	s.addCoupon(domain.Coupon{Code: "SAVE5", DiscountType: domain.DiscountFixed, DiscountValue: 5, MinPurchaseAmount: &minPurchase, Active: true})
	s.addCoupon(domain.Coupon{Code: "EXPIRED20", DiscountType: domain.DiscountPercentage, DiscountValue: 20, ExpirationDate: &expired, Active: true})
	s.addCoupon(domain.Coupon{Code: "PAUSED15", DiscountType: domain.DiscountPercentage, DiscountValue: 15, Active: false})

	seedUser(s, "admin@healthshop.dev", "admin123", "Admin", domain.RoleAdmin)
	seedUser(s, "demo@healthshop.dev", "demo1234", "Demo", domain.RoleUser)
}

func seedUser(s *memStore, email, password, firstName, role string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return
	}
	s.addUser(user{
		User: domain.User{
			Email:     email,
			FirstName: firstName,
			Role:      role,
		},
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
}
