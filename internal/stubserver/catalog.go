package stubserver

import (
	"encoding/json"
	"fmt"
	"os"

	"healthshop-client/internal/domain"
)

// catalogFile is the JSON shape accepted by --catalog. Category references
// are by slug so the file stays order-independent.
type catalogFile struct {
	Categories []domain.Category `json:"categories"`
	Products   []catalogProduct  `json:"products"`
	Coupons    []domain.Coupon   `json:"coupons"`
}

type catalogProduct struct {
	domain.Product
	CategorySlug string `json:"categorySlug"`
}

// loadCatalog replaces the seeded catalog with the contents of a JSON file.
func loadCatalog(s *memStore, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse catalog: %w", err)
	}

	bySlug := make(map[string]domain.Category, len(file.Categories))
	for _, c := range file.Categories {
		stored := s.addCategory(c)
		bySlug[stored.Slug] = stored
	}

	for i, cp := range file.Products {
		p := cp.Product
		if cp.CategorySlug != "" {
			cat, ok := bySlug[cp.CategorySlug]
			if !ok {
				return fmt.Errorf("product %q: unknown category slug %q", p.Name, cp.CategorySlug)
			}
			p.CategoryID = cat.ID
			p.CategoryName = cat.Name
		}
		if p.Name == "" {
			return fmt.Errorf("product at index %d: name required", i)
		}
		s.addProduct(p)
	}

	for _, c := range file.Coupons {
		s.addCoupon(c)
	}
	return nil
}
