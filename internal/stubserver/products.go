package stubserver

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"healthshop-client/internal/domain"
)

const defaultProductPageSize = 12

func (a *api) listProducts(c *gin.Context) {
	products := a.store.productList()

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		needle := strings.ToLower(search)
		products = filterProducts(products, func(p domain.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), needle) ||
				strings.Contains(strings.ToLower(p.Description), needle) ||
				strings.Contains(strings.ToLower(p.Brand), needle)
		})
	}
	if raw := c.Query("categoryId"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			products = filterProducts(products, func(p domain.Product) bool {
				return p.CategoryID == id
			})
		}
	}
	if goal := c.Query("healthGoal"); goal != "" {
		products = filterProducts(products, func(p domain.Product) bool {
			return p.HealthGoals.Contains(goal)
		})
	}
	if group := c.Query("ageGroup"); group != "" {
		products = filterProducts(products, func(p domain.Product) bool {
			return p.SuitableAgeGroups.Contains(group)
		})
	}
	if raw := c.Query("minPrice"); raw != "" {
		if min, err := strconv.ParseFloat(raw, 64); err == nil {
			products = filterProducts(products, func(p domain.Product) bool {
				return p.EffectivePrice() >= min
			})
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if max, err := strconv.ParseFloat(raw, 64); err == nil {
			products = filterProducts(products, func(p domain.Product) bool {
				return p.EffectivePrice() <= max
			})
		}
	}

	sortProducts(products, c.Query("sortBy"), c.Query("sortDir"))

	pageNum, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultProductPageSize)))
	c.JSON(http.StatusOK, page(products, pageNum, size))
}

func (a *api) getProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid product id")
		return
	}
	p, ok := a.store.product(id)
	if !ok {
		errorJSON(c, http.StatusNotFound, "Product not found")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (a *api) featuredProducts(c *gin.Context) {
	products := filterProducts(a.store.productList(), func(p domain.Product) bool {
		return p.Featured
	})
	c.JSON(http.StatusOK, products)
}

func (a *api) trendingProducts(c *gin.Context) {
	products := a.store.productList()
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].PurchaseCount > products[j].PurchaseCount
	})
	c.JSON(http.StatusOK, capProducts(products, 8))
}

func (a *api) newArrivals(c *gin.Context) {
	products := a.store.productList()
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	c.JSON(http.StatusOK, capProducts(products, 8))
}

func (a *api) productsByHealthGoal(c *gin.Context) {
	goal := c.Param("goal")
	products := filterProducts(a.store.productList(), func(p domain.Product) bool {
		return p.HealthGoals.Contains(goal)
	})
	c.JSON(http.StatusOK, products)
}

func (a *api) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, a.store.categoryList())
}

func (a *api) productReviews(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid product id")
		return
	}
	reviews := a.store.reviewsFor(productID)
	pageNum, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	c.JSON(http.StatusOK, page(reviews, pageNum, size))
}

func (a *api) createReview(c *gin.Context) {
	var req struct {
		ProductID int64  `json:"productId"`
		Rating    int    `json:"rating"`
		Title     string `json:"title"`
		Comment   string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		errorJSON(c, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}
	if _, ok := a.store.product(req.ProductID); !ok {
		errorJSON(c, http.StatusNotFound, "Product not found")
		return
	}
	u, _ := a.store.userByID(currentUserID(c))
	review := a.store.addReview(domain.Review{
		UserID:    u.ID,
		UserName:  u.FirstName,
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Title:     req.Title,
		Comment:   req.Comment,
	})
	c.JSON(http.StatusOK, review)
}

func filterProducts(products []domain.Product, keep func(domain.Product) bool) []domain.Product {
	out := products[:0:0]
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	if out == nil {
		out = []domain.Product{}
	}
	return out
}

func capProducts(products []domain.Product, n int) []domain.Product {
	if len(products) > n {
		return products[:n]
	}
	return products
}

func sortProducts(products []domain.Product, by, dir string) {
	desc := strings.EqualFold(dir, "desc")
	var less func(a, b domain.Product) bool
	switch by {
	case "price":
		less = func(a, b domain.Product) bool { return a.EffectivePrice() < b.EffectivePrice() }
	case "rating":
		less = func(a, b domain.Product) bool { return a.AverageRating < b.AverageRating }
	case "popularity":
		less = func(a, b domain.Product) bool { return a.PurchaseCount < b.PurchaseCount }
	case "newest":
		less = func(a, b domain.Product) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return
	}
	sort.SliceStable(products, func(i, j int) bool {
		if desc {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}
