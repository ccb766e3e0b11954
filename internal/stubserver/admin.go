package stubserver

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"healthshop-client/internal/domain"
)

func (a *api) adminStats(c *gin.Context) {
	products := a.store.productList()
	orders := a.store.allOrders()

	revenue := 0.0
	for _, o := range orders {
		revenue += o.FinalAmount
	}

	byCategory := map[string]int{}
	for _, p := range products {
		if p.CategoryName != "" {
			byCategory[p.CategoryName]++
		}
	}
	distribution := make([]map[string]any, 0, len(byCategory))
	for name, count := range byCategory {
		distribution = append(distribution, map[string]any{"category": name, "count": count})
	}
	sort.Slice(distribution, func(i, j int) bool {
		return distribution[i]["category"].(string) < distribution[j]["category"].(string)
	})

	recent := make([]domain.Product, len(products))
	copy(recent, products)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})

	c.JSON(http.StatusOK, gin.H{
		"totalUsers":           len(a.store.userList()),
		"totalProducts":        len(products),
		"totalOrders":          len(orders),
		"totalRevenue":         revenue,
		"categoryDistribution": distribution,
		"recentProducts":       capProducts(recent, 5),
	})
}

func (a *api) adminUsers(c *gin.Context) {
	c.JSON(http.StatusOK, a.store.userList())
}

type productRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Ingredients   string   `json:"ingredients"`
	Benefits      string   `json:"benefits"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discountPrice"`
	Stock         int      `json:"stock"`
	Brand         string   `json:"brand"`
	ImageURL      string   `json:"imageUrl"`
	CategoryID    int64    `json:"categoryId"`
	Tags          []string `json:"tags"`
	HealthGoals   []string `json:"healthGoals"`
	Dosage        string   `json:"dosage"`
	Featured      bool     `json:"featured"`
}

func (a *api) adminCreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Name == "" {
		errorJSON(c, http.StatusBadRequest, "Product name is required")
		return
	}
	if req.Price <= 0 {
		errorJSON(c, http.StatusBadRequest, "Price must be positive")
		return
	}
	p := domain.Product{}
	applyProductRequest(&p, req)
	a.fillCategoryName(&p)
	c.JSON(http.StatusOK, a.store.addProduct(p))
}

func (a *api) adminUpdateProduct(c *gin.Context) {
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
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid payload")
		return
	}
	applyProductRequest(&p, req)
	a.fillCategoryName(&p)
	c.JSON(http.StatusOK, a.store.addProduct(p))
}

func (a *api) adminDeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid product id")
		return
	}
	if !a.store.removeProduct(id) {
		errorJSON(c, http.StatusNotFound, "Product not found")
		return
	}
	c.Status(http.StatusNoContent)
}

func (a *api) adminOrders(c *gin.Context) {
	pageNum, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	c.JSON(http.StatusOK, page(a.store.allOrders(), pageNum, size))
}

func (a *api) adminUpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid order id")
		return
	}
	status := c.Query("status")
	switch status {
	case domain.OrderPending, domain.OrderProcessing, domain.OrderShipped, domain.OrderDelivered, domain.OrderCancelled:
	default:
		errorJSON(c, http.StatusBadRequest, "Invalid order status")
		return
	}
	order, ok := a.store.setOrderStatus(id, status)
	if !ok {
		errorJSON(c, http.StatusNotFound, "Order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (a *api) adminCoupons(c *gin.Context) {
	c.JSON(http.StatusOK, a.store.couponList())
}

func (a *api) adminCreateCoupon(c *gin.Context) {
	var coupon domain.Coupon
	if err := c.ShouldBindJSON(&coupon); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid payload")
		return
	}
	coupon.Code = domain.NormalizeCouponCode(coupon.Code)
	if coupon.Code == "" {
		errorJSON(c, http.StatusBadRequest, "Coupon code is required")
		return
	}
	switch coupon.DiscountType {
	case domain.DiscountPercentage, domain.DiscountFixed:
	default:
		errorJSON(c, http.StatusBadRequest, "Invalid discount type")
		return
	}
	if _, exists := a.store.couponByCode(coupon.Code); exists {
		errorJSON(c, http.StatusBadRequest, "Coupon code already exists")
		return
	}
	coupon.ID = 0
	c.JSON(http.StatusOK, a.store.addCoupon(coupon))
}

func (a *api) adminDeleteCoupon(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid coupon id")
		return
	}
	if !a.store.removeCoupon(id) {
		errorJSON(c, http.StatusNotFound, "Coupon not found")
		return
	}
	c.Status(http.StatusNoContent)
}

func applyProductRequest(p *domain.Product, req productRequest) {
	p.Name = req.Name
	p.Description = req.Description
	p.Ingredients = req.Ingredients
	p.Benefits = req.Benefits
	p.Price = req.Price
	p.DiscountPrice = req.DiscountPrice
	p.Stock = req.Stock
	p.Brand = req.Brand
	p.ImageURL = req.ImageURL
	p.CategoryID = req.CategoryID
	p.Tags = domain.StringList(req.Tags)
	p.HealthGoals = domain.StringList(req.HealthGoals)
	p.Dosage = req.Dosage
	p.Featured = req.Featured
}

func (a *api) fillCategoryName(p *domain.Product) {
	for _, cat := range a.store.categoryList() {
		if cat.ID == p.CategoryID {
			p.CategoryName = cat.Name
			return
		}
	}
}
