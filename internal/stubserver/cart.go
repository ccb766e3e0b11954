package stubserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"healthshop-client/internal/domain"
)

func (a *api) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, a.cartItems(currentUserID(c)))
}

func (a *api) addToCart(c *gin.Context) {
	var req struct {
		ProductID int64 `json:"productId"`
		Quantity  int   `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}
	p, ok := a.store.product(req.ProductID)
	if !ok {
		errorJSON(c, http.StatusNotFound, "Product not found")
		return
	}
	if p.Stock < req.Quantity {
		errorJSON(c, http.StatusBadRequest, "Insufficient stock")
		return
	}
	line := a.store.upsertCartLine(currentUserID(c), req.ProductID, req.Quantity)
	c.JSON(http.StatusOK, a.cartItem(line, p))
}

// updateCartItem sets the absolute quantity; zero or less removes the line.
func (a *api) updateCartItem(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid cart item id")
		return
	}
	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid quantity")
		return
	}
	line, ok := a.store.cartLine(itemID)
	if !ok || line.UserID != currentUserID(c) {
		errorJSON(c, http.StatusNotFound, "Cart item not found")
		return
	}
	if quantity <= 0 {
		a.store.removeCartLine(itemID)
		c.Status(http.StatusNoContent)
		return
	}
	a.store.setCartQuantity(itemID, quantity)
	line.Quantity = quantity
	p, _ := a.store.product(line.ProductID)
	c.JSON(http.StatusOK, a.cartItem(line, p))
}

func (a *api) removeCartItem(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid cart item id")
		return
	}
	line, ok := a.store.cartLine(itemID)
	if !ok || line.UserID != currentUserID(c) {
		errorJSON(c, http.StatusNotFound, "Cart item not found")
		return
	}
	a.store.removeCartLine(itemID)
	c.Status(http.StatusNoContent)
}

func (a *api) validateCoupon(c *gin.Context) {
	var req struct {
		Code   string  `json:"code"`
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid payload")
		return
	}
	coupon, rejection := a.checkCoupon(req.Code, req.Amount)
	if rejection != "" {
		errorJSON(c, http.StatusBadRequest, rejection)
		return
	}
	c.JSON(http.StatusOK, coupon)
}

// checkCoupon applies the coupon acceptance rules and returns a rejection
// message when the code cannot be used for the given cart amount.
func (a *api) checkCoupon(code string, amount float64) (domain.Coupon, string) {
	coupon, ok := a.store.couponByCode(code)
	if !ok {
		return domain.Coupon{}, "Invalid coupon code"
	}
	if !coupon.Active {
		return domain.Coupon{}, "Coupon is inactive"
	}
	if coupon.ExpirationDate != nil && coupon.ExpirationDate.Before(time.Now()) {
		return domain.Coupon{}, "Coupon has expired"
	}
	if coupon.MinPurchaseAmount != nil && amount < *coupon.MinPurchaseAmount {
		return domain.Coupon{}, "Minimum purchase amount not met for this coupon"
	}
	return coupon, ""
}

// cartItems resolves cart lines against the current catalog. Lines whose
// product disappeared are skipped.
func (a *api) cartItems(userID int64) []domain.CartItem {
	lines := a.store.cartFor(userID)
	items := make([]domain.CartItem, 0, len(lines))
	for _, line := range lines {
		p, ok := a.store.product(line.ProductID)
		if !ok {
			continue
		}
		items = append(items, a.cartItem(line, p))
	}
	return items
}

func (a *api) cartItem(line cartLine, p domain.Product) domain.CartItem {
	unit := decimal.NewFromFloat(p.EffectivePrice())
	total, _ := unit.Mul(decimal.NewFromInt(int64(line.Quantity))).Round(2).Float64()
	return domain.CartItem{
		ID:            line.ID,
		ProductID:     p.ID,
		ProductName:   p.Name,
		ProductImage:  p.ImageURL,
		UnitPrice:     p.Price,
		DiscountPrice: p.DiscountPrice,
		Quantity:      line.Quantity,
		TotalPrice:    total,
	}
}
