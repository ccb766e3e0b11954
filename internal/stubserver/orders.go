package stubserver

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"healthshop-client/internal/domain"
)

type createOrderRequest struct {
	ShippingName    string `json:"shippingName"`
	ShippingAddress string `json:"shippingAddress"`
	ShippingCity    string `json:"shippingCity"`
	ShippingState   string `json:"shippingState"`
	ShippingZip     string `json:"shippingZip"`
	ShippingPhone   string `json:"shippingPhone"`
	PaymentMethod   string `json:"paymentMethod"`
	CouponCode      string `json:"couponCode"`
}

func (a *api) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid payload")
		return
	}
	userID := currentUserID(c)
	items := a.cartItems(userID)
	if len(items) == 0 {
		errorJSON(c, http.StatusBadRequest, "Cart is empty")
		return
	}

	total := decimal.Zero
	orderItems := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		total = total.Add(decimal.NewFromFloat(item.TotalPrice))
		orderItems = append(orderItems, domain.OrderItem{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			Quantity:     item.Quantity,
			UnitPrice:    item.EffectiveUnitPrice(),
			TotalPrice:   item.TotalPrice,
		})
	}

	discount := decimal.Zero
	couponCode := ""
	if req.CouponCode != "" {
		amount, _ := total.Float64()
		coupon, rejection := a.checkCoupon(req.CouponCode, amount)
		if rejection != "" {
			errorJSON(c, http.StatusBadRequest, rejection)
			return
		}
		discount = couponDiscount(coupon, total)
		couponCode = coupon.Code
	}

	// the discount never drives the amount due below zero
	if discount.GreaterThan(total) {
		discount = total
	}
	final := total.Sub(discount)

	totalF, _ := total.Round(2).Float64()
	discountF, _ := discount.Round(2).Float64()
	finalF, _ := final.Round(2).Float64()

	now := time.Now().UTC()
	order := a.store.addOrder(userID, domain.Order{
		OrderNumber:     fmt.Sprintf("HS-%d", now.UnixMilli()),
		Items:           orderItems,
		TotalAmount:     totalF,
		DiscountAmount:  discountF,
		FinalAmount:     finalF,
		CouponCode:      couponCode,
		Status:          domain.OrderPending,
		PaymentStatus:   "PENDING",
		PaymentMethod:   req.PaymentMethod,
		ShippingName:    req.ShippingName,
		ShippingAddress: req.ShippingAddress,
		ShippingCity:    req.ShippingCity,
		ShippingState:   req.ShippingState,
		ShippingZip:     req.ShippingZip,
		ShippingPhone:   req.ShippingPhone,
		CreatedAt:       now,
	})
	a.store.clearCart(userID)
	c.JSON(http.StatusOK, order)
}

func (a *api) orderHistory(c *gin.Context) {
	orders := a.store.ordersFor(currentUserID(c))
	pageNum, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	c.JSON(http.StatusOK, page(orders, pageNum, size))
}

func couponDiscount(coupon domain.Coupon, total decimal.Decimal) decimal.Decimal {
	value := decimal.NewFromFloat(coupon.DiscountValue)
	if coupon.DiscountType == domain.DiscountPercentage {
		return total.Mul(value).Div(decimal.NewFromInt(100))
	}
	return value
}
