package domain

import "time"

// Order statuses.
const (
	OrderPending    = "PENDING"
	OrderProcessing = "PROCESSING"
	OrderShipped    = "SHIPPED"
	OrderDelivered  = "DELIVERED"
	OrderCancelled  = "CANCELLED"
)

type OrderItem struct {
	ProductID    int64   `json:"productId"`
	ProductName  string  `json:"productName"`
	ProductImage string  `json:"productImage,omitempty"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	TotalPrice   float64 `json:"totalPrice"`
}

type Order struct {
	ID              int64       `json:"id"`
	OrderNumber     string      `json:"orderNumber"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	DiscountAmount  float64     `json:"discountAmount"`
	FinalAmount     float64     `json:"finalAmount"`
	CouponCode      string      `json:"couponCode,omitempty"`
	Status          string      `json:"status"`
	PaymentStatus   string      `json:"paymentStatus"`
	PaymentMethod   string      `json:"paymentMethod,omitempty"`
	ShippingName    string      `json:"shippingName"`
	ShippingAddress string      `json:"shippingAddress"`
	ShippingCity    string      `json:"shippingCity"`
	ShippingState   string      `json:"shippingState"`
	ShippingZip     string      `json:"shippingZip"`
	ShippingPhone   string      `json:"shippingPhone,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// Page mirrors the backend's paged list envelope.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
}
