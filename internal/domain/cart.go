package domain

// CartItem is one line item of the server-side cart. The id is assigned by the
// server and is distinct from the product id. TotalPrice is computed server-side
// from the effective unit price, so promotional pricing is already baked in.
type CartItem struct {
	ID            int64    `json:"id"`
	ProductID     int64    `json:"productId"`
	ProductName   string   `json:"productName"`
	ProductImage  string   `json:"productImage,omitempty"`
	UnitPrice     float64  `json:"productPrice"`
	DiscountPrice *float64 `json:"productDiscountPrice,omitempty"`
	Quantity      int      `json:"quantity"`
	TotalPrice    float64  `json:"totalPrice"`
}

// EffectiveUnitPrice is the discounted unit price when present.
func (i CartItem) EffectiveUnitPrice() float64 {
	if i.DiscountPrice != nil {
		return *i.DiscountPrice
	}
	return i.UnitPrice
}
