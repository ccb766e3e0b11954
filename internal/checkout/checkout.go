// Package checkout derives the order summary shown at checkout, layered on
// top of the cart manager. Discount is applied after shipping and tax are
// added, so a coupon does not reduce the taxable base.
package checkout

import "github.com/shopspring/decimal"

var (
	// FreeShippingThreshold is the subtotal at which shipping becomes free.
	FreeShippingThreshold = decimal.NewFromInt(50)
	// ShippingFee is the flat fee below the threshold.
	ShippingFee = decimal.NewFromFloat(5.99)
	// TaxRate is applied to the subtotal only.
	TaxRate = decimal.NewFromFloat(0.08)
)

// Summary is the derived checkout breakdown.
type Summary struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// Summarize computes shipping, tax and the clamped grand total for a cart
// subtotal and an already-derived discount.
func Summarize(subtotal, discount decimal.Decimal) Summary {
	shipping := ShippingFee
	if subtotal.GreaterThanOrEqual(FreeShippingThreshold) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(TaxRate)
	total := subtotal.Add(shipping).Add(tax).Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	return Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Discount: discount,
		Total:    total,
	}
}

// FreeShippingGap is how much more the subtotal needs to qualify for free
// shipping; zero once qualified.
func FreeShippingGap(subtotal decimal.Decimal) decimal.Decimal {
	gap := FreeShippingThreshold.Sub(subtotal)
	if gap.IsNegative() {
		return decimal.Zero
	}
	return gap
}
