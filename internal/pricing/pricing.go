// Package pricing holds the retail/wholesale price rules shared by the cart,
// the order flow and the storefront product views.
package pricing

import "math"

// DiscountPercent returns the badge percentage for a wholesale price relative
// to retail, rounded to the nearest integer and clamped to zero so a bad data
// entry (wholesale above retail) never renders a negative badge.
func DiscountPercent(retail, wholesale float64) int {
	if retail <= 0 {
		return 0
	}
	pct := int(math.Round(100 * (retail - wholesale) / retail))
	if pct < 0 {
		return 0
	}
	return pct
}

// WholesaleActive reports whether a quantity qualifies for the wholesale
// price given the product's configured minimum.
func WholesaleActive(quantity, minQuantity int) bool {
	if minQuantity <= 0 {
		return false
	}
	return quantity >= minQuantity
}

// UnitPrice selects the price a single unit sells at for the given quantity.
func UnitPrice(retail, wholesale float64, quantity, minQuantity int) float64 {
	if WholesaleActive(quantity, minQuantity) {
		return wholesale
	}
	return retail
}

// Line is one priced cart or order line.
type Line struct {
	RetailPrice    float64
	WholesalePrice float64
	Quantity       int
	IsWholesale    bool
}

// LineTotal prices a line: wholesale lines use the wholesale unit price,
// everything else retail.
func LineTotal(l Line) float64 {
	unit := l.RetailPrice
	if l.IsWholesale {
		unit = l.WholesalePrice
	}
	return unit * float64(l.Quantity)
}

// Total sums all line totals.
func Total(lines []Line) float64 {
	var sum float64
	for _, l := range lines {
		sum += LineTotal(l)
	}
	return sum
}
