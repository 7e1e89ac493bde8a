package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountPercent(t *testing.T) {
	// retail 100000, wholesale 80000 -> "-20%" badge
	assert.Equal(t, 20, DiscountPercent(100000, 80000))
	assert.Equal(t, 0, DiscountPercent(0, 80000))
	assert.Equal(t, 33, DiscountPercent(150, 100))
}

func TestDiscountPercent_ClampsNegative(t *testing.T) {
	// wholesale above retail is a data-entry error; never show a negative badge
	assert.Equal(t, 0, DiscountPercent(80000, 100000))
}

func TestWholesaleActive(t *testing.T) {
	assert.False(t, WholesaleActive(9, 10))
	assert.True(t, WholesaleActive(10, 10))
	assert.True(t, WholesaleActive(25, 10))
	assert.False(t, WholesaleActive(100, 0))
}

func TestUnitPrice(t *testing.T) {
	assert.Equal(t, 100000.0, UnitPrice(100000, 80000, 5, 10))
	assert.Equal(t, 80000.0, UnitPrice(100000, 80000, 10, 10))
}

func TestTotal(t *testing.T) {
	// item A: retail 50000 x 2, item B: wholesale 30000 x 5 -> 250000
	lines := []Line{
		{RetailPrice: 50000, WholesalePrice: 40000, Quantity: 2, IsWholesale: false},
		{RetailPrice: 35000, WholesalePrice: 30000, Quantity: 5, IsWholesale: true},
	}
	assert.Equal(t, 250000.0, Total(lines))
}

func TestTotal_Empty(t *testing.T) {
	assert.Equal(t, 0.0, Total(nil))
}
