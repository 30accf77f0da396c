package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeCart(t *testing.T) {
	entries := []CartEntry{
		{Item: Item{ID: "a", Price: 10}, Quantity: 2},
		{Item: Item{ID: "b", Price: 0.1}, Quantity: 3},
	}

	s := SummarizeCart(entries)

	assert.Equal(t, 5, s.ItemCount)
	assert.Equal(t, 20.3, s.Subtotal)
	assert.Equal(t, 20.3, s.Total)
	assert.Zero(t, s.Tax)
	assert.Zero(t, s.Shipping)
}

func TestSummarizeEmptyCart(t *testing.T) {
	assert.Equal(t, CartSummary{}, SummarizeCart(nil))
}

func TestWishlistValue(t *testing.T) {
	assert.Equal(t, 0.3, WishlistValue([]Item{{Price: 0.1}, {Price: 0.2}}))
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(1, 8, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.HasPrev)
	assert.True(t, p.HasNext)

	p = NewPagination(3, 8, 20)
	assert.True(t, p.HasPrev)
	assert.False(t, p.HasNext)

	assert.Equal(t, 0, NewPagination(1, 8, 0).TotalPages)
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory(CategoryHome))
	assert.False(t, IsValidCategory(AllCategories))
	assert.False(t, IsValidCategory("home"))
}
