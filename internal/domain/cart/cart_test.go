package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd_MergesOnSameKey(t *testing.T) {
	c := &Cart{}

	c.Add(Line{Key: LineKey(ItemTypeBook, 1, ActionBuy), ItemType: ItemTypeBook, ItemID: 1, Action: ActionBuy, Title: "Dune", UnitPrice: 16.99, Quantity: 2})
	c.Add(Line{Key: LineKey(ItemTypeBook, 1, ActionBuy), ItemType: ItemTypeBook, ItemID: 1, Action: ActionBuy, Title: "Dune", UnitPrice: 16.99, Quantity: 3})

	assert.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
}

func TestAdd_DifferentActionIsSeparateLine(t *testing.T) {
	c := &Cart{}

	c.Add(Line{Key: LineKey(ItemTypeBook, 1, ActionBuy), Quantity: 1})
	c.Add(Line{Key: LineKey(ItemTypeBook, 1, ActionRent), Quantity: 1})

	assert.Len(t, c.Items, 2)
}

func TestRemove(t *testing.T) {
	c := &Cart{}
	c.Add(Line{Key: "book-1-buy", Quantity: 1})

	assert.Equal(t, 1, c.Remove("book-1-buy"))
	assert.Equal(t, 0, c.Remove("book-1-buy"))
	assert.True(t, c.Empty())
}

func TestTotals(t *testing.T) {
	c := &Cart{}
	c.Add(Line{Key: "book-1-buy", UnitPrice: 9.99, Quantity: 2})
	c.Add(Line{Key: "game-3-rent", UnitPrice: 6.99, Quantity: 1})

	subtotal, qty := c.Totals()
	assert.Equal(t, 26.97, subtotal)
	assert.Equal(t, 3, qty)
}

func TestTotals_EmptyCart(t *testing.T) {
	c := &Cart{}
	subtotal, qty := c.Totals()
	assert.Equal(t, 0.0, subtotal)
	assert.Equal(t, 0, qty)
}

func TestLineKey(t *testing.T) {
	assert.Equal(t, "book-7-rent", LineKey(ItemTypeBook, 7, ActionRent))
}
