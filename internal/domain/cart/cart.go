package cart

import (
	"fmt"
	"math"
)

const (
	ItemTypeBook = "book"
	ItemTypeGame = "game"

	ActionBuy  = "buy"
	ActionRent = "rent"
)

// Line is one cart entry. Title and UnitPrice are denormalized from the
// catalog at add time so later price changes do not affect an open cart.
type Line struct {
	Key       string  `json:"key"`
	ItemType  string  `json:"item_type"`
	ItemID    int64   `json:"item_id"`
	Action    string  `json:"action"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// Cart is an explicit value object. The session store loads it per user and
// writes it back after mutation; handlers never touch ambient session state.
type Cart struct {
	Items []Line `json:"items"`
}

// LineKey builds the composite key a cart line is merged on.
func LineKey(itemType string, itemID int64, action string) string {
	return fmt.Sprintf("%s-%d-%s", itemType, itemID, action)
}

// Add merges the line into the cart: an existing line with the same key has
// its quantity incremented, otherwise the line is appended.
func (c *Cart) Add(line Line) {
	for i := range c.Items {
		if c.Items[i].Key == line.Key {
			c.Items[i].Quantity += line.Quantity
			return
		}
	}
	c.Items = append(c.Items, line)
}

// Remove deletes the line with the given key and returns how many lines
// were removed (0 or 1). A missing key is not an error.
func (c *Cart) Remove(key string) int {
	for i := range c.Items {
		if c.Items[i].Key == key {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return 1
		}
	}
	return 0
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) Empty() bool {
	return len(c.Items) == 0
}

// Totals returns the subtotal rounded to two decimals and the total quantity.
func (c *Cart) Totals() (subtotal float64, quantity int) {
	for _, it := range c.Items {
		subtotal += it.UnitPrice * float64(it.Quantity)
		quantity += it.Quantity
	}
	subtotal = math.Round(subtotal*100) / 100
	return subtotal, quantity
}
