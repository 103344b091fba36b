package model

import (
	"fmt"
	"strings"

	"github.com/heolazz/aerotech/constant"
	"github.com/heolazz/aerotech/pricing"
	"github.com/heolazz/aerotech/utils/errors"
)

// CartItem is one product entry in a cart. UnitPrice is whole Rupiah.
type CartItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
}

// Cart holds the session's line items in insertion order, unique by item ID.
// All mutations are synchronous; a cart is never shared across sessions.
type Cart struct {
	Items []CartItem `json:"items"`
}

// AddItem merges by product id: an existing entry has its quantity increased
// by qtyDelta, otherwise a new entry is appended with quantity qtyDelta.
func (c *Cart) AddItem(item CartItem, qtyDelta int) error {
	if qtyDelta < 1 {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	for i := range c.Items {
		if c.Items[i].ID == item.ID {
			c.Items[i].Quantity += qtyDelta
			return nil
		}
	}

	item.Quantity = qtyDelta
	c.Items = append(c.Items, item)
	return nil
}

// UpdateQuantity applies a signed delta, clamped at a floor of 1. Dropping
// an item entirely is RemoveItem's job, never a side effect of this call.
func (c *Cart) UpdateQuantity(id string, delta int) error {
	for i := range c.Items {
		if c.Items[i].ID == id {
			newQty := c.Items[i].Quantity + delta
			if newQty < 1 {
				newQty = 1
			}
			c.Items[i].Quantity = newQty
			return nil
		}
	}
	return errors.SetCustomError(constant.ErrNotFound)
}

// RemoveItem deletes the entry with the given id. Idempotent.
func (c *Cart) RemoveItem(id string) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	c.Items = kept
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Subtotal sums unit price times quantity over all items.
func (c *Cart) Subtotal() int64 {
	var sum int64
	for _, item := range c.Items {
		sum += item.UnitPrice * int64(item.Quantity)
	}
	return sum
}

// Summary renders the line items as "<name> (x<qty>)" joined by ", ",
// preserving insertion order. This string is captured on the order at
// submission time and never recomputed afterwards.
func (c *Cart) Summary() string {
	parts := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		parts = append(parts, fmt.Sprintf("%s (x%d)", item.Name, item.Quantity))
	}
	return strings.Join(parts, ", ")
}

// CartResponse is the cart view returned to the storefront, items plus
// derived totals.
type CartResponse struct {
	Items  []CartItem     `json:"items"`
	Totals pricing.Totals `json:"totals"`
}

// AddItemRequest adds a catalog drone to the session cart.
type AddItemRequest struct {
	DroneID  string `json:"drone_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"omitempty,gte=1"`
}

// UpdateQuantityRequest shifts an item's quantity by a signed delta.
// Zero is accepted and leaves the quantity unchanged.
type UpdateQuantityRequest struct {
	Delta int `json:"delta"`
}
