package domain

import (
	"math"
	"strings"
)

// =============================================================================
// CART DOMAIN ERRORS
// =============================================================================

var (
	ErrProductNotFound = &Error{Code: ENOTFOUND, Message: "Product not found"}
	ErrInvalidQuantity = &Error{Code: EINVALID, Message: "Quantity must be greater than 0"}
)

// CartItem is a cart line item. Unit prices are captured at add-time and
// carried in the backend's decimal currency representation; conversion to
// minor units happens once, at payment-intent creation.
type CartItem struct {
	ProductID string  `json:"produtoId"`
	Name      string  `json:"nome"`
	Quantity  int     `json:"quantidade"`
	UnitPrice float64 `json:"precoUnitario"`
	PhotoURL  string  `json:"urlfoto,omitempty"`
	Subtotal  float64 `json:"subtotal"`
}

// Cart aggregates the items selected for purchase. Items are keyed by product
// identifier: adding an already-present product increments its quantity rather
// than creating a second line.
type Cart struct {
	UserID string     `json:"usuarioId,omitempty"`
	Items  []CartItem `json:"itens"`
	Total  float64    `json:"total"`
}

// EmptyCart returns an empty cart for the given owner. A 404 cart read maps
// here rather than to an error.
func EmptyCart(userID string) *Cart {
	return &Cart{UserID: userID, Items: []CartItem{}, Total: 0}
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemCount is the sum of quantities across all lines, displayed on the cart
// badge. It must always match a fresh fetch.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// ComputedTotal recomputes the cart total from its lines.
func (c *Cart) ComputedTotal() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

// Recompute rewrites line subtotals and the cart total from the current items.
// The backend total is authoritative after a mutation; Recompute restores the
// invariant when only item state is available.
func (c *Cart) Recompute() {
	for i := range c.Items {
		c.Items[i].Subtotal = c.Items[i].UnitPrice * float64(c.Items[i].Quantity)
	}
	c.Total = c.ComputedTotal()
}

// ConsistentTotal reports whether the stored total matches the sum over the
// current items, within a half-cent tolerance for decimal representation.
func (c *Cart) ConsistentTotal() bool {
	return math.Abs(c.Total-c.ComputedTotal()) < 0.005
}

// MergeItem adds quantity for a product, incrementing the existing line when
// the product is already present. The price of the first add wins; a second
// add never creates a duplicate entry.
func (c *Cart) MergeItem(productID, name string, quantity int, unitPrice float64) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += quantity
			c.Recompute()
			return
		}
	}
	c.Items = append(c.Items, CartItem{
		ProductID: productID,
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	})
	c.Recompute()
}

// RemoveItem deletes the line for a product, if present.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.Recompute()
			return
		}
	}
}

// FilterItems returns the lines whose name contains the given substring,
// case-insensitively. It is a pure view transform: the cart is never mutated
// and an empty filter returns all lines.
func (c *Cart) FilterItems(filter string) []CartItem {
	if filter == "" {
		return c.Items
	}
	needle := strings.ToLower(filter)
	filtered := make([]CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
