// Package cart implements the session cart ledger: an ordered set of lines,
// unique by product identity, with a total derived from the lines after
// every operation. All operations are pure; they return a new Cart and never
// touch the one passed in.
package cart

import "guitar-storefront/internal/catalog"

// Line pairs a product with a quantity. Quantity is always >= 1; a line that
// would reach zero is removed instead.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart is the ledger state. Lines keep insertion order.
type Cart struct {
	Lines []Line  `json:"lines"`
	Total float64 `json:"total"`
}

// Add merges the product into the cart: an existing line gets its quantity
// incremented by one, otherwise a new line with quantity 1 is appended.
// The ledger does not check stock; that guard belongs to the caller.
func Add(c Cart, p catalog.Product) Cart {
	lines := append([]Line(nil), c.Lines...)
	found := false
	for i := range lines {
		if lines[i].Product.ID == p.ID {
			lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, Line{Product: p, Quantity: 1})
	}
	return Cart{Lines: lines, Total: total(lines)}
}

// Remove deletes the line for the given product identity. Removing an absent
// identity is a no-op, not an error.
func Remove(c Cart, productID string) Cart {
	lines := make([]Line, 0, len(c.Lines))
	for _, l := range c.Lines {
		if l.Product.ID != productID {
			lines = append(lines, l)
		}
	}
	return Cart{Lines: lines, Total: total(lines)}
}

// UpdateQuantity sets the line's quantity to the given value. A value of
// zero or less removes the line. Absent identities are a no-op.
func UpdateQuantity(c Cart, productID string, quantity int) Cart {
	if quantity <= 0 {
		return Remove(c, productID)
	}
	lines := append([]Line(nil), c.Lines...)
	for i := range lines {
		if lines[i].Product.ID == productID {
			lines[i].Quantity = quantity
			break
		}
	}
	return Cart{Lines: lines, Total: total(lines)}
}

// Clear empties the cart.
func Clear(Cart) Cart {
	return Cart{Lines: []Line{}}
}

// total recomputes the cart total from scratch. The total is always derived
// from the lines that produced it, never adjusted incrementally.
func total(lines []Line) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.Product.Price * float64(l.Quantity)
	}
	return sum
}
