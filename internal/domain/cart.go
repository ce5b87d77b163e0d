package domain

// CartEntry is a product snapshot plus the quantity in the cart.
// Persisted as a flat JSON object: all product fields and "quantity".
type CartEntry struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal is price times quantity
func (e CartEntry) LineTotal() int {
	return e.Price * e.Quantity
}
