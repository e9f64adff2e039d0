package store

import (
	"encoding/json"
	"fmt"
)

// Product is a catalog entry.
type Product struct {
	Name        string // Name identifies the product in the catalog.
	Description string
	Price       Price // Price is the catalog unit price, never negative.
	Quantity    int   // Quantity is the number of units in stock.
}

// Validate checks the product fields that the catalog enforces.
func (p Product) Validate() error {
	if p.Price.IsNegative() {
		return fmt.Errorf("product %q price %s: %w", p.Name, p.Price, ErrInvalidPrice)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Product.
func (p Product) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", p.Name)
	w.Optional("description", p.Description)
	w.Append("price", p.Price)
	w.Append("quantity", p.Quantity)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Product.
func (p *Product) UnmarshalJSON(data []byte) error {
	var temp struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Price       Price  `json:"price"`
		Quantity    int    `json:"quantity"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*p = Product(temp)
	return nil
}
