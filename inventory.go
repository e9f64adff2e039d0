package store

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Inventory is the product catalog, indexed by product name.
//
// It is the only authority on catalog contents: products are added, edited
// and deleted through its methods, which validate the fields first so that a
// failing call never changes the catalog.
type Inventory struct {
	products map[string]Product
}

// NewInventory creates an empty catalog.
func NewInventory() *Inventory {
	return &Inventory{products: make(map[string]Product)}
}

// Edit holds the optional fields of an edit. A nil field is left unchanged.
type Edit struct {
	Description *string
	Price       *Price
	Quantity    *int
}

// IsEmpty reports whether the edit has no field to apply.
func (e Edit) IsEmpty() bool {
	return e.Description == nil && e.Price == nil && e.Quantity == nil
}

// Add inserts p in the catalog. An existing product with the same name is
// replaced, price and quantity included.
func (inv *Inventory) Add(p Product) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("cannot add product: %w", err)
	}
	inv.products[p.Name] = p
	return nil
}

// Edit applies every field present in e to the product called name.
//
// All fields are checked before any is applied: if the price is invalid, the
// description and quantity of the same edit are not applied either.
func (inv *Inventory) Edit(name string, e Edit) error {
	if e.IsEmpty() {
		return fmt.Errorf("cannot edit product %q: %w", name, ErrNoFieldsProvided)
	}
	p, ok := inv.products[name]
	if !ok {
		return fmt.Errorf("cannot edit product %q: %w", name, ErrProductNotFound)
	}
	if e.Price != nil && e.Price.IsNegative() {
		return fmt.Errorf("cannot edit product %q price %s: %w", name, *e.Price, ErrInvalidPrice)
	}

	if e.Description != nil {
		p.Description = *e.Description
	}
	if e.Price != nil {
		p.Price = *e.Price
	}
	if e.Quantity != nil {
		p.Quantity = *e.Quantity
	}
	inv.products[name] = p
	return nil
}

// Delete removes the product called name from the catalog.
func (inv *Inventory) Delete(name string) error {
	if _, ok := inv.products[name]; !ok {
		return fmt.Errorf("cannot delete product %q: %w", name, ErrProductNotFound)
	}
	delete(inv.products, name)
	return nil
}

// Get returns a copy of the product called name, or false if unknown.
func (inv *Inventory) Get(name string) (Product, bool) {
	p, ok := inv.products[name]
	return p, ok
}

// Has reports whether the catalog has a product called name.
func (inv *Inventory) Has(name string) bool {
	_, ok := inv.products[name]
	return ok
}

// Len returns the number of products in the catalog.
func (inv *Inventory) Len() int { return len(inv.products) }

// Products iterates over the catalog in product name order.
func (inv *Inventory) Products() iter.Seq[Product] {
	return func(yield func(Product) bool) {
		names := slices.Sorted(maps.Keys(inv.products))
		for _, name := range names {
			if !yield(inv.products[name]) {
				return
			}
		}
	}
}

// List returns a snapshot of the catalog in product name order.
func (inv *Inventory) List() []Product {
	return slices.Collect(inv.Products())
}

// put stores p without validation. The ledger uses it to update stocks.
func (inv *Inventory) put(p Product) { inv.products[p.Name] = p }
