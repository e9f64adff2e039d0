package store

import "sync"

// Store is the shop: a catalog and the ledger of transactions recorded
// against it.
//
// The catalog and the ledger are only reachable through Store methods. Each
// one runs as a single critical section, so that the stock check, the stock
// update and the ledger append of a sale cannot interleave with another
// operation.
type Store struct {
	mu        sync.Mutex
	inventory *Inventory
	ledger    *Ledger
}

// NewStore creates a store with an empty catalog and an empty ledger.
func NewStore() *Store {
	return &Store{inventory: NewInventory(), ledger: NewLedger()}
}

// AddProduct adds or replaces a product in the catalog.
func (s *Store) AddProduct(p Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventory.Add(p)
}

// EditProduct edits a product of the catalog.
func (s *Store) EditProduct(name string, e Edit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventory.Edit(name, e)
}

// DeleteProduct removes a product from the catalog.
func (s *Store) DeleteProduct(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventory.Delete(name)
}

// Product returns a copy of a catalog entry.
func (s *Store) Product(name string) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventory.Get(name)
}

// Products returns a copy of the catalog, sorted by name.
func (s *Store) Products() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventory.List()
}

// Sell records a sale, see Ledger.RecordSale.
func (s *Store) Sell(product string, quantity int, price Price, opts ...RecordOption) (Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.RecordSale(s.inventory, product, quantity, price, opts...)
}

// Purchase records a purchase, see Ledger.RecordPurchase.
func (s *Store) Purchase(product string, quantity int, price Price, opts ...RecordOption) (Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.RecordPurchase(s.inventory, product, quantity, price, opts...)
}

// Report returns a report over the current state of the store.
func (s *Store) Report() *Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return NewReport(s.inventory, s.ledger)
}

// Transactions returns the transactions accepted by all the filters, in
// ledger order.
func (s *Store) Transactions(filters ...func(Transaction) bool) []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.collect(filters...)
}
