package store

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the store.
//
// The expression is applied to a document with two arrays, "products" and
// "transactions", holding the catalog and the ledger as they are persisted.
// For instance `$.products[?(@.quantity < 5)].name` lists the products
// running low.
func Query(s *Store, path string) (any, error) {
	s.mu.Lock()
	doc := struct {
		Products     []Product     `json:"products"`
		Transactions []Transaction `json:"transactions"`
	}{
		Products:     s.inventory.List(),
		Transactions: s.ledger.All(),
	}
	s.mu.Unlock()

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("could not marshal store: %w", err)
	}
	// jsonpath works on the generic representation of json.
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("could not unmarshal store: %w", err)
	}
	val, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	return val, nil
}
