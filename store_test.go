package store

import (
	"errors"
	"sync"
	"testing"
)

// Concurrent sales never oversell the stock.
func TestStore_ConcurrentSales(t *testing.T) {
	s := NewStore()
	if err := s.AddProduct(Product{Name: "Widget", Price: P(50.0), Quantity: 100}); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var sold, refused int
	for i := 0; i < 150; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Sell("Widget", 1, P(55.0))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				sold++
			case errors.Is(err, ErrInsufficientStock):
				refused++
			default:
				t.Errorf("Sell() unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if sold != 100 || refused != 50 {
		t.Errorf("sold %d and refused %d, want 100 and 50", sold, refused)
	}
	if p, _ := s.Product("Widget"); p.Quantity != 0 {
		t.Errorf("stock = %d, want 0", p.Quantity)
	}
	if s.ledger.Len() != 100 {
		t.Errorf("ledger length = %d, want 100", s.ledger.Len())
	}
}

func TestStore_CatalogOperations(t *testing.T) {
	s := NewStore()
	if err := s.AddProduct(Product{Name: "Widget", Price: P(-1)}); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("AddProduct() error = %v, want %v", err, ErrInvalidPrice)
	}
	if err := s.AddProduct(Product{Name: "Widget", Price: P(1)}); err != nil {
		t.Fatal(err)
	}
	q := 3
	if err := s.EditProduct("Widget", Edit{Quantity: &q}); err != nil {
		t.Errorf("EditProduct() unexpected error: %v", err)
	}
	if p, _ := s.Product("Widget"); p.Quantity != 3 {
		t.Errorf("quantity = %d, want 3", p.Quantity)
	}
	if err := s.DeleteProduct("Widget"); err != nil {
		t.Errorf("DeleteProduct() unexpected error: %v", err)
	}
	if err := s.DeleteProduct("Widget"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("DeleteProduct() error = %v, want %v", err, ErrProductNotFound)
	}
}

func TestStore_Transactions(t *testing.T) {
	s := NewStore()
	if _, err := s.Purchase("Widget", 5, P(2)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Sell("Widget", 2, P(3)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Purchase("Gadget", 1, P(4)); err != nil {
		t.Fatal(err)
	}

	if got := s.Transactions(); len(got) != 3 {
		t.Errorf("Transactions() returned %d entries, want 3", len(got))
	}
	got := s.Transactions(ByProduct("Widget"), ByType(Purchase))
	if len(got) != 1 || got[0].Quantity != 5 {
		t.Errorf("Transactions(Widget, purchase) = %+v, want the purchase of 5", got)
	}
}

// Products can be listed while sales are being recorded.
func TestStore_ProductsDuringSales(t *testing.T) {
	s := NewStore()
	if err := s.AddProduct(Product{Name: "Widget", Price: P(1), Quantity: 50}); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Sell("Widget", 1, P(2))
		}()
		go func() {
			defer wg.Done()
			for _, p := range s.Products() {
				if p.Quantity < 0 || p.Quantity > 50 {
					t.Errorf("Products() saw a stock of %d", p.Quantity)
				}
			}
		}()
	}
	wg.Wait()

	products := s.Products()
	if len(products) != 1 || products[0].Quantity != 0 {
		t.Errorf("Products() = %+v, want Widget with 0 in stock", products)
	}
	if n := len(s.Transactions()); n != 50 {
		t.Errorf("ledger length = %d, want 50", n)
	}
}
