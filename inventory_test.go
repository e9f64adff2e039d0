package store

import (
	"errors"
	"reflect"
	"testing"
)

func ptr[T any](v T) *T { return &v }

func newTestInventory(t *testing.T, products ...Product) *Inventory {
	t.Helper()
	inv := NewInventory()
	for _, p := range products {
		if err := inv.Add(p); err != nil {
			t.Fatalf("Add(%v) unexpected error: %v", p, err)
		}
	}
	return inv
}

func TestInventory_Add(t *testing.T) {
	inv := NewInventory()
	p := Product{Name: "Test Product", Description: "A product for testing", Price: P(100.0), Quantity: 20}
	if err := inv.Add(p); err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}
	got, ok := inv.Get("Test Product")
	if !ok {
		t.Fatal("Get() did not find the added product")
	}
	if !reflect.DeepEqual(got, p) {
		t.Errorf("Get() = %v, want %v", got, p)
	}
}

func TestInventory_AddNegativePrice(t *testing.T) {
	inv := newTestInventory(t, Product{Name: "Widget", Price: P(50.0), Quantity: 100})
	before := inv.List()

	for _, price := range []float64{-0.01, -1, -1000} {
		err := inv.Add(Product{Name: "Gadget", Price: P(price), Quantity: 1})
		if !errors.Is(err, ErrInvalidPrice) {
			t.Errorf("Add(price=%v) error = %v, want %v", price, err, ErrInvalidPrice)
		}
	}
	if err := inv.Add(Product{Name: "Widget", Price: P(-5), Quantity: 1}); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("Add() over an existing product error = %v, want %v", err, ErrInvalidPrice)
	}
	if got := inv.List(); !reflect.DeepEqual(got, before) {
		t.Errorf("catalog changed after invalid adds: got %v, want %v", got, before)
	}
}

func TestInventory_AddReplaces(t *testing.T) {
	inv := newTestInventory(t, Product{Name: "Widget", Description: "old", Price: P(50.0), Quantity: 100})
	replacement := Product{Name: "Widget", Description: "new", Price: P(10.0), Quantity: 1}
	if err := inv.Add(replacement); err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}
	if got, _ := inv.Get("Widget"); !reflect.DeepEqual(got, replacement) {
		t.Errorf("Get() = %v, want %v", got, replacement)
	}
	if inv.Len() != 1 {
		t.Errorf("Len() = %d, want 1", inv.Len())
	}
}

func TestInventory_Edit(t *testing.T) {
	original := Product{Name: "Test Product", Description: "A product for testing", Price: P(100.0), Quantity: 20}

	testCases := []struct {
		name    string
		product string
		edit    Edit
		wantErr error
		want    Product
	}{
		{
			name:    "all fields",
			product: "Test Product",
			edit:    Edit{Description: ptr("Updated description"), Price: ptr(P(150.0)), Quantity: ptr(15)},
			want:    Product{Name: "Test Product", Description: "Updated description", Price: P(150.0), Quantity: 15},
		},
		{
			name:    "description only",
			product: "Test Product",
			edit:    Edit{Description: ptr("Updated description")},
			want:    Product{Name: "Test Product", Description: "Updated description", Price: P(100.0), Quantity: 20},
		},
		{
			name:    "price only",
			product: "Test Product",
			edit:    Edit{Price: ptr(P(0))},
			want:    Product{Name: "Test Product", Description: "A product for testing", Price: P(0), Quantity: 20},
		},
		{
			name:    "quantity only",
			product: "Test Product",
			edit:    Edit{Quantity: ptr(0)},
			want:    Product{Name: "Test Product", Description: "A product for testing", Price: P(100.0), Quantity: 0},
		},
		{
			name:    "negative price leaves every field unapplied",
			product: "Test Product",
			edit:    Edit{Description: ptr("ignored"), Price: ptr(P(-1)), Quantity: ptr(1)},
			wantErr: ErrInvalidPrice,
			want:    original,
		},
		{
			name:    "unknown product",
			product: "Gadget",
			edit:    Edit{Quantity: ptr(1)},
			wantErr: ErrProductNotFound,
			want:    original,
		},
		{
			name:    "no fields on a known product",
			product: "Test Product",
			wantErr: ErrNoFieldsProvided,
			want:    original,
		},
		{
			name:    "no fields on an unknown product",
			product: "Gadget",
			wantErr: ErrNoFieldsProvided,
			want:    original,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			inv := newTestInventory(t, original)
			err := inv.Edit(tc.product, tc.edit)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Edit() error = %v, want %v", err, tc.wantErr)
			}
			got, _ := inv.Get("Test Product")
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("after Edit() product = %v, want %v", got, tc.want)
			}
			if inv.Has("Gadget") {
				t.Errorf("Edit() must not create products")
			}
		})
	}
}

func TestInventory_Delete(t *testing.T) {
	inv := newTestInventory(t,
		Product{Name: "Widget", Price: P(50.0), Quantity: 100},
		Product{Name: "Gadget", Price: P(30.0), Quantity: 15},
	)
	if err := inv.Delete("Widget"); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if inv.Has("Widget") {
		t.Error("Delete() did not remove the product")
	}
	if err := inv.Delete("Widget"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("Delete() twice error = %v, want %v", err, ErrProductNotFound)
	}
	if inv.Len() != 1 {
		t.Errorf("Len() = %d, want 1", inv.Len())
	}
}

func TestInventory_ListIsStable(t *testing.T) {
	inv := newTestInventory(t,
		Product{Name: "b", Price: P(1)},
		Product{Name: "c", Price: P(1)},
		Product{Name: "a", Price: P(1)},
	)
	first := inv.List()
	if got, want := len(first), 3; got != want {
		t.Fatalf("len(List()) = %d, want %d", got, want)
	}
	for i := 0; i < 10; i++ {
		if got := inv.List(); !reflect.DeepEqual(got, first) {
			t.Fatalf("List() call %d = %v, want %v", i, got, first)
		}
	}
	if first[0].Name != "a" || first[2].Name != "c" {
		t.Errorf("List() = %v, want name order", first)
	}
}

func TestInventory_GetReturnsCopy(t *testing.T) {
	inv := newTestInventory(t, Product{Name: "Widget", Price: P(50.0), Quantity: 100})
	p, _ := inv.Get("Widget")
	p.Quantity = 0
	if got, _ := inv.Get("Widget"); got.Quantity != 100 {
		t.Errorf("modifying a Get() result changed the catalog: quantity = %d", got.Quantity)
	}
}
