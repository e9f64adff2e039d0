package store

import (
	"encoding/json"
	"fmt"

	"github.com/etnz/store/date"
	"github.com/google/uuid"
)

// TransactionType identifies the two kinds of ledger entries.
type TransactionType string

const (
	// Sale decreases the stock and records revenue.
	Sale TransactionType = "sale"
	// Purchase increases the stock and records cost.
	Purchase TransactionType = "purchase"
)

func (t TransactionType) String() string { return string(t) }

// ParseTransactionType parses "sale" or "purchase".
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Sale, Purchase:
		return TransactionType(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// Transaction is an immutable ledger entry.
//
// Product refers to a catalog entry by name at the time of recording, the
// product may be edited or deleted later on without affecting the record.
type Transaction struct {
	ID       uuid.UUID       // ID uniquely identifies the record.
	Type     TransactionType // Type is either Sale or Purchase.
	Date     date.Date       // Date is the day the transaction was recorded.
	Product  string          // Product is the name of the product sold or purchased.
	Quantity int             // Quantity is the number of units sold or purchased.
	Price    Price           // Price is the unit sale price or cost price.
	Total    Price           // Total is Price * Quantity, computed once when recorded.
	Memo     string          // Memo provides an optional rationale or note.
}

// newTransaction creates a transaction and computes its total.
func newTransaction(typ TransactionType, on date.Date, product string, quantity int, price Price, memo string) Transaction {
	return Transaction{
		ID:       uuid.New(),
		Type:     typ,
		Date:     on,
		Product:  product,
		Quantity: quantity,
		Price:    price,
		Total:    price.Mul(quantity),
		Memo:     memo,
	}
}

// Equal reports whether both transactions hold the same values.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID && t.Type == o.Type && t.Date == o.Date &&
		t.Product == o.Product && t.Quantity == o.Quantity &&
		t.Price.Equal(o.Price) && t.Total.Equal(o.Total) && t.Memo == o.Memo
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("type", t.Type)
	w.Append("date", t.Date)
	w.Append("product", t.Product)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price)
	w.Append("total", t.Total)
	w.Optional("memo", t.Memo)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
// The stored total is kept as is, it is never recomputed.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID       uuid.UUID       `json:"id"`
		Type     TransactionType `json:"type"`
		Date     date.Date       `json:"date"`
		Product  string          `json:"product"`
		Quantity int             `json:"quantity"`
		Price    Price           `json:"price"`
		Total    Price           `json:"total"`
		Memo     string          `json:"memo"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	if _, err := ParseTransactionType(string(temp.Type)); err != nil {
		return err
	}
	*t = Transaction(temp)
	return nil
}
