package store

import (
	"fmt"
	"iter"
	"slices"

	"github.com/etnz/store/date"
)

// Ledger is the append-only list of transactions.
//
// In a Ledger transactions are in the order they were recorded, which is the
// chronological order. Entries are never reordered, edited or removed.
//
// The Ledger holds no reference to the Inventory: recording operations take
// it as a parameter for the duration of the call.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// RecordOption customizes a transaction being recorded.
type RecordOption func(*recordConfig)

type recordConfig struct {
	on   date.Date
	memo string
}

// WithDate sets the transaction date, it defaults to today.
func WithDate(on date.Date) RecordOption { return func(c *recordConfig) { c.on = on } }

// WithMemo attaches a rationale or note to the transaction.
func WithMemo(memo string) RecordOption { return func(c *recordConfig) { c.memo = memo } }

func newRecordConfig(opts []RecordOption) recordConfig {
	var c recordConfig
	for _, opt := range opts {
		opt(&c)
	}
	if c.on.IsZero() {
		c.on = date.Today()
	}
	return c
}

// RecordSale sells quantity units of product at the unit price.
//
// It fails with ErrProductNotFound if the product is not in inv, and with
// ErrInsufficientStock if the stock is lower than quantity. On success the
// stock is decremented and a Sale is appended, on failure neither happens.
func (l *Ledger) RecordSale(inv *Inventory, product string, quantity int, price Price, opts ...RecordOption) (Transaction, error) {
	p, ok := inv.Get(product)
	if !ok {
		return Transaction{}, fmt.Errorf("cannot sell %q: %w", product, ErrProductNotFound)
	}
	if p.Quantity < quantity {
		return Transaction{}, fmt.Errorf("cannot sell %d of %q, stock is only %d: %w", quantity, product, p.Quantity, ErrInsufficientStock)
	}

	c := newRecordConfig(opts)
	tx := newTransaction(Sale, c.on, product, quantity, price, c.memo)

	p.Quantity -= quantity
	inv.put(p)
	l.transactions = append(l.transactions, tx)
	return tx, nil
}

// RecordPurchase receives quantity units of product at the unit cost price.
//
// An existing product has its stock incremented, its description and price
// are left untouched. An unknown product is created with the purchase price.
// A Purchase is appended in both cases: a purchase always succeeds.
func (l *Ledger) RecordPurchase(inv *Inventory, product string, quantity int, price Price, opts ...RecordOption) (Transaction, error) {
	p, ok := inv.Get(product)
	if ok {
		p.Quantity += quantity
	} else {
		p = Product{
			Name:        product,
			Description: PurchasedProductDescription,
			Price:       price,
			Quantity:    quantity,
		}
	}

	c := newRecordConfig(opts)
	tx := newTransaction(Purchase, c.on, product, quantity, price, c.memo)

	inv.put(p)
	l.transactions = append(l.transactions, tx)
	return tx, nil
}

// PurchasedProductDescription is the description of products created by a purchase.
const PurchasedProductDescription = "Purchased Product"

// Transactions returns an iterator over the transactions accepted by all the
// filters, in ledger order. With no filters, every transaction is yielded.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
	next:
		for i, tx := range l.transactions {
			for _, filter := range filters {
				if !filter(tx) {
					continue next
				}
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// AcceptAll is a filter that accepts every transaction.
func AcceptAll(Transaction) bool { return true }

// ByType returns a filter that accepts transactions of type t.
func ByType(t TransactionType) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Type == t }
}

// ByProduct returns a filter that accepts transactions on the named product.
func ByProduct(name string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Product == name }
}

// InRange returns a filter that accepts transactions recorded within r.
func InRange(r date.Range) func(Transaction) bool {
	return func(tx Transaction) bool { return r.Contains(tx.Date) }
}

func (l *Ledger) collect(filters ...func(Transaction) bool) []Transaction {
	txs := make([]Transaction, 0)
	for _, tx := range l.Transactions(filters...) {
		txs = append(txs, tx)
	}
	return txs
}

// Sales returns all the sales in ledger order.
func (l *Ledger) Sales() []Transaction { return l.collect(ByType(Sale)) }

// Purchases returns all the purchases in ledger order.
func (l *Ledger) Purchases() []Transaction { return l.collect(ByType(Purchase)) }

// All returns the whole ledger in chronological order.
func (l *Ledger) All() []Transaction { return slices.Clone(l.transactions) }

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// sum adds price*quantity for every transaction accepted by filters.
func (l *Ledger) sum(filters ...func(Transaction) bool) Price {
	var total Price
	for _, tx := range l.Transactions(filters...) {
		total = total.Add(tx.Price.Mul(tx.Quantity))
	}
	return total
}

// TotalSales returns the revenue of all sales.
func (l *Ledger) TotalSales() Price { return l.sum(ByType(Sale)) }

// TotalPurchases returns the cost of all purchases.
func (l *Ledger) TotalPurchases() Price { return l.sum(ByType(Purchase)) }

// ProfitLoss returns the total sales minus the total purchases. It is
// negative for a loss.
func (l *Ledger) ProfitLoss() Price { return l.TotalSales().Sub(l.TotalPurchases()) }

// append adds already recorded transactions, used when decoding.
func (l *Ledger) append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
}
