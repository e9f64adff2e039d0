package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// decodeLines calls decode for every non empty line of r.
func decodeLines(r io.Reader, decode func(line []byte) error) error {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}
		if err := decode(line); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading from input: %w", err)
	}
	return nil
}

// encodeLine writes v as a single JSON line.
func encodeLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %T: %w", v, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write %T: %w", v, err)
	}
	return nil
}

// DecodeInventory decodes a catalog from a stream of JSONL data, one product
// per line. Products are validated like Inventory.Add does.
func DecodeInventory(r io.Reader) (*Inventory, error) {
	inv := NewInventory()
	err := decodeLines(r, func(line []byte) error {
		var p Product
		if err := json.Unmarshal(line, &p); err != nil {
			return fmt.Errorf("could not decode product %q: %w", string(line), err)
		}
		if inv.Has(p.Name) {
			return fmt.Errorf("product %q is defined twice", p.Name)
		}
		return inv.Add(p)
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// EncodeInventory writes the catalog in JSONL format, in product name order.
func EncodeInventory(w io.Writer, inv *Inventory) error {
	for p := range inv.Products() {
		if err := encodeLine(w, p); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger decodes transactions from a stream of JSONL data, one
// transaction per line. The order of the stream is the ledger order.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	l := NewLedger()
	err := decodeLines(r, func(line []byte) error {
		var tx Transaction
		if err := json.Unmarshal(line, &tx); err != nil {
			return fmt.Errorf("could not decode transaction %q: %w", string(line), err)
		}
		l.append(tx)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

// EncodeTransaction writes a single transaction as a JSON line.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	return encodeLine(w, tx)
}

// EncodeLedger writes the ledger in JSONL format, in ledger order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, tx := range l.Transactions() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
