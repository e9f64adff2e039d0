// Package store manages the stock of a small shop. It is designed to be
// local-first and auditable: the catalog and the ledger live in plain JSONL
// files that can be read, diffed and version controlled.
//
// The core functionalities include:
//   - Catalog Management: adding, editing, deleting and looking up products
//     in an [Inventory], with price validation.
//   - Ledger Management: recording sales and purchases in an append-only
//     [Ledger]. Recording a transaction updates the stock of the product it
//     refers to, and a sale can never take the stock below zero.
//   - Reporting: a read-only [Report] over both, with total sales, total
//     purchases and the resulting profit or loss.
//   - Data Persistence: encoding and decoding the catalog and the ledger to
//     and from JSONL, see [Repository].
//
// This package serves as the foundational logic for the `stk` command-line
// tool.
package store
