package store

import (
	"fmt"
	"strings"
)

// ReportKind selects the sections of a report.
type ReportKind int

const (
	AllReports ReportKind = iota
	InventoryReport
	SalesReport
	PurchasesReport
)

func (k ReportKind) String() string {
	switch k {
	case InventoryReport:
		return "inventory"
	case SalesReport:
		return "sales"
	case PurchasesReport:
		return "purchases"
	default:
		return "all"
	}
}

// ParseReportKind parses a report name. The menu digits "1", "2" and "3" are
// accepted for inventory, sales and purchases; a blank string means all.
func ParseReportKind(s string) (ReportKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return AllReports, nil
	case "1", "inventory":
		return InventoryReport, nil
	case "2", "sales":
		return SalesReport, nil
	case "3", "purchases":
		return PurchasesReport, nil
	default:
		return AllReports, fmt.Errorf("unknown report %q", s)
	}
}

// Report is a read-only snapshot of a store for reporting purposes.
type Report struct {
	Products       []Product
	Sales          []Transaction
	Purchases      []Transaction
	TotalSales     Price
	TotalPurchases Price
	ProfitLoss     Price // ProfitLoss is TotalSales - TotalPurchases, negative for a loss.
}

// NewReport computes a report, neither inv nor l are modified.
func NewReport(inv *Inventory, l *Ledger) *Report {
	return &Report{
		Products:       inv.List(),
		Sales:          l.Sales(),
		Purchases:      l.Purchases(),
		TotalSales:     l.TotalSales(),
		TotalPurchases: l.TotalPurchases(),
		ProfitLoss:     l.ProfitLoss(),
	}
}

// IsLoss reports whether purchases cost more than sales earned.
func (r *Report) IsLoss() bool { return r.ProfitLoss.IsNegative() }

// Magnitude returns the absolute value of the profit or loss.
func (r *Report) Magnitude() Price { return r.ProfitLoss.Abs() }
