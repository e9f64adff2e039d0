package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"text/template"

	"github.com/etnz/store"
)

//go:embed *.md
var templates embed.FS

// funcs are available to every template.
var funcs = template.FuncMap{
	// cell escapes a value for a markdown table cell.
	"cell": func(v any) string {
		return strings.ReplaceAll(fmt.Sprint(v), "|", `\|`)
	},
}

// Section is one titled block of a report.
type Section struct {
	Title string
	Body  string // Body is the pre-formatted rows, see Format.
	Total string // Total is an optional closing line, like "Total Sales: $550.00".
}

// ProfitLoss holds the sign and the magnitude of a profit or loss separately.
type ProfitLoss struct {
	Loss      bool
	Magnitude string
}

// ReportView is what the report template renders. Nil sections are skipped.
type ReportView struct {
	Inventory  *Section
	Sales      *Section
	Purchases  *Section
	ProfitLoss *ProfitLoss
}

var (
	inventoryHeaders = []string{"Product", "Description", "Price", "Quantity"}
	salesHeaders     = []string{"Product", "Quantity Sold", "Sale Price", "Amount"}
	purchaseHeaders  = []string{"Product", "Quantity Bought", "Purchase Price", "Amount"}
)

func inventorySection(products []store.Product, f Format) *Section {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{p.Name, p.Description, p.Price.String(), strconv.Itoa(p.Quantity)})
	}
	return &Section{Title: "Inventory Report", Body: f.Render(inventoryHeaders, rows)}
}

func transactionSection(title, totalLabel string, headers []string, txs []store.Transaction, total store.Price, f Format) *Section {
	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{tx.Product, strconv.Itoa(tx.Quantity), tx.Price.String(), tx.Total.String()})
	}
	return &Section{
		Title: title,
		Body:  f.Render(headers, rows),
		Total: fmt.Sprintf("%s: %s", totalLabel, total),
	}
}

func salesSection(sales []store.Transaction, total store.Price, f Format) *Section {
	return transactionSection("Sales Report", "Total Sales", salesHeaders, sales, total, f)
}

func purchasesSection(purchases []store.Transaction, total store.Price, f Format) *Section {
	return transactionSection("Purchase Report", "Total Purchases", purchaseHeaders, purchases, total, f)
}

func profitLoss(pl store.Price) *ProfitLoss {
	return &ProfitLoss{Loss: pl.IsNegative(), Magnitude: pl.Abs().String()}
}

// InventoryMarkdown renders the catalog.
func InventoryMarkdown(products []store.Product, f Format) string {
	return RenderReport(&ReportView{Inventory: inventorySection(products, f)})
}

// SalesMarkdown renders sales followed by their total.
func SalesMarkdown(sales []store.Transaction, total store.Price, f Format) string {
	return RenderReport(&ReportView{Sales: salesSection(sales, total, f)})
}

// PurchasesMarkdown renders purchases followed by their total.
func PurchasesMarkdown(purchases []store.Transaction, total store.Price, f Format) string {
	return RenderReport(&ReportView{Purchases: purchasesSection(purchases, total, f)})
}

// ProfitLossMarkdown renders the profit or loss summary line.
func ProfitLossMarkdown(pl store.Price) string {
	return RenderReport(&ReportView{ProfitLoss: profitLoss(pl)})
}

// ReportMarkdown renders the sections of r selected by kind. AllReports
// renders every section and the profit or loss summary.
func ReportMarkdown(r *store.Report, kind store.ReportKind, f Format) string {
	v := &ReportView{}
	switch kind {
	case store.InventoryReport:
		v.Inventory = inventorySection(r.Products, f)
	case store.SalesReport:
		v.Sales = salesSection(r.Sales, r.TotalSales, f)
	case store.PurchasesReport:
		v.Purchases = purchasesSection(r.Purchases, r.TotalPurchases, f)
	default:
		v.Inventory = inventorySection(r.Products, f)
		v.Sales = salesSection(r.Sales, r.TotalSales, f)
		v.Purchases = purchasesSection(r.Purchases, r.TotalPurchases, f)
		v.ProfitLoss = &ProfitLoss{Loss: r.IsLoss(), Magnitude: r.Magnitude().String()}
	}
	return RenderReport(v)
}

// RenderReport renders a ReportView to markdown.
func RenderReport(v *ReportView) string {
	partials := map[string]string{
		"report_section":     "report_section.md",
		"report_profit_loss": "report_profit_loss.md",
	}
	return renderTemplate("report", "report.md", partials, v)
}

// TransactionsMarkdown renders ledger entries as a markdown table.
func TransactionsMarkdown(txs []store.Transaction) string {
	return renderTemplate("transactions", "transactions.md", nil, txs)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
