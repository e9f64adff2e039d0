package renderer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Format is the layout used for the rows of a report section.
type Format int

const (
	// TableFormat lays rows out as padded columns under a header line.
	TableFormat Format = iota
	// ListFormat prints one "Item N:" block per row, one field per line.
	ListFormat
)

func (f Format) String() string {
	if f == ListFormat {
		return "list"
	}
	return "table"
}

// ParseFormat parses "table" or "list", blank means table.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return TableFormat, nil
	case "list":
		return ListFormat, nil
	default:
		return TableFormat, fmt.Errorf("unknown format %q, expected table or list", s)
	}
}

// Render formats rows according to f.
func (f Format) Render(headers []string, rows [][]string) string {
	if f == ListFormat {
		return List(headers, rows)
	}
	return Table(headers, rows)
}

// Table renders rows as left aligned columns.
//
// Each column is as wide as its widest cell or header. A line of dashes
// separates the headers from the rows, every cell is followed by a space.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
		for _, row := range rows {
			if i < len(row) {
				widths[i] = max(widths[i], utf8.RuneCountInString(row[i]))
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		fmt.Fprintf(&b, "%-*s ", widths[i], h)
	}
	b.WriteByte('\n')
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w))
		b.WriteByte(' ')
	}
	b.WriteByte('\n')
	for _, row := range rows {
		for i, w := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			fmt.Fprintf(&b, "%-*s ", w, cell)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// List renders every row as a numbered item with one "Header: cell" line per
// column. Items are separated by a blank line.
func List(headers []string, rows [][]string) string {
	var b strings.Builder
	for n, row := range rows {
		fmt.Fprintf(&b, "Item %d:\n", n+1)
		for i, h := range headers {
			if i < len(row) {
				fmt.Fprintf(&b, "  %s: %s\n", h, row[i])
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
