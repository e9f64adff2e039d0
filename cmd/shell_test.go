package cmd

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/store"
	"github.com/etnz/store/auth"
)

// newTestShell returns a shell reading script, and the buffer it writes to.
func newTestShell(t *testing.T, script string) (*shell, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	users, err := auth.Open(context.Background(), filepath.Join(dir, "users.db"))
	if err != nil {
		t.Fatalf("auth.Open() failed: %v", err)
	}
	t.Cleanup(func() { users.Close() })

	repo := store.NewRepository(filepath.Join(dir, "store"), nil)
	out := &bytes.Buffer{}
	return &shell{
		prompter: newPrompter(strings.NewReader(script), out),
		users:    users,
		repo:     repo,
		store:    repo.Load(),
	}, out
}

func TestShell_Session(t *testing.T) {
	script := strings.Join([]string{
		"2", "alice", "s3cret", // register
		"alice", "s3cret", // then login
		"1", "Widget", "A test product", "50", "100", // add
		"5", "Widget", "10", "55", // sell
		"1", "Bad", "broken", "abc", "3", // add with an unparsable price
		"2", "Widget", "", "", "", // edit without any field
		"2", "Widget", "", "", "abc", // edit with an unparsable quantity
		"6", "Gadget", "15", "xyz", // purchase with an unparsable price
		"6", "Gadget", "15", "30", // purchase
		"42", // unknown option
		"8", "", // all reports
		"9", // exit
	}, "\n") + "\n"

	sh, out := newTestShell(t, script)
	if err := sh.run(context.Background()); err != nil {
		t.Fatalf("run() failed: %v\noutput:\n%s", err, out)
	}

	got := out.String()
	for _, want := range []string{
		"Registration successful!",
		"Login successful!",
		"--- Store Menu ---",
		"Product added.",
		`Sold 10 "Widget" at $55.00, total $550.00.`,
		`Error: cannot add product: product "Bad" price -$1.00: invalid price`,
		"no fields provided",
		"Product updated.",
		`Error: "xyz": invalid price`,
		`Purchased 15 "Gadget" at $30.00, total $450.00.`,
		"Invalid option, please try again.",
		"Total Sales: $550.00",
		"Total Purchases: $450.00",
		"Total Profit/Loss: $100.00",
		"Goodbye!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output is missing %q:\n%s", want, got)
		}
	}

	// Every change was saved.
	s := sh.repo.Load()
	widget, ok := s.Product("Widget")
	if !ok {
		t.Fatal("Widget was not saved")
	}
	// An unparsable quantity edits the stock down to 0.
	if widget.Quantity != 0 {
		t.Errorf("Widget quantity = %d, want 0", widget.Quantity)
	}
	if _, ok := s.Product("Bad"); ok {
		t.Error("a product with an invalid price was saved")
	}
	if gadget, ok := s.Product("Gadget"); !ok || gadget.Quantity != 15 || gadget.Description != store.PurchasedProductDescription {
		t.Errorf("Gadget = %+v, %v, want a purchased product with 15 in stock", gadget, ok)
	}
	if n := len(s.Transactions()); n != 2 {
		t.Errorf("ledger has %d transactions, want 2", n)
	}
}

func TestShell_Authentication(t *testing.T) {
	testCases := []struct {
		name    string
		script  string
		wantErr error
	}{
		{name: "unknown user", script: "1\nbob\npw\n", wantErr: auth.ErrInvalidCredentials},
		{name: "invalid choice", script: "3\n", wantErr: errInvalidChoice},
		{name: "empty credentials", script: "2\n\n\n", wantErr: auth.ErrEmptyCredentials},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sh, out := newTestShell(t, tc.script)
			err := sh.run(context.Background())
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("run() error = %v, want %v", err, tc.wantErr)
			}
			if strings.Contains(out.String(), "--- Store Menu ---") {
				t.Error("the menu was reachable without a successful login")
			}
		})
	}
}

func TestShell_EndOfInput(t *testing.T) {
	// The input ends in the middle of adding a product.
	sh, out := newTestShell(t, "2\nalice\ns3cret\nalice\ns3cret\n1\nWidget\n")
	if err := sh.run(context.Background()); err != nil {
		t.Fatalf("run() error = %v, want nil", err)
	}
	if n := len(sh.store.Products()); n != 0 {
		t.Errorf("inventory has %d products, want 0", n)
	}
	if strings.Contains(out.String(), "Product added.") {
		t.Error("a product was added from an incomplete input")
	}
}

func TestParseMenuAction(t *testing.T) {
	testCases := []struct {
		in   string
		want menuAction
	}{
		{in: "1", want: menuAddProduct},
		{in: " 5 ", want: menuRecordSale},
		{in: "9", want: menuExit},
		{in: "0", want: menuInvalid},
		{in: "10", want: menuInvalid},
		{in: "add", want: menuInvalid},
		{in: "", want: menuInvalid},
	}
	for _, tc := range testCases {
		if got := parseMenuAction(tc.in); got != tc.want {
			t.Errorf("parseMenuAction(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseDefaults(t *testing.T) {
	if got := parsePrice("12.5"); !got.Equal(store.P(12.5)) {
		t.Errorf("parsePrice(12.5) = %v", got)
	}
	if got := parsePrice("twelve"); !got.Equal(store.P(-1)) {
		t.Errorf("parsePrice(twelve) = %v, want the -1 sentinel", got)
	}
	if got := parseQuantity("7"); got != 7 {
		t.Errorf("parseQuantity(7) = %d", got)
	}
	if got := parseQuantity("seven"); got != 0 {
		t.Errorf("parseQuantity(seven) = %d, want 0", got)
	}
}

func TestPrompter_Ask(t *testing.T) {
	p := newPrompter(strings.NewReader("  first \nlast"), &bytes.Buffer{})
	testCases := []struct {
		want    string
		wantErr bool
	}{
		{want: "first"},
		{want: "last"},
		{wantErr: true},
	}
	for i, tc := range testCases {
		got, err := p.ask("? ")
		if (err != nil) != tc.wantErr {
			t.Fatalf("ask() #%d error = %v, wantErr %v", i, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ask() #%d = %q, want %q", i, got, tc.want)
		}
	}
}
