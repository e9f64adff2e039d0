package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/store"
	"github.com/etnz/store/auth"
	"github.com/etnz/store/renderer"
	"github.com/google/subcommands"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "run the interactive store menu" }
func (*shellCmd) Usage() string {
	return `stk shell

  Asks to log in, or to register a new user, then runs the store menu until
  "Exit" is chosen or the input ends. Every change is saved immediately.
`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {}

func (c *shellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	users, err := auth.Open(ctx, authPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening users database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer users.Close()

	repo, s := openStore()
	sh := &shell{
		prompter: newPrompter(os.Stdin, os.Stdout),
		users:    users,
		repo:     repo,
		store:    s,
	}
	if err := sh.run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// menuAction is an entry of the store menu.
type menuAction int

const (
	menuInvalid menuAction = iota
	menuAddProduct
	menuEditProduct
	menuDeleteProduct
	menuListProducts
	menuRecordSale
	menuRecordPurchase
	menuListTransactions
	menuReport
	menuExit
)

var menuLabels = [...]string{
	menuAddProduct:       "Add product",
	menuEditProduct:      "Edit product",
	menuDeleteProduct:    "Delete product",
	menuListProducts:     "List products",
	menuRecordSale:       "Record sale",
	menuRecordPurchase:   "Record purchase",
	menuListTransactions: "List transactions",
	menuReport:           "Generate report",
	menuExit:             "Exit",
}

// parseMenuAction maps a menu number to its action.
func parseMenuAction(s string) menuAction {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= int(menuInvalid) || n > int(menuExit) {
		return menuInvalid
	}
	return menuAction(n)
}

// parsePrice returns the price in s, or -1 when s is not a price. The
// negative price is then refused by the store as an invalid price.
func parsePrice(s string) store.Price {
	p, err := store.ParsePrice(s)
	if err != nil {
		return store.P(-1)
	}
	return p
}

// parseQuantity returns the quantity in s, or 0 when s is not a number.
func parseQuantity(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// errInvalidChoice is returned for an unknown answer on the login menu.
var errInvalidChoice = errors.New("invalid choice")

// shell runs the interactive menu on a store.
type shell struct {
	*prompter
	users *auth.Manager
	repo  *store.Repository
	store *store.Store
}

// run logs the user in, then executes menu actions until exit or the end of
// the input.
func (sh *shell) run(ctx context.Context) error {
	if err := sh.authenticate(ctx); err != nil {
		return err
	}
	for {
		sh.printMenu()
		choice, err := sh.ask("Choose an option: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		action := parseMenuAction(choice)
		if action == menuExit {
			fmt.Fprintln(sh.out, "Goodbye!")
			return nil
		}
		if err := sh.do(action); errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
	}
}

// authenticate requires a successful login, or a registration followed by
// a login.
func (sh *shell) authenticate(ctx context.Context) error {
	fmt.Fprintln(sh.out, "--- User Authentication ---")
	fmt.Fprintln(sh.out, "1. Login")
	fmt.Fprintln(sh.out, "2. Register")
	choice, err := sh.ask("Choose an option: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
	case "2":
		if err := register(ctx, sh.users, sh.prompter, ""); err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}
		fmt.Fprintln(sh.out, "Registration successful! You can now log in.")
	default:
		return fmt.Errorf("%w %q", errInvalidChoice, choice)
	}

	if err := login(ctx, sh.users, sh.prompter, ""); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	fmt.Fprintln(sh.out, "Login successful!")
	return nil
}

func (sh *shell) printMenu() {
	fmt.Fprintln(sh.out)
	fmt.Fprintln(sh.out, "--- Store Menu ---")
	for a := menuAddProduct; a <= menuExit; a++ {
		fmt.Fprintf(sh.out, "%d. %s\n", a, menuLabels[a])
	}
}

// do executes one menu action. Only input errors are returned, store errors
// are printed and the menu goes on.
func (sh *shell) do(action menuAction) error {
	switch action {
	case menuAddProduct:
		return sh.addProduct()
	case menuEditProduct:
		return sh.editProduct()
	case menuDeleteProduct:
		return sh.deleteProduct()
	case menuListProducts:
		fprintMarkdown(sh.out, renderer.InventoryMarkdown(sh.store.Report().Products, renderer.TableFormat))
	case menuRecordSale:
		return sh.record(store.Sale)
	case menuRecordPurchase:
		return sh.record(store.Purchase)
	case menuListTransactions:
		fprintMarkdown(sh.out, renderer.TransactionsMarkdown(sh.store.Transactions()))
	case menuReport:
		return sh.report()
	default:
		fmt.Fprintln(sh.out, "Invalid option, please try again.")
	}
	return nil
}

// fail prints err, it returns true if err is not nil.
func (sh *shell) fail(err error) bool {
	if err == nil {
		return false
	}
	fmt.Fprintf(sh.out, "Error: %v\n", err)
	return true
}

// save persists the store after a change.
func (sh *shell) save() {
	if err := sh.repo.Save(sh.store); err != nil {
		fmt.Fprintf(sh.out, "Error saving the store: %v\n", err)
	}
}

func (sh *shell) addProduct() error {
	a, err := sh.askAll("Product name: ", "Description: ", "Price: ", "Quantity: ")
	if err != nil {
		return err
	}
	p := store.Product{Name: a[0], Description: a[1], Price: parsePrice(a[2]), Quantity: parseQuantity(a[3])}
	if sh.fail(sh.store.AddProduct(p)) {
		return nil
	}
	sh.save()
	fmt.Fprintln(sh.out, "Product added.")
	return nil
}

func (sh *shell) editProduct() error {
	a, err := sh.askAll(
		"Product name: ",
		"New description (blank to keep): ",
		"New price (blank to keep): ",
		"New quantity (blank to keep): ",
	)
	if err != nil {
		return err
	}
	var e store.Edit
	if a[1] != "" {
		e.Description = &a[1]
	}
	if a[2] != "" {
		price := parsePrice(a[2])
		e.Price = &price
	}
	if a[3] != "" {
		quantity := parseQuantity(a[3])
		e.Quantity = &quantity
	}
	if sh.fail(sh.store.EditProduct(a[0], e)) {
		return nil
	}
	sh.save()
	fmt.Fprintln(sh.out, "Product updated.")
	return nil
}

func (sh *shell) deleteProduct() error {
	name, err := sh.ask("Product name: ")
	if err != nil {
		return err
	}
	if sh.fail(sh.store.DeleteProduct(name)) {
		return nil
	}
	sh.save()
	fmt.Fprintln(sh.out, "Product deleted.")
	return nil
}

func (sh *shell) record(typ store.TransactionType) error {
	a, err := sh.askAll("Product name: ", "Quantity: ", "Price: ")
	if err != nil {
		return err
	}
	price := parsePrice(a[2])
	if price.IsNegative() {
		sh.fail(fmt.Errorf("%q: %w", a[2], store.ErrInvalidPrice))
		return nil
	}

	record := sh.store.Sell
	if typ == store.Purchase {
		record = sh.store.Purchase
	}
	tx, err := record(a[0], parseQuantity(a[1]), price)
	if sh.fail(err) {
		return nil
	}
	sh.save()
	fmt.Fprintln(sh.out, describe(tx))
	return nil
}

func (sh *shell) report() error {
	choice, err := sh.ask("Choose a report:\n 1. Inventory\n 2. Sales\n 3. Purchases\n (leave blank for all): ")
	if err != nil {
		return err
	}
	kind, err := store.ParseReportKind(choice)
	if sh.fail(err) {
		return nil
	}
	fprintMarkdown(sh.out, renderer.ReportMarkdown(sh.store.Report(), kind, renderer.ListFormat))
	return nil
}
