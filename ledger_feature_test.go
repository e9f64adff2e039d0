package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"
)

type ledgerTestContext struct {
	store *Store
	err   error
}

func (c *ledgerTestContext) reset() {
	c.store = NewStore()
	c.err = nil
}

func (c *ledgerTestContext) anEmptyCatalog() error { return nil }

func (c *ledgerTestContext) aCatalogWith(name string, price float64, quantity int) error {
	return c.store.AddProduct(Product{Name: name, Description: "A test product", Price: P(price), Quantity: quantity})
}

func (c *ledgerTestContext) iSell(quantity int, name string, price float64) error {
	_, c.err = c.store.Sell(name, quantity, P(price))
	return nil
}

func (c *ledgerTestContext) iPurchase(quantity int, name string, price float64) error {
	_, c.err = c.store.Purchase(name, quantity, P(price))
	return nil
}

func (c *ledgerTestContext) theOperationSucceeds() error {
	if c.err != nil {
		return fmt.Errorf("expected success, got %v", c.err)
	}
	return nil
}

func (c *ledgerTestContext) theOperationFailsWith(message string) error {
	if c.err == nil {
		return errors.New("expected the operation to fail but it succeeded")
	}
	if !strings.Contains(c.err.Error(), message) {
		return fmt.Errorf("expected error to contain %q, got %q", message, c.err.Error())
	}
	return nil
}

func (c *ledgerTestContext) theStockOfIs(name string, quantity int) error {
	p, ok := c.store.Product(name)
	if !ok {
		return fmt.Errorf("product %q not found", name)
	}
	if p.Quantity != quantity {
		return fmt.Errorf("expected stock %d, got %d", quantity, p.Quantity)
	}
	return nil
}

func (c *ledgerTestContext) theLedgerHas(n int) error {
	if got := c.store.ledger.Len(); got != n {
		return fmt.Errorf("expected %d ledger entries, got %d", n, got)
	}
	return nil
}

func (c *ledgerTestContext) theLastEntryIs(typ string, quantity int, name string, total float64) error {
	all := c.store.ledger.All()
	if len(all) == 0 {
		return errors.New("the ledger is empty")
	}
	last := all[len(all)-1]
	if string(last.Type) != typ || last.Quantity != quantity || last.Product != name {
		return fmt.Errorf("expected a %s of %d %q, got %+v", typ, quantity, name, last)
	}
	if !last.Total.Equal(P(total)) {
		return fmt.Errorf("expected total %v, got %v", P(total), last.Total)
	}
	return nil
}

func (c *ledgerTestContext) theCatalogHas(name string, price float64, quantity int, description string) error {
	p, ok := c.store.Product(name)
	if !ok {
		return fmt.Errorf("product %q not found", name)
	}
	if !p.Price.Equal(P(price)) || p.Quantity != quantity || p.Description != description {
		return fmt.Errorf("expected %q priced %v with %d in stock described as %q, got %+v", name, price, quantity, description, p)
	}
	return nil
}

func (c *ledgerTestContext) theProfitIs(profit float64) error {
	if got := c.store.ledger.ProfitLoss(); !got.Equal(P(profit)) {
		return fmt.Errorf("expected profit %v, got %v", P(profit), got)
	}
	return nil
}

func initializeLedgerScenario(ctx *godog.ScenarioContext) {
	tc := &ledgerTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an empty catalog$`, tc.anEmptyCatalog)
	ctx.Step(`^a catalog with "([^"]*)" priced ([\d.]+) with (\d+) in stock$`, tc.aCatalogWith)

	// When steps
	ctx.Step(`^I sell (\d+) "([^"]*)" at ([\d.]+)$`, tc.iSell)
	ctx.Step(`^I purchase (\d+) "([^"]*)" at ([\d.]+)$`, tc.iPurchase)

	// Then steps
	ctx.Step(`^the operation succeeds$`, tc.theOperationSucceeds)
	ctx.Step(`^the operation fails with "([^"]*)"$`, tc.theOperationFailsWith)
	ctx.Step(`^the stock of "([^"]*)" is (\d+)$`, tc.theStockOfIs)
	ctx.Step(`^the ledger has (\d+) entr(?:y|ies)$`, tc.theLedgerHas)
	ctx.Step(`^the last entry is a (sale|purchase) of (\d+) "([^"]*)" with a total of ([\d.]+)$`, tc.theLastEntryIs)
	ctx.Step(`^the catalog has "([^"]*)" priced ([\d.]+) with (\d+) in stock described as "([^"]*)"$`, tc.theCatalogHas)
	ctx.Step(`^the profit is (-?[\d.]+)$`, tc.theProfitIs)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeLedgerScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
