package library

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type lendingTestContext struct {
	catalog *Catalog
	ledger  *Ledger
	err     error
}

func (c *lendingTestContext) reset() {
	c.catalog = nil
	c.ledger = nil
	c.err = nil
}

func (c *lendingTestContext) theSeedCatalog() error {
	c.catalog = NewSeedCatalog()
	return nil
}

func (c *lendingTestContext) aNewLedger() error {
	c.ledger = NewLedger(c.catalog, zap.NewNop())
	return nil
}

func (c *lendingTestContext) item(title string) (*Item, error) {
	it, ok := c.catalog.GetByTitle(title)
	if !ok {
		return nil, fmt.Errorf("no item titled %q", title)
	}
	return it, nil
}

func (c *lendingTestContext) iCheckOut(title string) error {
	it, err := c.item(title)
	if err != nil {
		return err
	}
	c.err = c.ledger.Checkout(it)
	return nil
}

func (c *lendingTestContext) iReturn(title string) error {
	it, err := c.item(title)
	if err != nil {
		return err
	}
	c.err = c.ledger.ReturnItem(it)
	return nil
}

func (c *lendingTestContext) isAvailable(title string) error {
	it, err := c.item(title)
	if err != nil {
		return err
	}
	if !it.Available() {
		return fmt.Errorf("%q should be available", title)
	}
	return nil
}

func (c *lendingTestContext) isNotAvailable(title string) error {
	it, err := c.item(title)
	if err != nil {
		return err
	}
	if it.Available() {
		return fmt.Errorf("%q should not be available", title)
	}
	return nil
}

func (c *lendingTestContext) hasStatus(title, status string) error {
	it, err := c.item(title)
	if err != nil {
		return err
	}
	if got := it.Status().String(); got != status {
		return fmt.Errorf("%q status: expected %s, got %s", title, status, got)
	}
	return nil
}

func joinTitles(items []*Item) string {
	ts := make([]string, 0, len(items))
	for _, it := range items {
		ts = append(ts, it.Title)
	}
	return strings.Join(ts, ", ")
}

func (c *lendingTestContext) myBorrowedItemsAre(list string) error {
	if got := joinTitles(c.ledger.Borrowed()); got != list {
		return fmt.Errorf("borrowed: expected %q, got %q", list, got)
	}
	return nil
}

func (c *lendingTestContext) myDownloadedItemsAre(list string) error {
	if got := joinTitles(c.ledger.Downloaded()); got != list {
		return fmt.Errorf("downloaded: expected %q, got %q", list, got)
	}
	return nil
}

func (c *lendingTestContext) iHaveNoBorrowedItems() error {
	return c.iHaveBorrowedItems(0)
}

func (c *lendingTestContext) iHaveBorrowedItems(n int) error {
	if got := len(c.ledger.Borrowed()); got != n {
		return fmt.Errorf("expected %d borrowed items, got %d", n, got)
	}
	return nil
}

func (c *lendingTestContext) iHaveDownloadedItems(n int) error {
	if got := len(c.ledger.Downloaded()); got != n {
		return fmt.Errorf("expected %d downloaded items, got %d", n, got)
	}
	return nil
}

func (c *lendingTestContext) myBorrowCountIs(n int) error {
	if got := c.ledger.BorrowCount(); got != n {
		return fmt.Errorf("expected borrow count %d, got %d", n, got)
	}
	return nil
}

func (c *lendingTestContext) theOperationIsRefusedAs(kind string) error {
	var want error
	switch kind {
	case "not found":
		want = ErrNotFound
	case "invalid transition":
		want = ErrInvalidTransition
	default:
		return fmt.Errorf("unknown refusal %q", kind)
	}
	if !errors.Is(c.err, want) {
		return fmt.Errorf("expected %s, got %v", kind, c.err)
	}
	return nil
}

func InitializeLendingScenario(ctx *godog.ScenarioContext) {
	tc := &lendingTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the seed catalog$`, tc.theSeedCatalog)
	ctx.Step(`^a new ledger$`, tc.aNewLedger)

	// When steps
	ctx.Step(`^I check out "([^"]*)"$`, tc.iCheckOut)
	ctx.Step(`^I return "([^"]*)"$`, tc.iReturn)

	// Then steps
	ctx.Step(`^"([^"]*)" is available$`, tc.isAvailable)
	ctx.Step(`^"([^"]*)" is not available$`, tc.isNotAvailable)
	ctx.Step(`^"([^"]*)" has status "([^"]*)"$`, tc.hasStatus)
	ctx.Step(`^my borrowed items are "([^"]*)"$`, tc.myBorrowedItemsAre)
	ctx.Step(`^my downloaded items are "([^"]*)"$`, tc.myDownloadedItemsAre)
	ctx.Step(`^I have no borrowed items$`, tc.iHaveNoBorrowedItems)
	ctx.Step(`^I have (\d+) borrowed items$`, tc.iHaveBorrowedItems)
	ctx.Step(`^I have (\d+) downloaded items$`, tc.iHaveDownloadedItems)
	ctx.Step(`^my borrow count is (\d+)$`, tc.myBorrowCountIs)
	ctx.Step(`^the operation is refused as "([^"]*)"$`, tc.theOperationIsRefusedAs)
}

func TestLendingFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeLendingScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
