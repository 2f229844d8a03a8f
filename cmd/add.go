package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fintrack"
	"github.com/google/subcommands"
)

type addCmd struct {
	account   string
	symbol    string
	name      string
	quantity  float64
	price     float64
	brokerage float64
	date      string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new position with its initial purchase" }
func (*addCmd) Usage() string {
	return `ft add -account <name> -symbol <ticker> [-name <display name>] -quantity <n> -price <unit cost> [-brokerage <fee>] [-date <yyyy-mm-dd>]

  Creates a new position in the account portfolio and records its
  first purchase lot.

Usage Examples:
$ ft add -account broker -symbol CBA -name "Commonwealth Bank" -quantity 10 -price 80.50 -brokerage 19.95
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "brokerage account name")
	f.StringVar(&c.symbol, "symbol", "", "ticker symbol")
	f.StringVar(&c.name, "name", "", "display name (default the symbol)")
	f.Float64Var(&c.quantity, "quantity", 0, "number of shares bought")
	f.Float64Var(&c.price, "price", 0, "unit cost")
	f.Float64Var(&c.brokerage, "brokerage", 0, "brokerage fee of the purchase")
	f.StringVar(&c.date, "date", "", "day of the purchase (default today)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" || c.symbol == "" {
		return fail("-account and -symbol are required")
	}
	on, err := parseDate(c.date)
	if err != nil {
		return fail("Error: %v", err)
	}
	name := c.name
	if name == "" {
		name = c.symbol
	}

	st, a, err := loadAccount(c.account)
	if err != nil {
		return fail("Error loading account: %v", err)
	}
	if a.Portfolio() == nil {
		a.AttachPortfolio(fintrack.NewPortfolio())
	}
	ledger, err := a.Portfolio().Add(c.symbol, name, fintrack.Q(c.quantity), on, money(c.price), money(c.brokerage))
	if err != nil {
		return fail("Error adding position: %v", err)
	}
	if err := fintrack.SaveAccount(st, a); err != nil {
		return fail("Error saving account: %v", err)
	}

	fmt.Printf("Added %s: %s shares\n", ledger.Symbol(), ledger.Quantity())
	return subcommands.ExitSuccess
}
