package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fintrack"
	"github.com/google/subcommands"
)

type buyCmd struct {
	account   string
	symbol    string
	quantity  float64
	price     float64
	brokerage float64
	date      string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase or a sale on a position" }
func (*buyCmd) Usage() string {
	return `ft buy -account <name> -symbol <ticker> -quantity <n> -price <unit cost> [-brokerage <fee>] [-date <yyyy-mm-dd>]

  Appends a purchase lot to an existing position. A negative quantity
  records a sale; a sale can never exceed the owned quantity.

Usage Examples:
$ ft buy -account broker -symbol CBA -quantity 5 -price 82.00 -brokerage 19.95
$ ft buy -account broker -symbol CBA -quantity -3 -price 90.00
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "brokerage account name")
	f.StringVar(&c.symbol, "symbol", "", "ticker symbol or display name")
	f.Float64Var(&c.quantity, "quantity", 0, "number of shares, negative for a sale")
	f.Float64Var(&c.price, "price", 0, "unit cost")
	f.Float64Var(&c.brokerage, "brokerage", 0, "brokerage fee of the lot")
	f.StringVar(&c.date, "date", "", "day of the purchase (default today)")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" || c.symbol == "" {
		return fail("-account and -symbol are required")
	}
	on, err := parseDate(c.date)
	if err != nil {
		return fail("Error: %v", err)
	}

	st, a, err := loadAccount(c.account)
	if err != nil {
		return fail("Error loading account: %v", err)
	}
	if a.Portfolio() == nil {
		return fail("account %q holds no portfolio", c.account)
	}
	ledger, err := a.Portfolio().Get(c.symbol)
	if err != nil {
		return fail("Error: %v", err)
	}
	if err := ledger.RecordPurchase(fintrack.Q(c.quantity), on, money(c.price), money(c.brokerage)); err != nil {
		return fail("Error recording purchase: %v", err)
	}
	if err := fintrack.SaveAccount(st, a); err != nil {
		return fail("Error saving account: %v", err)
	}

	fmt.Printf("%s: %s shares, %s brokerage paid\n", ledger.Symbol(), ledger.Quantity(), ledger.Brokerage())
	return subcommands.ExitSuccess
}
