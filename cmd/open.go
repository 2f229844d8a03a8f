package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fintrack"
	"github.com/google/subcommands"
)

type openCmd struct {
	account   string
	number    string
	finder    string
	opening   float64
	brokerage bool
}

func (*openCmd) Name() string     { return "open" }
func (*openCmd) Synopsis() string { return "create a new account" }
func (*openCmd) Usage() string {
	return `ft open -account <name> [-number <account_no>] [-finder <text>] [-opening <amount>] [-portfolio]

  Creates a new account in the store. With -portfolio the account is a
  brokerage account and can hold stock positions.

Usage Examples:
$ ft open -account savings -number 062-001-123456 -opening 500
$ ft open -account broker -portfolio
`
}

func (c *openCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "account name")
	f.StringVar(&c.number, "number", "", "bank account number")
	f.StringVar(&c.finder, "finder", "", "text matched against statement descriptions on import")
	f.Float64Var(&c.opening, "opening", 0, "opening balance")
	f.BoolVar(&c.brokerage, "portfolio", false, "create a brokerage account holding a portfolio")
}

func (c *openCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		return fail("-account is required")
	}

	st, err := openStore()
	if err != nil {
		return fail("Error opening store: %v", err)
	}
	a := fintrack.NewAccountLedger(c.number, c.account, c.finder, money(c.opening))
	if c.brokerage {
		a.AttachPortfolio(fintrack.NewPortfolio())
	}
	if err := fintrack.CreateAccount(st, a); err != nil {
		return fail("Error creating account: %v", err)
	}

	fmt.Printf("Opened account %q with balance %s\n", a.Name(), a.Balance())
	return subcommands.ExitSuccess
}
