package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fintrack"
	"github.com/google/subcommands"
)

type removeCmd struct {
	account string
	symbol  string
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a position from an account" }
func (*removeCmd) Usage() string {
	return `ft remove -account <name> -symbol <ticker>

  Discards a position, its lots and dividends included, and deletes
  its stored item.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "brokerage account name")
	f.StringVar(&c.symbol, "symbol", "", "ticker symbol or display name")
}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" || c.symbol == "" {
		return fail("-account and -symbol are required")
	}

	st, a, err := loadAccount(c.account)
	if err != nil {
		return fail("Error loading account: %v", err)
	}
	if err := fintrack.DeletePosition(st, a, c.symbol); err != nil {
		return fail("Error removing position: %v", err)
	}

	fmt.Printf("Removed %s from %s\n", c.symbol, a.Name())
	return subcommands.ExitSuccess
}
