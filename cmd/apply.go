package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fintrack"
	"github.com/google/subcommands"
)

type applyCmd struct {
	account string
	amount  float64
	date    string
}

func (*applyCmd) Name() string     { return "apply" }
func (*applyCmd) Synopsis() string { return "credit or debit an account" }
func (*applyCmd) Usage() string {
	return `ft apply -account <name> -amount <amount> [-date <yyyy-mm-dd>]

  Applies a signed change to the account balance: positive credits,
  negative debits. Every change appends a dated snapshot to the
  account history.

Usage Examples:
$ ft apply -account savings -amount 120.50
$ ft apply -account savings -amount -42 -date 2026-01-15
`
}

func (c *applyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "account name")
	f.Float64Var(&c.amount, "amount", 0, "signed amount to apply")
	f.StringVar(&c.date, "date", "", "day of the change (default today)")
}

func (c *applyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		return fail("-account is required")
	}
	on, err := parseDate(c.date)
	if err != nil {
		return fail("Error: %v", err)
	}

	st, a, err := loadAccount(c.account)
	if err != nil {
		return fail("Error loading account: %v", err)
	}
	balance := a.Apply(money(c.amount), on)
	if err := fintrack.SaveAccount(st, a); err != nil {
		return fail("Error saving account: %v", err)
	}

	fmt.Printf("%s: %s on %s\n", a.Name(), balance, on)
	return subcommands.ExitSuccess
}
