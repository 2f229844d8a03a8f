package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type balanceCmd struct {
	account string
	date    string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display an account balance" }
func (*balanceCmd) Usage() string {
	return `ft balance -account <name> [-date <yyyy-mm-dd>]

  Displays the account balance, today's or as of a given day.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "account name")
	f.StringVar(&c.date, "date", "", "day to report the balance for (default today)")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		return fail("-account is required")
	}
	on, err := parseDate(c.date)
	if err != nil {
		return fail("Error: %v", err)
	}

	_, a, err := loadAccount(c.account)
	if err != nil {
		return fail("Error loading account: %v", err)
	}

	fmt.Printf("%s: %s on %s\n", a.Name(), a.BalanceAt(on), on)
	return subcommands.ExitSuccess
}
