package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type positionsCmd struct {
	account    string
	date       string
	brokerage  bool
	noResidual bool
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "display every position of an account" }
func (*positionsCmd) Usage() string {
	return `ft positions -account <name> [-date <yyyy-mm-dd>] [-brokerage] [-no-residual]

  Values every position of the account portfolio at its last known
  price, and displays them with the cash balance and totals.
`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "brokerage account name")
	f.StringVar(&c.date, "date", "", "day to value the positions for (default today)")
	f.BoolVar(&c.brokerage, "brokerage", false, "include brokerage fees in the cost basis")
	f.BoolVar(&c.noResidual, "no-residual", false, "exclude the residual dividend cash from values")
}

func (c *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	opts := fintrack.ProfitOptions{WithBrokerage: c.brokerage, ExcludeResidual: c.noResidual}
	report, err := fintrack.NewSummaryReport(a, on, opts)
	if err != nil {
		return fail("Error building summary: %v", err)
	}

	printMarkdown(renderer.SummaryMarkdown(report))
	return subcommands.ExitSuccess
}
