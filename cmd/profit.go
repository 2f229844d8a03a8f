package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type profitCmd struct {
	account    string
	symbol     string
	date       string
	brokerage  bool
	noResidual bool
}

func (*profitCmd) Name() string     { return "profit" }
func (*profitCmd) Synopsis() string { return "display the profit of one position" }
func (*profitCmd) Usage() string {
	return `ft profit -account <name> -symbol <ticker> [-date <yyyy-mm-dd>] [-brokerage] [-no-residual]

  Values one position at its last known price and displays its profit,
  absolute and relative to the cost basis, with the purchase and
  dividend logs.
`
}

func (c *profitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "brokerage account name")
	f.StringVar(&c.symbol, "symbol", "", "ticker symbol or display name")
	f.StringVar(&c.date, "date", "", "day to value the position for (default today)")
	f.BoolVar(&c.brokerage, "brokerage", false, "include brokerage fees in the cost basis")
	f.BoolVar(&c.noResidual, "no-residual", false, "exclude the residual dividend cash from the value")
}

func (c *profitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" || c.symbol == "" {
		return fail("-account and -symbol are required")
	}
	on, err := parseDate(c.date)
	if err != nil {
		return fail("Error: %v", err)
	}

	_, a, err := loadAccount(c.account)
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
	opts := fintrack.ProfitOptions{WithBrokerage: c.brokerage, ExcludeResidual: c.noResidual}
	report, err := fintrack.NewPositionReport(ledger, on, opts)
	if err != nil {
		return fail("Error valuing position: %v", err)
	}

	printMarkdown(renderer.PositionMarkdown(report, ledger))
	return subcommands.ExitSuccess
}
