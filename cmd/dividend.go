package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fintrack"
	"github.com/google/subcommands"
)

type dividendCmd struct {
	account  string
	symbol   string
	kind     string
	amount   float64
	residual float64
	date     string
}

func (*dividendCmd) Name() string     { return "dividend" }
func (*dividendCmd) Synopsis() string { return "record a dividend on a position" }
func (*dividendCmd) Usage() string {
	return `ft dividend -account <name> -symbol <ticker> -kind <REINVESTMENT|CASH_DEPOSIT> -amount <n> [-residual <amount>] [-date <yyyy-mm-dd>]

  Records a dividend event. A REINVESTMENT amount is a share count and
  increases the owned quantity; a CASH_DEPOSIT amount is cash. The
  residual is the leftover cash the plan could not reinvest.

Usage Examples:
$ ft dividend -account broker -symbol CBA -kind REINVESTMENT -amount 1 -residual 0.50
$ ft dividend -account broker -symbol CBA -kind CASH_DEPOSIT -amount 35.20
`
}

func (c *dividendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "brokerage account name")
	f.StringVar(&c.symbol, "symbol", "", "ticker symbol or display name")
	f.StringVar(&c.kind, "kind", string(fintrack.Reinvestment), "dividend kind: REINVESTMENT or CASH_DEPOSIT")
	f.Float64Var(&c.amount, "amount", 0, "shares granted (REINVESTMENT) or cash amount (CASH_DEPOSIT)")
	f.Float64Var(&c.residual, "residual", 0, "residual cash balance after the payout")
	f.StringVar(&c.date, "date", "", "day of the payout (default today)")
}

func (c *dividendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := ledger.RecordDividend(fintrack.DividendKind(c.kind), fintrack.Q(c.amount), on, money(c.residual)); err != nil {
		return fail("Error recording dividend: %v", err)
	}
	if err := fintrack.SaveAccount(st, a); err != nil {
		return fail("Error saving account: %v", err)
	}

	fmt.Printf("%s: %s shares, residual %s\n", ledger.Symbol(), ledger.Quantity(), ledger.ResidualBalance())
	return subcommands.ExitSuccess
}
