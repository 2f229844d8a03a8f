package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type transferCmd struct {
	from         string
	to           string
	fromExternal string
	toExternal   string
	amount       float64
	date         string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move money between accounts" }
func (*transferCmd) Usage() string {
	return `ft transfer (-from <account> | -from-external <label>) (-to <account> | -to-external <label>) -amount <amount> [-date <yyyy-mm-dd>]

  Moves money between two accounts. Either side may be an external
  party ft does not track; that side is skipped, and the printed
  receipt tells which sides were actually updated.

Usage Examples:
$ ft transfer -from savings -to checking -amount 200
$ ft transfer -from-external "Employer" -to checking -amount 3200
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "sender account name")
	f.StringVar(&c.to, "to", "", "receiver account name")
	f.StringVar(&c.fromExternal, "from-external", "", "untracked sender label")
	f.StringVar(&c.toExternal, "to-external", "", "untracked receiver label")
	f.Float64Var(&c.amount, "amount", 0, "amount to transfer")
	f.StringVar(&c.date, "date", "", "day of the transfer (default today)")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (c.from == "") == (c.fromExternal == "") {
		return fail("exactly one of -from or -from-external is required")
	}
	if (c.to == "") == (c.toExternal == "") {
		return fail("exactly one of -to or -to-external is required")
	}
	on, err := parseDate(c.date)
	if err != nil {
		return fail("Error: %v", err)
	}

	st, err := openStore()
	if err != nil {
		return fail("Error opening store: %v", err)
	}

	sender := fintrack.External(c.fromExternal)
	var tracked []*fintrack.AccountLedger
	if c.from != "" {
		a, err := fintrack.LoadAccount(st, c.from)
		if err != nil {
			return fail("Error loading account: %v", err)
		}
		sender = fintrack.Tracked(a)
		tracked = append(tracked, a)
	}
	receiver := fintrack.External(c.toExternal)
	if c.to != "" {
		a, err := fintrack.LoadAccount(st, c.to)
		if err != nil {
			return fail("Error loading account: %v", err)
		}
		receiver = fintrack.Tracked(a)
		tracked = append(tracked, a)
	}

	result := fintrack.Transfer(sender, receiver, on, money(c.amount))
	for _, a := range tracked {
		if err := fintrack.SaveAccount(st, a); err != nil {
			return fail("Error saving account %s: %v", a.Name(), err)
		}
	}

	printMarkdown(renderer.TransferMarkdown(result))
	return subcommands.ExitSuccess
}
