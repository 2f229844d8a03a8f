package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	account string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display an account balance history" }
func (*historyCmd) Usage() string {
	return `ft history -account <name>

  Displays every balance snapshot of the account, in the order the
  changes were applied.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "account name")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		return fail("-account is required")
	}

	_, a, err := loadAccount(c.account)
	if err != nil {
		return fail("Error loading account: %v", err)
	}

	printMarkdown(renderer.HistoryMarkdown(fintrack.NewHistoryReport(a)))
	return subcommands.ExitSuccess
}
