package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/alphavantage"
	"github.com/google/subcommands"
)

type updateCmd struct {
	account string
	key     string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "fetch the latest prices for every position" }
func (*updateCmd) Usage() string {
	return `ft update -account <name> [-api-key <key>]

  Fetches daily close prices from Alpha Vantage for every position of
  the account, from the day after the last known price. The API key is
  read from -api-key or the ALPHAVANTAGE_API_KEY environment variable.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "brokerage account name")
	f.StringVar(&c.key, "api-key", "", "Alpha Vantage API key (default $ALPHAVANTAGE_API_KEY)")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		return fail("-account is required")
	}
	key := apiKey(c.key)
	if key == "" {
		return fail("no API key: set -api-key or ALPHAVANTAGE_API_KEY")
	}

	st, a, err := loadAccount(c.account)
	if err != nil {
		return fail("Error loading account: %v", err)
	}

	client := alphavantage.New(key)
	if err := fintrack.UpdatePrices(client, a); err != nil {
		return fail("Error updating prices: %v", err)
	}
	if err := fintrack.SaveAccount(st, a); err != nil {
		return fail("Error saving account: %v", err)
	}

	fmt.Printf("Updated prices for %s\n", a.Name())
	return subcommands.ExitSuccess
}
