// Package cmd implements the CLI application to manage accounts and
// positions.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/date"
	"github.com/etnz/fintrack/store"
	"github.com/google/subcommands"
)

// Commands is the list of all subcommands. A main package registers
// them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&openCmd{},
	&balanceCmd{},
	&applyCmd{},
	&historyCmd{},
	&transferCmd{},
	&addCmd{},
	&buyCmd{},
	&dividendCmd{},
	&removeCmd{},
	&positionsCmd{},
	&profitCmd{},
	&updateCmd{},
	&importCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storePath = flag.String("store-path", ".fintrack", "Path to the accounts store folder")
var currency = flag.String("currency", "AUD", "Currency of amounts given on the command line")

// openStore opens the app store.
func openStore() (*store.Store, error) {
	return store.Open(*storePath)
}

// loadAccount opens the store and reads one account out of it.
func loadAccount(name string) (*store.Store, *fintrack.AccountLedger, error) {
	st, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	a, err := fintrack.LoadAccount(st, name)
	if err != nil {
		return nil, nil, err
	}
	return st, a, nil
}

// apiKey resolves the Alpha Vantage API key from the flag or the
// environment.
func apiKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("ALPHAVANTAGE_API_KEY")
}

// parseDate reads a -date flag value, empty meaning today.
func parseDate(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}

// money builds a Money from a command line amount in the app currency.
func money(v float64) fintrack.Money {
	return fintrack.M(v, *currency)
}

// fail prints an error and returns the failure exit status.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}
