package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fintrack"
	"github.com/google/subcommands"
)

type importCmd struct {
	file       string
	dateCol    string
	debitCol   string
	creditCol  string
	balanceCol string
	accountCol string
	descCol    string
	dateFormat string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "ingest a bank CSV statement" }
func (*importCmd) Usage() string {
	return `ft import -file <statement.csv> [-date-col <name>] [-debit-col <name>] [-credit-col <name>] [-balance-col <name>] [-account-col <name>] [-desc-col <name>] [-date-format <go layout>]

  Reads a bank CSV export and routes each row to the matching account:
  same account number, or the account finder found in the description.
  Rows matching no account are listed, never silently dropped.

Usage Examples:
$ ft import -file statement.csv -date-col "Date" -debit-col "Debit" -credit-col "Credit" -desc-col "Narrative"
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "CSV statement file")
	f.StringVar(&c.dateCol, "date-col", "", `header name of the date column (default "date")`)
	f.StringVar(&c.debitCol, "debit-col", "", `header name of the debit column (default "debit")`)
	f.StringVar(&c.creditCol, "credit-col", "", `header name of the credit column (default "credit")`)
	f.StringVar(&c.balanceCol, "balance-col", "", `header name of the balance column (default "balance")`)
	f.StringVar(&c.accountCol, "account-col", "", `header name of the account number column (default "account_no")`)
	f.StringVar(&c.descCol, "desc-col", "", `header name of the description column (default "description")`)
	f.StringVar(&c.dateFormat, "date-format", "", `Go layout of the date column (default "2006-01-02")`)
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		return fail("-file is required")
	}

	file, err := os.Open(c.file)
	if err != nil {
		return fail("Error opening statement: %v", err)
	}
	defer file.Close()

	cols := fintrack.StatementColumns{
		Date:        c.dateCol,
		Debit:       c.debitCol,
		Credit:      c.creditCol,
		Balance:     c.balanceCol,
		AccountNo:   c.accountCol,
		Description: c.descCol,
		DateFormat:  c.dateFormat,
	}
	rows, err := fintrack.ReadStatement(file, cols, *currency)
	if err != nil {
		return fail("Error reading statement: %v", err)
	}

	st, err := openStore()
	if err != nil {
		return fail("Error opening store: %v", err)
	}
	names, err := fintrack.ListAccounts(st)
	if err != nil {
		return fail("Error listing accounts: %v", err)
	}
	var accounts []*fintrack.AccountLedger
	for _, name := range names {
		a, err := fintrack.LoadAccount(st, name)
		if err != nil {
			return fail("Error loading account %s: %v", name, err)
		}
		accounts = append(accounts, a)
	}

	applied, unmatched := fintrack.ApplyStatement(rows, accounts)
	for _, a := range accounts {
		if err := fintrack.SaveAccount(st, a); err != nil {
			return fail("Error saving account %s: %v", a.Name(), err)
		}
	}

	fmt.Printf("Applied %d of %d rows\n", applied, len(rows))
	for _, row := range unmatched {
		fmt.Printf("  unmatched: %s %s %q\n", row.Date, row.Amount, row.Description)
	}
	return subcommands.ExitSuccess
}
