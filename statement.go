package fintrack

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/etnz/fintrack/date"
	"github.com/shopspring/decimal"
)

// StatementColumns names the columns of a bank CSV export that carry
// the canonical fields. Zero values fall back to the canonical names
// themselves (date, debit, credit, balance, account_no, description).
// Debit and Credit may point at the same column when the bank exports
// a single signed amount.
type StatementColumns struct {
	Date        string
	Debit       string
	Credit      string
	Balance     string
	AccountNo   string
	Description string

	// DateFormat is the time.Parse layout of the date column. Empty
	// means the canonical 2006-01-02.
	DateFormat string
}

func (c StatementColumns) withDefaults() StatementColumns {
	def := func(v *string, name string) {
		if *v == "" {
			*v = name
		}
	}
	def(&c.Date, "date")
	def(&c.Debit, "debit")
	def(&c.Credit, "credit")
	def(&c.Balance, "balance")
	def(&c.AccountNo, "account_no")
	def(&c.Description, "description")
	def(&c.DateFormat, date.Format)
	return c
}

// StatementRow is one bank statement line, debit already merged into a
// signed amount (credits positive, debits negative).
type StatementRow struct {
	Date        date.Date
	Amount      Money
	Balance     Money // balance reported by the bank, zero when the column is absent
	AccountNo   string
	Description string
}

// ReadStatement parses a bank CSV export. The first record is the
// header; cols maps its column names onto the canonical fields. Only
// the date column and one of debit/credit are required. Amounts are
// read in the given currency; "$", spaces and thousands separators are
// tolerated.
func ReadStatement(r io.Reader, cols StatementColumns, currency string) ([]StatementRow, error) {
	cols = cols.withDefaults()
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("statement: reading header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	if _, ok := index[cols.Date]; !ok {
		return nil, fmt.Errorf("statement: no %q column in header %v: %w", cols.Date, header, ErrInvalidArgument)
	}
	_, hasDebit := index[cols.Debit]
	_, hasCredit := index[cols.Credit]
	if !hasDebit && !hasCredit {
		return nil, fmt.Errorf("statement: neither %q nor %q column in header %v: %w", cols.Debit, cols.Credit, header, ErrInvalidArgument)
	}

	var rows []StatementRow
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("statement: line %d: %w", line, err)
		}

		on, err := time.Parse(cols.DateFormat, field(record, cols.Date))
		if err != nil {
			return nil, fmt.Errorf("statement: line %d: %w", line, err)
		}

		amount := decimal.Zero
		if s := field(record, cols.Credit); s != "" {
			credit, err := parseAmount(s)
			if err != nil {
				return nil, fmt.Errorf("statement: line %d: credit: %w", line, err)
			}
			amount = amount.Add(credit)
		}
		// A debit column holds positive magnitudes; merge it in as a
		// negative credit. When debit and credit name the same signed
		// column, only the credit branch runs.
		if s := field(record, cols.Debit); s != "" && cols.Debit != cols.Credit {
			debit, err := parseAmount(s)
			if err != nil {
				return nil, fmt.Errorf("statement: line %d: debit: %w", line, err)
			}
			amount = amount.Sub(debit.Abs())
		}

		row := StatementRow{
			Date:        date.New(on.Date()),
			Amount:      M(amount, currency),
			AccountNo:   field(record, cols.AccountNo),
			Description: field(record, cols.Description),
		}
		if s := field(record, cols.Balance); s != "" {
			balance, err := parseAmount(s)
			if err != nil {
				return nil, fmt.Errorf("statement: line %d: balance: %w", line, err)
			}
			row.Balance = M(balance, currency)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseAmount reads a decimal out of a bank-formatted amount string.
func parseAmount(s string) (decimal.Decimal, error) {
	clean := strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount %q: %w", s, ErrInvalidArgument)
	}
	return d, nil
}

// matches reports whether a statement row belongs to the account: same
// account number, or the account's finder appears in the description.
func (a *AccountLedger) matches(row StatementRow) bool {
	if a.number != "" && a.number == row.AccountNo {
		return true
	}
	return a.finder != "" && strings.Contains(row.Description, a.finder)
}

// ApplyStatement routes each row to the first matching account and
// applies its amount. Rows matching no account are returned, not
// dropped.
func ApplyStatement(rows []StatementRow, accounts []*AccountLedger) (applied int, unmatched []StatementRow) {
	for _, row := range rows {
		routed := false
		for _, a := range accounts {
			if a.matches(row) {
				a.Apply(row.Amount, row.Date)
				routed = true
				break
			}
		}
		if routed {
			applied++
		} else {
			unmatched = append(unmatched, row)
		}
	}
	return applied, unmatched
}
