package fintrack

import (
	"slices"

	"github.com/etnz/fintrack/date"
)

// BalanceSnapshot is the account balance right after one applied
// change. Several snapshots can share a date: each change gets its own.
type BalanceSnapshot struct {
	Date    date.Date `json:"date"`
	Balance Money     `json:"balance"`
}

// AccountLedger is the append-only balance record of one bank account.
// It keeps the running balance and a snapshot of it after every change.
//
// A brokerage account additionally carries a Portfolio of stock
// positions, attached by composition.
type AccountLedger struct {
	number  string
	name    string
	finder  string
	opening Money

	balance   Money
	snapshots []BalanceSnapshot

	portfolio *Portfolio
}

// NewAccountLedger returns a ledger for the account identified by
// number, with a display name, a finder string matched against
// statement rows during import, and an opening balance.
func NewAccountLedger(number, name, finder string, opening Money) *AccountLedger {
	return &AccountLedger{number: number, name: name, finder: finder, opening: opening, balance: opening}
}

// Number returns the account number.
func (a *AccountLedger) Number() string { return a.number }

// Name returns the account display name.
func (a *AccountLedger) Name() string { return a.name }

// Finder returns the free-text matcher used to route statement rows to
// this account.
func (a *AccountLedger) Finder() string { return a.finder }

// Opening returns the opening balance.
func (a *AccountLedger) Opening() Money { return a.opening }

// Balance returns the current balance, the opening balance plus every
// applied change.
func (a *AccountLedger) Balance() Money { return a.balance }

// Apply credits (or debits, when amount is negative) the account and
// records a snapshot of the new balance. Amounts carry their own sign;
// there is no validation to reject either direction.
func (a *AccountLedger) Apply(amount Money, on date.Date) Money {
	a.balance = a.balance.Add(amount)
	a.snapshots = append(a.snapshots, BalanceSnapshot{Date: on, Balance: a.balance})
	return a.balance
}

// BalanceAt returns the balance as of the end of a day: the most
// recently recorded snapshot not after it, or the opening balance when
// no change had been applied yet.
func (a *AccountLedger) BalanceAt(day date.Date) Money {
	for i := len(a.snapshots) - 1; i >= 0; i-- {
		if !a.snapshots[i].Date.After(day) {
			return a.snapshots[i].Balance
		}
	}
	return a.opening
}

// History returns a copy of all balance snapshots, in the order the
// changes were applied.
func (a *AccountLedger) History() []BalanceSnapshot {
	return slices.Clone(a.snapshots)
}

// AttachPortfolio turns the account into a brokerage account holding
// the given portfolio.
func (a *AccountLedger) AttachPortfolio(p *Portfolio) { a.portfolio = p }

// Portfolio returns the attached portfolio, or nil for a plain bank
// account.
func (a *AccountLedger) Portfolio() *Portfolio { return a.portfolio }
