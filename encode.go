package fintrack

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/etnz/fintrack/store"
	"github.com/shopspring/decimal"
)

// Persistence layout: one store collection per account. The item named
// "transactions" is the account ledger (balance table + account
// metadata); every other item is a position (price table + ledger
// metadata). Standalone positions outside any account are not a thing.

// accountItem is the reserved item name of the account ledger inside
// its collection.
const accountItem = "transactions"

// positionMeta is the durable encoding of a PositionLedger. The
// quantity and brokerage caches are persisted too, as a consistency
// check against the replayed logs.
type positionMeta struct {
	Name      string          `json:"name"`
	Purchases []PurchaseLot   `json:"purchases"`
	Dividends []DividendEvent `json:"dividends"`
	Quantity  Quantity        `json:"quantity"`
	Brokerage Money           `json:"brokerage"`
}

// accountMeta is the durable encoding of an AccountLedger.
type accountMeta struct {
	Number    string `json:"number"`
	Name      string `json:"name"`
	Finder    string `json:"finder,omitempty"`
	Opening   Money  `json:"opening"`
	Brokerage bool   `json:"brokerage,omitempty"` // true when a portfolio is attached
}

// SavePosition writes a position into an account collection: the
// ledger as item metadata, the price series as the item table.
func SavePosition(c *store.Collection, p *PositionLedger) error {
	meta := positionMeta{
		Name:      p.Name(),
		Purchases: p.PurchaseHistory(),
		Dividends: p.DividendHistory(),
		Quantity:  p.Quantity(),
		Brokerage: p.Brokerage(),
	}
	var rows []store.Row
	for on, price := range p.Prices().Values() {
		rows = append(rows, store.Row{On: on, Value: price.InexactFloat64()})
	}
	if err := c.Write(p.Symbol(), rows, meta, true); err != nil {
		return fmt.Errorf("saving position %s: %w: %w", p.Symbol(), ErrStore, err)
	}
	return nil
}

// LoadPosition reads a position back from an account collection,
// replaying its purchase and dividend logs so the derived fields are
// recomputed, then checked against the persisted caches.
func LoadPosition(c *store.Collection, symbol string) (*PositionLedger, error) {
	var meta positionMeta
	rows, err := c.Read(symbol, &meta)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("position %q: %w", symbol, ErrNotFound)
		}
		return nil, fmt.Errorf("loading position %s: %w: %w", symbol, ErrStore, err)
	}

	p := NewPositionLedger(symbol, meta.Name)
	for _, lot := range meta.Purchases {
		if err := p.RecordPurchase(lot.Quantity, lot.Date, lot.UnitCost, lot.Brokerage); err != nil {
			return nil, fmt.Errorf("loading position %s: replaying lots: %w", symbol, err)
		}
	}
	for _, ev := range meta.Dividends {
		if err := p.RecordDividend(ev.Kind, ev.Amount, ev.Date, ev.Residual); err != nil {
			return nil, fmt.Errorf("loading position %s: replaying dividends: %w", symbol, err)
		}
	}
	if !p.Quantity().Equal(meta.Quantity) || !p.Brokerage().Equal(meta.Brokerage) {
		return nil, fmt.Errorf("loading position %s: stored aggregates do not match the logs (quantity %s vs %s, brokerage %s vs %s): %w",
			symbol, meta.Quantity, p.Quantity(), meta.Brokerage, p.Brokerage(), ErrStore)
	}
	for _, row := range rows {
		p.Prices().Append(row.On, decimal.NewFromFloat(row.Value))
	}
	return p, nil
}

// SaveAccount writes an account ledger, and the positions of its
// portfolio if any, into the account's collection.
func SaveAccount(st *store.Store, a *AccountLedger) error {
	c := st.Collection(a.Name())
	meta := accountMeta{
		Number:    a.Number(),
		Name:      a.Name(),
		Finder:    a.Finder(),
		Opening:   a.Opening(),
		Brokerage: a.Portfolio() != nil,
	}
	rows := make([]store.Row, 0, len(a.History()))
	for _, snap := range a.History() {
		rows = append(rows, store.Row{On: snap.Date, Value: snap.Balance.Decimal().InexactFloat64()})
	}
	if err := c.Write(accountItem, rows, meta, true); err != nil {
		return fmt.Errorf("saving account %s: %w: %w", a.Name(), ErrStore, err)
	}
	if a.Portfolio() != nil {
		for ledger := range a.Portfolio().Positions() {
			if err := SavePosition(c, ledger); err != nil {
				return err
			}
		}
	}
	return nil
}

// LoadAccount reads an account ledger, and its portfolio positions,
// back from the account's collection.
func LoadAccount(st *store.Store, name string) (*AccountLedger, error) {
	c := st.Collection(name)
	var meta accountMeta
	rows, err := c.Read(accountItem, &meta)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("account %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("loading account %s: %w: %w", name, ErrStore, err)
	}

	a := NewAccountLedger(meta.Number, meta.Name, meta.Finder, meta.Opening)
	currency := meta.Opening.Currency()
	for _, row := range rows {
		a.snapshots = append(a.snapshots, BalanceSnapshot{
			Date:    row.On,
			Balance: M(decimal.NewFromFloat(row.Value), currency),
		})
	}
	if n := len(a.snapshots); n > 0 {
		a.balance = a.snapshots[n-1].Balance
	}

	if meta.Brokerage {
		a.AttachPortfolio(NewPortfolio())
	}
	items, err := c.ListItems()
	if err != nil {
		return nil, fmt.Errorf("loading account %s: %w: %w", name, ErrStore, err)
	}
	for _, item := range items {
		if item == accountItem {
			continue
		}
		ledger, err := LoadPosition(c, item)
		if err != nil {
			return nil, err
		}
		if a.Portfolio() == nil {
			a.AttachPortfolio(NewPortfolio())
		}
		a.Portfolio().insert(ledger)
	}
	return a, nil
}

// CreateAccount writes a brand new account ledger to the store. It
// fails with ErrExists when the account collection already holds one.
func CreateAccount(st *store.Store, a *AccountLedger) error {
	c := st.Collection(a.Name())
	if c.Has(accountItem) {
		return fmt.Errorf("account %q: %w", a.Name(), ErrExists)
	}
	return SaveAccount(st, a)
}

// DeletePosition removes a position from both the portfolio and the
// account's collection.
func DeletePosition(st *store.Store, a *AccountLedger, symbolOrName string) error {
	if a.Portfolio() == nil {
		return fmt.Errorf("account %q holds no portfolio: %w", a.Name(), ErrNotFound)
	}
	ledger, err := a.Portfolio().Get(symbolOrName)
	if err != nil {
		return err
	}
	if err := a.Portfolio().Remove(ledger.Symbol()); err != nil {
		return err
	}
	c := st.Collection(a.Name())
	if c.Has(ledger.Symbol()) {
		if err := c.Delete(ledger.Symbol()); err != nil {
			return fmt.Errorf("removing position %s: %w: %w", ledger.Symbol(), ErrStore, err)
		}
	}
	return nil
}

// ListAccounts returns the names of all accounts present in the store.
func ListAccounts(st *store.Store) ([]string, error) {
	names, err := st.Collections()
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w: %w", ErrStore, err)
	}
	return names, nil
}
