package fintrack

import (
	"fmt"
	"iter"
	"slices"

	"github.com/etnz/fintrack/date"
)

// Portfolio holds the stock positions of one brokerage account, keyed
// by symbol, with a secondary display-name index for lookup by name.
//
// Invariant: every name in the index maps to a symbol present in the
// primary map.
type Portfolio struct {
	positions map[string]*PositionLedger
	names     map[string]string // display name -> symbol
}

// NewPortfolio returns an empty portfolio.
func NewPortfolio() *Portfolio {
	return &Portfolio{
		positions: make(map[string]*PositionLedger),
		names:     make(map[string]string),
	}
}

// Len returns the number of positions held.
func (p *Portfolio) Len() int { return len(p.positions) }

// lookup resolves a symbol or display name into a symbol.
func (p *Portfolio) lookup(symbolOrName string) (string, bool) {
	if _, ok := p.positions[symbolOrName]; ok {
		return symbolOrName, true
	}
	if symbol, ok := p.names[symbolOrName]; ok {
		return symbol, true
	}
	return "", false
}

// Get returns the position for a symbol or display name, or ErrNotFound.
func (p *Portfolio) Get(symbolOrName string) (*PositionLedger, error) {
	symbol, ok := p.lookup(symbolOrName)
	if !ok {
		return nil, fmt.Errorf("position %q: %w", symbolOrName, ErrNotFound)
	}
	return p.positions[symbol], nil
}

// Add creates a new position and records its initial purchase. It
// fails with ErrExists when the symbol or display name is already
// taken, and rejects the purchase arguments like RecordPurchase does.
func (p *Portfolio) Add(symbol, name string, quantity Quantity, on date.Date, unitCost, brokerage Money) (*PositionLedger, error) {
	if _, ok := p.positions[symbol]; ok {
		return nil, fmt.Errorf("position %q: %w", symbol, ErrExists)
	}
	if _, ok := p.names[name]; ok {
		return nil, fmt.Errorf("position named %q: %w", name, ErrExists)
	}
	ledger := NewPositionLedger(symbol, name)
	if err := ledger.RecordPurchase(quantity, on, unitCost, brokerage); err != nil {
		return nil, err
	}
	p.positions[symbol] = ledger
	p.names[name] = symbol
	return ledger, nil
}

// insert registers an already built ledger, used when loading from the
// store. Silently replaces any position with the same symbol.
func (p *Portfolio) insert(ledger *PositionLedger) {
	p.positions[ledger.Symbol()] = ledger
	p.names[ledger.Name()] = ledger.Symbol()
}

// Remove discards the position for a symbol or display name, lots and
// dividends included, and drops both index entries.
func (p *Portfolio) Remove(symbolOrName string) error {
	symbol, ok := p.lookup(symbolOrName)
	if !ok {
		return fmt.Errorf("position %q: %w", symbolOrName, ErrNotFound)
	}
	delete(p.names, p.positions[symbol].Name())
	delete(p.positions, symbol)
	return nil
}

// Symbols returns all symbols in lexical order.
func (p *Portfolio) Symbols() []string {
	symbols := make([]string, 0, len(p.positions))
	for symbol := range p.positions {
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)
	return symbols
}

// Positions iterates over all positions in symbol order.
func (p *Portfolio) Positions() iter.Seq[*PositionLedger] {
	return func(yield func(*PositionLedger) bool) {
		for _, symbol := range p.Symbols() {
			if !yield(p.positions[symbol]) {
				return
			}
		}
	}
}
