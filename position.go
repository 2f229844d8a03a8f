package fintrack

import (
	"fmt"
	"slices"

	"github.com/etnz/fintrack/date"
)

// PositionLedger is the append-only record of one stock position: its
// purchase lots and dividend events, in insertion order, plus the
// derived owned quantity and accumulated brokerage fees.
//
// The derived fields are caches. They are updated on every successful
// mutation and always equal what a full replay of the logs would
// produce. Mutations validate first and only then append, so a failed
// call leaves the ledger untouched.
type PositionLedger struct {
	symbol string
	name   string

	lots      []PurchaseLot
	dividends []DividendEvent

	quantity  Quantity
	brokerage Money

	prices PriceSeries
}

// NewPositionLedger returns an empty ledger for the given ticker symbol
// and display name.
func NewPositionLedger(symbol, name string) *PositionLedger {
	return &PositionLedger{symbol: symbol, name: name}
}

// Symbol returns the ticker symbol identifying the position.
func (p *PositionLedger) Symbol() string { return p.symbol }

// Name returns the human display name of the position.
func (p *PositionLedger) Name() string { return p.name }

// Prices returns the market close series of the position. The ledger
// itself never reads it; it is filled by the market-data fetcher and
// combined with the ledger by valuation callers.
func (p *PositionLedger) Prices() *PriceSeries { return &p.prices }

// Quantity returns the owned quantity: purchases minus sales plus
// reinvested dividend shares.
func (p *PositionLedger) Quantity() Quantity { return p.quantity }

// Brokerage returns the total brokerage fees paid across all lots.
func (p *PositionLedger) Brokerage() Money { return p.brokerage }

// Currency returns the currency the position trades in, taken from the
// first recorded lot. It is "" until the first purchase.
func (p *PositionLedger) Currency() string {
	if len(p.lots) == 0 {
		return ""
	}
	return p.lots[0].UnitCost.Currency()
}

// RecordPurchase appends a purchase lot. A negative quantity records a
// sale; a sale larger than the owned quantity is rejected with
// ErrInsufficientQuantity.
func (p *PositionLedger) RecordPurchase(quantity Quantity, on date.Date, unitCost, brokerage Money) error {
	if quantity.IsZero() {
		return fmt.Errorf("%s: purchase quantity must not be zero: %w", p.symbol, ErrInvalidArgument)
	}
	if unitCost.IsNegative() {
		return fmt.Errorf("%s: unit cost %s must not be negative: %w", p.symbol, unitCost, ErrInvalidArgument)
	}
	if brokerage.IsNegative() {
		return fmt.Errorf("%s: brokerage %s must not be negative: %w", p.symbol, brokerage, ErrInvalidArgument)
	}
	owned := p.quantity.Add(quantity)
	if owned.IsNegative() {
		return fmt.Errorf("%s: selling %s but only %s owned: %w",
			p.symbol, quantity.Neg(), p.quantity, ErrInsufficientQuantity)
	}

	p.lots = append(p.lots, PurchaseLot{Quantity: quantity, Date: on, UnitCost: unitCost, Brokerage: brokerage})
	p.quantity = owned
	p.brokerage = p.brokerage.Add(brokerage)
	return nil
}

// RecordDividend appends a dividend event. For Reinvestment events the
// amount is a share count and increases the owned quantity; for
// CashDeposit events it is a cash amount and the quantity is unchanged.
func (p *PositionLedger) RecordDividend(kind DividendKind, amount Quantity, on date.Date, residual Money) error {
	if !kind.valid() {
		return fmt.Errorf("%s: unknown dividend kind %q: %w", p.symbol, kind, ErrInvalidArgument)
	}
	if kind == Reinvestment && amount.IsNegative() {
		return fmt.Errorf("%s: reinvested share count %s must not be negative: %w", p.symbol, amount, ErrInvalidArgument)
	}
	if residual.IsNegative() {
		return fmt.Errorf("%s: residual balance %s must not be negative: %w", p.symbol, residual, ErrInvalidArgument)
	}

	ev := DividendEvent{Kind: kind, Amount: amount, Date: on, Residual: residual}
	p.dividends = append(p.dividends, ev)
	p.quantity = p.quantity.Add(ev.Shares())
	return nil
}

// PurchaseHistory returns a copy of all lots, in insertion order.
func (p *PositionLedger) PurchaseHistory() []PurchaseLot {
	return slices.Clone(p.lots)
}

// DividendHistory returns a copy of all dividend events, in insertion order.
func (p *PositionLedger) DividendHistory() []DividendEvent {
	return slices.Clone(p.dividends)
}

// ResidualBalance returns the residual cash of the most recent dividend
// event. Earlier residuals are superseded, not summed.
func (p *PositionLedger) ResidualBalance() Money {
	if len(p.dividends) == 0 {
		return Money{}
	}
	return p.dividends[len(p.dividends)-1].Residual
}

// CostBasis returns the total acquisition cost of the position, the sum
// of unit cost times quantity over all lots, optionally including
// brokerage fees. Sales lower it through their negative quantities.
func (p *PositionLedger) CostBasis(withBrokerage bool) Money {
	var cost Money
	for _, lot := range p.lots {
		cost = cost.Add(lot.Cost(withBrokerage))
	}
	return cost
}

// Valuation returns the market value of the position at the given
// per-share price: price times the owned quantity. With perUnit the
// price itself is returned, the value of a single share.
func (p *PositionLedger) Valuation(price Money, perUnit bool) Money {
	if perUnit {
		return price
	}
	return price.Mul(p.quantity)
}

// ProfitOptions tunes the profit computation. The zero value gives the
// defaults: residual dividend cash counted in, brokerage fees left out
// of the cost basis.
type ProfitOptions struct {
	// ExcludeResidual drops the latest dividend residual balance from
	// the position value.
	ExcludeResidual bool
	// WithBrokerage adds the brokerage fees to the cost basis.
	WithBrokerage bool
}

// Profit returns the absolute profit of the position at the given
// per-share price: market value (plus residual dividend cash unless
// excluded) minus cost basis.
func (p *PositionLedger) Profit(price Money, opts ProfitOptions) Money {
	value := p.Valuation(price, false)
	if !opts.ExcludeResidual {
		value = value.Add(p.ResidualBalance())
	}
	return value.Sub(p.CostBasis(opts.WithBrokerage))
}

// RelativeProfit returns the profit as a percentage of the cost basis.
// A zero cost basis has no meaningful relative profit and returns
// ErrZeroCostBasis.
func (p *PositionLedger) RelativeProfit(price Money, opts ProfitOptions) (Percent, error) {
	cost := p.CostBasis(opts.WithBrokerage)
	if cost.IsZero() {
		return 0, fmt.Errorf("%s: relative profit: %w", p.symbol, ErrZeroCostBasis)
	}
	value := p.Valuation(price, false)
	if !opts.ExcludeResidual {
		value = value.Add(p.ResidualBalance())
	}
	ratio := value.Decimal().Div(cost.Decimal()).InexactFloat64()
	return Percent(100 * (ratio - 1)), nil
}
