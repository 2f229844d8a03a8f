package fintrack

import (
	"errors"
	"fmt"

	"github.com/etnz/fintrack/date"
)

// Reports are plain data computed from the ledgers, ready for the
// renderer package to format. They never mutate the domain.

// HistoryReport is the balance history of one account.
type HistoryReport struct {
	Account string
	Entries []BalanceSnapshot
}

// NewHistoryReport builds the balance history report of an account.
func NewHistoryReport(a *AccountLedger) *HistoryReport {
	return &HistoryReport{Account: a.Name(), Entries: a.History()}
}

// PositionReport is one position valued at its last known price on a
// given day.
type PositionReport struct {
	Symbol    string
	Name      string
	Quantity  Quantity
	Price     Money
	PriceDate date.Date
	Value     Money
	Cost      Money
	Brokerage Money
	Profit    Money

	// Relative is only meaningful when HasRelative is set; a position
	// with a zero cost basis has no relative profit.
	Relative    Percent
	HasRelative bool
}

// NewPositionReport values a position as of a day, using the most
// recent price of its series not after that day. It fails with
// ErrNotFound when the series holds no such price.
func NewPositionReport(p *PositionLedger, on date.Date, opts ProfitOptions) (PositionReport, error) {
	raw, ok := p.Prices().PriceAsOf(on)
	if !ok {
		return PositionReport{}, fmt.Errorf("no price for %s on or before %s: %w", p.Symbol(), on, ErrNotFound)
	}
	price := M(raw, p.Currency())

	r := PositionReport{
		Symbol:    p.Symbol(),
		Name:      p.Name(),
		Quantity:  p.Quantity(),
		Price:     price,
		Value:     p.Valuation(price, false),
		Cost:      p.CostBasis(opts.WithBrokerage),
		Brokerage: p.Brokerage(),
		Profit:    p.Profit(price, opts),
	}
	r.PriceDate, _ = priceDate(p, on)

	relative, err := p.RelativeProfit(price, opts)
	switch {
	case errors.Is(err, ErrZeroCostBasis):
		// swallowed: the report simply has no relative column
	case err != nil:
		return PositionReport{}, err
	default:
		r.Relative = relative
		r.HasRelative = true
	}
	return r, nil
}

// priceDate finds the date of the price PriceAsOf(on) returned.
func priceDate(p *PositionLedger, on date.Date) (date.Date, bool) {
	var found date.Date
	ok := false
	for d := range p.Prices().Values() {
		if d.After(on) {
			break
		}
		found, ok = d, true
	}
	return found, ok
}

// SummaryReport is the full picture of a brokerage account on a day:
// every position valued, plus the cash balance.
type SummaryReport struct {
	Account   string
	Date      date.Date
	Positions []PositionReport
	Balance   Money // cash
	Total     Money // cash + position values
	Profit    Money // sum of position profits
}

// NewSummaryReport values every position of the account's portfolio as
// of a day. Positions without a price by that day fail the whole
// report; partial summaries would be misleading.
func NewSummaryReport(a *AccountLedger, on date.Date, opts ProfitOptions) (*SummaryReport, error) {
	s := &SummaryReport{
		Account: a.Name(),
		Date:    on,
		Balance: a.BalanceAt(on),
	}
	s.Total = s.Balance
	if a.Portfolio() == nil {
		return s, nil
	}
	for p := range a.Portfolio().Positions() {
		r, err := NewPositionReport(p, on, opts)
		if err != nil {
			return nil, err
		}
		s.Positions = append(s.Positions, r)
		s.Total = s.Total.Add(r.Value)
		s.Profit = s.Profit.Add(r.Profit)
	}
	return s, nil
}
