package fintrack

import (
	"iter"

	"github.com/etnz/fintrack/date"
	"github.com/shopspring/decimal"
)

// PriceSeries is a date-indexed series of daily close prices for one
// symbol. It is sorted by date and appending a price on an existing
// date overwrites it. The domain only reads it; fetching and storing
// prices is the collaborators' job.
type PriceSeries struct {
	hist date.History[decimal.Decimal]
}

// Append records the close price for a day.
func (s *PriceSeries) Append(on date.Date, price decimal.Decimal) {
	s.hist.Append(on, price)
}

// Len returns the number of recorded prices.
func (s *PriceSeries) Len() int { return s.hist.Len() }

// Latest returns the most recent date and price. The zero date means
// the series is empty.
func (s *PriceSeries) Latest() (date.Date, decimal.Decimal) {
	return s.hist.Latest()
}

// First returns the earliest date and price.
func (s *PriceSeries) First() (date.Date, decimal.Decimal) {
	return s.hist.First()
}

// PriceAsOf returns the price on a day, or the most recent price before
// it. It returns false when the series has no price on or before day.
func (s *PriceSeries) PriceAsOf(day date.Date) (decimal.Decimal, bool) {
	return s.hist.ValueAsOf(day)
}

// Values iterates over all (date, price) pairs in chronological order.
func (s *PriceSeries) Values() iter.Seq2[date.Date, decimal.Decimal] {
	return s.hist.Values()
}
