package fintrack

import (
	"errors"
	"fmt"
	"log"

	"github.com/etnz/fintrack/date"
	"github.com/shopspring/decimal"
)

// Fetcher returns the daily close prices of a symbol from a date
// forward. Implemented by alphavantage.Client.
type Fetcher interface {
	Daily(symbol string, from date.Date) (date.History[float64], error)
}

// UpdatePrices refreshes the price series of every position in the
// account's portfolio, fetching from the day after the last known
// price (or from the first purchase for a fresh series). A failing
// symbol does not stop the others; all failures are joined.
func UpdatePrices(f Fetcher, a *AccountLedger) error {
	if a.Portfolio() == nil {
		return nil
	}
	var errs []error
	for p := range a.Portfolio().Positions() {
		from := updateStart(p)
		hist, err := f.Daily(p.Symbol(), from)
		if err != nil {
			errs = append(errs, fmt.Errorf("updating %s: %w", p.Symbol(), err))
			continue
		}
		n := 0
		for on, close := range hist.Values() {
			p.Prices().Append(on, decimal.NewFromFloat(close))
			n++
		}
		log.Printf("updated %s: %d new prices", p.Symbol(), n)
	}
	return errors.Join(errs...)
}

// updateStart picks the first day worth fetching for a position.
func updateStart(p *PositionLedger) date.Date {
	if last, _ := p.Prices().Latest(); !last.IsZero() {
		return last.Add(1)
	}
	lots := p.PurchaseHistory()
	if len(lots) > 0 {
		return lots[0].Date
	}
	return date.Date{}
}
