package fintrack

import (
	"github.com/etnz/fintrack/date"
)

// PurchaseLot is one purchase (or sale, when the quantity is negative)
// of a position. Lots are immutable once recorded.
type PurchaseLot struct {
	Quantity  Quantity  `json:"quantity"`
	Date      date.Date `json:"date"`
	UnitCost  Money     `json:"unit_cost"`
	Brokerage Money     `json:"brokerage"`
}

// Cost returns the cost of the lot, unit cost times quantity,
// optionally including the brokerage fee.
func (l PurchaseLot) Cost(withBrokerage bool) Money {
	cost := l.UnitCost.Mul(l.Quantity)
	if withBrokerage {
		cost = cost.Add(l.Brokerage)
	}
	return cost
}

// DividendKind tells how a dividend was paid out.
type DividendKind string

const (
	// CashDeposit is a dividend paid in cash; the event amount is money.
	CashDeposit DividendKind = "CASH_DEPOSIT"
	// Reinvestment is a dividend paid in shares; the event amount is a
	// share count and increases the owned quantity.
	Reinvestment DividendKind = "REINVESTMENT"
)

func (k DividendKind) valid() bool { return k == CashDeposit || k == Reinvestment }

// DividendEvent is one dividend payout. Amount is a share count for
// Reinvestment events and a cash amount for CashDeposit events.
// Residual is the leftover cash balance the plan could not reinvest;
// only the most recent event's residual is live.
type DividendEvent struct {
	Kind     DividendKind `json:"kind"`
	Amount   Quantity     `json:"amount"`
	Date     date.Date    `json:"date"`
	Residual Money        `json:"residual"`
}

// Shares returns the quantity of shares the event added to the
// position: zero for cash dividends.
func (e DividendEvent) Shares() Quantity {
	if e.Kind == Reinvestment {
		return e.Amount
	}
	return Quantity{}
}
