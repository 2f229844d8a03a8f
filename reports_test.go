package fintrack

import (
	"errors"
	"testing"

	"github.com/etnz/fintrack/date"
	"github.com/shopspring/decimal"
)

func TestNewPositionReport(t *testing.T) {
	p := newTestPosition(t)
	p.Prices().Append(date.MustParse("2020-03-02"), decimal.NewFromFloat(6.80))
	p.Prices().Append(date.MustParse("2020-03-05"), decimal.NewFromInt(7))

	r, err := NewPositionReport(p, date.MustParse("2020-03-10"), ProfitOptions{WithBrokerage: true})
	if err != nil {
		t.Fatalf("NewPositionReport: %v", err)
	}

	if r.Symbol != "CBA" || r.Name != "Commonwealth Bank" {
		t.Errorf("identity = %s/%s", r.Symbol, r.Name)
	}
	if !r.Price.Equal(AUD(7)) || r.PriceDate != date.MustParse("2020-03-05") {
		t.Errorf("price = %s on %s, want %s on 2020-03-05", r.Price, r.PriceDate, AUD(7))
	}
	if !r.Value.Equal(AUD(112)) {
		t.Errorf("Value = %s, want %s", r.Value, AUD(112))
	}
	if !r.Cost.Equal(AUD(82)) {
		t.Errorf("Cost = %s, want %s", r.Cost, AUD(82))
	}
	if !r.Profit.Equal(AUD(30.50)) {
		t.Errorf("Profit = %s, want %s", r.Profit, AUD(30.50))
	}
	if !r.HasRelative || !r.Relative.Equal(Percent(37.1951)) {
		t.Errorf("Relative = %s (%v), want 37.20%%", r.Relative, r.HasRelative)
	}

	// valuing before the 6.80 price picks it, not the latest
	r, err = NewPositionReport(p, date.MustParse("2020-03-03"), ProfitOptions{})
	if err != nil {
		t.Fatalf("NewPositionReport: %v", err)
	}
	if !r.Price.Equal(AUD(6.80)) || r.PriceDate != date.MustParse("2020-03-02") {
		t.Errorf("price = %s on %s, want %s on 2020-03-02", r.Price, r.PriceDate, AUD(6.80))
	}
}

func TestNewPositionReport_NoPrice(t *testing.T) {
	p := newTestPosition(t)
	if _, err := NewPositionReport(p, date.MustParse("2020-03-10"), ProfitOptions{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("NewPositionReport without prices = %v, want ErrNotFound", err)
	}
}

func TestNewPositionReport_ZeroCostBasis(t *testing.T) {
	p := NewPositionLedger("FREE", "Free Shares")
	if err := p.RecordDividend(Reinvestment, Q(2), date.MustParse("2020-01-01"), AUD(0)); err != nil {
		t.Fatalf("RecordDividend: %v", err)
	}
	p.Prices().Append(date.MustParse("2020-01-02"), decimal.NewFromInt(3))

	r, err := NewPositionReport(p, date.MustParse("2020-01-05"), ProfitOptions{})
	if err != nil {
		t.Fatalf("NewPositionReport: %v", err)
	}
	if r.HasRelative {
		t.Error("a zero cost basis position should have no relative profit")
	}
}

func TestNewSummaryReport(t *testing.T) {
	a := NewAccountLedger("1", "broker", "", AUD(500))
	a.Apply(AUD(100), date.MustParse("2020-01-05"))
	a.AttachPortfolio(NewPortfolio())
	ledger, err := a.Portfolio().Add("CBA", "Commonwealth Bank", Q(10), date.MustParse("2020-01-01"), AUD(5), AUD(1))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	ledger.Prices().Append(date.MustParse("2020-01-10"), decimal.NewFromInt(7))

	s, err := NewSummaryReport(a, date.MustParse("2020-01-15"), ProfitOptions{})
	if err != nil {
		t.Fatalf("NewSummaryReport: %v", err)
	}
	if !s.Balance.Equal(AUD(600)) {
		t.Errorf("Balance = %s, want %s", s.Balance, AUD(600))
	}
	if len(s.Positions) != 1 {
		t.Fatalf("len(Positions) = %d, want 1", len(s.Positions))
	}
	if !s.Total.Equal(AUD(670)) { // 600 cash + 70 position value
		t.Errorf("Total = %s, want %s", s.Total, AUD(670))
	}
	if !s.Profit.Equal(AUD(20)) { // 70 - 50 cost
		t.Errorf("Profit = %s, want %s", s.Profit, AUD(20))
	}
}

func TestNewHistoryReport(t *testing.T) {
	a := NewAccountLedger("1", "savings", "", AUD(0))
	a.Apply(AUD(10), date.MustParse("2020-01-05"))
	r := NewHistoryReport(a)
	if r.Account != "savings" || len(r.Entries) != 1 {
		t.Errorf("HistoryReport = %+v", r)
	}
}
