package fintrack

import (
	"errors"
	"slices"
	"testing"

	"github.com/etnz/fintrack/date"
)

func TestPortfolio_AddGetRemove(t *testing.T) {
	p := NewPortfolio()
	day := date.MustParse("2020-01-01")

	if _, err := p.Get("CBA"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get on empty portfolio = %v, want ErrNotFound", err)
	}

	ledger, err := p.Add("CBA", "Commonwealth Bank", Q(10), day, AUD(80.50), AUD(19.95))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !ledger.Quantity().Equal(Q(10)) {
		t.Errorf("initial purchase quantity = %s, want 10", ledger.Quantity())
	}

	// lookup by symbol and by display name hit the same ledger
	bySymbol, err := p.Get("CBA")
	if err != nil {
		t.Fatalf("Get by symbol: %v", err)
	}
	byName, err := p.Get("Commonwealth Bank")
	if err != nil {
		t.Fatalf("Get by name: %v", err)
	}
	if bySymbol != ledger || byName != ledger {
		t.Error("Get returned a different ledger")
	}

	if _, err := p.Add("CBA", "Other", Q(1), day, AUD(1), AUD(0)); !errors.Is(err, ErrExists) {
		t.Errorf("Add duplicate symbol = %v, want ErrExists", err)
	}
	if _, err := p.Add("XYZ", "Commonwealth Bank", Q(1), day, AUD(1), AUD(0)); !errors.Is(err, ErrExists) {
		t.Errorf("Add duplicate name = %v, want ErrExists", err)
	}

	if err := p.Remove("Commonwealth Bank"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := p.Get("CBA"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Remove = %v, want ErrNotFound", err)
	}
	if _, err := p.Get("Commonwealth Bank"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get by name after Remove = %v, want ErrNotFound", err)
	}
	if err := p.Remove("CBA"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove again = %v, want ErrNotFound", err)
	}
}

func TestPortfolio_Add_InvalidPurchase(t *testing.T) {
	p := NewPortfolio()
	if _, err := p.Add("CBA", "Commonwealth Bank", Q(0), date.MustParse("2020-01-01"), AUD(1), AUD(0)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Add with zero quantity = %v, want ErrInvalidArgument", err)
	}
	if p.Len() != 0 {
		t.Error("failed Add inserted a position anyway")
	}
}

func TestPortfolio_Ordering(t *testing.T) {
	p := NewPortfolio()
	day := date.MustParse("2020-01-01")
	for _, symbol := range []string{"WBC", "ANZ", "CBA"} {
		if _, err := p.Add(symbol, symbol+" name", Q(1), day, AUD(1), AUD(0)); err != nil {
			t.Fatalf("Add(%s): %v", symbol, err)
		}
	}

	if got, want := p.Symbols(), []string{"ANZ", "CBA", "WBC"}; !slices.Equal(got, want) {
		t.Errorf("Symbols() = %v, want %v", got, want)
	}
	var visited []string
	for ledger := range p.Positions() {
		visited = append(visited, ledger.Symbol())
	}
	if want := []string{"ANZ", "CBA", "WBC"}; !slices.Equal(visited, want) {
		t.Errorf("Positions() order = %v, want %v", visited, want)
	}
}
