package fintrack

import (
	"testing"

	"github.com/etnz/fintrack/date"
)

func TestAccountLedger_Apply(t *testing.T) {
	a := NewAccountLedger("062-001", "savings", "", AUD(500))
	d1 := date.MustParse("2020-01-10")
	d2 := date.MustParse("2020-01-20")

	a.Apply(AUD(10), d1)
	a.Apply(AUD(20), d1)
	a.Apply(AUD(-30), d2)

	if got := a.Balance(); !got.Equal(AUD(500)) {
		t.Errorf("Balance() = %s, want %s", got, AUD(500))
	}

	history := a.History()
	want := []Money{AUD(510), AUD(530), AUD(500)}
	if len(history) != len(want) {
		t.Fatalf("len(History()) = %d, want %d", len(history), len(want))
	}
	for i, snap := range history {
		if !snap.Balance.Equal(want[i]) {
			t.Errorf("History()[%d].Balance = %s, want %s", i, snap.Balance, want[i])
		}
	}
}

// TestAccountLedger_HistoryInvariant checks that after every change the
// last snapshot equals the balance and the history has one entry per
// change.
func TestAccountLedger_HistoryInvariant(t *testing.T) {
	a := NewAccountLedger("062-001", "savings", "", AUD(100))
	amounts := []Money{AUD(10), AUD(-5), AUD(0.25), AUD(-104)}

	for i, amount := range amounts {
		a.Apply(amount, date.MustParse("2020-01-01").Add(i))
		history := a.History()
		if len(history) != i+1 {
			t.Fatalf("after %d changes, len(History()) = %d", i+1, len(history))
		}
		if last := history[len(history)-1].Balance; !last.Equal(a.Balance()) {
			t.Errorf("after change %d, last snapshot %s != balance %s", i, last, a.Balance())
		}
	}
}

func TestAccountLedger_BalanceAt(t *testing.T) {
	a := NewAccountLedger("062-001", "savings", "", AUD(500))
	a.Apply(AUD(10), date.MustParse("2020-01-10"))
	a.Apply(AUD(20), date.MustParse("2020-01-10"))
	a.Apply(AUD(-30), date.MustParse("2020-01-20"))

	testCases := []struct {
		day  string
		want Money
	}{
		{day: "2020-01-09", want: AUD(500)}, // before any change: opening
		{day: "2020-01-10", want: AUD(530)}, // both changes of the day applied
		{day: "2020-01-15", want: AUD(530)},
		{day: "2020-01-20", want: AUD(500)},
		{day: "2020-02-01", want: AUD(500)},
	}

	for _, tc := range testCases {
		t.Run(tc.day, func(t *testing.T) {
			if got := a.BalanceAt(date.MustParse(tc.day)); !got.Equal(tc.want) {
				t.Errorf("BalanceAt(%s) = %s, want %s", tc.day, got, tc.want)
			}
		})
	}
}

func TestAccountLedger_Portfolio(t *testing.T) {
	a := NewAccountLedger("062-001", "savings", "", AUD(0))
	if a.Portfolio() != nil {
		t.Error("a plain account should hold no portfolio")
	}
	a.AttachPortfolio(NewPortfolio())
	if a.Portfolio() == nil {
		t.Error("Portfolio() = nil after AttachPortfolio")
	}
}
