package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/date"
	"github.com/shopspring/decimal"
)

func aud(v float64) fintrack.Money { return fintrack.M(v, "AUD") }

func TestHistoryMarkdown(t *testing.T) {
	a := fintrack.NewAccountLedger("1", "savings", "", aud(500))
	a.Apply(aud(10), date.MustParse("2020-01-10"))
	a.Apply(aud(-30), date.MustParse("2020-01-20"))

	got := HistoryMarkdown(fintrack.NewHistoryReport(a))

	for _, want := range []string{
		"# History for savings",
		"Balance",
		"2020-01-10",
		"2020-01-20",
	} {
		if !containsFold(got, want) {
			t.Errorf("HistoryMarkdown missing %q:\n%s", want, got)
		}
	}
}

func TestSummaryMarkdown(t *testing.T) {
	a := fintrack.NewAccountLedger("1", "broker", "", aud(500))
	a.AttachPortfolio(fintrack.NewPortfolio())
	ledger, err := a.Portfolio().Add("CBA", "Commonwealth Bank", fintrack.Q(10), date.MustParse("2020-01-01"), aud(5), aud(1))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	ledger.Prices().Append(date.MustParse("2020-01-10"), decimal.NewFromInt(7))

	report, err := fintrack.NewSummaryReport(a, date.MustParse("2020-01-15"), fintrack.ProfitOptions{})
	if err != nil {
		t.Fatalf("NewSummaryReport: %v", err)
	}
	got := SummaryMarkdown(report)

	for _, want := range []string{
		"# Summary for broker on 2020-01-15",
		"Symbol",
		"CBA",
		"Total:",
	} {
		if !containsFold(got, want) {
			t.Errorf("SummaryMarkdown missing %q:\n%s", want, got)
		}
	}
}

func TestPositionMarkdown(t *testing.T) {
	p := fintrack.NewPositionLedger("CBA", "Commonwealth Bank")
	if err := p.RecordPurchase(fintrack.Q(10), date.MustParse("2020-01-01"), aud(5), aud(1)); err != nil {
		t.Fatalf("RecordPurchase: %v", err)
	}
	if err := p.RecordDividend(fintrack.Reinvestment, fintrack.Q(1), date.MustParse("2020-02-01"), aud(0.50)); err != nil {
		t.Fatalf("RecordDividend: %v", err)
	}
	p.Prices().Append(date.MustParse("2020-02-10"), decimal.NewFromInt(7))

	report, err := fintrack.NewPositionReport(p, date.MustParse("2020-02-15"), fintrack.ProfitOptions{})
	if err != nil {
		t.Fatalf("NewPositionReport: %v", err)
	}
	got := PositionMarkdown(report, p)

	for _, want := range []string{
		"# Commonwealth Bank (CBA)",
		"## Purchases",
		"## Dividends",
		"REINVESTMENT",
	} {
		if !containsFold(got, want) {
			t.Errorf("PositionMarkdown missing %q:\n%s", want, got)
		}
	}
}

func TestTransferMarkdown(t *testing.T) {
	a := fintrack.NewAccountLedger("1", "savings", "", aud(500))
	res := fintrack.Transfer(fintrack.Tracked(a), fintrack.External("Landlord"), date.MustParse("2020-01-10"), aud(200))

	got := TransferMarkdown(res)
	for _, want := range []string{
		"# Transfer",
		"savings",
		"Landlord",
		"Sender debited: yes",
		"Receiver credited: no (untracked)",
	} {
		if !containsFold(got, want) {
			t.Errorf("TransferMarkdown missing %q:\n%s", want, got)
		}
	}
}

// containsFold is a case-insensitive contains: the table writer is free
// to change the header casing.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToUpper(s), strings.ToUpper(substr))
}
