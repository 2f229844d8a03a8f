// Package renderer formats reports as markdown, ready for the terminal.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/fintrack"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders an account's balance history as a markdown
// table, one row per applied change.
func HistoryMarkdown(r *fintrack.HistoryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History for %s", r.Account))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Balance"},
		Rows:   [][]string{},
	}
	for _, entry := range r.Entries {
		table.Rows = append(table.Rows, []string{
			entry.Date.String(),
			entry.Balance.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// PositionMarkdown renders one valued position with its purchase and
// dividend logs.
func PositionMarkdown(r fintrack.PositionReport, p *fintrack.PositionLedger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s (%s)", r.Name, r.Symbol))
	doc.PlainTextf("%s shares at %s (%s), worth %s", r.Quantity, r.Price, r.PriceDate, r.Value)
	doc.PlainTextf("Profit: %s (%s)", r.Profit.SignedString(), relativeCell(r))

	doc.H2("Purchases")
	lots := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Quantity", "Unit Cost", "Brokerage"},
		Rows:   [][]string{},
	}
	for _, lot := range p.PurchaseHistory() {
		lots.Rows = append(lots.Rows, []string{
			lot.Date.String(),
			lot.Quantity.String(),
			lot.UnitCost.String(),
			lot.Brokerage.String(),
		})
	}
	doc.Table(lots)

	if dividends := p.DividendHistory(); len(dividends) > 0 {
		doc.H2("Dividends")
		divs := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Date", "Kind", "Amount", "Residual"},
			Rows:   [][]string{},
		}
		for _, ev := range dividends {
			divs.Rows = append(divs.Rows, []string{
				ev.Date.String(),
				string(ev.Kind),
				ev.Amount.String(),
				ev.Residual.String(),
			})
		}
		doc.Table(divs)
	}

	return doc.String()
}

// SummaryMarkdown renders a brokerage account summary: one row per
// position plus the cash line and totals.
func SummaryMarkdown(r *fintrack.SummaryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Summary for %s on %s", r.Account, r.Date))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Quantity", "Price", "Value", "Profit", "Profit %"},
		Rows:   [][]string{},
	}
	for _, pos := range r.Positions {
		table.Rows = append(table.Rows, []string{
			pos.Symbol,
			pos.Quantity.String(),
			pos.Price.String(),
			pos.Value.String(),
			pos.Profit.SignedString(),
			relativeCell(pos),
		})
	}
	doc.Table(table)

	doc.PlainTextf("Cash: %s", r.Balance)
	doc.PlainTextf("Total: %s", r.Total)
	doc.PlainTextf("Profit: %s", r.Profit.SignedString())

	return doc.String()
}

// TransferMarkdown renders a transfer receipt, naming the sides that
// were actually updated.
func TransferMarkdown(r fintrack.TransferResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transfer")
	doc.PlainTextf("Id: %s", r.ID)
	doc.PlainTextf("%s from %s to %s on %s", r.Amount, r.Sender, r.Receiver, r.Date)
	doc.PlainTextf("Sender debited: %s", applied(r.SenderDebited))
	doc.PlainTextf("Receiver credited: %s", applied(r.ReceiverCredited))

	return doc.String()
}

func applied(ok bool) string {
	if ok {
		return "yes"
	}
	return "no (untracked)"
}

func relativeCell(r fintrack.PositionReport) string {
	if !r.HasRelative {
		return "-"
	}
	return r.Relative.SignedString()
}
