package fintrack

import (
	"fmt"

	"github.com/etnz/fintrack/date"
	"github.com/google/uuid"
)

// Party is one endpoint of a transfer: either an account tracked by a
// ledger, or an external party known only by an opaque label (an
// employer, a landlord, someone else's account).
type Party struct {
	account *AccountLedger
	label   string
}

// Tracked returns a Party backed by a ledger. Its side of a transfer
// is applied to the ledger.
func Tracked(a *AccountLedger) Party { return Party{account: a} }

// External returns an untracked Party. Its side of a transfer is a
// no-op.
func External(label string) Party { return Party{label: label} }

// Tracked reports whether the party is backed by a ledger.
func (p Party) Tracked() bool { return p.account != nil }

func (p Party) String() string {
	if p.account != nil {
		return p.account.Name()
	}
	if p.label == "" {
		return "external"
	}
	return p.label
}

// TransferResult describes what a transfer actually did. The operation
// is best effort per side, never atomic across both: an untracked side
// is simply skipped, and the result records which sides were applied
// instead of raising an error.
type TransferResult struct {
	ID       string
	Date     date.Date
	Amount   Money
	Sender   string
	Receiver string

	// SenderDebited and ReceiverCredited report which ledgers were
	// actually updated. Both false means the transfer only happened in
	// the outside world.
	SenderDebited    bool
	ReceiverCredited bool
}

func (r TransferResult) String() string {
	return fmt.Sprintf("transfer %s: %s from %s to %s on %s", r.ID, r.Amount, r.Sender, r.Receiver, r.Date)
}

// Transfer moves amount from sender to receiver on the given date. Each
// tracked side gets the change applied to its ledger; untracked sides
// are skipped. The result carries a unique id and tells which sides
// were updated.
func Transfer(sender, receiver Party, on date.Date, amount Money) TransferResult {
	res := TransferResult{
		ID:       uuid.NewString(),
		Date:     on,
		Amount:   amount,
		Sender:   sender.String(),
		Receiver: receiver.String(),
	}
	if sender.Tracked() {
		sender.account.Apply(amount.Neg(), on)
		res.SenderDebited = true
	}
	if receiver.Tracked() {
		receiver.account.Apply(amount, on)
		res.ReceiverCredited = true
	}
	return res
}
