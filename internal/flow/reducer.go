package flow

import "time"

// TimestampLayout formats transaction timestamps (ISO-8601, millisecond precision, UTC).
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// EventKind names an input event.
type EventKind string

const (
	EventSubmit EventKind = "submit"
	EventRemove EventKind = "remove"
	EventUndo   EventKind = "undo"
	EventReset  EventKind = "reset"
)

// Event is one of SubmitEvent, RemoveEvent, UndoEvent or ResetEvent.
type Event interface {
	Kind() EventKind
}

// SubmitEvent records a new transaction.
type SubmitEvent struct {
	Activity Activity
	Amount   Money
}

// RemoveEvent removes the logged transaction with the same timestamp.
type RemoveEvent struct {
	Transaction Transaction
}

// UndoEvent restores the last removed transaction.
type UndoEvent struct{}

// ResetEvent discards all history.
type ResetEvent struct{}

func (SubmitEvent) Kind() EventKind { return EventSubmit }
func (RemoveEvent) Kind() EventKind { return EventRemove }
func (UndoEvent) Kind() EventKind   { return EventUndo }
func (ResetEvent) Kind() EventKind  { return EventReset }

// FormatTimestamp renders t the way transaction identities are stored.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Reduce returns the snapshot that results from applying ev to s. The input is
// never modified. Events that cannot apply (unknown activity, unknown
// timestamp, empty undo slot) return s unchanged.
func Reduce(s Snapshot, ev Event, now time.Time) Snapshot {
	switch e := ev.(type) {
	case SubmitEvent:
		if !e.Activity.Valid() {
			return s
		}
		next := s.Clone()
		tx := Transaction{Activity: e.Activity, Amount: e.Amount, Timestamp: FormatTimestamp(now)}
		next.Transactions = prepend(next.Transactions, tx)
		apply(&next, tx.Activity, tx.Amount)
		return next

	case RemoveEvent:
		idx := s.FindTransaction(e.Transaction.Timestamp)
		if idx < 0 {
			return s
		}
		next := s.Clone()
		tx := next.Transactions[idx]
		next.Transactions = append(next.Transactions[:idx], next.Transactions[idx+1:]...)
		apply(&next, tx.Activity, tx.Amount.Neg())
		next.LastRemovedTransaction = &tx
		return next

	case UndoEvent:
		if s.LastRemovedTransaction == nil {
			return s
		}
		next := s.Clone()
		tx := *next.LastRemovedTransaction
		next.Transactions = prepend(next.Transactions, tx)
		apply(&next, tx.Activity, tx.Amount)
		next.LastRemovedTransaction = nil
		return next

	case ResetEvent:
		return Initial()
	}
	return s
}

func prepend(list []Transaction, tx Transaction) []Transaction {
	out := make([]Transaction, 0, len(list)+1)
	out = append(out, tx)
	return append(out, list...)
}
