package ledger

import "github.com/robinvdvleuten/networth/ast"

// Frame holds the flows of one calendar month.
type Frame struct {
	// Month is the first day of the month. It is the zero date for the
	// single frame of a ledger that never declared a date.
	Month ast.Date
	// Spending is what went into ast.Spending, net of refunds.
	Spending float64
	// Receiving is what came out of ast.Receiving, net of reversals.
	Receiving float64
}

// Saved returns what was received but not spent.
func (f Frame) Saved() float64 {
	return f.Receiving - f.Spending
}

// flows adds the spending and receiving effect of txn to f.
func (f *Frame) flows(txn ast.Transaction) {
	if txn.Kind != ast.Transfer {
		return
	}
	switch {
	case txn.To == ast.Spending:
		f.Spending += txn.Amount
	case txn.From == ast.Spending:
		f.Spending -= txn.Amount
	}
	switch {
	case txn.From == ast.Receiving:
		f.Receiving += txn.Amount
	case txn.To == ast.Receiving:
		f.Receiving -= txn.Amount
	}
}

// History is the sequence of monthly frames spanned by a ledger, oldest
// first, one frame per month without gaps.
//
// Frames start at the month of the first dated transaction. A transaction
// dated before the month being built is counted in that month, so a ledger
// that is not in date order never gets frames for those earlier months.
type History struct {
	frames []Frame
}

// Len returns the number of frames.
func (h *History) Len() int {
	return len(h.frames)
}

// Frame returns the i-th frame, oldest first.
func (h *History) Frame(i int) Frame {
	return h.frames[i]
}

// Frames returns a copy of all frames.
func (h *History) Frames() []Frame {
	return append([]Frame(nil), h.frames...)
}

// Last returns the most recent frame.
func (h *History) Last() (Frame, bool) {
	if len(h.frames) == 0 {
		return Frame{}, false
	}
	return h.frames[len(h.frames)-1], true
}

// Trailing sums the last n frames. The returned frame is dated with the
// oldest month included.
func (h *History) Trailing(n int) Frame {
	start := len(h.frames) - n
	if start < 0 {
		start = 0
	}
	var sum Frame
	for i, f := range h.frames[start:] {
		if i == 0 {
			sum.Month = f.Month
		}
		sum.Spending += f.Spending
		sum.Receiving += f.Receiving
	}
	return sum
}

// historyBuilder seals frames while transactions are replayed.
type historyBuilder struct {
	frames  []Frame
	current Frame
	started bool

	// undated collects transactions seen before the first date line.
	undated    Frame
	hasUndated bool
}

func (b *historyBuilder) add(txn ast.Transaction) {
	switch {
	case txn.Date.IsZero():
		if b.started {
			b.current.flows(txn)
			return
		}
		b.undated.flows(txn)
		b.hasUndated = true
		return
	case !b.started:
		b.current = Frame{Month: txn.Date.MonthStart()}
		b.current.Spending += b.undated.Spending
		b.current.Receiving += b.undated.Receiving
		b.started = true
	case txn.Date.MonthStart().After(b.current.Month):
		month := txn.Date.MonthStart()
		b.frames = append(b.frames, b.current)
		for next := b.current.Month.NextMonth(); next.Before(month); next = next.NextMonth() {
			b.frames = append(b.frames, Frame{Month: next})
		}
		b.current = Frame{Month: month}
	}
	// Transactions dated before the current month stay in it.
	b.current.flows(txn)
}

// seal closes the in-progress frame, even when the month is incomplete.
func (b *historyBuilder) seal() *History {
	switch {
	case b.started:
		b.frames = append(b.frames, b.current)
	case b.hasUndated:
		b.frames = append(b.frames, b.undated)
	}
	return &History{frames: b.frames}
}
