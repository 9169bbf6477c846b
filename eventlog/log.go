// Package eventlog implements the bounded, ordered split event log:
// a recent-window cache of accepted SplitEvents. Beyond the window
// the log alone underreports cumulative factor — the authoritative
// value lives in the split engine's state, not here.
package eventlog

import "splitchain/core"

// DefaultMaxEvents is the default bound on log length.
const DefaultMaxEvents = 64

// Log is an ordered, append-only (up to eviction) sequence of
// SplitEvents. The zero value is an empty log with DefaultMaxEvents.
// All operations return a new Log and never mutate the receiver,
// mirroring the ring-buffer behavior recommended by spec.md §9
// without exposing a head pointer to callers.
type Log struct {
	events    []core.SplitEvent
	maxEvents int
}

// New creates an empty log bounded by maxEvents. maxEvents <= 0 is
// normalized to DefaultMaxEvents.
func New(maxEvents int) Log {
	if maxEvents <= 0 {
		maxEvents = DefaultMaxEvents
	}
	return Log{maxEvents: maxEvents}
}

// MaxEvents reports the log's configured bound.
func (l Log) MaxEvents() int {
	if l.maxEvents <= 0 {
		return DefaultMaxEvents
	}
	return l.maxEvents
}

// Len reports how many events the log currently holds.
func (l Log) Len() int {
	return len(l.events)
}

// Events returns a defensive copy of the log's events in
// height-ascending order.
func (l Log) Events() []core.SplitEvent {
	out := make([]core.SplitEvent, len(l.events))
	copy(out, l.events)
	return out
}

// Append returns a new log with evt appended; if the resulting
// length exceeds the bound, the oldest entries are dropped from the
// front until the length equals the bound. l is never mutated.
func (l Log) Append(evt core.SplitEvent) Log {
	bound := l.MaxEvents()
	merged := make([]core.SplitEvent, 0, min(len(l.events)+1, bound))
	start := 0
	if len(l.events)+1 > bound {
		start = len(l.events) + 1 - bound
	}
	for i := start; i < len(l.events); i++ {
		merged = append(merged, l.events[i])
	}
	merged = append(merged, evt)
	return Log{events: merged, maxEvents: bound}
}

// FindLastAtOrBeforeHeight returns the last event whose Height <= h,
// or false if none qualifies (a linear scan over the bounded window).
func (l Log) FindLastAtOrBeforeHeight(h int64) (core.SplitEvent, bool) {
	var last core.SplitEvent
	found := false
	for _, e := range l.events {
		if e.Height <= h {
			last = e
			found = true
		}
	}
	return last, found
}

// CumulativeFactorAtHeight returns the CumulativeFactor of the last
// event at or before h, or 1 if no such event is in the window.
func CumulativeFactorAtHeight(l Log, h int64) core.Amount {
	if evt, ok := l.FindLastAtOrBeforeHeight(h); ok {
		return evt.CumulativeFactor
	}
	return core.NewAmount(1)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
