package tui

import "time"

// debounceWindow is how long scroll repeats are coalesced. Terminals
// deliver wheel and held-arrow input far faster than a feed list needs
// to move; 15ms keeps single presses instant while a burst collapses
// to its first and last event.
const debounceWindow = 15 * time.Millisecond

// debouncer coalesces high-frequency scroll deltas. It is a pure state
// machine: Submit and TimerFired report what the caller should do
// (emit a delta, arm a timer) and the caller owns the actual timer.
//
// Open: the next event emits immediately and starts the window.
// Suppressed: events overwrite a one-slot buffer; when the window
// expires the buffered event emits and the window restarts, or the
// debouncer reopens if nothing arrived.
type debouncer struct {
	suppressed bool
	pending    int
	hasPending bool
	seq        int
}

// Submit feeds one delta in. emit is the delta to apply now (0 when
// buffered), and armSeq is non-zero when a new window timer must be
// started, tagged with the sequence number TimerFired must echo.
func (d *debouncer) Submit(delta int) (emit int, armSeq int) {
	if !d.suppressed {
		d.suppressed = true
		d.seq++
		return delta, d.seq
	}
	d.pending = delta
	d.hasPending = true
	return 0, 0
}

// TimerFired handles a window expiry. Timers from superseded windows
// identify themselves by a stale sequence number and are ignored.
func (d *debouncer) TimerFired(seq int) (emit int, armSeq int) {
	if seq != d.seq || !d.suppressed {
		return 0, 0
	}
	if d.hasPending {
		emit = d.pending
		d.pending = 0
		d.hasPending = false
		d.seq++
		return emit, d.seq
	}
	d.suppressed = false
	return 0, 0
}

// Flush drains the buffered event, if any. Used on quit so a trailing
// scroll is not silently dropped.
func (d *debouncer) Flush() (emit int, ok bool) {
	if !d.hasPending {
		return 0, false
	}
	emit = d.pending
	d.pending = 0
	d.hasPending = false
	d.suppressed = false
	return emit, true
}
