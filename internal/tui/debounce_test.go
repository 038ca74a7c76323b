package tui

import "testing"

func TestDebouncerLeadingEmit(t *testing.T) {
	var d debouncer

	emit, armSeq := d.Submit(1)
	if emit != 1 {
		t.Fatalf("first event not emitted immediately: emit=%d", emit)
	}
	if armSeq == 0 {
		t.Fatal("first event did not arm the window timer")
	}
}

func TestDebouncerBurstCollapsesToTwoEmits(t *testing.T) {
	var d debouncer

	emit, armSeq := d.Submit(1)
	total := emit
	emits := 1

	// A burst inside the window; each overwrites the buffer.
	for _, delta := range []int{1, 1, -1, 1} {
		if e, _ := d.Submit(delta); e != 0 {
			t.Fatalf("mid-window event emitted immediately: %d", e)
		}
	}

	emit, next := d.TimerFired(armSeq)
	if emit == 0 {
		t.Fatal("trailing emit missing after window expiry")
	}
	if emit != 1 {
		t.Fatalf("trailing emit = %d, want most recent delta 1", emit)
	}
	total += emit
	emits++
	if next == 0 {
		t.Fatal("trailing emit did not restart the window")
	}

	// Quiet window: the debouncer reopens without emitting.
	if e, arm := d.TimerFired(next); e != 0 || arm != 0 {
		t.Fatalf("quiet expiry emitted (%d) or re-armed (%d)", e, arm)
	}

	if emits != 2 {
		t.Fatalf("burst produced %d emits, want 2", emits)
	}
	_ = total
}

func TestDebouncerReopensAfterQuietWindow(t *testing.T) {
	var d debouncer

	_, armSeq := d.Submit(1)
	d.TimerFired(armSeq)

	emit, _ := d.Submit(-1)
	if emit != -1 {
		t.Fatalf("event after quiet window not emitted immediately: %d", emit)
	}
}

func TestDebouncerIgnoresStaleTimer(t *testing.T) {
	var d debouncer

	_, stale := d.Submit(1)
	d.TimerFired(stale) // reopens
	_, fresh := d.Submit(1)
	d.Submit(5)

	if emit, arm := d.TimerFired(stale); emit != 0 || arm != 0 {
		t.Fatalf("stale timer acted: emit=%d arm=%d", emit, arm)
	}

	emit, _ := d.TimerFired(fresh)
	if emit != 5 {
		t.Fatalf("fresh timer emitted %d, want buffered 5", emit)
	}
}

func TestDebouncerFlush(t *testing.T) {
	var d debouncer

	if _, ok := d.Flush(); ok {
		t.Fatal("flush reported a pending event on a fresh debouncer")
	}

	d.Submit(1)
	d.Submit(7)
	emit, ok := d.Flush()
	if !ok || emit != 7 {
		t.Fatalf("flush = (%d, %v), want buffered 7", emit, ok)
	}

	// After flush the debouncer is open again.
	if e, _ := d.Submit(2); e != 2 {
		t.Fatalf("event after flush not emitted immediately: %d", e)
	}
}
