package tui

import (
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/feedterm/feedterm/internal/feed"
)

func detailEntry(id uint64) feed.Entry {
	return feed.Entry{
		ID:          id,
		Title:       "An entry",
		Content:     "<p>" + strings.Repeat("word ", 120) + "</p>",
		PublishedAt: time.Date(2025, 2, 11, 9, 0, 0, 0, time.UTC),
	}
}

func TestDetailCacheHitIsExact(t *testing.T) {
	entry := detailEntry(1)
	var d detailState
	d.open(entry, 40)
	first := d.lines

	d.ensure(entry, 40)
	if !reflect.DeepEqual(d.lines, first) {
		t.Fatal("same entry at same width rebuilt differently")
	}
}

func TestDetailWidthChangeRewraps(t *testing.T) {
	entry := detailEntry(1)
	var d detailState
	d.open(entry, 40)
	wide := len(d.lines)

	d.ensure(entry, 20)
	if len(d.lines) <= wide {
		t.Fatalf("narrower width did not produce more lines: %d vs %d", len(d.lines), wide)
	}
}

func TestDetailEntryChangeRebuilds(t *testing.T) {
	var d detailState
	d.open(detailEntry(1), 40)

	other := detailEntry(2)
	other.Content = "<p>different body</p>"
	d.ensure(other, 40)

	if d.entryID != 2 {
		t.Fatalf("entry id = %d, want 2", d.entryID)
	}
	if !strings.Contains(strings.Join(d.lines, "\n"), "different body") {
		t.Fatal("lines still show the previous entry")
	}
}

func TestDetailScrollClamping(t *testing.T) {
	var d detailState
	d.open(detailEntry(1), 20)
	viewHeight := 5

	d.scroll(-1, viewHeight)
	if d.offset != 0 {
		t.Fatalf("offset %d after scrolling up at top", d.offset)
	}

	d.scroll(math.MaxInt, viewHeight)
	if d.offset != len(d.lines)-viewHeight {
		t.Fatalf("offset %d at bottom, want %d", d.offset, len(d.lines)-viewHeight)
	}

	d.scroll(1, viewHeight)
	if d.offset != len(d.lines)-viewHeight {
		t.Fatal("scrolled past the last line")
	}

	d.scroll(math.MinInt, viewHeight)
	if d.offset != 0 {
		t.Fatalf("offset %d after jump to top", d.offset)
	}
}

func TestDetailHeightGrowthReclampsWithoutRewrap(t *testing.T) {
	var d detailState
	d.open(detailEntry(1), 20)
	lines := d.lines

	d.scroll(math.MaxInt, 5)
	offsetAtSmall := d.offset

	// Taller viewport: offset shrinks, content is untouched.
	d.clamp(len(d.lines) + 10)
	if d.offset != 0 {
		t.Fatalf("offset %d with viewport taller than content, want 0", d.offset)
	}
	if !reflect.DeepEqual(d.lines, lines) {
		t.Fatal("height change rebuilt the wrapped body")
	}
	if offsetAtSmall == 0 {
		t.Fatal("test needs content taller than the small viewport")
	}
}

func TestDetailEmptyBody(t *testing.T) {
	entry := feed.Entry{ID: 3, Title: "no body"}
	var d detailState
	d.open(entry, 40)

	if len(d.lines) != 0 {
		t.Fatalf("expected no lines, got %d", len(d.lines))
	}
	d.scroll(1, 5)
	if d.offset != 0 {
		t.Fatalf("offset %d on empty body", d.offset)
	}
	if v := d.visible(5); v != nil {
		t.Fatalf("visible lines on empty body: %v", v)
	}
}

func TestDetailCloseDropsState(t *testing.T) {
	var d detailState
	d.open(detailEntry(1), 40)
	d.scroll(3, 5)
	d.close()

	if d.active() || d.offset != 0 || d.lines != nil {
		t.Fatal("close left residual state")
	}
}
