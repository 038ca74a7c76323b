package tui

import (
	"math"

	"github.com/feedterm/feedterm/internal/feed"
	"github.com/feedterm/feedterm/internal/render/article"
)

// detailState is the expanded entry view. The wrapped body is cached
// against the (entry id, wrap width) pair that produced it; width
// changes and switching entries invalidate it, height changes only
// re-clamp the scroll offset.
type detailState struct {
	entryID   uint64
	wrapWidth int
	lines     []string
	offset    int
}

// open resets the view for a freshly expanded entry.
func (d *detailState) open(entry feed.Entry, wrapWidth int) {
	d.entryID = entry.ID
	d.wrapWidth = 0
	d.lines = nil
	d.offset = 0
	d.ensure(entry, wrapWidth)
}

// close drops the cache so a re-expand always rebuilds.
func (d *detailState) close() {
	*d = detailState{}
}

func (d *detailState) active() bool {
	return d.entryID != 0
}

// ensure rebuilds the wrapped body if the entry or the width changed
// since the cached build. Rendering the same entry at the same width
// twice yields the identical lines, so a cache hit is exact.
func (d *detailState) ensure(entry feed.Entry, wrapWidth int) {
	if wrapWidth < 1 {
		wrapWidth = 1
	}
	if d.entryID == entry.ID && d.wrapWidth == wrapWidth && d.lines != nil {
		return
	}
	d.entryID = entry.ID
	d.wrapWidth = wrapWidth
	d.lines = article.ContentLines(entry, wrapWidth)
	if d.lines == nil {
		d.lines = []string{}
	}
}

// scroll applies a body scroll delta with the same sentinel vocabulary
// as the list, clamped to [0, lines-viewHeight].
func (d *detailState) scroll(delta, viewHeight int) {
	switch delta {
	case math.MinInt:
		d.offset = 0
	case math.MaxInt:
		d.offset = d.maxOffset(viewHeight)
	default:
		d.offset += delta
	}
	d.clamp(viewHeight)
}

// clamp keeps the offset valid after any height or content change.
func (d *detailState) clamp(viewHeight int) {
	if limit := d.maxOffset(viewHeight); d.offset > limit {
		d.offset = limit
	}
	if d.offset < 0 {
		d.offset = 0
	}
}

func (d *detailState) maxOffset(viewHeight int) int {
	if viewHeight < 1 {
		viewHeight = 1
	}
	return max(0, len(d.lines)-viewHeight)
}

// visible returns the slice of body lines for the current offset.
func (d *detailState) visible(viewHeight int) []string {
	if len(d.lines) == 0 || viewHeight < 1 {
		return nil
	}
	end := min(len(d.lines), d.offset+viewHeight)
	if d.offset >= end {
		return nil
	}
	return d.lines[d.offset:end]
}
