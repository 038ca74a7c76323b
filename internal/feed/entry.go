package feed

import (
	"encoding/binary"
	"hash/fnv"
	"time"
)

// Entry is one item merged out of a feed source. Entries are immutable
// after decoding; the store owns ordering.
type Entry struct {
	ID          uint64
	Title       string
	URL         string
	Authors     []string
	Summary     string // raw HTML, fallback when Content is empty
	Content     string // raw HTML, preferred body
	PublishedAt time.Time
}

// HasTitle reports whether the source item carried a title at all, as
// opposed to an empty one.
func (e Entry) HasTitle() bool {
	return e.Title != ""
}

const (
	presentMarker = 0x01
	absentMarker  = 0x00
	fieldSep      = 0x1e
)

// Identify derives the stable identifier for an entry from the fields
// that survive a re-fetch: title, the description-bearing field, and the
// publish time. nil marks a field the source omitted entirely and hashes
// differently from a present-but-empty string. The result is never zero;
// zero doubles as "no entry" in the UI, so a zero hash is remapped.
func Identify(title, description *string, published time.Time) uint64 {
	h := fnv.New64a()
	writeOptional(h, title)
	writeOptional(h, description)

	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(published.UnixNano()))
	h.Write(ts[:])

	id := h.Sum64()
	if id == 0 {
		return 1
	}
	return id
}

func writeOptional(h interface{ Write([]byte) (int, error) }, s *string) {
	if s == nil {
		h.Write([]byte{absentMarker, fieldSep})
		return
	}
	h.Write([]byte{presentMarker})
	h.Write([]byte(*s))
	h.Write([]byte{fieldSep})
}

// optional maps the empty string, which is how the wire decoders report
// an omitted element, to an absent field.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
