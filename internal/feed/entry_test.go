package feed

import (
	"testing"
	"time"
)

func TestIdentifyDeterministic(t *testing.T) {
	title := "Go 1.24 released"
	desc := "The latest release of Go."
	published := time.Date(2025, 2, 11, 9, 30, 0, 0, time.UTC)

	first := Identify(&title, &desc, published)
	second := Identify(&title, &desc, published)

	if first != second {
		t.Errorf("same inputs hashed differently: %d vs %d", first, second)
	}
}

func TestIdentifyFieldSensitivity(t *testing.T) {
	title := "a title"
	desc := "a description"
	published := time.Date(2025, 2, 11, 9, 30, 0, 0, time.UTC)
	base := Identify(&title, &desc, published)

	otherTitle := "another title"
	if Identify(&otherTitle, &desc, published) == base {
		t.Error("changing the title did not change the id")
	}

	otherDesc := "another description"
	if Identify(&title, &otherDesc, published) == base {
		t.Error("changing the description did not change the id")
	}

	if Identify(&title, &desc, published.Add(time.Second)) == base {
		t.Error("changing the publish time did not change the id")
	}
}

func TestIdentifyAbsentVersusEmpty(t *testing.T) {
	empty := ""
	published := time.Date(2025, 2, 11, 9, 30, 0, 0, time.UTC)

	absent := Identify(nil, nil, published)
	present := Identify(&empty, &empty, published)

	if absent == present {
		t.Error("absent fields and empty fields hashed to the same id")
	}
}

func TestIdentifyBoundaryShifts(t *testing.T) {
	// "ab" + "c" must not collide with "a" + "bc".
	ab, c := "ab", "c"
	a, bc := "a", "bc"
	published := time.Date(2025, 2, 11, 9, 30, 0, 0, time.UTC)

	if Identify(&ab, &c, published) == Identify(&a, &bc, published) {
		t.Error("field boundary shift produced an id collision")
	}
}

func TestIdentifyNeverZero(t *testing.T) {
	// Zero means "nothing expanded" in the UI, so no entry may hash to
	// it. A direct zero preimage for FNV-1a is impractical to construct;
	// exercise a spread of inputs and rely on the remap for the rest.
	published := time.Unix(0, 0)
	for _, title := range []string{"", "x", "feed", "\x00\x00"} {
		title := title
		if Identify(&title, nil, published) == 0 {
			t.Errorf("Identify returned zero for title %q", title)
		}
	}
	if Identify(nil, nil, time.Time{}) == 0 {
		t.Error("Identify returned zero for fully absent input")
	}
}

func TestHasTitle(t *testing.T) {
	if (Entry{Title: "t"}).HasTitle() != true {
		t.Error("entry with a title reported HasTitle false")
	}
	if (Entry{}).HasTitle() != false {
		t.Error("entry without a title reported HasTitle true")
	}
}
