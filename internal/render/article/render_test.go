package article

import (
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/feedterm/feedterm/internal/feed"
)

var stripANSIForTest = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestTextFromEntry_FallsBackToSummary(t *testing.T) {
	entry := feed.Entry{
		Summary: "Only summary",
		Content: "",
	}
	got := TextFromEntryWithOptions(entry, DefaultOptions)
	if got != "Only summary" {
		t.Fatalf("expected summary fallback, got %q", got)
	}
}

func TestContentLines_SummaryIsRenderedAsHTML(t *testing.T) {
	entry := feed.Entry{
		Summary: "<p>First.</p><p>Second &amp; third.</p>",
	}
	lines := ContentLines(entry, 80)
	got := stripANSIForTest.ReplaceAllString(strings.Join(lines, "\n"), "")
	if !strings.Contains(got, "First.") || !strings.Contains(got, "Second & third.") {
		t.Fatalf("expected summary HTML rendered, got %q", got)
	}
	if strings.Contains(got, "<p>") {
		t.Fatalf("expected tags stripped, got %q", got)
	}
}

func TestContentLines_EmptyEntry(t *testing.T) {
	if got := ContentLines(feed.Entry{}, 80); got != nil {
		t.Fatalf("expected nil for empty entry, got %v", got)
	}
}

func TestContentLines_ImagesFollowContentOrder(t *testing.T) {
	entry := feed.Entry{
		Content: `<p>First paragraph.</p><p><img src="https://example.com/one.jpg" alt="Figure one"></p><p>Second paragraph.</p><p><img src="https://example.com/two.jpg" alt="Figure two"></p>`,
	}

	lines := ContentLines(entry, 80)
	got := stripANSIForTest.ReplaceAllString(strings.Join(lines, "\n"), "")

	firstText := strings.Index(got, "First paragraph.")
	firstImage := strings.Index(got, "Image Figure one")
	secondText := strings.Index(got, "Second paragraph.")
	if firstText == -1 || firstImage == -1 || secondText == -1 {
		t.Fatalf("expected text and first image label in output, got %q", got)
	}
	if !(firstText < firstImage && firstImage < secondText) {
		t.Fatalf("expected content/image order preserved via image label placement, got %q", got)
	}
	if strings.Contains(got, "https://example.com/one.jpg") || strings.Contains(got, "https://example.com/two.jpg") {
		t.Fatalf("expected raw image URL lines hidden from article content, got %q", got)
	}
}

func TestContentLines_RendersCommonArticleElements(t *testing.T) {
	entry := feed.Entry{
		Content: `<article>
			<h1>Main Title</h1>
			<h2>Subtitle</h2>
			<p>Intro with a <a href="https://example.com/link">reference</a>.</p>
			<ul><li>First point</li><li>Second point</li></ul>
			<ol><li>Step one</li><li>Step two</li></ol>
			<blockquote><p>Quoted claim</p><cite>Jane Doe</cite></blockquote>
			<table>
				<tr><th>Metric</th><th>Value</th></tr>
				<tr><td>Speed</td><td>Fast</td></tr>
			</table>
		</article>`,
	}

	lines := ContentLines(entry, 80)
	got := stripANSIForTest.ReplaceAllString(strings.Join(lines, "\n"), "")

	for _, want := range []string{
		"▌ Main Title",
		"▌ Subtitle",
		"reference (https://example.com/link)",
		"• First point",
		"1. Step one",
		"│ Quoted claim",
		"│ Jane Doe",
		"| Metric | Value |",
		"| Speed | Fast |",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in rendered output, got %q", want, got)
		}
	}
}

func TestContentLines_WrapsToWidth(t *testing.T) {
	entry := feed.Entry{
		Content: "<p>" + strings.Repeat("word ", 40) + "</p>",
	}
	for _, line := range ContentLines(entry, 20) {
		if n := len(stripANSIForTest.ReplaceAllString(line, "")); n > 20 {
			t.Fatalf("line exceeds width: %d chars in %q", n, line)
		}
	}
}

func TestContentLines_MultibyteWrapStaysOnRuneBoundaries(t *testing.T) {
	entry := feed.Entry{
		Content: "<p>技術記事のタイトルです長い本文がここに続きます</p>",
	}
	lines := ContentLines(entry, 10)
	if len(lines) == 0 {
		t.Fatal("expected wrapped output")
	}
	for _, line := range lines {
		plain := stripANSIForTest.ReplaceAllString(line, "")
		if !utf8.ValidString(plain) {
			t.Fatalf("line is not valid UTF-8: %q", plain)
		}
		if n := utf8.RuneCountInString(plain); n > 10 {
			t.Fatalf("line exceeds width: %d runes in %q", n, plain)
		}
	}
}

func TestContentLines_UnparsableFallsBackToRawText(t *testing.T) {
	entry := feed.Entry{
		Content: "just plain text, no markup at all",
	}
	lines := ContentLines(entry, 80)
	got := stripANSIForTest.ReplaceAllString(strings.Join(lines, "\n"), "")
	if !strings.Contains(got, "just plain text, no markup at all") {
		t.Fatalf("expected raw text fallback, got %q", got)
	}
}
