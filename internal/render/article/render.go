package article

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	nethtml "golang.org/x/net/html"

	"github.com/feedterm/feedterm/internal/feed"
)

var reANSICodes = regexp.MustCompile(`\x1b\[[0-9;]*m`)

type ImageMode int

const (
	ImageModeLabel ImageMode = iota
	ImageModeNone
)

type Options struct {
	ImageMode ImageMode
}

var DefaultOptions = Options{
	ImageMode: ImageModeLabel,
}

func withDefaults(opts Options) Options {
	out := opts
	if out.ImageMode != ImageModeLabel && out.ImageMode != ImageModeNone {
		out.ImageMode = DefaultOptions.ImageMode
	}
	return out
}

// bodyRenderer walks a parsed entry body and emits styled, wrapped
// terminal lines. Inline styling happens in the walk itself, so every
// width calculation below must ignore ANSI codes.
type bodyRenderer struct {
	width  int
	images ImageMode
}

// ContentLines renders an entry's body as styled plain-text lines
// wrapped to width. The full content wins over the summary; when the
// HTML cannot be parsed the raw text falls through as wrapped lines.
// Pure in (entry, width), which is what makes the expanded-view cache
// safe.
func ContentLines(entry feed.Entry, width int) []string {
	return ContentLinesWithOptions(entry, width, DefaultOptions)
}

func ContentLinesWithOptions(entry feed.Entry, width int, opts Options) []string {
	content := strings.TrimSpace(entry.Content)
	if content == "" {
		summary := strings.TrimSpace(entry.Summary)
		if summary == "" {
			return nil
		}
		return renderFragment(summary, width, withDefaults(opts))
	}
	lines := renderFragment(content, width, withDefaults(opts))
	if len(lines) > 0 {
		return lines
	}
	text := TextFromEntryWithOptions(entry, opts)
	if text == "" {
		return nil
	}
	return wrapText(text, width)
}

func TextFromEntryWithOptions(entry feed.Entry, opts Options) string {
	content := strings.TrimSpace(entry.Content)
	if content != "" {
		if lines := renderFragment(content, 80, withDefaults(opts)); len(lines) > 0 {
			return strings.Join(lines, "\n")
		}
	}
	return strings.TrimSpace(entry.Summary)
}

func renderFragment(raw string, width int, opts Options) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	doc, err := nethtml.Parse(strings.NewReader("<html><body>" + raw + "</body></html>"))
	if err != nil {
		return wrapText(strings.TrimSpace(html.UnescapeString(raw)), width)
	}
	body := findBodyNode(doc)
	if body == nil {
		return wrapText(strings.TrimSpace(html.UnescapeString(raw)), width)
	}
	r := bodyRenderer{width: max(1, width), images: opts.ImageMode}
	return trimBlankLines(r.renderNodes(elementChildren(body), 0))
}

func trimBlankLines(lines []string) []string {
	if len(lines) == 0 {
		return lines
	}
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines) - 1
	for end >= start && strings.TrimSpace(lines[end]) == "" {
		end--
	}
	if end < start {
		return nil
	}
	out := make([]string, 0, end-start+1)
	prevBlank := false
	for i := start; i <= end; i++ {
		blank := strings.TrimSpace(lines[i]) == ""
		if blank && prevBlank {
			continue
		}
		out = append(out, lines[i])
		prevBlank = blank
	}
	return out
}

// wrapText greedily wraps at word boundaries. Width math is in visible
// runes: words may carry ANSI codes from the inline walk, and CJK
// words must not be split mid-rune. A word longer than the width is
// hard-split at rune boundaries unless it is styled, in which case it
// gets its own overlong line rather than risking a cut inside an
// escape sequence.
func wrapText(text string, width int) []string {
	if width < 1 {
		return []string{text}
	}
	paragraphs := strings.Split(text, "\n")
	out := make([]string, 0, len(paragraphs))

	for _, p := range paragraphs {
		words := strings.Fields(p)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		lineLen := 0
		for _, word := range words {
			wordLen := visibleLen(word)
			for wordLen > width && !strings.ContainsRune(word, '\x1b') {
				if line != "" {
					out = append(out, line)
					line = ""
					lineLen = 0
				}
				runes := []rune(word)
				out = append(out, string(runes[:width]))
				word = string(runes[width:])
				wordLen -= width
			}

			switch {
			case line == "":
				line = word
				lineLen = wordLen
			case lineLen+1+wordLen <= width:
				line += " " + word
				lineLen += 1 + wordLen
			default:
				out = append(out, line)
				line = word
				lineLen = wordLen
			}
		}
		if line != "" {
			out = append(out, line)
		}
	}

	return out
}

func visibleLen(s string) int {
	return utf8.RuneCountInString(stripANSI(s))
}

func stripANSI(s string) string {
	return reANSICodes.ReplaceAllString(s, "")
}

func findBodyNode(node *nethtml.Node) *nethtml.Node {
	if node == nil {
		return nil
	}
	if node.Type == nethtml.ElementNode && strings.EqualFold(node.Data, "body") {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := findBodyNode(child); found != nil {
			return found
		}
	}
	return nil
}

func elementChildren(node *nethtml.Node) []*nethtml.Node {
	children := make([]*nethtml.Node, 0, 4)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == nethtml.TextNode && strings.TrimSpace(child.Data) == "" {
			continue
		}
		children = append(children, child)
	}
	return children
}

func nodeAttr(node *nethtml.Node, name string) string {
	for _, attr := range node.Attr {
		if strings.EqualFold(attr.Key, name) {
			return strings.TrimSpace(attr.Val)
		}
	}
	return ""
}

func collectRawText(node *nethtml.Node) string {
	if node == nil {
		return ""
	}
	if node.Type == nethtml.TextNode {
		return node.Data
	}
	var b strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		b.WriteString(collectRawText(child))
	}
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
