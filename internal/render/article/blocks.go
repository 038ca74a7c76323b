package article

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	nethtml "golang.org/x/net/html"
)

// blockTags are rendered as their own chunk with a blank line around
// it. Everything else is inline and folds into the surrounding run.
var blockTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"p": true, "div": true, "section": true, "article": true,
	"main": true, "header": true, "footer": true, "aside": true, "nav": true,
	"blockquote": true, "ul": true, "ol": true, "li": true,
	"table": true, "thead": true, "tbody": true, "tfoot": true,
	"tr": true, "td": true, "th": true,
	"img": true, "pre": true, "hr": true,
	"figure": true, "figcaption": true, "caption": true,
}

func isBlock(tag string) bool {
	return blockTags[strings.ToLower(tag)]
}

// renderNodes walks siblings, gathering inline content between block
// elements and flushing each run as one wrapped paragraph.
func (r bodyRenderer) renderNodes(nodes []*nethtml.Node, depth int) []string {
	var lines []string
	run := make([]string, 0, 4)

	flush := func() {
		text := collapseWhitespace(strings.Join(run, " "))
		run = run[:0]
		if text != "" {
			lines = joinBlock(lines, wrapText(text, r.width))
		}
	}

	for _, node := range nodes {
		switch node.Type {
		case nethtml.TextNode:
			run = append(run, node.Data)
		case nethtml.ElementNode:
			if isBlock(node.Data) {
				flush()
				lines = joinBlock(lines, r.renderBlock(node, depth))
				continue
			}
			run = append(run, r.inlineNode(node))
		}
	}
	flush()
	return trimBlankLines(lines)
}

func (r bodyRenderer) renderBlock(node *nethtml.Node, depth int) []string {
	tag := strings.ToLower(node.Data)
	switch tag {
	case "script", "style", "noscript":
		return nil
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return r.heading(int(tag[1]-'0'), node)
	case "blockquote":
		return r.blockquote(node, depth)
	case "ul":
		return r.list(node, false, depth+1)
	case "ol":
		return r.list(node, true, depth+1)
	case "li":
		// Stray item outside a list.
		return r.listItem(node, depth, "- ")
	case "table":
		return r.table(node)
	case "figcaption", "caption":
		return r.caption(node)
	case "img":
		if r.images == ImageModeNone {
			return nil
		}
		return r.imageLabel(node)
	case "pre":
		return preformatted(node)
	case "hr":
		return []string{strings.Repeat("-", min(max(r.width, 3), 24))}
	default:
		// Generic container (p, div, figure, section...): recurse when
		// it holds blocks, otherwise it is one paragraph.
		if hasBlockChild(node) {
			return r.renderNodes(elementChildren(node), depth)
		}
		if text := collapseWhitespace(r.inlineChildren(node)); text != "" {
			return wrapText(text, r.width)
		}
		return r.renderNodes(elementChildren(node), depth)
	}
}

func (r bodyRenderer) heading(level int, node *nethtml.Node) []string {
	if level < 1 {
		level = 1
	}
	if level > len(headingBars) {
		level = len(headingBars)
	}
	bar := headingBars[level-1].Render("▌") + strings.Repeat(" ", max(1, level-1))
	text := collapseWhitespace(r.inlineChildren(node))
	return styleLines(
		prefixWrap(text, r.width, bar, strings.Repeat(" ", visibleLen(bar))),
		headingText,
	)
}

func (r bodyRenderer) blockquote(node *nethtml.Node, depth int) []string {
	inner := r.renderNodes(elementChildren(node), depth)
	if len(inner) == 0 {
		text := collapseWhitespace(r.inlineChildren(node))
		if text == "" {
			return nil
		}
		inner = wrapText(text, max(1, r.width-2))
	}
	bar := quoteBar.Render("│ ")
	out := make([]string, 0, len(inner))
	for _, line := range inner {
		if strings.TrimSpace(line) == "" {
			out = append(out, "")
			continue
		}
		out = append(out, bar+quoteText.Render(line))
	}
	return out
}

func (r bodyRenderer) list(node *nethtml.Node, ordered bool, depth int) []string {
	var lines []string
	index := 0
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != nethtml.ElementNode || !strings.EqualFold(child.Data, "li") {
			continue
		}
		index++
		marker := bulletMarker(depth)
		if ordered {
			marker = fmt.Sprintf("%d. ", index)
		}
		lines = joinBlock(lines, r.listItem(child, depth, marker))
	}
	return trimBlankLines(lines)
}

// listItem renders the item's own text under its marker, then any
// nested lists indented one level deeper.
func (r bodyRenderer) listItem(node *nethtml.Node, depth int, marker string) []string {
	indent := strings.Repeat("  ", max(0, depth-1))
	var lines []string

	own := make([]string, 0, 4)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == nethtml.ElementNode {
			if tag := strings.ToLower(child.Data); tag == "ul" || tag == "ol" {
				continue
			}
		}
		own = append(own, r.inlineNode(child))
	}
	if text := collapseWhitespace(strings.Join(own, " ")); text != "" {
		rest := indent + strings.Repeat(" ", visibleLen(marker))
		lines = append(lines, prefixWrap(text, r.width, indent+marker, rest)...)
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != nethtml.ElementNode {
			continue
		}
		switch strings.ToLower(child.Data) {
		case "ul":
			lines = joinBlock(lines, r.list(child, false, depth+1))
		case "ol":
			lines = joinBlock(lines, r.list(child, true, depth+1))
		}
	}
	return trimBlankLines(lines)
}

func (r bodyRenderer) caption(node *nethtml.Node) []string {
	text := collapseWhitespace(r.inlineChildren(node))
	return styleLines(prefixWrap(text, r.width, "— ", "  "), captionText)
}

func (r bodyRenderer) imageLabel(node *nethtml.Node) []string {
	label := imageTag.Render("◌◌◌ Image")
	text := collapseWhitespace(nodeAttr(node, "alt"))
	if text == "" {
		text = collapseWhitespace(nodeAttr(node, "title"))
	}
	if text != "" {
		label += " " + imageAlt.Render(text)
	}
	return wrapText(label, r.width)
}

func preformatted(node *nethtml.Node) []string {
	text := strings.ReplaceAll(collectRawText(node), "\r\n", "\n")
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			out = append(out, "")
			continue
		}
		out = append(out, "    "+line)
	}
	return trimBlankLines(out)
}

// prefixWrap wraps text with a hanging indent: the first line under
// firstPrefix, continuations under restPrefix. Prefix widths are
// measured visibly because the heading bar carries styling.
func prefixWrap(text string, width int, firstPrefix, restPrefix string) []string {
	text = collapseWhitespace(text)
	if text == "" {
		return nil
	}
	if width < 1 {
		return []string{firstPrefix + text}
	}
	firstWidth := max(1, width-visibleLen(firstPrefix))
	restWidth := max(1, width-visibleLen(restPrefix))

	var out []string
	first := true
	for _, p := range strings.Split(text, "\n") {
		p = collapseWhitespace(p)
		if p == "" {
			if len(out) > 0 && out[len(out)-1] != "" {
				out = append(out, "")
			}
			continue
		}
		lineWidth := restWidth
		if first {
			lineWidth = firstWidth
		}
		for i, line := range wrapText(p, lineWidth) {
			if first && i == 0 {
				out = append(out, firstPrefix+line)
				continue
			}
			out = append(out, restPrefix+line)
		}
		first = false
	}
	return trimBlankLines(out)
}

// joinBlock appends a block with a separating blank line.
func joinBlock(lines, block []string) []string {
	if len(block) == 0 {
		return lines
	}
	if len(lines) > 0 && lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return append(lines, block...)
}

func bulletMarker(depth int) string {
	switch depth {
	case 1:
		return "• "
	case 2:
		return "◦ "
	case 3:
		return "▪ "
	default:
		return "▫ "
	}
}

func styleLines(lines []string, style lipgloss.Style) []string {
	if len(lines) == 0 {
		return nil
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			out[i] = line
			continue
		}
		out[i] = style.Render(line)
	}
	return out
}

func hasBlockChild(node *nethtml.Node) bool {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == nethtml.ElementNode && isBlock(child.Data) {
			return true
		}
	}
	return false
}
