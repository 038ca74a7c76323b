package article

import (
	"html"
	"strings"

	nethtml "golang.org/x/net/html"
)

// inlineChildren flattens a node's children into one text run.
func (r bodyRenderer) inlineChildren(node *nethtml.Node) string {
	var b strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		b.WriteString(r.inlineNode(child))
	}
	return b.String()
}

func (r bodyRenderer) inlineNode(node *nethtml.Node) string {
	switch node.Type {
	case nethtml.TextNode:
		return node.Data
	case nethtml.ElementNode:
	default:
		return ""
	}

	switch strings.ToLower(node.Data) {
	case "a":
		return r.anchor(node)
	case "code", "kbd", "samp":
		text := strings.TrimSpace(r.inlineChildren(node))
		if text == "" {
			return ""
		}
		return inlineCode.Render("`" + text + "`")
	case "q":
		return "“" + strings.TrimSpace(r.inlineChildren(node)) + "”"
	case "br":
		return " "
	case "img", "script", "style", "noscript":
		return ""
	default:
		return r.inlineChildren(node)
	}
}

// anchor renders the link text followed by its target. Anchors whose
// text is the target itself keep a single copy; fragment and
// javascript targets are dropped.
func (r bodyRenderer) anchor(node *nethtml.Node) string {
	text := strings.Join(strings.Fields(r.inlineChildren(node)), " ")
	href := nodeAttr(node, "href")
	if href == "" || strings.HasPrefix(href, "#") ||
		strings.HasPrefix(strings.ToLower(href), "javascript:") {
		return text
	}
	if text == "" || strings.EqualFold(text, href) {
		return linkTarget.Render(href)
	}
	return text + " (" + linkTarget.Render(href) + ")"
}

// punctuationJoins tightens the stray space that joining inline
// fragments leaves before punctuation.
var punctuationJoins = strings.NewReplacer(
	" .", ".", " ,", ",", " ;", ";",
	" !", "!", " ?", "?", " )", ")", "( ", "(",
)

func collapseWhitespace(s string) string {
	s = html.UnescapeString(s)
	s = strings.Join(strings.Fields(s), " ")
	return punctuationJoins.Replace(s)
}
