package article

import (
	"strings"

	nethtml "golang.org/x/net/html"
)

type tableRow struct {
	cells  []*nethtml.Node
	header bool
}

// table renders rows as pipe-separated lines with a rule after the
// header row. Header detection is structural: a row made entirely of
// th cells.
func (r bodyRenderer) table(node *nethtml.Node) []string {
	rows := collectTableRows(node)
	if len(rows) == 0 {
		return nil
	}

	sep := tableFrame.Render("|")
	var lines []string
	for i, row := range rows {
		cells := make([]string, 0, len(row.cells))
		for _, cell := range row.cells {
			text := collapseWhitespace(r.inlineChildren(cell))
			if row.header {
				text = tableHeading.Render(text)
			}
			cells = append(cells, text)
		}
		lines = append(lines, sep+" "+strings.Join(cells, " "+sep+" ")+" "+sep)
		if i == 0 && row.header && len(rows) > 1 {
			rule := make([]string, len(cells))
			for j := range rule {
				rule[j] = "---"
			}
			lines = append(lines, sep+" "+strings.Join(rule, " "+sep+" ")+" "+sep)
		}
	}
	return lines
}

// collectTableRows walks the table through its optional section
// elements and gathers non-empty rows in document order.
func collectTableRows(node *nethtml.Node) []tableRow {
	var rows []tableRow
	var walk func(*nethtml.Node)
	walk = func(n *nethtml.Node) {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != nethtml.ElementNode {
				continue
			}
			switch strings.ToLower(child.Data) {
			case "tr":
				if row := rowFromNode(child); len(row.cells) > 0 {
					rows = append(rows, row)
				}
			case "thead", "tbody", "tfoot":
				walk(child)
			}
		}
	}
	walk(node)
	return rows
}

func rowFromNode(tr *nethtml.Node) tableRow {
	row := tableRow{header: true}
	for child := tr.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != nethtml.ElementNode {
			continue
		}
		switch strings.ToLower(child.Data) {
		case "th":
			row.cells = append(row.cells, child)
		case "td":
			row.cells = append(row.cells, child)
			row.header = false
		}
	}
	return row
}
