package html2latex

import (
	"fmt"
	"strings"
)

// cellPlacement is one cell's position in the materialized table grid,
// built by a two-pass layout algorithm: one pass to learn column
// alignments, one to render.
type cellPlacement struct {
	el      *HtmlElement
	col     int
	colspan int
	rowspan int
}

func transformTable(s *sink, table *HtmlElement, listLevel, quoteLevel int) []LatexNode {
	rows := collectTableRows(table)
	if len(rows) == 0 {
		return nil
	}
	maxColumns := tableMaxColumns(rows)
	if maxColumns <= 0 {
		return nil
	}

	grid := buildPlacementGrid(rows)
	columnSpec := tableColumnSpec(grid, maxColumns)
	renderedRows := renderTableRows(s, rows, maxColumns, columnSpec, listLevel, quoteLevel)

	tabularChildren := make([]LatexNode, 0, len(renderedRows))
	for _, r := range renderedRows {
		tabularChildren = append(tabularChildren, &LatexRaw{Value: r})
	}
	tabular := &LatexEnvironment{
		Name:     "tabular",
		Args:     []*LatexGroup{textGroup(columnSpec)},
		Children: tabularChildren,
	}

	caption := directChildElement(table, "caption")
	if caption == nil {
		return []LatexNode{tabular}
	}

	captionChildren := replaceParWithSpace(transformChildren(s, caption.Children, listLevel, quoteLevel))
	captionCmd := &LatexCommand{Name: "caption", Args: []*LatexGroup{group(captionChildren...)}}
	return []LatexNode{&LatexEnvironment{
		Name:     "table",
		Children: []LatexNode{captionCmd, tabular},
	}}
}

func directChildElement(el *HtmlElement, tag string) *HtmlElement {
	for _, c := range el.Children {
		if e, ok := c.(*HtmlElement); ok && e.Tag == tag {
			return e
		}
	}
	return nil
}

// collectTableRows flattens thead/tbody/tfoot into a single row sequence.
func collectTableRows(table *HtmlElement) []*HtmlElement {
	var rows []*HtmlElement
	for _, c := range table.Children {
		el, ok := c.(*HtmlElement)
		if !ok {
			continue
		}
		switch el.Tag {
		case "thead", "tbody", "tfoot":
			for _, gc := range el.Children {
				if tr, ok := gc.(*HtmlElement); ok && tr.Tag == "tr" {
					rows = append(rows, tr)
				}
			}
		case "tr":
			rows = append(rows, el)
		}
	}
	return rows
}

// cellChildren returns a row's direct td/th children in source order.
func cellChildren(row *HtmlElement) []*HtmlElement {
	var out []*HtmlElement
	for _, c := range row.Children {
		if el, ok := c.(*HtmlElement); ok && (el.Tag == "td" || el.Tag == "th") {
			out = append(out, el)
		}
	}
	return out
}

// parseSpanAttr reads a colspan/rowspan attribute, defaulting to 1 for a
// missing or non-positive-integer value.
func parseSpanAttr(el *HtmlElement, name string) int {
	v, ok := el.Attr(name)
	if !ok {
		return 1
	}
	n := 0
	for _, r := range v {
		if r < '0' || r > '9' {
			return 1
		}
		n = n*10 + int(r-'0')
	}
	if n <= 0 {
		return 1
	}
	return n
}

// tableMaxColumns is the maximum, over rows, of the sum of colspan across
// that row's own cells.
func tableMaxColumns(rows []*HtmlElement) int {
	max := 0
	for _, row := range rows {
		sum := 0
		for _, cell := range cellChildren(row) {
			sum += parseSpanAttr(cell, "colspan")
		}
		if sum > max {
			max = sum
		}
	}
	return max
}

// buildPlacementGrid is pass one: it walks every row tracking occupied
// columns from earlier rowspans, to learn each cell's real column index
// without rendering anything. Pass two (renderTableRows) repeats the same
// occupied-slot walk independently to produce output.
func buildPlacementGrid(rows []*HtmlElement) [][]cellPlacement {
	occupied := map[int]int{}
	grid := make([][]cellPlacement, len(rows))
	for ri, row := range rows {
		var placements []cellPlacement
		col := 0
		for _, cell := range cellChildren(row) {
			for occupied[col] > 0 {
				col++
			}
			colspan := parseSpanAttr(cell, "colspan")
			rowspan := parseSpanAttr(cell, "rowspan")
			placements = append(placements, cellPlacement{el: cell, col: col, colspan: colspan, rowspan: rowspan})
			if rowspan > 1 {
				// rowspan, not rowspan-1: the end-of-row decrement below
				// also runs for this row, leaving rowspan-1 further rows.
				for k := 0; k < colspan; k++ {
					occupied[col+k] += rowspan
				}
			}
			col += colspan
		}
		grid[ri] = placements
		for c := range occupied {
			if occupied[c] > 0 {
				occupied[c]--
			}
		}
	}
	return grid
}

// tableColumnSpec is the per-column alignment string, tallied from
// non-colspan-spanning cells, ties broken l > c > r.
func tableColumnSpec(grid [][]cellPlacement, maxColumns int) string {
	tally := make([][3]int, maxColumns)
	for _, row := range grid {
		for _, p := range row {
			if p.colspan != 1 || p.col >= maxColumns {
				continue
			}
			switch tableCellAlignChar(p.el) {
			case "l":
				tally[p.col][0]++
			case "c":
				tally[p.col][1]++
			case "r":
				tally[p.col][2]++
			}
		}
	}
	spec := make([]byte, maxColumns)
	for i, t := range tally {
		spec[i] = pickAlign(t)
	}
	return string(spec)
}

func pickAlign(t [3]int) byte {
	best, bestCount := 0, t[0]
	if t[1] > bestCount {
		best, bestCount = 1, t[1]
	}
	if t[2] > bestCount {
		best, bestCount = 2, t[2]
	}
	switch best {
	case 0:
		return 'l'
	case 1:
		return 'c'
	default:
		return 'r'
	}
}

// renderTableRows is pass two: it re-walks the occupied-slot bookkeeping
// while rendering, producing one `… \\` string per row.
func renderTableRows(s *sink, rows []*HtmlElement, maxColumns int, columnSpec string, listLevel, quoteLevel int) []string {
	occupied := make([]int, maxColumns)
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := cellChildren(row)
		cellIdx := 0
		parts := make([]string, 0, maxColumns)
		col := 0
		for col < maxColumns {
			if occupied[col] > 0 {
				parts = append(parts, "")
				occupied[col]--
				col++
				continue
			}
			if cellIdx >= len(cells) {
				parts = append(parts, "")
				col++
				continue
			}
			cell := cells[cellIdx]
			colspan := parseSpanAttr(cell, "colspan")
			if col+colspan > maxColumns {
				colspan = maxColumns - col
			}
			rowspan := parseSpanAttr(cell, "rowspan")
			align := string(columnSpec[col])
			content := renderTableCellContent(s, cell, listLevel, quoteLevel)
			parts = append(parts, wrapCellContent(content, colspan, rowspan, align))
			if rowspan > 1 {
				for k := 0; k < colspan; k++ {
					occupied[col+k] = rowspan - 1
				}
			}
			col += colspan
			cellIdx++
		}
		row := strings.TrimRight(strings.Join(parts, " & "), " ")
		out = append(out, row+` \\`)
	}
	return out
}

// renderTableCellContent serializes one cell's converted children to a
// LaTeX string for embedding as a LatexRaw table row. A <th> wraps its
// content in \textbf{…}.
func renderTableCellContent(s *sink, cell *HtmlElement, listLevel, quoteLevel int) string {
	children := transformChildren(s, cell.Children, listLevel, quoteLevel)
	if cell.Tag == "th" {
		children = []LatexNode{&LatexCommand{Name: "textbf", Args: []*LatexGroup{group(children...)}}}
	}
	return serializeNodes(children, false, false)
}

func wrapCellContent(content string, colspan, rowspan int, align string) string {
	switch {
	case colspan > 1 && rowspan > 1:
		return fmt.Sprintf(`\multicolumn{%d}{%s}{\multirow{%d}{*}{%s}}`, colspan, align, rowspan, content)
	case colspan > 1:
		return fmt.Sprintf(`\multicolumn{%d}{%s}{%s}`, colspan, align, content)
	case rowspan > 1:
		return fmt.Sprintf(`\multirow{%d}{*}{%s}`, rowspan, content)
	default:
		return content
	}
}

// replaceParWithSpace turns a trailing-\par command (emitted whenever a
// <p>/<div> child is transformed) into a plain separating space, since a
// \caption{…} argument cannot contain \par.
func replaceParWithSpace(nodes []LatexNode) []LatexNode {
	out := make([]LatexNode, 0, len(nodes))
	for _, n := range nodes {
		if cmd, ok := n.(*LatexCommand); ok && cmd.Name == "par" && len(cmd.Args) == 0 {
			out = append(out, &LatexText{Text: " "})
			continue
		}
		out = append(out, n)
	}
	return out
}
