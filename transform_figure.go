package html2latex

import "strings"

// transformFigure converts a <figure>: its non-figcaption children become
// the centered body, and a <figcaption> becomes a trailing \caption{…}. A
// figure with no children at all (no content, no caption) produces
// nothing; a figure containing only an <img> still emits \includegraphics,
// since emptiness here means "no child nodes", not "no visible text".
func transformFigure(s *sink, el *HtmlElement, listLevel, quoteLevel int) []LatexNode {
	if len(el.Children) == 0 {
		return nil
	}

	caption := directChildElement(el, "figcaption")

	var contentChildren []HtmlNode
	for _, c := range el.Children {
		if e, ok := c.(*HtmlElement); ok && caption != nil && e == caption {
			continue
		}
		contentChildren = append(contentChildren, c)
	}

	body := []LatexNode{&LatexCommand{Name: "centering"}}
	body = append(body, transformChildren(s, contentChildren, listLevel, quoteLevel)...)

	if caption != nil {
		captionChildren := trimTrailingSpace(replaceParWithSpace(transformChildren(s, caption.Children, listLevel, quoteLevel)))
		if len(captionChildren) > 0 {
			body = append(body, &LatexCommand{Name: "caption", Args: []*LatexGroup{group(captionChildren...)}})
		}
	}

	return []LatexNode{&LatexEnvironment{Name: "figure", Children: body}}
}

// trimTrailingSpace strips trailing ASCII spaces from the final text node,
// cleaning up the space a replaced trailing \par leaves behind.
func trimTrailingSpace(nodes []LatexNode) []LatexNode {
	if len(nodes) == 0 {
		return nodes
	}
	if t, ok := nodes[len(nodes)-1].(*LatexText); ok {
		nodes[len(nodes)-1] = &LatexText{Text: strings.TrimRight(t.Text, " ")}
	}
	return nodes
}
