package html2latex

// transformDocument converts an HTML AST to a LaTeX AST. It is a total
// function: every node produces zero or more LaTeX nodes, and unknown tags
// fall through to "emit children".
func transformDocument(s *sink, doc *HtmlDocument) *LatexDocumentAst {
	return &LatexDocumentAst{
		Body: transformChildren(s, doc.Children, 0, 0),
	}
}

// transformChildren transforms an ordered sequence of HTML nodes, carrying
// the two recursion parameters threaded down the tree: listLevel (for
// ordered-list counter naming) and quoteLevel (for <q> nesting).
func transformChildren(s *sink, nodes []HtmlNode, listLevel, quoteLevel int) []LatexNode {
	out := make([]LatexNode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, transformNode(s, n, listLevel, quoteLevel)...)
	}
	return out
}

func transformNode(s *sink, n HtmlNode, listLevel, quoteLevel int) []LatexNode {
	switch v := n.(type) {
	case *HtmlText:
		return []LatexNode{&LatexText{Text: v.Text}}
	case *HtmlElement:
		return transformElement(s, v, listLevel, quoteLevel)
	default:
		return nil
	}
}

func transformElement(s *sink, el *HtmlElement, listLevel, quoteLevel int) []LatexNode {
	// Math containers are identified independent of tag name (a <span>,
	// <div>, or <p> can all carry a math payload), so this check runs
	// before any tag-keyed dispatch below.
	if isMathContainer(el) {
		return transformMath(el)
	}

	tag := el.Tag

	if cmd, ok := inlineCommands[tag]; ok {
		children := transformChildren(s, el.Children, listLevel, quoteLevel)
		return []LatexNode{&LatexCommand{Name: cmd, Args: []*LatexGroup{group(children...)}}}
	}

	if hd, ok := headingCommands[tag]; ok {
		children := transformChildren(s, el.Children, listLevel, quoteLevel)
		return []LatexNode{&LatexCommand{Name: hd, Args: []*LatexGroup{group(children...)}}}
	}

	if inlinePassthrough[tag] {
		return transformChildren(s, el.Children, listLevel, quoteLevel)
	}

	if blockPassthrough[tag] {
		return transformChildren(s, el.Children, listLevel, quoteLevel)
	}

	switch tag {
	case "small":
		children := transformChildren(s, el.Children, listLevel, quoteLevel)
		return wrapRaw(`{\small `, children, `}`)

	case "big":
		children := transformChildren(s, el.Children, listLevel, quoteLevel)
		return wrapRaw(`{\large `, children, `}`)

	case "mark":
		children := transformChildren(s, el.Children, listLevel, quoteLevel)
		return []LatexNode{&LatexCommand{
			Name: "colorbox",
			Args: []*LatexGroup{textGroup("yellow"), group(children...)},
		}}

	case "center":
		children := transformChildren(s, el.Children, listLevel, quoteLevel)
		return []LatexNode{&LatexEnvironment{Name: "center", Children: children}}

	case "br":
		return []LatexNode{&LatexCommand{Name: "newline"}}

	case "q":
		children := transformChildren(s, el.Children, listLevel, quoteLevel+1)
		if quoteLevel == 0 {
			return wrapRaw("``", children, "''")
		}
		return wrapRaw("`", children, "'")

	case "p", "div":
		children := transformChildren(s, el.Children, listLevel, quoteLevel)
		if align, ok := textAlign(el); ok {
			if env, ok := alignEnvironment(align); ok {
				return []LatexNode{&LatexEnvironment{Name: env, Children: children}}
			}
		}
		return append(children, &LatexCommand{Name: "par"})

	case "hr":
		return []LatexNode{&LatexCommand{Name: "hrule"}}

	case "a":
		return transformAnchor(s, el, listLevel, quoteLevel)

	case "img":
		return transformImage(s, el)

	case "blockquote":
		children := transformChildren(s, el.Children, listLevel, quoteLevel)
		return []LatexNode{&LatexEnvironment{Name: "quote", Children: children}}

	case "pre":
		return []LatexNode{&LatexEnvironment{
			Name:     "verbatim",
			Children: []LatexNode{&LatexRaw{Value: extractText(el)}},
		}}

	case "table":
		return transformTable(s, el, listLevel, quoteLevel)

	case "ul", "ol":
		return transformList(s, el, listLevel, quoteLevel)

	case "dl":
		return transformDescriptionList(s, el, listLevel, quoteLevel)

	case "figure":
		return transformFigure(s, el, listLevel, quoteLevel)

	case "figcaption":
		// A figcaption outside any <figure> renders as its children;
		// inside a figure it is intercepted by transformFigure before
		// reaching this dispatch.
		return transformChildren(s, el.Children, listLevel, quoteLevel)

	default:
		// Unknown/unhandled tags are transparent: emit children, no
		// diagnostic.
		return transformChildren(s, el.Children, listLevel, quoteLevel)
	}
}

func transformAnchor(s *sink, el *HtmlElement, listLevel, quoteLevel int) []LatexNode {
	href, hasHref := el.Attr("href")
	children := transformChildren(s, el.Children, listLevel, quoteLevel)
	if !hasHref {
		return children
	}
	if len(children) == 0 {
		return []LatexNode{&LatexCommand{Name: "url", Args: []*LatexGroup{textGroup(href)}}}
	}
	return []LatexNode{&LatexCommand{
		Name: "href",
		Args: []*LatexGroup{textGroup(href), group(children...)},
	}}
}

func transformImage(s *sink, el *HtmlElement) []LatexNode {
	src, hasSrc := el.Attr("src")
	if !hasSrc {
		if alt, ok := el.Attr("alt"); ok && alt != "" {
			return []LatexNode{&LatexText{Text: alt}}
		}
		s.emit(DiagnosticEvent{
			Code:     "missing-image-source",
			Category: CategoryAsset,
			Severity: SeverityWarn,
			Message:  "img element has no src and no alt text; omitted",
		})
		return nil
	}
	return []LatexNode{&LatexCommand{
		Name:    "includegraphics",
		Options: imgDimensionOptions(el),
		Args:    []*LatexGroup{textGroup(src)},
	}}
}

func alignEnvironment(textAlignValue string) (string, bool) {
	switch textAlignValue {
	case "left":
		return "flushleft", true
	case "center":
		return "center", true
	case "right":
		return "flushright", true
	}
	return "", false
}

// wrapRaw prepends and appends a LatexRaw around children, without
// mutating the input slice.
func wrapRaw(open string, children []LatexNode, close string) []LatexNode {
	out := make([]LatexNode, 0, len(children)+2)
	out = append(out, &LatexRaw{Value: open})
	out = append(out, children...)
	out = append(out, &LatexRaw{Value: close})
	return out
}

// extractText concatenates the text content of a node's subtree, ignoring
// markup, used by <pre>, <dt> label capture, and math payload fallback.
func extractText(n HtmlNode) string {
	switch v := n.(type) {
	case *HtmlText:
		return v.Text
	case *HtmlElement:
		var sb []byte
		for _, c := range v.Children {
			sb = append(sb, extractText(c)...)
		}
		return string(sb)
	default:
		return ""
	}
}
