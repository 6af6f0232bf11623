package html2latex

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// parseHTML wraps golang.org/x/net/html, the external HTML5
// tokenizer/parser this package treats as a collaborator.
// html.Parse/html.ParseFragment implement the WHATWG tree construction
// algorithm's error-recovery behavior faithfully but do not surface a
// per-defect diagnostic stream of their own: malformed markup is silently
// repaired. reportMissingAttributeValues below supplements that with the
// one defect class this package reports on its own: an attribute with no
// value before '>'.
func parseHTML(s *sink, input string, fragment bool) *HtmlDocument {
	reportMissingAttributeValues(s, input)

	if fragment {
		ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
		nodes, err := html.ParseFragment(strings.NewReader(input), ctx)
		if err != nil {
			s.emit(DiagnosticEvent{
				Code:     "fragment-parse-failed",
				Category: CategoryParse,
				Severity: SeverityError,
				Message:  err.Error(),
			})
			return &HtmlDocument{}
		}
		doc := &HtmlDocument{}
		for _, n := range nodes {
			if child := convertHTMLNode(n); child != nil {
				doc.Children = append(doc.Children, child)
			}
		}
		return doc
	}

	root, err := html.Parse(strings.NewReader(input))
	if err != nil {
		s.emit(DiagnosticEvent{
			Code:     "document-parse-failed",
			Category: CategoryParse,
			Severity: SeverityError,
			Message:  err.Error(),
		})
		return &HtmlDocument{}
	}

	doc := &HtmlDocument{}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.DoctypeNode:
				doc.Doctype = c.Data
			case html.ElementNode:
				if child := convertHTMLNode(c); child != nil {
					doc.Children = append(doc.Children, child)
				}
			default:
				walk(c)
			}
		}
	}
	walk(root)
	return doc
}

// convertHTMLNode converts a single golang.org/x/net/html node (and its
// subtree) into an HtmlNode. Comments and processing instructions are
// filtered out here and never appear in the AST.
func convertHTMLNode(n *html.Node) HtmlNode {
	switch n.Type {
	case html.TextNode:
		return &HtmlText{Text: n.Data}
	case html.ElementNode:
		el := &HtmlElement{Tag: strings.ToLower(n.Data)}
		for _, a := range n.Attr {
			el.Attrs = append(el.Attrs, HtmlAttr{Name: strings.ToLower(a.Key), Value: a.Val})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := convertHTMLNode(c); child != nil {
				el.Children = append(el.Children, child)
			}
		}
		return el
	default:
		// CommentNode, DoctypeNode, DocumentNode: discarded at this boundary.
		return nil
	}
}

// missingAttrValueRE matches an attribute name immediately followed by `=>`
// with no quoted or bare value in between, e.g. `id=` in `<div id=>`.
var missingAttrValueRE = regexp.MustCompile(`[a-zA-Z_:][-a-zA-Z0-9_:.]*=>`)

func reportMissingAttributeValues(s *sink, input string) {
	for _, loc := range missingAttrValueRE.FindAllStringIndex(input, -1) {
		line, col := lineColAt(input, loc[0])
		s.emit(DiagnosticEvent{
			Code:     "missing-attribute-value",
			Category: CategoryParse,
			Severity: SeverityError,
			Message:  "attribute has no value before '>'",
			Location: &DiagnosticLocation{Line: line, Column: col},
		})
	}
}

// lineColAt returns the 1-based line and column of byte offset idx in s.
func lineColAt(s string, idx int) (line, col int) {
	line, col = 1, 1
	if idx > len(s) {
		idx = len(s)
	}
	for i := 0; i < idx; i++ {
		if s[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
