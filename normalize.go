package html2latex

import (
	"regexp"
	"strings"
)

// defaultPreserveWhitespaceTags is the default set of tags whose subtree
// is passed through normalization untouched.
var defaultPreserveWhitespaceTags = map[string]bool{"pre": true}

var wsRunRE = regexp.MustCompile(`[ \t\r\n\f]+`)

// normalizeDocument is a pure, whitespace-aware rewrite that preserves the
// semantic shape of the tree while collapsing and trimming whitespace per
// the HTML rendering rules. Calling it twice on the same input yields the
// same output (idempotence is a tested property).
func normalizeDocument(doc *HtmlDocument, preserve map[string]bool) *HtmlDocument {
	if preserve == nil {
		preserve = defaultPreserveWhitespaceTags
	}
	return &HtmlDocument{
		Doctype:  doc.Doctype,
		Children: normalizeChildren(doc.Children, true, preserve),
	}
}

// normalizeChildren applies rules 1-7 to one container's children.
// containerIsBlock says whether the enclosing element (or the document
// root) is a block container, which gates rules 4 and 5.
func normalizeChildren(children []HtmlNode, containerIsBlock bool, preserve map[string]bool) []HtmlNode {
	collapsed := make([]HtmlNode, 0, len(children))
	for _, c := range children {
		collapsed = append(collapsed, normalizeNode(c, preserve))
	}

	filtered := filterWhitespaceSiblings(collapsed)

	if containerIsBlock {
		filtered = stripBlockBoundary(filtered)
	}

	return mergeAdjacentText(filtered)
}

// normalizeNode normalizes a single node. An element whose tag is in
// preserve is passed through with its subtree untouched (rule 6); every
// other element recurses into normalizeChildren with its own block-ness
// determining the child container's rules.
func normalizeNode(n HtmlNode, preserve map[string]bool) HtmlNode {
	switch v := n.(type) {
	case *HtmlText:
		return &HtmlText{Text: wsRunRE.ReplaceAllString(v.Text, " ")}
	case *HtmlElement:
		if preserve[v.Tag] {
			return v
		}
		return &HtmlElement{
			Tag:      v.Tag,
			Attrs:    v.Attrs,
			Children: normalizeChildren(v.Children, isBlockTag(v.Tag), preserve),
		}
	default:
		return n
	}
}

// filterWhitespaceSiblings implements rules 2 and 3: whitespace-only text
// between two block-level siblings is dropped; otherwise it is preserved
// as a single space. A whitespace-only text node at either end of the
// slice (no sibling on that side) is left for stripBlockBoundary to decide.
func filterWhitespaceSiblings(nodes []HtmlNode) []HtmlNode {
	out := make([]HtmlNode, 0, len(nodes))
	for i, n := range nodes {
		t, ok := n.(*HtmlText)
		if !ok || t.Text != " " {
			out = append(out, n)
			continue
		}
		if i == 0 || i == len(nodes)-1 {
			out = append(out, n)
			continue
		}
		prevBlock := siblingIsBlock(nodes[i-1])
		nextBlock := siblingIsBlock(nodes[i+1])
		if prevBlock && nextBlock {
			continue
		}
		out = append(out, n)
	}
	return out
}

func siblingIsBlock(n HtmlNode) bool {
	if el, ok := n.(*HtmlElement); ok {
		return isBlockTag(el.Tag)
	}
	return false
}

// stripBlockBoundary implements rules 4 and 5 for a block container:
// leading/trailing whitespace-only text and leading/trailing <br> children
// are dropped, repeating until neither matches at either end; then any
// leading or trailing single space left on the surviving boundary text
// nodes is trimmed, so mixed-content text like " Hello World " loses its
// outer padding even though it isn't whitespace-only itself.
func stripBlockBoundary(nodes []HtmlNode) []HtmlNode {
	start := 0
	for start < len(nodes) && isBoundaryDroppable(nodes[start]) {
		start++
	}
	end := len(nodes)
	for end > start && isBoundaryDroppable(nodes[end-1]) {
		end--
	}

	out := append([]HtmlNode(nil), nodes[start:end]...)
	if len(out) == 0 {
		return out
	}
	if t, ok := out[0].(*HtmlText); ok {
		out[0] = &HtmlText{Text: strings.TrimPrefix(t.Text, " ")}
	}
	if t, ok := out[len(out)-1].(*HtmlText); ok {
		out[len(out)-1] = &HtmlText{Text: strings.TrimSuffix(t.Text, " ")}
	}
	return out
}

func isBoundaryDroppable(n HtmlNode) bool {
	switch v := n.(type) {
	case *HtmlText:
		return v.Text == " " || v.Text == ""
	case *HtmlElement:
		return v.Tag == "br"
	}
	return false
}

// mergeAdjacentText implements rule 7.
func mergeAdjacentText(nodes []HtmlNode) []HtmlNode {
	out := make([]HtmlNode, 0, len(nodes))
	for _, n := range nodes {
		if t, ok := n.(*HtmlText); ok && len(out) > 0 {
			if prev, ok := out[len(out)-1].(*HtmlText); ok {
				out[len(out)-1] = &HtmlText{Text: prev.Text + t.Text}
				continue
			}
		}
		out = append(out, n)
	}
	return out
}
