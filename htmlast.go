package html2latex

import "strings"

// HtmlNode is the sum of HtmlText and HtmlElement. The variant set is
// closed: the only implementations live in this file, and every matcher in
// the pipeline is written as an exhaustive type switch rather than a
// virtual dispatch, so adding a new variant is a compiler-checkable change.
type HtmlNode interface {
	htmlNode()
}

// HtmlText is a text leaf. Text is the raw, unescaped content as seen by
// the parser; HTML entity decoding already happened in the parser adapter.
type HtmlText struct {
	Text string
}

func (*HtmlText) htmlNode() {}

// HtmlAttr is a single attribute. Value is preserved verbatim. Name is
// lowercased by the parser adapter (convertHTMLNode), and Attr/HasAttr
// below lowercase the requested name, so lookups are case-insensitive.
type HtmlAttr struct {
	Name  string
	Value string
}

// HtmlElement is an element node. Tag is always ASCII-lowercased. Attrs
// preserves source order; attribute names are unique per element and are
// also lowercased.
type HtmlElement struct {
	Tag      string
	Attrs    []HtmlAttr
	Children []HtmlNode
}

func (*HtmlElement) htmlNode() {}

// Attr returns the value of the named attribute (case-insensitive) and
// whether it was present.
func (e *HtmlElement) Attr(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttr reports whether the named attribute is present, regardless of value.
func (e *HtmlElement) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// Classes returns the element's class list, split on ASCII whitespace.
func (e *HtmlElement) Classes() []string {
	v, ok := e.Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(v)
}

// HasClass reports whether cls is present in the element's class list.
func (e *HtmlElement) HasClass(cls string) bool {
	for _, c := range e.Classes() {
		if c == cls {
			return true
		}
	}
	return false
}

// HtmlDocument owns the ordered top-level children produced by the parser
// adapter, plus an optional doctype string (empty when none was present).
type HtmlDocument struct {
	Doctype  string
	Children []HtmlNode
}
