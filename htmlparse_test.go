package html2latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHTML_FragmentLowercasesTagsAndAttrs(t *testing.T) {
	s := newSink(true)
	doc := parseHTML(s, `<DIV ID="x" Class="Foo"><SPAN>hi</SPAN></DIV>`, true)
	require.Len(t, doc.Children, 1)
	div := doc.Children[0].(*HtmlElement)
	assert.Equal(t, "div", div.Tag)
	v, ok := div.Attr("id")
	require.True(t, ok)
	assert.Equal(t, "x", v)

	span := div.Children[0].(*HtmlElement)
	assert.Equal(t, "span", span.Tag)
}

func TestParseHTML_AttributeValuePreservedVerbatim(t *testing.T) {
	s := newSink(true)
	doc := parseHTML(s, `<a href="/X/Y?z=1">l</a>`, true)
	a := doc.Children[0].(*HtmlElement)
	v, _ := a.Attr("href")
	assert.Equal(t, "/X/Y?z=1", v)
}

func TestParseHTML_CommentsDiscarded(t *testing.T) {
	s := newSink(true)
	doc := parseHTML(s, `<p>a<!-- comment -->b</p>`, true)
	p := doc.Children[0].(*HtmlElement)
	for _, c := range p.Children {
		if el, ok := c.(*HtmlElement); ok {
			t.Fatalf("unexpected element child %v", el.Tag)
		}
	}
}

func TestParseHTML_EmptyInputYieldsNoChildren(t *testing.T) {
	s := newSink(true)
	doc := parseHTML(s, "", true)
	assert.Empty(t, doc.Children)
}

func TestParseHTML_MissingAttributeValueDiagnostic(t *testing.T) {
	s := newSink(true)
	parseHTML(s, `<div id=>Hi</div>`, true)
	require.Len(t, s.events, 1)
	assert.Equal(t, "missing-attribute-value", s.events[0].Code)
	assert.Equal(t, CategoryParse, s.events[0].Category)
	assert.Equal(t, SeverityError, s.events[0].Severity)
	require.NotNil(t, s.events[0].Location)
}

func TestParseHTML_FullDocumentDoctype(t *testing.T) {
	s := newSink(true)
	doc := parseHTML(s, `<!DOCTYPE html><html><body><p>hi</p></body></html>`, false)
	assert.Equal(t, "html", doc.Doctype)
}

func TestLineColAt(t *testing.T) {
	line, col := lineColAt("ab\ncd", 4)
	assert.Equal(t, 2, line)
	assert.Equal(t, 2, col)
}
