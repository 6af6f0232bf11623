package html2latex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseFragment(t *testing.T, html string) *HtmlDocument {
	t.Helper()
	s := newSink(false)
	return parseHTML(s, html, true)
}

func TestNormalize_CollapsesWhitespaceRuns(t *testing.T) {
	doc := mustParseFragment(t, "<p>a   b\n\tc</p>")
	norm := normalizeDocument(doc, nil)
	p := norm.Children[0].(*HtmlElement)
	text := p.Children[0].(*HtmlText)
	assert.Equal(t, "a b c", text.Text)
}

func TestNormalize_DropsWhitespaceBetweenBlockSiblings(t *testing.T) {
	doc := mustParseFragment(t, "<div><p>A</p>   <p>B</p></div>")
	norm := normalizeDocument(doc, nil)
	div := norm.Children[0].(*HtmlElement)
	require.Len(t, div.Children, 2)
	_, firstIsP := div.Children[0].(*HtmlElement)
	_, secondIsP := div.Children[1].(*HtmlElement)
	assert.True(t, firstIsP)
	assert.True(t, secondIsP)
}

func TestNormalize_PreservesSpaceBetweenInlineSiblings(t *testing.T) {
	doc := mustParseFragment(t, "<p><em>A</em> <b>B</b></p>")
	norm := normalizeDocument(doc, nil)
	p := norm.Children[0].(*HtmlElement)
	require.Len(t, p.Children, 3)
	text, ok := p.Children[1].(*HtmlText)
	require.True(t, ok)
	assert.Equal(t, " ", text.Text)
}

func TestNormalize_StripsBlockBoundaryWhitespaceAndBr(t *testing.T) {
	doc := mustParseFragment(t, "<div> <br>text<br> </div>")
	norm := normalizeDocument(doc, nil)
	div := norm.Children[0].(*HtmlElement)
	require.Len(t, div.Children, 1)
	text := div.Children[0].(*HtmlText)
	assert.Equal(t, "text", text.Text)
}

func TestNormalize_TrimsBoundaryWhitespaceWithinMixedContentText(t *testing.T) {
	doc := mustParseFragment(t, "<p>  Hello World  </p>")
	norm := normalizeDocument(doc, nil)
	p := norm.Children[0].(*HtmlElement)
	require.Len(t, p.Children, 1)
	text := p.Children[0].(*HtmlText)
	assert.Equal(t, "Hello World", text.Text)
}

func TestNormalize_PreserveWhitespaceTagsPassesThroughUnchanged(t *testing.T) {
	doc := mustParseFragment(t, "<pre>  keep   me  \n\n</pre>")
	norm := normalizeDocument(doc, nil)
	pre := norm.Children[0].(*HtmlElement)
	text := pre.Children[0].(*HtmlText)
	assert.Equal(t, "  keep   me  \n\n", text.Text)
}

func TestNormalize_MergesAdjacentText(t *testing.T) {
	doc := &HtmlDocument{Children: []HtmlNode{
		&HtmlText{Text: "a"},
		&HtmlText{Text: "b"},
	}}
	norm := normalizeDocument(doc, nil)
	require.Len(t, norm.Children, 1)
	assert.Equal(t, "ab", norm.Children[0].(*HtmlText).Text)
}

func TestNormalize_Idempotent(t *testing.T) {
	doc := mustParseFragment(t, `<div>  <p>Hello   <strong>World</strong>  </p>  <pre>  x  </pre>  <ul>  <li>A</li>  </ul></div>`)
	once := normalizeDocument(doc, nil)
	twice := normalizeDocument(once, nil)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("normalize is not idempotent (-once +twice):\n%s", diff)
	}
}
