package html2latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func convertCompact(t *testing.T, html string) (*LatexDocument, []DiagnosticEvent) {
	t.Helper()
	doc, err := Convert(html, ConvertOptions{Fragment: true, Strict: false})
	require.NoError(t, err)
	return doc, doc.Diagnostics
}

func TestTransform_Headings(t *testing.T) {
	cases := map[string]string{
		"h1": "section", "h2": "subsection", "h3": "subsubsection",
		"h4": "paragraph", "h5": "subparagraph",
	}
	for tag, cmd := range cases {
		doc, _ := convertCompact(t, "<"+tag+">T</"+tag+">")
		assert.Equal(t, `\`+cmd+`{T}`, doc.Body)
	}
}

func TestTransform_SmallAndBig(t *testing.T) {
	doc, _ := convertCompact(t, "<small>x</small>")
	assert.Equal(t, `{\small x}`, doc.Body)

	doc, _ = convertCompact(t, "<big>x</big>")
	assert.Equal(t, `{\large x}`, doc.Body)
}

func TestTransform_Mark(t *testing.T) {
	doc, _ := convertCompact(t, "<mark>x</mark>")
	assert.Equal(t, `\colorbox{yellow}{x}`, doc.Body)
	assert.Contains(t, doc.Packages, "xcolor")
}

func TestTransform_Center(t *testing.T) {
	doc, _ := convertCompact(t, "<center>x</center>")
	assert.Equal(t, `\begin{center}x\end{center}`, doc.Body)
}

func TestTransform_InlinePassthrough(t *testing.T) {
	doc, _ := convertCompact(t, "<span>x</span>")
	assert.Equal(t, "x", doc.Body)
}

func TestTransform_BlockPassthrough(t *testing.T) {
	doc, _ := convertCompact(t, "<section>x</section>")
	assert.Equal(t, "x", doc.Body)
}

func TestTransform_Br(t *testing.T) {
	doc, _ := convertCompact(t, "a<br>b")
	assert.Equal(t, `a\newline b`, doc.Body)
}

func TestTransform_QuoteNesting(t *testing.T) {
	doc, _ := convertCompact(t, "<q>outer <q>inner</q></q>")
	assert.Equal(t, "``outer `inner'''", doc.Body)
}

func TestTransform_ParagraphTextAlign(t *testing.T) {
	doc, _ := convertCompact(t, `<p style="text-align: center;">x</p>`)
	assert.Equal(t, `\begin{center}x\end{center}`, doc.Body)

	doc, _ = convertCompact(t, `<div style="text-align: right;">x</div>`)
	assert.Equal(t, `\begin{flushright}x\end{flushright}`, doc.Body)

	doc, _ = convertCompact(t, `<p>x</p>`)
	assert.Equal(t, `x\par `, doc.Body)
}

func TestTransform_Hr(t *testing.T) {
	doc, _ := convertCompact(t, "<hr>")
	assert.Equal(t, `\hrule `, doc.Body)
}

func TestTransform_AnchorWithoutHref(t *testing.T) {
	doc, _ := convertCompact(t, `<a>x</a>`)
	assert.Equal(t, "x", doc.Body)
	assert.Empty(t, doc.Packages)
}

func TestTransform_AnchorEmptyChildrenBecomesURL(t *testing.T) {
	doc, _ := convertCompact(t, `<a href="/x"></a>`)
	assert.Equal(t, `\url{/x}`, doc.Body)
}

func TestTransform_ImageWithDimensions(t *testing.T) {
	doc, _ := convertCompact(t, `<img src="a.png" width="10" height="20">`)
	assert.Equal(t, `\includegraphics[width=10px,height=20px]{a.png}`, doc.Body)
	assert.Contains(t, doc.Packages, "graphicx")
}

func TestTransform_ImageMissingSrcWithAlt(t *testing.T) {
	doc, diags := convertCompact(t, `<img alt="a fallback">`)
	assert.Equal(t, "a fallback", doc.Body)
	assert.Empty(t, diags)
}

func TestTransform_Blockquote(t *testing.T) {
	doc, _ := convertCompact(t, "<blockquote>x</blockquote>")
	assert.Equal(t, `\begin{quote}x\end{quote}`, doc.Body)
}

func TestTransform_Pre(t *testing.T) {
	doc, _ := convertCompact(t, "<pre>  keep   this  </pre>")
	assert.Equal(t, "\\begin{verbatim}  keep   this  \\end{verbatim}", doc.Body)
}

func TestTransform_UnknownTagTransparent(t *testing.T) {
	doc, diags := convertCompact(t, "<foo>bar</foo>")
	assert.Equal(t, "bar", doc.Body)
	assert.Empty(t, diags)
}
