package html2latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInlineStyle(t *testing.T) {
	got := parseInlineStyle("text-align: center; width:100px ; ;invalid")
	assert.Equal(t, "center", got["text-align"])
	assert.Equal(t, "100px", got["width"])
	assert.Len(t, got, 2)
}

func TestTextAlign(t *testing.T) {
	el := &HtmlElement{Attrs: []HtmlAttr{{Name: "style", Value: "text-align: right;"}}}
	v, ok := textAlign(el)
	require.True(t, ok)
	assert.Equal(t, "right", v)

	none := &HtmlElement{}
	_, ok = textAlign(none)
	assert.False(t, ok)
}

func TestTableCellAlignChar_LegacyAttrTakesPrecedence(t *testing.T) {
	el := &HtmlElement{Attrs: []HtmlAttr{
		{Name: "align", Value: "Right"},
		{Name: "style", Value: "text-align: left;"},
	}}
	assert.Equal(t, "r", tableCellAlignChar(el))
}

func TestTableCellAlignChar_FallsBackToCSS(t *testing.T) {
	el := &HtmlElement{Attrs: []HtmlAttr{{Name: "style", Value: "text-align: center;"}}}
	assert.Equal(t, "c", tableCellAlignChar(el))
}

func TestTableCellAlignChar_DefaultsLeft(t *testing.T) {
	assert.Equal(t, "l", tableCellAlignChar(&HtmlElement{}))
}

func TestImgDimensionOptions_AttributesOverrideStyle(t *testing.T) {
	el := &HtmlElement{Attrs: []HtmlAttr{
		{Name: "width", Value: "50"},
		{Name: "style", Value: "width:999px;height:20px"},
	}}
	opts := imgDimensionOptions(el)
	assert.Contains(t, opts, "width=50px")
	assert.Contains(t, opts, "height=20px")
}

func TestImgDimensionOptions_NoneWhenAbsent(t *testing.T) {
	assert.Empty(t, imgDimensionOptions(&HtmlElement{}))
}
