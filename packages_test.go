package html2latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferPackages(t *testing.T) {
	nodes := []LatexNode{
		&LatexCommand{Name: "href", Args: []*LatexGroup{textGroup("/x"), textGroup("l")}},
		&LatexCommand{Name: "includegraphics", Args: []*LatexGroup{textGroup("a.png")}},
		&LatexCommand{Name: "sout", Args: []*LatexGroup{textGroup("s")}},
		&LatexCommand{Name: "colorbox", Args: []*LatexGroup{textGroup("yellow"), textGroup("m")}},
		&LatexEnvironment{Name: "tabularx", Children: nil},
		&LatexCommand{Name: "textbf", Args: []*LatexGroup{textGroup("b")}},
	}
	got := inferPackages(nodes)
	assert.Equal(t, []string{"graphicx", "hyperref", "tabularx", "ulem", "xcolor"}, got)
}

func TestInferPackages_NoneNeeded(t *testing.T) {
	nodes := []LatexNode{&LatexText{Text: "plain"}, &LatexCommand{Name: "textbf", Args: []*LatexGroup{textGroup("b")}}}
	assert.Empty(t, inferPackages(nodes))
}

func TestInferPackages_NestedInsideEnvironmentAndGroup(t *testing.T) {
	nodes := []LatexNode{
		&LatexEnvironment{
			Name: "quote",
			Children: []LatexNode{
				&LatexGroup{Children: []LatexNode{
					&LatexCommand{Name: "url", Args: []*LatexGroup{textGroup("/x")}},
				}},
			},
		},
	}
	assert.Equal(t, []string{"hyperref"}, inferPackages(nodes))
}

func TestBuildPreamble(t *testing.T) {
	p := buildPreamble([]string{"graphicx", "hyperref"}, "")
	assert.Equal(t, "\\usepackage{graphicx}\n\\usepackage{hyperref}\n", p)
}

func TestBuildPreamble_AppendsMetadata(t *testing.T) {
	p := buildPreamble([]string{"hyperref"}, "\\usepackage{lipsum}\n")
	assert.Equal(t, "\\usepackage{hyperref}\n\\usepackage{lipsum}\n", p)
}

func TestBuildPreamble_EmptyPackagesAndMetadata(t *testing.T) {
	assert.Equal(t, "", buildPreamble(nil, ""))
}
