package html2latex

// Tag Classifier: frozen tables shared by the Normalizer and the
// Transformer. These are read-only package-level data, never mutated
// after init, per the "classifier tables as data, not code" design note.

// blockTags is the closed set of HTML block-level tags.
var blockTags = map[string]bool{
	"article": true, "aside": true, "blockquote": true, "body": true,
	"caption": true, "dd": true, "div": true, "dl": true, "dt": true,
	"figure": true, "figcaption": true, "footer": true, "header": true,
	"html": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"tbody": true, "td": true, "tfoot": true, "th": true, "thead": true,
	"tr": true, "ul": true,
}

func isBlockTag(tag string) bool {
	return blockTags[tag]
}

// blockPassthrough tags emit their children with no wrapper.
var blockPassthrough = map[string]bool{
	"article": true, "aside": true, "footer": true, "header": true,
	"main": true, "nav": true, "section": true,
}

// inlinePassthrough tags emit their children with no wrapper.
var inlinePassthrough = map[string]bool{
	"abbr": true, "dfn": true, "span": true, "time": true,
}

// inlineCommands maps an inline tag to the LaTeX command name wrapping its
// children.
var inlineCommands = map[string]string{
	"strong": "textbf", "b": "textbf",
	"em": "textit", "i": "textit",
	"u": "underline", "ins": "underline",
	"code": "texttt", "kbd": "texttt", "samp": "texttt",
	"var": "textit", "cite": "textit",
	"sup": "textsuperscript",
	"sub": "textsubscript",
	"del": "sout", "s": "sout", "strike": "sout",
}

// headingCommands maps a heading tag to its sectioning command.
var headingCommands = map[string]string{
	"h1": "section",
	"h2": "subsection",
	"h3": "subsubsection",
	"h4": "paragraph",
	"h5": "subparagraph",
}

// mathClasses is the set of CSS classes that mark an element as a math
// container (in addition to tag name "math" and the data-latex/data-math
// attributes).
var mathClasses = map[string]bool{
	"math-tex": true, "math-tex-block": true, "math-display": true, "math-inline": true,
}

// displayMathClasses is the subset of mathClasses that implies display
// (as opposed to inline) math when no explicit delimiter says otherwise.
var displayMathClasses = map[string]bool{
	"math-tex-block": true, "math-display": true,
}
