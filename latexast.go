package html2latex

// LatexNode is the sum of LatexText, LatexRaw, LatexGroup, LatexCommand and
// LatexEnvironment. Like HtmlNode, the variant set is closed and dispatch
// throughout the serializer and package inferer is an exhaustive type
// switch.
type LatexNode interface {
	latexNode()
}

// LatexText carries unescaped user content. The serializer is the only
// place that escapes it; no escape state is ever carried alongside the
// payload.
type LatexText struct {
	Text string
}

func (*LatexText) latexNode() {}

// LatexRaw is pre-formed LaTeX emitted verbatim: math payloads, table rows,
// verbatim contents. It bypasses the serializer's escape table entirely.
type LatexRaw struct {
	Value string
}

func (*LatexRaw) latexNode() {}

// LatexGroup serializes as `{…}`.
type LatexGroup struct {
	Children []LatexNode
}

func (*LatexGroup) latexNode() {}

// LatexCommand serializes as `\name[opt1,opt2]{arg1}{arg2}`. When Args is
// empty, the serializer appends a trailing space (compact mode) or a
// newline (indented mode, for block-ending commands) so the command name
// does not glue to the following token.
type LatexCommand struct {
	Name    string
	Args    []*LatexGroup
	Options []string
}

func (*LatexCommand) latexNode() {}

// LatexEnvironment serializes as `\begin{name}[opts]{args}…\end{name}`.
type LatexEnvironment struct {
	Name     string
	Args     []*LatexGroup
	Options  []string
	Children []LatexNode
}

func (*LatexEnvironment) latexNode() {}

// LatexDocumentAst is the transformer's output: a preamble sequence, a body
// sequence, and free-form metadata (currently unused by the core pipeline,
// reserved for future preamble contributions).
type LatexDocumentAst struct {
	Preamble []LatexNode
	Body     []LatexNode
	Metadata map[string]string
}

func group(children ...LatexNode) *LatexGroup {
	return &LatexGroup{Children: children}
}

func textGroup(s string) *LatexGroup {
	return group(&LatexText{Text: s})
}
