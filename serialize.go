package html2latex

import (
	"regexp"
	"strings"
)

// latexEscapeReplacer is the fixed escape table, applied exactly once and
// only to LatexText payloads. strings.Replacer never
// rescans its own output, so the order the pairs are listed in does not
// cause double-escaping even though several replacements introduce a
// literal backslash.
var latexEscapeReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// legacyHyphenRE finds a bare ASCII hyphen between two word characters, the
// nonstandard escape historical html2latex applied unconditionally. It is
// opt-in here via ConvertOptions.LegacyHyphenEscape, default off, since it
// silently changes prose that has nothing wrong with it.
var legacyHyphenRE = regexp.MustCompile(`(\w)-(\w)`)

func escapeLatexText(text string, legacyHyphen bool) string {
	// Escape first so the inserted \textendash\, is not itself escaped.
	text = latexEscapeReplacer.Replace(text)
	if legacyHyphen {
		text = legacyHyphenRE.ReplaceAllString(text, `$1\textendash\,$2`)
	}
	return text
}

// lineBreakingEnvs is the set of environments that, in indented mode, put
// each direct child on its own line framed by \begin/\end.
var lineBreakingEnvs = map[string]bool{
	"itemize": true, "enumerate": true, "description": true,
	"quote": true, "quotation": true,
	"center": true, "flushleft": true, "flushright": true,
	"figure": true, "table": true, "tabular": true, "tabularx": true,
}

// lineEndingCommands end a block line: in indented mode they are followed
// by a newline instead of the zero-arg compact trailing space.
var lineEndingCommands = map[string]bool{
	"section": true, "subsection": true, "subsubsection": true,
	"paragraph": true, "subparagraph": true,
	"item": true, "par": true,
	"setcounter": true, "addtocounter": true, "renewcommand": true,
}

type serializer struct {
	formatted    bool
	legacyHyphen bool
	buf          strings.Builder
}

// serializeNodes renders a LatexNode sequence to a string, in compact mode
// (formatted=false) or indented mode (formatted=true).
func serializeNodes(nodes []LatexNode, formatted, legacyHyphen bool) string {
	sr := &serializer{formatted: formatted, legacyHyphen: legacyHyphen}
	sr.writeInline(nodes, 0)
	return sr.buf.String()
}

func (sr *serializer) writeInline(nodes []LatexNode, indent int) {
	for _, n := range nodes {
		sr.writeNode(n, indent)
	}
}

func (sr *serializer) writeOwnLine(nodes []LatexNode, indent int) {
	for i, n := range nodes {
		if cmd, ok := n.(*LatexCommand); ok && cmd.Name == "item" && i > 0 {
			sr.buf.WriteByte('\n')
		}
		sr.writeIndent(indent)
		sr.writeNode(n, indent)
		sr.buf.WriteByte('\n')
	}
}

func (sr *serializer) writeIndent(indent int) {
	sr.buf.WriteString(strings.Repeat("  ", indent))
}

func (sr *serializer) writeNode(n LatexNode, indent int) {
	switch v := n.(type) {
	case *LatexText:
		sr.buf.WriteString(escapeLatexText(v.Text, sr.legacyHyphen))
	case *LatexRaw:
		sr.buf.WriteString(v.Value)
	case *LatexGroup:
		sr.buf.WriteByte('{')
		sr.writeInline(v.Children, indent)
		sr.buf.WriteByte('}')
	case *LatexCommand:
		sr.writeCommand(v, indent)
	case *LatexEnvironment:
		sr.writeEnvironment(v, indent)
	}
}

func (sr *serializer) writeCommand(c *LatexCommand, indent int) {
	sr.buf.WriteByte('\\')
	sr.buf.WriteString(c.Name)
	if len(c.Options) > 0 {
		sr.buf.WriteByte('[')
		sr.buf.WriteString(strings.Join(c.Options, ","))
		sr.buf.WriteByte(']')
	}
	for _, a := range c.Args {
		sr.writeNode(a, indent)
	}
	switch {
	case sr.formatted && lineEndingCommands[c.Name]:
		sr.buf.WriteByte('\n')
	case len(c.Args) == 0:
		sr.buf.WriteByte(' ')
	}
}

func (sr *serializer) writeEnvironment(e *LatexEnvironment, indent int) {
	sr.buf.WriteString(`\begin{`)
	sr.buf.WriteString(e.Name)
	sr.buf.WriteByte('}')
	if len(e.Options) > 0 {
		sr.buf.WriteByte('[')
		sr.buf.WriteString(strings.Join(e.Options, ","))
		sr.buf.WriteByte(']')
	}
	for _, a := range e.Args {
		sr.writeNode(a, indent)
	}
	if sr.formatted && lineBreakingEnvs[e.Name] {
		sr.buf.WriteByte('\n')
		sr.writeOwnLine(e.Children, indent+1)
		sr.writeIndent(indent)
	} else {
		sr.writeInline(e.Children, indent)
	}
	sr.buf.WriteString(`\end{`)
	sr.buf.WriteString(e.Name)
	sr.buf.WriteByte('}')
}
