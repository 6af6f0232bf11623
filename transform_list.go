package html2latex

import "strconv"

// olTypeToCounterCommand maps the legacy <ol type="…"> attribute to the
// LaTeX counter-formatting command used to renumber it.
var olTypeToCounterCommand = map[string]string{
	"1": "arabic",
	"a": "alph",
	"A": "Alph",
	"i": "roman",
	"I": "Roman",
}

func transformList(s *sink, el *HtmlElement, listLevel, quoteLevel int) []LatexNode {
	newLevel := listLevel + 1
	items := directChildElementsOf(el, "li")

	if el.Tag == "ul" {
		var body []LatexNode
		for _, li := range items {
			body = append(body, &LatexCommand{Name: "item"})
			body = append(body, transformChildren(s, li.Children, newLevel, quoteLevel)...)
		}
		return []LatexNode{&LatexEnvironment{Name: "itemize", Children: body}}
	}

	counter := enumCounterName(newLevel)
	var body []LatexNode

	if typ, ok := el.Attr("type"); ok {
		if cmd, ok := olTypeToCounterCommand[typ]; ok {
			body = append(body, &LatexCommand{
				Name: "renewcommand",
				Args: []*LatexGroup{
					rawGroup(`\label` + counter),
					rawGroup(`\` + cmd + `{` + counter + `}.`),
				},
			})
		}
	}

	reversed := el.HasAttr("reversed")
	start := 1
	if v, ok := el.Attr("start"); ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			start = n
		}
	}
	switch {
	case reversed:
		body = append(body, setCounterCmd(counter, len(items)+1))
	case start > 1:
		body = append(body, setCounterCmd(counter, start-1))
	}

	for _, li := range items {
		if reversed {
			body = append(body, &LatexCommand{
				Name: "addtocounter",
				Args: []*LatexGroup{textGroup(counter), textGroup("-2")},
			})
		} else if v, ok := li.Attr("value"); ok {
			if n, err := strconv.Atoi(v); err == nil {
				body = append(body, setCounterCmd(counter, n-1))
			}
		}
		body = append(body, &LatexCommand{Name: "item"})
		body = append(body, transformChildren(s, li.Children, newLevel, quoteLevel)...)
	}

	return []LatexNode{&LatexEnvironment{Name: "enumerate", Children: body}}
}

func setCounterCmd(counter string, value int) *LatexCommand {
	return &LatexCommand{
		Name: "setcounter",
		Args: []*LatexGroup{textGroup(counter), textGroup(strconv.Itoa(value))},
	}
}

// enumCounterName returns the enumerate counter for a nesting level,
// clamped to LaTeX's four predefined counters (enumi..enumiv).
func enumCounterName(level int) string {
	switch {
	case level <= 1:
		return "enumi"
	case level == 2:
		return "enumii"
	case level == 3:
		return "enumiii"
	default:
		return "enumiv"
	}
}

func rawGroup(s string) *LatexGroup {
	return group(&LatexRaw{Value: s})
}

func directChildElementsOf(el *HtmlElement, tag string) []*HtmlElement {
	var out []*HtmlElement
	for _, c := range el.Children {
		if e, ok := c.(*HtmlElement); ok && e.Tag == tag {
			out = append(out, e)
		}
	}
	return out
}

// transformDescriptionList pairs each <dt> with the <dd>(s) that follow it:
// a <dt> sets a pending label consumed by the next <dd>'s \item[label]; a
// <dd> with no pending label emits a bare \item; a <dt> left pending at the
// end of the list (an orphan term) emits \item[label] with no body.
func transformDescriptionList(s *sink, el *HtmlElement, listLevel, quoteLevel int) []LatexNode {
	var body []LatexNode
	var pendingLabel string
	havePending := false

	for _, c := range el.Children {
		child, ok := c.(*HtmlElement)
		if !ok {
			continue
		}
		switch child.Tag {
		case "dt":
			label := extractText(child)
			pendingLabel = label
			havePending = true
		case "dd":
			item := &LatexCommand{Name: "item"}
			if havePending {
				item.Options = []string{pendingLabel}
			}
			body = append(body, item)
			body = append(body, transformChildren(s, child.Children, listLevel, quoteLevel)...)
			havePending = false
			pendingLabel = ""
		}
	}
	if havePending {
		body = append(body, &LatexCommand{Name: "item", Options: []string{pendingLabel}})
	}

	return []LatexNode{&LatexEnvironment{Name: "description", Children: body}}
}
