package html2latex

import "strings"

// isMathContainer reports whether el carries a math payload: a literal
// <math> element, a data-latex/data-math attribute, or a class in
// mathClasses.
func isMathContainer(el *HtmlElement) bool {
	if el.Tag == "math" {
		return true
	}
	if el.HasAttr("data-latex") || el.HasAttr("data-math") {
		return true
	}
	for _, c := range el.Classes() {
		if mathClasses[c] {
			return true
		}
	}
	return false
}

// transformMath resolves the math payload (data-latex, then data-math,
// then the element's own text), strips a recognized delimiter pair to
// learn display-vs-inline mode, and otherwise infers the mode from the
// element itself. An empty payload contributes nothing.
func transformMath(el *HtmlElement) []LatexNode {
	payload := strings.TrimSpace(mathPayload(el))
	if payload == "" {
		return nil
	}

	cleaned, display, hadDelimiter := stripMathDelimiters(payload)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return nil
	}
	if !hadDelimiter {
		display = isDisplayMath(el)
	}

	if display {
		return []LatexNode{&LatexRaw{Value: `\[` + cleaned + `\]`}}
	}
	return []LatexNode{&LatexRaw{Value: `\(` + cleaned + `\)`}}
}

func mathPayload(el *HtmlElement) string {
	if v, ok := el.Attr("data-latex"); ok {
		return v
	}
	if v, ok := el.Attr("data-math"); ok {
		return v
	}
	return extractText(el)
}

// stripMathDelimiters recognizes \[...\], \(...\), $$...$$ and $...$
// wrappers, reporting the delimiter's implied display mode.
func stripMathDelimiters(s string) (cleaned string, display, ok bool) {
	switch {
	case len(s) >= 4 && strings.HasPrefix(s, `\[`) && strings.HasSuffix(s, `\]`):
		return s[2 : len(s)-2], true, true
	case len(s) >= 4 && strings.HasPrefix(s, `\(`) && strings.HasSuffix(s, `\)`):
		return s[2 : len(s)-2], false, true
	case len(s) >= 4 && strings.HasPrefix(s, "$$") && strings.HasSuffix(s, "$$"):
		return s[2 : len(s)-2], true, true
	case len(s) >= 2 && strings.HasPrefix(s, "$") && strings.HasSuffix(s, "$"):
		return s[1 : len(s)-1], false, true
	}
	return s, false, false
}

// isDisplayMath is the fallback when the payload carries no delimiter:
// a <div> or <p> container, or a class in displayMathClasses, implies
// display mode; everything else is inline.
func isDisplayMath(el *HtmlElement) bool {
	if el.Tag == "div" || el.Tag == "p" {
		return true
	}
	for _, c := range el.Classes() {
		if displayMathClasses[c] {
			return true
		}
	}
	return false
}
