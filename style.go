package html2latex

import "strings"

// parseInlineStyle parses a `style="…"` attribute value into a map of
// lowercased property names to trimmed values. Only a closed set of inline
// style properties is ever consulted (text-align, width, height), so this
// is a plain `prop: value;` splitter rather than a general CSS parser —
// pulling in a full CSS tokenizer to read three fixed properties would
// parse far more grammar than this package ever needs.
func parseInlineStyle(style string) map[string]string {
	out := make(map[string]string)
	for _, decl := range strings.Split(style, ";") {
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		prop := strings.ToLower(strings.TrimSpace(parts[0]))
		val := strings.ToLower(strings.TrimSpace(parts[1]))
		if prop == "" || val == "" {
			continue
		}
		out[prop] = val
	}
	return out
}

// textAlign returns the CSS text-align value for el ("left", "center",
// "right") and whether it was present, from the inline style attribute
// only. The legacy `align` attribute is handled separately by
// tableCellAlignChar, which applies only inside table cells.
func textAlign(el *HtmlElement) (string, bool) {
	style, ok := el.Attr("style")
	if !ok {
		return "", false
	}
	v, ok := parseInlineStyle(style)["text-align"]
	return v, ok
}

// tableCellAlignChar resolves a table cell's alignment: legacy `align`
// attribute first, else CSS text-align, defaulting to "l".
func tableCellAlignChar(el *HtmlElement) string {
	if v, ok := el.Attr("align"); ok {
		if c, ok := alignChar(strings.ToLower(strings.TrimSpace(v))); ok {
			return c
		}
	}
	if v, ok := textAlign(el); ok {
		if c, ok := alignChar(v); ok {
			return c
		}
	}
	return "l"
}

func alignChar(v string) (string, bool) {
	switch v {
	case "left":
		return "l", true
	case "center":
		return "c", true
	case "right":
		return "r", true
	}
	return "", false
}

// imgDimensionOptions resolves width/height includegraphics options for an
// <img>: the HTML width/height attributes take precedence over inline CSS,
// matching how browsers resolve intrinsic-size hints. A bare numeric
// attribute value means pixels per HTML semantics.
func imgDimensionOptions(el *HtmlElement) []string {
	var opts []string
	if w, ok := imgDimension(el, "width"); ok {
		opts = append(opts, "width="+w)
	}
	if h, ok := imgDimension(el, "height"); ok {
		opts = append(opts, "height="+h)
	}
	return opts
}

func imgDimension(el *HtmlElement, name string) (string, bool) {
	if v, ok := el.Attr(name); ok && v != "" {
		if isDigits(v) {
			return v + "px", true
		}
		return v, true
	}
	if style, ok := el.Attr("style"); ok {
		if v, ok := parseInlineStyle(style)[name]; ok && v != "" {
			return v, true
		}
	}
	return "", false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
