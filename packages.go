package html2latex

import "sort"

// inferPackages walks the transformed LaTeX body to produce the set of
// required \usepackage{…} names, sorted and deduplicated.
func inferPackages(nodes []LatexNode) []string {
	set := make(map[string]bool)
	for _, n := range nodes {
		walkForPackages(n, set)
	}
	out := make([]string, 0, len(set))
	for pkg := range set {
		out = append(out, pkg)
	}
	sort.Strings(out)
	return out
}

func walkForPackages(n LatexNode, set map[string]bool) {
	switch v := n.(type) {
	case *LatexGroup:
		for _, c := range v.Children {
			walkForPackages(c, set)
		}
	case *LatexCommand:
		switch v.Name {
		case "href", "url":
			set["hyperref"] = true
		case "includegraphics":
			set["graphicx"] = true
		case "sout":
			set["ulem"] = true
		case "colorbox", "textcolor":
			set["xcolor"] = true
		}
		for _, a := range v.Args {
			walkForPackages(a, set)
		}
	case *LatexEnvironment:
		if v.Name == "tabularx" {
			set["tabularx"] = true
		}
		for _, a := range v.Args {
			walkForPackages(a, set)
		}
		for _, c := range v.Children {
			walkForPackages(c, set)
		}
	}
}

// buildPreamble joins \usepackage{…} lines for packages, then appends
// options.Metadata["preamble"] verbatim if set.
func buildPreamble(packages []string, metadataPreamble string) string {
	var sb []byte
	for _, pkg := range packages {
		sb = append(sb, []byte(`\usepackage{`+pkg+"}\n")...)
	}
	if metadataPreamble != "" {
		sb = append(sb, []byte(metadataPreamble)...)
	}
	return string(sb)
}
