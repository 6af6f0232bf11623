package html2latex

import "strings"

// checkLatexConsistency scans the serialized body for internal
// inconsistencies that should never survive a correct transform, such as a
// raw `\end{math}\\` sequence — a symptom of a math payload that absorbed
// literal environment markup instead of being cleaned. Detecting this here,
// post-serialization, catches it regardless of which transform path
// produced it.
func checkLatexConsistency(s *sink, body string) {
	if strings.Contains(body, `\end{math}\\`) {
		s.emit(DiagnosticEvent{
			Code:     "stray-math-environment",
			Category: CategoryLatex,
			Severity: SeverityError,
			Message:  `\end{math}\\ sequence survived normalization`,
		})
	}
}

// Convert runs the full pipeline — parse, normalize, transform, serialize,
// infer packages — over an HTML fragment or document and returns the
// resulting LaTeX document. At most one ConvertOptions may be given;
// DefaultOptions is used if options is omitted, so a bare Convert(html)
// call parses a fragment, reports errors strictly, and formats its output.
//
// In strict mode, Convert still returns the fully-built *LatexDocument
// alongside a non-nil *DiagnosticsError when any error-or-fatal diagnostic
// was raised, so a caller can inspect both the best-effort result and what
// went wrong.
func Convert(input string, options ...ConvertOptions) (*LatexDocument, error) {
	opts := resolveOptions(options)

	s := newSink(true)
	htmlDoc := parseHTML(s, input, opts.Fragment)
	normalized := normalizeDocument(htmlDoc, nil)
	latexDoc := transformDocument(s, normalized)

	body := serializeNodes(latexDoc.Body, opts.Formatted, opts.LegacyHyphenEscape)
	checkLatexConsistency(s, body)
	packages := inferPackages(latexDoc.Body)
	preamble := buildPreamble(packages, opts.Metadata["preamble"])

	result := &LatexDocument{
		Body:        body,
		Preamble:    preamble,
		Packages:    packages,
		Diagnostics: s.events,
	}

	if opts.Strict {
		if err := enforceStrict(s.events); err != nil {
			return result, err
		}
	}
	return result, nil
}

// HTML2Latex is a convenience wrapper returning just the serialized body.
func HTML2Latex(input string, options ...ConvertOptions) (string, error) {
	doc, err := Convert(input, options...)
	if doc == nil {
		return "", err
	}
	return doc.Body, err
}

// Render runs Convert and wraps the result in a full document using
// options.Template, or the built-in default template if unset. The
// template must contain the literal placeholders {preamble} and {body}.
func Render(input string, options ...ConvertOptions) (string, error) {
	opts := resolveOptions(options)
	doc, err := Convert(input, opts)
	if doc == nil {
		return "", err
	}
	tmpl := opts.Template
	if tmpl == "" {
		tmpl = defaultTemplate
	}
	out := strings.NewReplacer("{preamble}", doc.Preamble, "{body}", doc.Body).Replace(tmpl)
	return out, err
}

func resolveOptions(options []ConvertOptions) ConvertOptions {
	if len(options) == 0 {
		return DefaultOptions()
	}
	return options[0]
}
