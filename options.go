package html2latex

import (
	"context"
	"log/slog"
	"strings"
)

// ConvertOptions controls one conversion. The zero value is a valid,
// permissive configuration; DefaultOptions documents the recommended
// starting point for callers who want strict-by-default behaviour.
type ConvertOptions struct {
	// Fragment parses input as an HTML fragment (implied body contents)
	// rather than a full document. Most callers want this set.
	Fragment bool

	// Strict turns any Error or Fatal diagnostic into a returned
	// *DiagnosticsError; the fully-built result is still returned
	// alongside it.
	Strict bool

	// Formatted selects indented, human-readable LaTeX output instead of
	// the default compact rendering.
	Formatted bool

	// LegacyHyphenEscape opts into rewriting a bare hyphen between two
	// word characters as an en dash, matching historical html2latex
	// output. Off by default because it silently changes prose.
	LegacyHyphenEscape bool

	// Template overrides the default document template used by Render.
	// It must contain the literal placeholders {preamble} and {body}.
	Template string

	// Metadata carries caller-supplied values consulted during
	// conversion; currently only Metadata["preamble"] is read, appended
	// verbatim after the inferred \usepackage lines.
	Metadata map[string]string
}

// DefaultOptions returns the recommended baseline: fragment parsing,
// strict error reporting, formatted (indented) output.
func DefaultOptions() ConvertOptions {
	return ConvertOptions{
		Fragment:  true,
		Strict:    true,
		Formatted: true,
	}
}

const defaultTemplate = "\\documentclass{article}\n{preamble}\n\\begin{document}\n{body}\n\\end{document}\n"

// LatexDocument is the result of a conversion: the serialized body, the
// inferred preamble, the package list it was built from, and every
// diagnostic collected along the way (even on a non-strict success).
type LatexDocument struct {
	Body        string
	Preamble    string
	Packages    []string
	Diagnostics []DiagnosticEvent
}

// Converter binds a fixed ConvertOptions so repeated calls don't need to
// repeat configuration, and remembers the diagnostics from its most recent
// conversion for callers that want to inspect them after the fact. When
// Logger is set, every diagnostic from a call to Convert or Render is also
// logged at a level derived from its Severity.
type Converter struct {
	Options ConvertOptions
	Logger  *slog.Logger

	lastDiagnostics []DiagnosticEvent
}

// NewConverter returns a Converter bound to options.
func NewConverter(options ConvertOptions) *Converter {
	return &Converter{Options: options}
}

// WithOptions returns a new Converter whose options are a copy of the
// receiver's, overridden by apply. The receiver is never mutated, so a
// shared base Converter can safely spawn several specialized ones.
func (c *Converter) WithOptions(apply func(*ConvertOptions)) *Converter {
	opts := c.Options
	if opts.Metadata != nil {
		md := make(map[string]string, len(opts.Metadata))
		for k, v := range opts.Metadata {
			md[k] = v
		}
		opts.Metadata = md
	}
	if apply != nil {
		apply(&opts)
	}
	return &Converter{Options: opts, Logger: c.Logger}
}

// Convert runs the pipeline with the Converter's bound options.
func (c *Converter) Convert(html string) (*LatexDocument, error) {
	doc, err := Convert(html, c.Options)
	if doc != nil {
		c.lastDiagnostics = doc.Diagnostics
		c.logDiagnostics(doc.Diagnostics)
	}
	return doc, err
}

func (c *Converter) logDiagnostics(events []DiagnosticEvent) {
	if c.Logger == nil {
		return
	}
	for _, e := range events {
		c.Logger.Log(context.Background(), severityLogLevel(e.Severity), e.Message,
			"code", e.Code, "category", e.Category)
	}
}

func severityLogLevel(sev Severity) slog.Level {
	switch sev {
	case SeverityWarn:
		return slog.LevelWarn
	case SeverityError, SeverityFatal:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Render runs the pipeline and wraps the result in a full document.
func (c *Converter) Render(html string) (string, error) {
	doc, err := c.Convert(html)
	if doc == nil {
		return "", err
	}
	tmpl := c.Options.Template
	if tmpl == "" {
		tmpl = defaultTemplate
	}
	out := strings.NewReplacer("{preamble}", doc.Preamble, "{body}", doc.Body).Replace(tmpl)
	return out, err
}

// LastDiagnostics returns the diagnostics collected by the most recent
// call to Convert or Render on this Converter.
func (c *Converter) LastDiagnostics() []DiagnosticEvent {
	return c.lastDiagnostics
}
