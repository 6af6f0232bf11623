// Package html2latex converts HTML fragments, typically authored in a
// WYSIWYG editor, into LaTeX source.
//
// The conversion runs a five-stage pipeline over two immutable, closed-variant
// trees:
//
//	parse (htmlparse.go) -> normalize (normalize.go) -> transform (transform*.go)
//	  -> serialize (serialize.go) -> package-infer (packages.go)
//
// [Convert] orchestrates the pipeline and honors [ConvertOptions]. [Converter]
// is a reusable binding of options for callers that want to convert many
// fragments with the same settings.
//
// The package never performs network or filesystem I/O, and it never
// panics on malformed input: parsing and transformation emit structured
// [DiagnosticEvent] values instead of raising, and a conversion only fails
// (via [DiagnosticsError]) when [ConvertOptions.Strict] is set and an
// error-or-fatal diagnostic was recorded.
package html2latex
