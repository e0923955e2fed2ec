package dmp

import (
	"html"
	"strings"
)

// DiffPrettyHtml converts a diff script into an HTML fragment: insertions
// wrapped in <ins>, deletions in <del>, equalities in <span>, each with an
// inline background color. Intended as a starting point for callers writing
// their own renderers, not a polished UI component.
func DiffPrettyHtml(diffs []Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		text := strings.ReplaceAll(html.EscapeString(d.Text), "\n", "&para;<br>")
		switch d.Type {
		case DiffInsert:
			b.WriteString(`<ins style="background:#e6ffe6;">`)
			b.WriteString(text)
			b.WriteString("</ins>")
		case DiffDelete:
			b.WriteString(`<del style="background:#ffe6e6;">`)
			b.WriteString(text)
			b.WriteString("</del>")
		case DiffEqual:
			b.WriteString("<span>")
			b.WriteString(text)
			b.WriteString("</span>")
		}
	}
	return b.String()
}

// ANSI SGR codes used by DiffPrettyText: green for insertions, red for
// deletions, reset afterward.
const (
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// DiffPrettyText renders a diff script for a terminal: insertions in green,
// deletions in red, equalities unstyled.
func DiffPrettyText(diffs []Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case DiffInsert:
			b.WriteString(ansiGreen)
			b.WriteString(d.Text)
			b.WriteString(ansiReset)
		case DiffDelete:
			b.WriteString(ansiRed)
			b.WriteString(d.Text)
			b.WriteString(ansiReset)
		case DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
