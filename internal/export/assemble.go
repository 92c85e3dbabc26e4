// Package export assembles rendered fragments into deliverable
// artifacts: an inline preview, a standalone printable page, and a
// plain-content RTF document. The assembler never changes what the
// renderer produced; it only adds wrapper and stylesheet text.
package export

import (
	"errors"
	"html/template"
	"strings"

	"resume-builder/internal/render"
)

// ErrNoResume signals that an export was requested before any resume
// data exists. Callers surface it as a notification, not a failure.
var ErrNoResume = errors.New("no resume data to export")

// Preview returns the fragment with its stylesheet attached, suitable
// for embedding into a live page or a dashboard thumbnail.
func Preview(doc render.Document) string {
	return "<style>" + doc.Style + "</style>\n" + doc.Body
}

// Page wraps a rendered fragment into a complete standalone document.
// The stylesheet already carries the @page size and print rules.
func Page(doc render.Document, name string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"UTF-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	b.WriteString("<title>" + template.HTMLEscapeString(name) + " - Resume</title>\n")
	b.WriteString("<style>\n" + doc.Style + "</style>\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString(doc.Body)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

// FileName derives the artifact base name from the person's name with
// whitespace collapsed to underscores.
func FileName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "resume"
	}
	return strings.Join(fields, "_")
}
