// Package render turns a resume record into a styled document fragment.
// Rendering is pure: the same record, template and theme always produce
// byte-identical output. All user-supplied text goes through
// html/template escaping before it reaches the markup.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	texttemplate "text/template"

	"resume-builder/internal/domain"
)

//go:embed templates/*.tmpl templates/*.css
var templateFS embed.FS

// Document is a rendered fragment plus the stylesheet for its variant.
// The body alone is valid markup; the assembler decides how to deliver
// the pair (inline preview, standalone page, print).
type Document struct {
	Body  string
	Style string
}

type Engine struct {
	bodies map[domain.Template]*template.Template
	styles map[domain.Template]*texttemplate.Template
}

// NewEngine parses the embedded template set once.
func NewEngine() (*Engine, error) {
	e := &Engine{
		bodies: map[domain.Template]*template.Template{},
		styles: map[domain.Template]*texttemplate.Template{},
	}
	for _, t := range []domain.Template{domain.TemplateModern, domain.TemplateClassic, domain.TemplateCreative} {
		body, err := template.ParseFS(templateFS, fmt.Sprintf("templates/%s.tmpl", t))
		if err != nil {
			return nil, fmt.Errorf("parse %s body template: %w", t, err)
		}
		// stylesheets carry only validated hex colors, so plain text
		// templates are safe here
		style, err := texttemplate.ParseFS(templateFS, fmt.Sprintf("templates/%s.css", t))
		if err != nil {
			return nil, fmt.Errorf("parse %s stylesheet: %w", t, err)
		}
		e.bodies[t] = body
		e.styles[t] = style
	}
	return e, nil
}

// Render produces the document for one template variant. Unknown
// template ids fall back to modern.
func (e *Engine) Render(rec domain.Resume, tpl domain.Template) (Document, error) {
	tpl = domain.ParseTemplate(string(tpl))
	v := buildView(rec, tpl)

	var body bytes.Buffer
	if err := e.bodies[tpl].Execute(&body, v); err != nil {
		return Document{}, fmt.Errorf("render %s body: %w", tpl, err)
	}
	var style bytes.Buffer
	if err := e.styles[tpl].Execute(&style, v); err != nil {
		return Document{}, fmt.Errorf("render %s stylesheet: %w", tpl, err)
	}
	return Document{Body: body.String(), Style: style.String()}, nil
}
