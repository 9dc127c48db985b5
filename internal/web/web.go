// Package web holds the embedded page templates and page content.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Template names
const (
	PageIndex    = "index.html"
	PageRegister = "register.html"
	PageTeacher  = "teacher.html"
	PageParents  = "parents.html"
	PageStudent  = "student.html"
	PageCalendar = "calendar.html"
	PageAbout    = "about.html"
	PageUpload   = "upload.html"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed content/about.md
var aboutMarkdown []byte

// LoadTemplates parses every page template
func LoadTemplates() (*template.Template, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// RenderMarkdown converts markdown source to HTML
func RenderMarkdown(source []byte) (template.HTML, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var buf bytes.Buffer
	if err := md.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	// goldmark drops raw HTML unless html.WithUnsafe is set
	return template.HTML(buf.String()), nil
}

// AboutHTML renders the embedded about page
func AboutHTML() (template.HTML, error) {
	return RenderMarkdown(aboutMarkdown)
}
