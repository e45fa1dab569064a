package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// markdown converts digest and guide text for page display. Raw HTML in the
// source is dropped, so provider snippets cannot inject markup.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// renderMarkdown converts markdown source to sanitized HTML
func renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// markdownHTML renders markdown for the page, logging rather than failing on error
func (s *Server) markdownHTML(src string) template.HTML {
	if src == "" {
		return ""
	}
	html, err := renderMarkdown(src)
	if err != nil {
		s.log.Error().Err(err).Msg("markdown rendering failed")
		return ""
	}
	return html
}

// homePage holds everything the index template needs
type homePage struct {
	CompanyName string
	JobRole     string
	Warning     string
	Error       string
	Digest      template.HTML
	Guide       template.HTML
	GuideText   string
	Success     bool
}

// renderPage executes the index template, buffering output so a template
// failure can still produce a clean 500
func (s *Server) renderPage(w http.ResponseWriter, status int, page homePage) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, "home.html", page); err != nil {
		s.log.Error().Err(err).Msg("rendering page failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.log.Error().Err(err).Msg("writing page failed")
	}
}
