// Package renderer renders the board, task details and the ticker panel to
// markdown for the presentation layer.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// RenderBoard renders the filtered board view to a markdown string.
func RenderBoard(v *BoardView) string {
	partials := map[string]string{
		"board_row": "board_row.md",
	}
	return renderTemplate("board", "board.md", partials, v)
}

// RenderDetail renders the selected task, with its generated description
// when one is available, to a markdown string.
func RenderDetail(d *Detail) string {
	return renderTemplate("detail", "detail.md", nil, d)
}

// RenderTickers renders the live ticker panel to a markdown string.
func RenderTickers(p *TickerPanel) string {
	return renderTemplate("tickers", "tickers.md", nil, p)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, readErr := fs.ReadFile(templates, "templates/"+file)
		if readErr != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
