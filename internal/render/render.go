// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render writes a draft report in one of the supported output
// formats: plain text for the console, JSON or YAML for programs, and
// Markdown or a standalone HTML page for sharing.
package render

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"minimax/internal/generator"
	"minimax/internal/markdown"
	"minimax/internal/models"
)

//go:embed templates/report.html
var templatesFS embed.FS

// pageTmpl wraps the Markdown-derived HTML body in a full document.
var pageTmpl = template.Must(template.ParseFS(templatesFS, "templates/report.html"))

// Format names an output encoding.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatMarkdown, FormatHTML}
}

// ParseFormat matches a format name case-insensitively. "md" and "yml"
// are accepted as aliases.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatJSON, FormatYAML, FormatMarkdown, FormatHTML:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("render: unknown format %q", name)
}

// Ext returns the file extension used when writing f to disk.
func (f Format) Ext() string {
	switch f {
	case FormatMarkdown:
		return "md"
	case FormatText:
		return "txt"
	}
	return string(f)
}

// pageData holds the values passed to the HTML page template.
type pageData struct {
	Title       string
	Body        template.HTML
	RunID       string
	GeneratedAt string
}

// Write encodes report to w in format f.
func Write(w io.Writer, f Format, report models.Report) error {
	switch f {
	case FormatText:
		_, err := io.WriteString(w, generator.FormatReport(report.Prompt, report.Results)+"\n")
		return err

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("render json: %w", err)
		}
		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("render yaml: %w", err)
		}
		return enc.Close()

	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(report))
		return err

	case FormatHTML:
		body, err := markdown.ToHTML(Markdown(report))
		if err != nil {
			return fmt.Errorf("render html: %w", err)
		}
		data := pageData{
			Title:       "MiniMax drafts: " + report.Prompt,
			Body:        template.HTML(body),
			RunID:       report.RunID.String(),
			GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
		}
		if err := pageTmpl.Execute(w, data); err != nil {
			return fmt.Errorf("render html: %w", err)
		}
		return nil
	}
	return fmt.Errorf("render: unknown format %q", f)
}
