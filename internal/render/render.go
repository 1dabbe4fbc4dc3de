// Package render formats the greeting and project record for output.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/adrg/frontmatter"
	"github.com/charmbracelet/lipgloss"
	"github.com/jakoblorz/best-practices-hub/internal/models"
	"github.com/jakoblorz/best-practices-hub/internal/tui"
	"gopkg.in/yaml.v3"
)

// Format selects an output rendering.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// Formats lists the supported formats in display order.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatMarkdown}

// Missing values render as "-" so every field keeps its line.
const textTemplate = `{{ title (.Greeting | trim | default .Description) }}
{{ label "Name:" }} {{ value (.Name | trim | default "-") }}
{{ label "Version:" }} {{ value (.Version | trim | default "-") }}
{{ label "Description:" }} {{ value (.Description | trim | default "-") }}
{{ label "Python version:" }} {{ value (.PythonVersion | trim | default "-") }}
`

const markdownTemplate = `---
{{ .FrontMatter }}---

# {{ .Name }}

{{ .Greeting | trim | default .Description }}
`

// Document is the greeting plus record as emitted by the structured formats.
type Document struct {
	Greeting string `json:"greeting" yaml:"greeting"`

	models.ProjectInfo `yaml:",inline"`
}

// ParseFormat converts a flag value into a Format.
func ParseFormat(s string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return FormatText, nil
	}
	if normalized == "md" {
		return FormatMarkdown, nil
	}

	for _, f := range Formats {
		if string(f) == normalized {
			return f, nil
		}
	}

	return "", fmt.Errorf("unknown format %q (expected one of %s)", s, formatList())
}

// Write renders the greeting and record to w in the given format.
func Write(w io.Writer, format Format, greeting string, info models.ProjectInfo) error {
	doc := Document{Greeting: greeting, ProjectInfo: info}

	switch format {
	case FormatText, "":
		return writeText(w, doc)
	case FormatJSON:
		return writeJSON(w, doc)
	case FormatYAML:
		return writeYAML(w, doc)
	case FormatMarkdown:
		return writeMarkdown(w, doc)
	default:
		return fmt.Errorf("unknown format %q (expected one of %s)", format, formatList())
	}
}

// ParseMarkdown reads a document produced by the markdown format back into
// its record and body.
func ParseMarkdown(data []byte) (models.ProjectInfo, string, error) {
	var info models.ProjectInfo

	rest, err := frontmatter.Parse(bytes.NewReader(data), &info)
	if err != nil {
		return models.ProjectInfo{}, "", fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	return info, strings.TrimSpace(string(rest)), nil
}

func writeText(w io.Writer, doc Document) error {
	styles := tui.NewStyles(lipgloss.NewRenderer(w))

	funcs := sprig.TxtFuncMap()
	funcs["title"] = func(s string) string { return styles.Title.Render(s) }
	funcs["label"] = func(s string) string { return styles.Label.Render(s) }
	funcs["value"] = func(s string) string { return styles.Value.Render(s) }

	tmpl, err := template.New("text").Funcs(funcs).Parse(textTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse text template: %w", err)
	}

	if err := tmpl.Execute(w, doc); err != nil {
		return fmt.Errorf("failed to render text: %w", err)
	}

	return nil
}

func writeJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}

	return nil
}

func writeYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}

	return nil
}

func writeMarkdown(w io.Writer, doc Document) error {
	matter, err := yaml.Marshal(doc.ProjectInfo)
	if err != nil {
		return fmt.Errorf("failed to encode frontmatter: %w", err)
	}

	tmpl, err := template.New("markdown").Funcs(sprig.TxtFuncMap()).Parse(markdownTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse markdown template: %w", err)
	}

	data := struct {
		Document
		FrontMatter string
	}{
		Document:    doc,
		FrontMatter: string(matter),
	}

	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	return nil
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
