package build

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/yaklabco/gospec/pkg/manifest"
)

//go:embed respec.html.tmpl
var respecPage string

//nolint:gochecknoglobals // Parsed once; safe for concurrent use.
var respecTemplate = template.Must(template.New("respec").Parse(respecPage))

// respecData fills the ReSpec page.
type respecData struct {
	Name        string
	ShortName   string
	Version     string
	Description string
	Editors     []string
	Content     template.HTML
}

// newMarkdown returns a goldmark instance configured for specification text.
// Raw HTML is kept because the document author controls every source.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			extension.DefinitionList,
			extension.Typographer,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}

// renderRespec converts rendered Markdown into a standalone ReSpec page.
func renderRespec(meta manifest.Metadata, markdown []byte) ([]byte, error) {
	var body bytes.Buffer
	if err := newMarkdown().Convert(markdown, &body); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}

	data := respecData{
		Name:        meta.Name,
		ShortName:   shortName(meta.Name),
		Version:     meta.Version,
		Description: meta.Description,
		Editors:     meta.Authors,
		//nolint:gosec // Content is the author's own document.
		Content: template.HTML(body.String()),
	}

	var page bytes.Buffer
	if err := respecTemplate.Execute(&page, data); err != nil {
		return nil, fmt.Errorf("render respec page: %w", err)
	}

	return page.Bytes(), nil
}

// shortName turns a document name into a ReSpec shortName.
func shortName(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	return strings.Join(fields, "-")
}
