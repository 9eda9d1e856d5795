package build

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/yaklabco/gospec/pkg/manifest"
)

// templateData is what a page template sees.
type templateData struct {
	Metadata manifest.Metadata
	Config   manifest.Config

	// Sections maps section names to their extracted text.
	Sections map[string]string
}

//nolint:gochecknoglobals // Read-only function map.
var templateFuncs = template.FuncMap{
	"join":  strings.Join,
	"upper": strings.ToUpper,
	"lower": strings.ToLower,
	"trim":  strings.TrimSpace,
}

// render executes the page template. Unknown keys, including section names
// missing from the manifest, are errors.
func render(path string, tmpl []byte, data templateData) ([]byte, error) {
	t, err := template.New(filepath.Base(path)).
		Funcs(templateFuncs).
		Option("missingkey=error").
		Parse(string(tmpl))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render template %s: %w", path, err)
	}

	return buf.Bytes(), nil
}
