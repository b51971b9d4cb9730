// Package render turns Markdown content files into HTML pages.
package render

import (
	"bytes"
	"html/template"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"

	sterrors "git.home.luguber.info/inful/sitetools/internal/errors"
	"git.home.luguber.info/inful/sitetools/internal/frontmatter"
)

// defaultLayout is used when no layout template is configured.
const defaultLayout = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{ .Title }}</title></head>
<body>
{{ .Body }}
</body>
</html>
`

// Page is the data handed to the layout template for one content file.
type Page struct {
	Title  string
	Params map[string]any
	Body   template.HTML
	Source string
}

// Renderer renders Markdown files through goldmark into an HTML layout.
type Renderer struct {
	layout *template.Template
	md     goldmark.Markdown
}

// NewRenderer builds a Renderer. layoutPath may be empty, in which case a
// minimal built-in layout is used.
func NewRenderer(layoutPath string) (*Renderer, error) {
	source := defaultLayout
	if layoutPath != "" {
		data, err := os.ReadFile(layoutPath)
		if err != nil {
			return nil, sterrors.Wrap(err, sterrors.CategoryTemplate, sterrors.SeverityFatal,
				"failed to read layout template").WithContext("path", layoutPath)
		}
		source = string(data)
	}

	layout, err := template.New("layout").Parse(source)
	if err != nil {
		return nil, sterrors.Wrap(err, sterrors.CategoryTemplate, sterrors.SeverityFatal,
			"failed to parse layout template").WithContext("path", layoutPath)
	}
	return &Renderer{layout: layout, md: goldmark.New()}, nil
}

// RenderFile renders one Markdown file and returns the resulting HTML page.
func (r *Renderer) RenderFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, sterrors.Wrap(err, sterrors.CategoryFileSystem, sterrors.SeverityError,
			"failed to read content file").WithContext("path", path)
	}

	meta, body, _, err := frontmatter.Split(content)
	if err != nil {
		return nil, sterrors.Wrap(err, sterrors.CategoryTemplate, sterrors.SeverityError,
			"invalid frontmatter").WithContext("path", path)
	}
	fields, err := frontmatter.ParseYAML(meta)
	if err != nil {
		return nil, sterrors.Wrap(err, sterrors.CategoryTemplate, sterrors.SeverityError,
			"invalid frontmatter YAML").WithContext("path", path)
	}

	var htmlBody bytes.Buffer
	if err := r.md.Convert(body, &htmlBody); err != nil {
		return nil, sterrors.Wrap(err, sterrors.CategoryTemplate, sterrors.SeverityError,
			"markdown conversion failed").WithContext("path", path)
	}

	page := Page{
		Title:  pageTitle(fields, path),
		Params: fields,
		Body:   template.HTML(htmlBody.String()), // #nosec G203 -- goldmark output of trusted local content
		Source: path,
	}

	var out bytes.Buffer
	if err := r.layout.Execute(&out, page); err != nil {
		return nil, sterrors.Wrap(err, sterrors.CategoryTemplate, sterrors.SeverityError,
			"layout execution failed").WithContext("path", path)
	}
	return out.Bytes(), nil
}

// RenderDir renders every .md file under contentDir into outputDir, mirroring
// the directory structure with .html extensions. It returns the number of
// pages written.
func (r *Renderer) RenderDir(contentDir, outputDir string) (int, error) {
	rendered := 0
	err := filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}

		html, err := r.RenderFile(path)
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(outputDir, strings.TrimSuffix(rel, filepath.Ext(rel))+".html")
		if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
			return err
		}
		// #nosec G306 -- rendered pages are public site assets
		if err := os.WriteFile(dst, html, 0644); err != nil {
			return err
		}

		slog.Debug("Rendered page", "source", path, "output", dst)
		rendered++
		return nil
	})
	if err != nil {
		return rendered, err
	}
	return rendered, nil
}

// pageTitle prefers the frontmatter title, falling back to the file name.
func pageTitle(fields map[string]any, path string) string {
	if t, ok := fields["title"].(string); ok && t != "" {
		return t
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
