// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/pdiddy/swerr/internal/filelock"
	"github.com/pdiddy/swerr/pkg/types"
)

const htmlFile = "errors.html"

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 56rem; margin: 2rem auto; padding: 0 1rem; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: .25rem .5rem; text-align: left; }
code { background: #f4f4f4; padding: 0 .2rem; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// HTML renders the Markdown reference page to a standalone HTML document.
type HTML struct{}

func (HTML) Name() string { return "html" }

func (HTML) Render(ctx context.Context, cfg types.ConverterConfig, scheme *types.Scheme) error {
	page, err := RenderHTML(scheme, cfg.Title)
	if err != nil {
		return err
	}
	return filelock.WriteFile(outputFile(cfg, htmlFile), page)
}

// RenderHTML converts the Markdown document for scheme into an HTML page.
func RenderHTML(scheme *types.Scheme, title string) ([]byte, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)

	var body bytes.Buffer
	if err := md.Convert([]byte(RenderMarkdown(scheme, title)), &body); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}

	title = documentTitle(scheme, title)

	var page bytes.Buffer
	err := pageTemplate.Execute(&page, struct {
		Title string
		Body  template.HTML
	}{Title: title, Body: template.HTML(body.String())})
	if err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}
	return page.Bytes(), nil
}
