// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/swerr/internal/filelock"
	"github.com/pdiddy/swerr/pkg/types"
)

const markdownFile = "errors.md"

// Markdown writes the scheme as a Markdown reference page.
type Markdown struct{}

func (Markdown) Name() string { return "markdown" }

func (Markdown) Render(ctx context.Context, cfg types.ConverterConfig, scheme *types.Scheme) error {
	doc := RenderMarkdown(scheme, cfg.Title)
	return filelock.WriteFile(outputFile(cfg, markdownFile), []byte(doc))
}

// documentTitle picks the heading shared by the markdown and html output:
// the configured title, then the scheme name, then "Errors".
func documentTitle(scheme *types.Scheme, title string) string {
	if title == "" {
		title = scheme.Name
	}
	if title == "" {
		title = "Errors"
	}
	return title
}

// RenderMarkdown returns the Markdown document for scheme. title overrides
// the scheme name as the top-level heading when non-empty.
func RenderMarkdown(scheme *types.Scheme, title string) string {
	title = documentTitle(scheme, title)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if scheme.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", scheme.Description)
	}
	if scheme.Version != "" {
		fmt.Fprintf(&b, "Version: `%s`\n\n", scheme.Version)
	}

	if len(scheme.Errors) == 0 {
		b.WriteString("No errors documented.\n")
		return b.String()
	}

	b.WriteString("## Overview\n\n")
	b.WriteString("| Name | Description |\n")
	b.WriteString("| --- | --- |\n")
	for _, rec := range scheme.Errors {
		fmt.Fprintf(&b, "| `%s` | %s |\n", rec.Name, tableCell(rec.Description))
	}
	b.WriteString("\n## Errors\n")

	for _, rec := range scheme.Errors {
		fmt.Fprintf(&b, "\n### %s\n\n", rec.Name)
		if rec.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", rec.Description)
		}
		if rec.SourceFile != "" {
			fmt.Fprintf(&b, "Source: `%s:%d`\n\n", rec.SourceFile, rec.SourceLine)
		}

		extra := make([]types.Tag, 0, len(rec.Tags))
		for _, t := range rec.Tags {
			if t.Name != types.ErrorTag {
				extra = append(extra, t)
			}
		}
		if len(extra) == 0 {
			continue
		}
		b.WriteString("| Tag | Value |\n")
		b.WriteString("| --- | --- |\n")
		for _, t := range extra {
			fmt.Fprintf(&b, "| `@%s` | %s |\n", t.Name, tableCell(t.Raw))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// tableCell flattens s onto one line and escapes pipes.
func tableCell(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
