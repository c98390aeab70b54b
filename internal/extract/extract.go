// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract finds structured /** ... */ comment blocks in source text
// and splits each into a description and an ordered list of @tags.
package extract

import (
	"strings"

	"github.com/pdiddy/swerr/pkg/types"
)

const (
	blockOpen  = "/**"
	blockClose = "*/"
	tagMarker  = '@'
)

// Blocks returns every structured comment block in content, in source order.
// FilePath is left empty; the scanner fills it in. Blocks without tags are
// included.
func Blocks(content string) []types.CommentBlock {
	var blocks []types.CommentBlock

	pos := 0
	for {
		rel := strings.Index(content[pos:], blockOpen)
		if rel < 0 {
			break
		}
		start := pos + rel
		bodyStart := start + len(blockOpen)

		// "/**/" is an empty plain comment, not a doc block.
		if strings.HasPrefix(content[bodyStart:], "/") {
			pos = bodyStart + 1
			continue
		}

		relEnd := strings.Index(content[bodyStart:], blockClose)
		if relEnd < 0 {
			break
		}
		end := bodyStart + relEnd

		desc, tags := parseBody(content[bodyStart:end])
		blocks = append(blocks, types.CommentBlock{
			StartLine:   strings.Count(content[:start], "\n") + 1,
			Raw:         content[start : end+len(blockClose)],
			Description: desc,
			Tags:        tags,
		})

		pos = end + len(blockClose)
	}

	return blocks
}

// tagGroup collects the lines belonging to one tag until the next marker.
type tagGroup struct {
	name  string
	parts []string
}

// parseBody splits the interior of a block into its description and tags.
func parseBody(body string) (string, []types.Tag) {
	var (
		descLines []string
		groups    []*tagGroup
		current   *tagGroup
		inTags    bool
	)

	for _, line := range strings.Split(body, "\n") {
		line = normalizeLine(line)

		if len(line) > 0 && line[0] == tagMarker {
			inTags = true
			name, rest := splitTagLine(line[1:])
			if name == "" {
				// Nameless marker: drop it along with its continuation lines.
				current = nil
				continue
			}
			current = &tagGroup{name: name}
			appendPart(current, rest)
			groups = append(groups, current)
			continue
		}

		if !inTags {
			descLines = append(descLines, strings.TrimSpace(line))
			continue
		}
		if current != nil {
			appendPart(current, line)
		}
	}

	tags := make([]types.Tag, 0, len(groups))
	for _, g := range groups {
		tags = append(tags, types.Tag{
			Name: g.name,
			Raw:  strings.Join(g.parts, " "),
		})
	}

	return strings.TrimSpace(strings.Join(descLines, "\n")), tags
}

// normalizeLine strips carriage returns and the leading " * " decoration.
func normalizeLine(line string) string {
	line = strings.TrimRight(line, "\r")
	line = strings.TrimLeft(line, " \t")
	line = strings.TrimLeft(line, "*")
	return strings.TrimLeft(line, " \t")
}

// splitTagLine separates the tag name from the rest of the line. The name
// is returned lowercased.
func splitTagLine(s string) (name, rest string) {
	if s == "" || strings.IndexByte(" \t\f\v", s[0]) >= 0 {
		return "", ""
	}
	i := strings.IndexAny(s, " \t\f\v")
	if i < 0 {
		return strings.ToLower(s), ""
	}
	return strings.ToLower(s[:i]), s[i:]
}

func appendPart(g *tagGroup, s string) {
	if s = strings.TrimSpace(s); s != "" {
		g.parts = append(g.parts, s)
	}
}
