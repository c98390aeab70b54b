// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package translate turns scanned comment blocks into a Scheme of error
// records.
package translate

import (
	"strings"

	"github.com/pdiddy/swerr/pkg/types"
)

// Translate builds a Scheme from every block in result that carries an
// @error tag. Blocks without one are dropped. Records keep scan order and
// duplicate names are all retained. meta is copied without defaulting.
func Translate(result *types.ScanResult, meta types.ProjectMeta) *types.Scheme {
	scheme := &types.Scheme{
		Name:        meta.ProjectName,
		Description: meta.Description,
		Version:     meta.Version,
		Errors:      []types.ErrorRecord{},
	}
	if result == nil {
		return scheme
	}

	for _, block := range result.Blocks {
		marker, ok := findMarker(block.Tags)
		if !ok {
			continue
		}
		scheme.Errors = append(scheme.Errors, toRecord(block, marker))
	}

	return scheme
}

// findMarker returns the first tag named types.ErrorTag, ignoring case.
func findMarker(tags []types.Tag) (types.Tag, bool) {
	for _, t := range tags {
		if strings.EqualFold(t.Name, types.ErrorTag) {
			return t, true
		}
	}
	return types.Tag{}, false
}

func toRecord(block types.CommentBlock, marker types.Tag) types.ErrorRecord {
	name, rest := splitFirstToken(marker.Raw)

	desc := block.Description
	if desc == "" {
		desc = rest
	}

	tags := make([]types.Tag, len(block.Tags))
	copy(tags, block.Tags)

	return types.ErrorRecord{
		Name:        name,
		Description: desc,
		Tags:        tags,
		SourceFile:  block.FilePath,
		SourceLine:  block.StartLine,
	}
}

// splitFirstToken returns the first whitespace-delimited token of s and the
// trimmed remainder. Internal whitespace in the remainder is preserved.
func splitFirstToken(s string) (string, string) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, isSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == '\v'
}
