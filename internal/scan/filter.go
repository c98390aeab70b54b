// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"path/filepath"
	"slices"

	"github.com/pdiddy/swerr/pkg/types"
)

// EffectiveIgnoreSet returns types.DefaultIgnoreDirs merged with user.
// A fresh set is built on every call.
func EffectiveIgnoreSet(user []string) map[string]bool {
	set := make(map[string]bool, len(types.DefaultIgnoreDirs)+len(user))
	for _, name := range types.DefaultIgnoreDirs {
		set[name] = true
	}
	for _, name := range user {
		if name != "" {
			set[name] = true
		}
	}
	return set
}

// ShouldDescend reports whether the directory with basename dirName is
// traversed. Matching is on the basename only, so nested directories with an
// ignored name are skipped too.
func ShouldDescend(dirName string, ignore map[string]bool) bool {
	return !ignore[filepath.Base(dirName)]
}

// ShouldRead reports whether fileName passes the extension whitelist. An
// empty whitelist accepts everything. Size is checked separately by the
// scanner.
func ShouldRead(fileName string, opts types.ScanOptions) bool {
	if len(opts.WhitelistExtensions) == 0 {
		return true
	}
	return slices.Contains(opts.WhitelistExtensions, filepath.Ext(fileName))
}
