// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/swerr/pkg/types"
)

func TestEffectiveIgnoreSet(t *testing.T) {
	set := EffectiveIgnoreSet([]string{"vendor", ""})

	for _, name := range types.DefaultIgnoreDirs {
		assert.True(t, set[name], "default %q missing", name)
	}
	assert.True(t, set["vendor"])
	assert.False(t, set[""])
	assert.Len(t, set, len(types.DefaultIgnoreDirs)+1)
}

func TestEffectiveIgnoreSet_FreshPerCall(t *testing.T) {
	first := EffectiveIgnoreSet([]string{"tmp"})
	second := EffectiveIgnoreSet(nil)

	assert.True(t, first["tmp"])
	assert.False(t, second["tmp"])
}

func TestShouldDescend(t *testing.T) {
	ignore := EffectiveIgnoreSet([]string{"generated"})

	tests := []struct {
		dir  string
		want bool
	}{
		{"src", true},
		{"node_modules", false},
		{".git", false},
		{"generated", false},
		{"a/b/dist", false},
		{"distribution", true},
		{"Build", true},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldDescend(tt.dir, ignore))
		})
	}
}

func TestShouldRead(t *testing.T) {
	tests := []struct {
		name      string
		whitelist []string
		file      string
		want      bool
	}{
		{"empty whitelist accepts all", nil, "anything.bin", true},
		{"empty whitelist accepts extensionless", nil, "Makefile", true},
		{"listed extension", []string{".js", ".ts"}, "index.ts", true},
		{"unlisted extension", []string{".js", ".ts"}, "main.go", false},
		{"case sensitive", []string{".ts"}, "INDEX.TS", false},
		{"no extension with whitelist", []string{".ts"}, "Makefile", false},
		{"only last extension counts", []string{".ts"}, "types.d.ts", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := types.ScanOptions{WhitelistExtensions: tt.whitelist}
			assert.Equal(t, tt.want, ShouldRead(tt.file, opts))
		})
	}
}
