// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/swerr/pkg/types"
)

func sampleScheme() *types.Scheme {
	return &types.Scheme{
		Name:        "Shop API",
		Description: "Errors raised by the shop backend",
		Version:     "1.2.0",
		Errors: []types.ErrorRecord{
			{
				Name:        "E_NOT_FOUND",
				Description: "Item does not exist",
				Tags: []types.Tag{
					{Name: "error", Raw: "E_NOT_FOUND Item does not exist"},
					{Name: "status", Raw: "404"},
				},
				SourceFile: "/src/items.ts",
				SourceLine: 12,
			},
			{
				Name:        "E_DUP",
				Description: "second",
				Tags:        []types.Tag{{Name: "error", Raw: "E_DUP"}},
				SourceFile:  "/src/a.ts",
				SourceLine:  1,
			},
		},
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		file string
		want Format
	}{
		{"swerr-docs.json", FormatJSON},
		{"scheme.yaml", FormatYAML},
		{"scheme.YML", FormatYAML},
		{"noext", FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFor(tt.file))
		})
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	for _, name := range []string{"swerr-docs.json", "swerr-docs.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			want := sampleScheme()

			require.NoError(t, Save(path, want))
			got, err := Load(path)
			require.NoError(t, err)

			assert.Equal(t, want, got)
		})
	}
}

func TestMarshal_JSONFieldNames(t *testing.T) {
	data, err := Marshal(sampleScheme(), FormatJSON)
	require.NoError(t, err)

	for _, field := range []string{`"name"`, `"description"`, `"version"`, `"errors"`, `"tags"`, `"raw"`, `"sourceFile"`, `"sourceLine"`} {
		assert.Contains(t, string(data), field)
	}
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"name\""))
}

func TestMarshal_UnsupportedFormat(t *testing.T) {
	_, err := Marshal(sampleScheme(), Format("xml"))
	assert.ErrorContains(t, err, "unsupported format")
}

func TestSchemePath(t *testing.T) {
	assert.Equal(t, filepath.Join("docs", types.DefaultSchemeFileName),
		SchemePath(types.SourceExport{OutputDir: "docs"}))
	assert.Equal(t, filepath.Join("docs", "debug.yaml"),
		SchemePath(types.SourceExport{OutputDir: "docs", FileName: "debug.yaml"}))
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "parsing scheme")
}
