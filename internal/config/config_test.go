// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/swerr/pkg/types"
)

const sampleConfig = `sourceFile:
  inputDir: ./src
  meta:
    projectName: Shop API
    description: Backend errors
    version: 2.1.0
  export:
    outputDir: ./docs
    saveToFile: true
  options:
    ignoreDirs: [vendor]
    whitelistExtensions: [.ts, .js]
converter:
  - name: markdown
    outputPath: ./site
    title: Shop errors
  - name: sqlite
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "swerr.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	src := cfg.SourceFile
	assert.Equal(t, "./src", src.InputDir)
	assert.Equal(t, types.ProjectMeta{ProjectName: "Shop API", Description: "Backend errors", Version: "2.1.0"}, src.Meta)
	assert.Equal(t, "./docs", src.Export.OutputDir)
	assert.True(t, src.Export.SaveToFile)
	assert.Equal(t, types.DefaultSchemeFileName, src.Export.FileName)
	assert.Equal(t, []string{"vendor"}, src.Options.IgnoreDirs)
	assert.Equal(t, []string{".ts", ".js"}, src.Options.WhitelistExtensions)
	assert.Equal(t, types.DefaultMaxFileSize, src.Options.MaxFileSize)

	require.Len(t, cfg.Converters, 2)
	assert.Equal(t, types.ConverterConfig{Name: "markdown", OutputPath: "./site", Title: "Shop errors"}, cfg.Converters[0])
	assert.Equal(t, "sqlite", cfg.Converters[1].Name)
}

func TestLoadFile_EnvOverride(t *testing.T) {
	t.Setenv("SWERR_SOURCEFILE_INPUTDIR", "/elsewhere")

	cfg, err := LoadFile(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, "/elsewhere", cfg.SourceFile.InputDir)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadFile_Malformed(t *testing.T) {
	_, err := LoadFile(writeConfig(t, "sourceFile: [unclosed"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     types.Config
		wantErr string
	}{
		{
			name: "valid",
			cfg: types.Config{SourceFile: types.SourceConfig{
				InputDir: "src", Export: types.SourceExport{OutputDir: "docs"},
			}},
		},
		{
			name:    "missing both directories",
			cfg:     types.Config{},
			wantErr: "sourceFile.inputDir is required; sourceFile.export.outputDir is required",
		},
		{
			name: "unnamed converter",
			cfg: types.Config{
				SourceFile: types.SourceConfig{InputDir: "src", Export: types.SourceExport{OutputDir: "docs"}},
				Converters: []types.ConverterConfig{{Name: "markdown"}, {OutputPath: "x"}},
			},
			wantErr: "converter #2 has no name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestWriteTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultFileName)

	replaced, err := WriteTemplate(path, false)
	require.NoError(t, err)
	assert.False(t, replaced)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	want := Template()
	assert.Equal(t, want.SourceFile.InputDir, cfg.SourceFile.InputDir)
	assert.Equal(t, want.SourceFile.Meta, cfg.SourceFile.Meta)
	assert.Equal(t, want.SourceFile.Export, cfg.SourceFile.Export)
	assert.Equal(t, want.SourceFile.Options.WhitelistExtensions, cfg.SourceFile.Options.WhitelistExtensions)
	assert.Empty(t, cfg.SourceFile.Options.IgnoreDirs)
	assert.Equal(t, want.Converters, cfg.Converters)
	assert.NoError(t, Validate(cfg))

	_, err = WriteTemplate(path, false)
	assert.ErrorContains(t, err, "already exists")

	replaced, err = WriteTemplate(path, true)
	require.NoError(t, err)
	assert.True(t, replaced)
}

func TestWriteTemplate_DirectoryInTheWay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	require.NoError(t, os.Mkdir(path, 0o755))

	_, err := WriteTemplate(path, true)
	assert.ErrorContains(t, err, "directory")
}

func TestWriteTemplate_Header(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	_, err := WriteTemplate(path, false)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	first, _, _ := strings.Cut(string(data), "sourceFile:")
	assert.Contains(t, first, "# Available converters: markdown, html, json, yaml, sqlite;")
	assert.Contains(t, first, "they run in the order listed below.")
	assert.NotContains(t, first, "run in the order listed:")
}
