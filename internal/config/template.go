// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/swerr/pkg/types"
)

// Template returns the starter configuration written by `swerr init`.
func Template() *types.Config {
	return &types.Config{
		SourceFile: types.SourceConfig{
			InputDir: "./src",
			Meta: types.ProjectMeta{
				ProjectName: "Your Application Name",
				Description: "The application description",
				Version:     "1.0.0",
			},
			Export: types.SourceExport{
				OutputDir:  "./docs",
				SaveToFile: false,
				FileName:   types.DefaultSchemeFileName,
			},
			Options: types.ScanOptions{
				IgnoreDirs:          []string{},
				WhitelistExtensions: []string{".js", ".ts"},
				MaxFileSize:         types.DefaultMaxFileSize,
			},
		},
		Converters: []types.ConverterConfig{
			{Name: "markdown", OutputPath: "./docs"},
			{Name: "html", OutputPath: "./docs"},
		},
	}
}

const templateHeader = `# swerr configuration.
# Available converters: markdown, html, json, yaml, sqlite; they run in the order listed below.
`

// WriteTemplate writes Template to path. An existing file or directory is
// only replaced when force is set; it reports whether something was replaced.
func WriteTemplate(path string, force bool) (bool, error) {
	existed := false
	if info, err := os.Lstat(path); err == nil {
		if info.IsDir() {
			return false, fmt.Errorf("a directory named %s already exists", filepath.Base(path))
		}
		if !force {
			return false, fmt.Errorf("%s already exists (use --force to overwrite)", filepath.Base(path))
		}
		existed = true
	}

	data, err := yaml.Marshal(Template())
	if err != nil {
		return false, fmt.Errorf("marshaling template: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, append([]byte(templateHeader), data...), 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return existed, nil
}
