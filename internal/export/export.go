// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export persists a Scheme as JSON or YAML and reads it back.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/swerr/internal/filelock"
	"github.com/pdiddy/swerr/pkg/types"
)

// Format selects the serialization of a persisted scheme.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a file name: .yaml and .yml mean YAML,
// everything else JSON.
func FormatFor(fileName string) Format {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Marshal encodes scheme in the given format. JSON is indented by two spaces.
func Marshal(scheme *types.Scheme, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(scheme)
		if err != nil {
			return nil, fmt.Errorf("marshaling YAML: %w", err)
		}
		return data, nil
	case FormatJSON, "":
		data, err := json.MarshalIndent(scheme, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
}

// Save writes scheme to path, choosing the format from its extension.
func Save(path string, scheme *types.Scheme) error {
	data, err := Marshal(scheme, FormatFor(path))
	if err != nil {
		return err
	}
	if err := filelock.WriteFile(path, data); err != nil {
		return fmt.Errorf("writing scheme to %s: %w", path, err)
	}
	return nil
}

// SchemePath returns the file a run persists its scheme to.
func SchemePath(export types.SourceExport) string {
	name := export.FileName
	if name == "" {
		name = types.DefaultSchemeFileName
	}
	return filepath.Join(export.OutputDir, name)
}

// Load reads a scheme previously written by Save.
func Load(path string) (*types.Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scheme: %w", err)
	}

	var scheme types.Scheme
	switch FormatFor(path) {
	case FormatYAML:
		err = yaml.Unmarshal(data, &scheme)
	default:
		err = json.Unmarshal(data, &scheme)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing scheme %s: %w", path, err)
	}
	return &scheme, nil
}
