// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultSchemeFileName is the file written when SourceExport.SaveToFile is
// set and no FileName is configured.
const DefaultSchemeFileName = "swerr-docs.json"

// ProjectMeta is copied verbatim onto the generated Scheme.
type ProjectMeta struct {
	ProjectName string `json:"projectName" yaml:"projectName" mapstructure:"projectName"`
	Description string `json:"description" yaml:"description" mapstructure:"description"`
	Version     string `json:"version" yaml:"version" mapstructure:"version"`
}

// SourceExport controls where generated output goes and whether the
// intermediate scheme is persisted for debugging.
type SourceExport struct {
	// OutputDir is created if missing. Converters usually write below it.
	OutputDir string `json:"outputDir" yaml:"outputDir" mapstructure:"outputDir"`

	// SaveToFile writes the scheme to OutputDir/FileName.
	SaveToFile bool `json:"saveToFile" yaml:"saveToFile" mapstructure:"saveToFile"`

	// FileName defaults to DefaultSchemeFileName.
	FileName string `json:"fileName" yaml:"fileName" mapstructure:"fileName"`
}

// SourceConfig describes the tree to scan and the project it belongs to.
type SourceConfig struct {
	InputDir string       `json:"inputDir" yaml:"inputDir" mapstructure:"inputDir"`
	Meta     ProjectMeta  `json:"meta" yaml:"meta" mapstructure:"meta"`
	Export   SourceExport `json:"export" yaml:"export" mapstructure:"export"`
	Options  ScanOptions  `json:"options" yaml:"options" mapstructure:"options"`
}

// ConverterConfig selects one registered converter and its output location.
type ConverterConfig struct {
	// Name is the registry key: markdown, html, json, yaml, or sqlite.
	Name string `json:"name" yaml:"name" mapstructure:"name"`

	// OutputPath is the directory the converter writes into. Falls back to
	// SourceExport.OutputDir when empty.
	OutputPath string `json:"outputPath" yaml:"outputPath" mapstructure:"outputPath"`

	// FileName overrides the converter's default output file name.
	FileName string `json:"fileName,omitempty" yaml:"fileName,omitempty" mapstructure:"fileName"`

	// Title overrides the document title (markdown and html only).
	Title string `json:"title,omitempty" yaml:"title,omitempty" mapstructure:"title"`
}

// Config is the full run configuration.
type Config struct {
	SourceFile SourceConfig      `json:"sourceFile" yaml:"sourceFile" mapstructure:"sourceFile"`
	Converters []ConverterConfig `json:"converter" yaml:"converter" mapstructure:"converter"`
}
