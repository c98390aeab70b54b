// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultMaxFileSize is the byte ceiling applied when ScanOptions.MaxFileSize
// is not set. Files larger than this are counted as skipped and never read.
const DefaultMaxFileSize int64 = 2 * 1024 * 1024

// DefaultIgnoreDirs lists directory basenames that are never descended into,
// regardless of configuration.
var DefaultIgnoreDirs = []string{
	"node_modules",
	".git",
	"dist",
	"build",
	"out",
	".next",
	".turbo",
	".cache",
	"coverage",
}

// ScanOptions controls which parts of a source tree the scanner reads.
type ScanOptions struct {
	// IgnoreDirs names extra directories to skip. Merged with DefaultIgnoreDirs.
	IgnoreDirs []string `json:"ignoreDirs" yaml:"ignoreDirs" mapstructure:"ignoreDirs"`

	// WhitelistExtensions restricts reading to files with these extensions
	// (with leading dot, case-sensitive). Empty accepts every file.
	WhitelistExtensions []string `json:"whitelistExtensions" yaml:"whitelistExtensions" mapstructure:"whitelistExtensions"`

	// MaxFileSize is the byte ceiling per file. Zero or negative uses
	// DefaultMaxFileSize.
	MaxFileSize int64 `json:"maxFileSize" yaml:"maxFileSize" mapstructure:"maxFileSize"`
}

// EffectiveMaxFileSize returns MaxFileSize, or DefaultMaxFileSize when unset.
func (o ScanOptions) EffectiveMaxFileSize() int64 {
	if o.MaxFileSize <= 0 {
		return DefaultMaxFileSize
	}
	return o.MaxFileSize
}

// Tag is one annotation line inside a comment block, e.g. "@error E_IO disk failed".
type Tag struct {
	// Name is the lowercase identifier after the '@' marker. Never empty.
	Name string `json:"name" yaml:"name"`

	// Raw is the text following the name, continuation lines joined by
	// single spaces.
	Raw string `json:"raw" yaml:"raw"`
}

// CommentBlock is one parsed /** ... */ occurrence in a source file.
type CommentBlock struct {
	// FilePath is the absolute path of the file the block came from.
	FilePath string `json:"filePath" yaml:"filePath"`

	// StartLine is the 1-based line on which the block opens.
	StartLine int `json:"startLine" yaml:"startLine"`

	// Raw is the original block text including delimiters.
	Raw string `json:"raw" yaml:"raw"`

	// Description is the free text that precedes the first tag line.
	Description string `json:"description" yaml:"description"`

	// Tags holds the block's annotations in source order.
	Tags []Tag `json:"tags" yaml:"tags"`
}

// ScanResult aggregates every comment block found under RootDir.
type ScanResult struct {
	RootDir string `json:"rootDir" yaml:"rootDir"`

	// ScannedFiles counts files whose content was read and parsed.
	ScannedFiles int `json:"scannedFiles" yaml:"scannedFiles"`

	// SkippedFiles counts files excluded only because they exceed the
	// size ceiling.
	SkippedFiles int `json:"skippedFiles" yaml:"skippedFiles"`

	// FailedFiles counts files that passed the filter policy but could not
	// be stat'ed or read.
	FailedFiles int `json:"failedFiles" yaml:"failedFiles"`

	// Blocks are ordered by file, then by position within the file.
	Blocks []CommentBlock `json:"blocks" yaml:"blocks"`
}
