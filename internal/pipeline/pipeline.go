// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one documentation pass: validate the configuration,
// scan the source tree, translate blocks into a scheme, optionally persist
// the scheme, then render it with each configured converter in order.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pdiddy/swerr/internal/config"
	"github.com/pdiddy/swerr/internal/convert"
	"github.com/pdiddy/swerr/internal/export"
	"github.com/pdiddy/swerr/internal/scan"
	"github.com/pdiddy/swerr/internal/translate"
	"github.com/pdiddy/swerr/pkg/types"
)

// Logger receives progress messages. *logger.ConsoleLogger satisfies it.
type Logger interface {
	Infof(format string, args ...any)
	Successf(format string, args ...any)
	Warnf(format string, args ...any)
	Writer(level string) io.Writer
}

// Summary describes a completed run.
type Summary struct {
	Scan   *types.ScanResult
	Scheme *types.Scheme

	// SchemePath is set when the scheme was persisted.
	SchemePath string

	// Rendered counts converters that completed.
	Rendered int
}

// Run executes the pipeline for cfg. Configuration problems are reported
// before any scanning happens. A converter failure stops the remaining
// converters and is returned along with the partial summary.
func Run(ctx context.Context, cfg *types.Config, registry *convert.Registry, log Logger) (*Summary, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	inputDir, err := filepath.Abs(cfg.SourceFile.InputDir)
	if err != nil {
		return nil, fmt.Errorf("resolving input directory: %w", err)
	}
	outputDir, err := filepath.Abs(cfg.SourceFile.Export.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("resolving output directory: %w", err)
	}

	info, err := os.Stat(inputDir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("source directory %q does not exist: %w", inputDir, err)
	case err != nil:
		return nil, fmt.Errorf("source directory %q: %w", inputDir, err)
	case !info.IsDir():
		return nil, fmt.Errorf("source directory %q is not a directory", inputDir)
	}

	tasks, err := registry.Resolve(cfg.Converters, outputDir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %q: %w", outputDir, err)
	}

	result, err := scan.Scan(ctx, inputDir, cfg.SourceFile.Options, log.Writer("warn"))
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", inputDir, err)
	}
	log.Infof("Scanned %d comment block(s) from %d file(s).", len(result.Blocks), result.ScannedFiles)
	if result.SkippedFiles > 0 {
		log.Warnf("Skipped %d file(s) larger than %d bytes.", result.SkippedFiles, cfg.SourceFile.Options.EffectiveMaxFileSize())
	}
	if result.FailedFiles > 0 {
		log.Warnf("Could not read %d file(s).", result.FailedFiles)
	}

	scheme := translate.Translate(result, cfg.SourceFile.Meta)
	log.Infof("Translated scan result to scheme with %d error(s).", len(scheme.Errors))

	summary := &Summary{Scan: result, Scheme: scheme}

	if cfg.SourceFile.Export.SaveToFile {
		exp := cfg.SourceFile.Export
		exp.OutputDir = outputDir
		path, err := saveScheme(exp, scheme)
		if err != nil {
			return summary, err
		}
		summary.SchemePath = path
		log.Successf("Scheme written to %s", path)
	}

	summary.Rendered, err = convert.RunAll(ctx, tasks, scheme, log.Writer("info"))
	if err != nil {
		return summary, err
	}
	if summary.Rendered > 0 {
		log.Successf("Rendered %d converter(s).", summary.Rendered)
	}

	return summary, nil
}

func saveScheme(exp types.SourceExport, scheme *types.Scheme) (string, error) {
	path := export.SchemePath(exp)
	if err := export.Save(path, scheme); err != nil {
		return "", err
	}
	return path, nil
}
