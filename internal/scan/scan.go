// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan walks a source tree and collects structured comment blocks
// from every eligible file.
package scan

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/swerr/internal/extract"
	"github.com/pdiddy/swerr/pkg/types"
)

// readFile reads an accepted file. Tests replace it to simulate read errors.
var readFile = os.ReadFile

// scanner carries the per-invocation state of one Scan call.
type scanner struct {
	opts    types.ScanOptions
	ignore  map[string]bool
	maxSize int64
	w       io.Writer
	result  *types.ScanResult
}

// Scan walks rootDir depth-first and extracts comment blocks from every file
// that passes the filter policy. Directory entries are visited in the order
// os.ReadDir returns them.
//
// A missing or unlistable root is fatal and returns no result. Files that
// cannot be stat'ed or read, and nested directories that cannot be listed,
// are reported to w and skipped.
func Scan(ctx context.Context, rootDir string, opts types.ScanOptions, w io.Writer) (*types.ScanResult, error) {
	if w == nil {
		w = io.Discard
	}

	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("resolving root directory %s: %w", rootDir, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("reading root directory %s: %w", absRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", absRoot)
	}

	entries, err := os.ReadDir(absRoot)
	if err != nil {
		return nil, fmt.Errorf("reading root directory %s: %w", absRoot, err)
	}

	s := &scanner{
		opts:    opts,
		ignore:  EffectiveIgnoreSet(opts.IgnoreDirs),
		maxSize: opts.EffectiveMaxFileSize(),
		w:       w,
		result:  &types.ScanResult{RootDir: absRoot},
	}

	blocks, err := s.walkEntries(ctx, absRoot, entries)
	if err != nil {
		return nil, err
	}
	s.result.Blocks = blocks
	if s.result.Blocks == nil {
		s.result.Blocks = []types.CommentBlock{}
	}

	return s.result, nil
}

// walkDir lists dir and walks its entries. A listing failure is reported
// and the directory contributes nothing.
func (s *scanner) walkDir(ctx context.Context, dir string) ([]types.CommentBlock, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintf(s.w, "failed  %s: %v\n", dir, err)
		return nil, nil
	}
	return s.walkEntries(ctx, dir, entries)
}

func (s *scanner) walkEntries(ctx context.Context, dir string, entries []os.DirEntry) ([]types.CommentBlock, error) {
	var blocks []types.CommentBlock

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		path := filepath.Join(dir, entry.Name())

		switch {
		case entry.IsDir():
			if !ShouldDescend(entry.Name(), s.ignore) {
				continue
			}
			sub, err := s.walkDir(ctx, path)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, sub...)

		case entry.Type().IsRegular():
			if !ShouldRead(entry.Name(), s.opts) {
				continue
			}
			blocks = append(blocks, s.scanFile(path, entry)...)
		}
	}

	return blocks, nil
}

// scanFile applies the size ceiling, then reads and extracts path.
func (s *scanner) scanFile(path string, entry os.DirEntry) []types.CommentBlock {
	info, err := entry.Info()
	if err != nil {
		fmt.Fprintf(s.w, "failed  %s: %v\n", path, err)
		s.result.FailedFiles++
		return nil
	}

	if info.Size() > s.maxSize {
		fmt.Fprintf(s.w, "skipped %s (%d bytes exceeds limit of %d)\n", path, info.Size(), s.maxSize)
		s.result.SkippedFiles++
		return nil
	}

	data, err := readFile(path)
	if err != nil {
		fmt.Fprintf(s.w, "failed  %s: %v\n", path, err)
		s.result.FailedFiles++
		return nil
	}
	s.result.ScannedFiles++

	blocks := extract.Blocks(string(data))
	for i := range blocks {
		blocks[i].FilePath = path
	}
	return blocks
}
