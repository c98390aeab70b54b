// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert renders a Scheme into documentation artifacts. Each output
// format is a Converter registered by name; a run resolves its configured
// converters into an ordered task list and executes them one at a time.
package convert

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/pdiddy/swerr/internal/export"
	"github.com/pdiddy/swerr/pkg/types"
)

// Converter renders a scheme into one kind of output.
type Converter interface {
	// Name is the registry key used in configuration.
	Name() string

	// Render writes the converter's output for scheme. cfg.OutputPath is
	// always set when called through RunAll.
	Render(ctx context.Context, cfg types.ConverterConfig, scheme *types.Scheme) error
}

// Registry maps converter names to implementations.
type Registry struct {
	converters map[string]Converter
}

// NewRegistry returns a registry holding the given converters.
func NewRegistry(converters ...Converter) *Registry {
	r := &Registry{converters: make(map[string]Converter, len(converters))}
	for _, c := range converters {
		r.Register(c)
	}
	return r
}

// DefaultRegistry returns a registry with every built-in converter.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Markdown{},
		HTML{},
		Data{Format: export.FormatJSON},
		Data{Format: export.FormatYAML},
		SQLite{},
	)
}

// Register adds c, replacing any converter with the same name.
func (r *Registry) Register(c Converter) {
	r.converters[c.Name()] = c
}

// Lookup returns the converter registered under name.
func (r *Registry) Lookup(name string) (Converter, error) {
	c, ok := r.converters[name]
	if !ok {
		return nil, fmt.Errorf("unknown converter %q (available: %v)", name, r.Names())
	}
	return c, nil
}

// Names returns the registered converter names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.converters))
	for name := range r.converters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Task is one resolved converter invocation.
type Task struct {
	Converter Converter
	Config    types.ConverterConfig
}

// Resolve turns configured converters into tasks, preserving order. Empty
// output paths fall back to defaultOutputDir. An unknown name fails the
// whole resolution so that nothing runs.
func (r *Registry) Resolve(configs []types.ConverterConfig, defaultOutputDir string) ([]Task, error) {
	tasks := make([]Task, 0, len(configs))
	for i, cfg := range configs {
		c, err := r.Lookup(cfg.Name)
		if err != nil {
			return nil, fmt.Errorf("converter #%d: %w", i+1, err)
		}
		if cfg.OutputPath == "" {
			cfg.OutputPath = defaultOutputDir
		}
		if cfg.OutputPath == "" {
			return nil, fmt.Errorf("converter #%d (%s): no output path", i+1, cfg.Name)
		}
		tasks = append(tasks, Task{Converter: c, Config: cfg})
	}
	return tasks, nil
}

// RunAll executes tasks in order, waiting for each to finish before starting
// the next. The first failure stops the run; output from tasks that already
// completed is kept. It returns the number of tasks that succeeded.
func RunAll(ctx context.Context, tasks []Task, scheme *types.Scheme, w io.Writer) (int, error) {
	if w == nil {
		w = io.Discard
	}
	for i, task := range tasks {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := task.Converter.Render(ctx, task.Config, scheme); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", task.Converter.Name(), err)
			return i, fmt.Errorf("converter %s: %w", task.Converter.Name(), err)
		}
		fmt.Fprintf(w, "rendered: %s -> %s\n", task.Converter.Name(), task.Config.OutputPath)
	}
	return len(tasks), nil
}

// outputFile joins the configured output directory with the configured
// file name, or with fallback when none is set.
func outputFile(cfg types.ConverterConfig, fallback string) string {
	name := cfg.FileName
	if name == "" {
		name = fallback
	}
	return filepath.Join(cfg.OutputPath, name)
}
