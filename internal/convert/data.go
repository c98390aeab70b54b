// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"

	"github.com/pdiddy/swerr/internal/export"
	"github.com/pdiddy/swerr/internal/filelock"
	"github.com/pdiddy/swerr/pkg/types"
)

// Data writes the scheme projection itself, for tooling that consumes it
// directly. Format is "json" or "yaml" and doubles as the converter name.
type Data struct {
	Format export.Format
}

func (d Data) Name() string { return string(d.Format) }

func (d Data) Render(ctx context.Context, cfg types.ConverterConfig, scheme *types.Scheme) error {
	data, err := export.Marshal(scheme, d.Format)
	if err != nil {
		return err
	}
	return filelock.WriteFile(outputFile(cfg, "swerr-docs."+string(d.Format)), data)
}
