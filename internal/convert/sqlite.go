// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"

	"github.com/pdiddy/swerr/internal/catalog"
	"github.com/pdiddy/swerr/pkg/types"
)

// SQLite indexes the scheme into a searchable catalog database.
type SQLite struct{}

func (SQLite) Name() string { return "sqlite" }

func (SQLite) Render(ctx context.Context, cfg types.ConverterConfig, scheme *types.Scheme) error {
	store, err := catalog.Open(outputFile(cfg, catalog.DefaultFileName))
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Ingest(ctx, scheme)
	return err
}
