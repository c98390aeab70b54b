// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pdiddy/swerr/pkg/types"
)

// QueryOptions holds catalog search parameters. Empty options list every
// record up to MaxResults.
type QueryOptions struct {
	// Query matches case-insensitively against name and description.
	Query string

	// Name filters by exact error name.
	Name string

	// Tag keeps records carrying a tag with this name.
	Tag string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// Search returns matching records in their original scheme order.
func (s *Store) Search(ctx context.Context, opts QueryOptions) ([]types.ErrorRecord, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)

	qb.WriteString(`SELECT e.id, e.name, e.description, e.source_file, e.source_line
		FROM errors e WHERE 1=1`)

	if opts.Query != "" {
		like := "%" + strings.ToLower(opts.Query) + "%"
		qb.WriteString(` AND (lower(e.name) LIKE ? OR lower(e.description) LIKE ?)`)
		args = append(args, like, like)
	}
	if opts.Name != "" {
		qb.WriteString(` AND e.name = ?`)
		args = append(args, opts.Name)
	}
	if opts.Tag != "" {
		qb.WriteString(` AND EXISTS (SELECT 1 FROM error_tags t WHERE t.error_id = e.id AND t.name = ?)`)
		args = append(args, strings.ToLower(opts.Tag))
	}

	qb.WriteString(` ORDER BY e.position LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}

	var (
		ids     []int64
		results []types.ErrorRecord
	)
	for rows.Next() {
		var (
			id   int64
			rec  types.ErrorRecord
			file sql.NullString
			line sql.NullInt64
		)
		if err := rows.Scan(&id, &rec.Name, &rec.Description, &file, &line); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		rec.SourceFile = file.String
		rec.SourceLine = int(line.Int64)
		ids = append(ids, id)
		results = append(results, rec)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i, id := range ids {
		tags, err := s.tagsFor(ctx, id)
		if err != nil {
			return nil, err
		}
		results[i].Tags = tags
	}

	return results, nil
}

func (s *Store) tagsFor(ctx context.Context, errorID int64) ([]types.Tag, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, raw FROM error_tags WHERE error_id = ? ORDER BY position`, errorID)
	if err != nil {
		return nil, fmt.Errorf("querying tags: %w", err)
	}
	defer rows.Close()

	tags := []types.Tag{}
	for rows.Next() {
		var t types.Tag
		if err := rows.Scan(&t.Name, &t.Raw); err != nil {
			return nil, fmt.Errorf("scanning tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// Project returns the project metadata stored by the last Ingest.
func (s *Store) Project(ctx context.Context) (types.ProjectMeta, error) {
	var meta types.ProjectMeta
	err := s.db.QueryRowContext(ctx,
		`SELECT name, description, version FROM project WHERE id = 1`,
	).Scan(&meta.ProjectName, &meta.Description, &meta.Version)
	if err == sql.ErrNoRows {
		return meta, fmt.Errorf("catalog %s is empty", s.path)
	}
	if err != nil {
		return meta, fmt.Errorf("reading project: %w", err)
	}
	return meta, nil
}
