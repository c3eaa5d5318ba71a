//-------------------------------------------------------------------------
//
// pgEdge Listing Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package seed inserts the reference taxonomies, the region, city and
// neighborhood hierarchy, and the agents that properties refer to.
package seed

import (
	"context"
	"fmt"

	"github.com/pgEdge/pgedge-listgen/internal/catalog"
	"github.com/pgEdge/pgedge-listgen/internal/db"
	"github.com/pgEdge/pgedge-listgen/internal/logging"
)

// ReferenceStats counts the taxonomy rows newly inserted by a seeding run.
// Rows that already existed are skipped and not counted.
type ReferenceStats struct {
	Regions       int64
	PropertyTypes int64
	ListingTypes  int64
	Statuses      int64
	Features      int64
}

// SeedReference upserts every taxonomy row of cat keyed by its natural
// key. Re-running it is a no-op.
func SeedReference(ctx context.Context, q db.Querier, cat *catalog.Catalog, batchSize int) (ReferenceStats, error) {
	var stats ReferenceStats
	var err error

	rows := make([][]any, 0, len(cat.Regions))
	for _, r := range cat.Regions {
		rows = append(rows, []any{r.Code, r.Name, r.CountryCode})
	}
	stats.Regions, err = upsert(ctx, q, batchSize, "provinces", `
        INSERT INTO provinces (code, name, country_code) VALUES ($1, $2, $3)
        ON CONFLICT (code) DO NOTHING
    `, rows)
	if err != nil {
		return stats, err
	}

	rows = rows[:0]
	for _, pt := range cat.PropertyTypes {
		rows = append(rows, []any{pt.Name, pt.Description, pt.Category})
	}
	stats.PropertyTypes, err = upsert(ctx, q, batchSize, "property_types", `
        INSERT INTO property_types (name, description, category) VALUES ($1, $2, $3)
        ON CONFLICT (name) DO NOTHING
    `, rows)
	if err != nil {
		return stats, err
	}

	rows = rows[:0]
	for _, lt := range cat.ListingTypes {
		rows = append(rows, []any{lt.Name, lt.Description})
	}
	stats.ListingTypes, err = upsert(ctx, q, batchSize, "listing_types", `
        INSERT INTO listing_types (name, description) VALUES ($1, $2)
        ON CONFLICT (name) DO NOTHING
    `, rows)
	if err != nil {
		return stats, err
	}

	rows = rows[:0]
	for _, st := range cat.Statuses {
		rows = append(rows, []any{st.Name, st.Description, st.IsAvailable})
	}
	stats.Statuses, err = upsert(ctx, q, batchSize, "property_status", `
        INSERT INTO property_status (name, description, is_available) VALUES ($1, $2, $3)
        ON CONFLICT (name) DO NOTHING
    `, rows)
	if err != nil {
		return stats, err
	}

	rows = rows[:0]
	for _, f := range cat.Features {
		rows = append(rows, []any{f.Name, f.Category, f.Description})
	}
	stats.Features, err = upsert(ctx, q, batchSize, "property_features", `
        INSERT INTO property_features (name, category, description) VALUES ($1, $2, $3)
        ON CONFLICT (name) DO NOTHING
    `, rows)
	if err != nil {
		return stats, err
	}

	logging.Info().
		Int64("provinces", stats.Regions).
		Int64("property_types", stats.PropertyTypes).
		Int64("listing_types", stats.ListingTypes).
		Int64("statuses", stats.Statuses).
		Int64("features", stats.Features).
		Msg("Reference data seeded")

	return stats, nil
}

// upsert runs sql once per row through a batch queue and returns the number
// of rows actually inserted.
func upsert(ctx context.Context, q db.Querier, batchSize int, table, sql string, rows [][]any) (int64, error) {
	queue := db.NewBatchQueue(q, batchSize)
	for _, args := range rows {
		if err := queue.Queue(ctx, sql, args...); err != nil {
			return 0, fmt.Errorf("failed to insert %s: %w", table, err)
		}
	}
	if err := queue.Flush(ctx); err != nil {
		return 0, fmt.Errorf("failed to insert %s: %w", table, err)
	}
	return queue.RowsAffected(), nil
}
