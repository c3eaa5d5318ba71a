//-------------------------------------------------------------------------
//
// pgEdge Listing Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package validate runs read-only consistency checks against a generated
// listing database.
package validate

import (
	"context"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"

	"github.com/pgEdge/pgedge-listgen/internal/catalog"
	"github.com/pgEdge/pgedge-listgen/internal/db"
	"github.com/pgEdge/pgedge-listgen/internal/logging"
	"github.com/pgEdge/pgedge-listgen/internal/sampler"
	"github.com/pgEdge/pgedge-listgen/internal/schema"
)

// Check is the outcome of one consistency check.
type Check struct {
	Name       string
	Violations int64
}

// Passed reports whether the check found no violations.
func (c Check) Passed() bool {
	return c.Violations == 0
}

// Bucket is one row of a distribution.
type Bucket struct {
	Name  string
	Count int64
}

// Report collects the row counts, check results and distributions.
type Report struct {
	Counts        map[string]int64
	Checks        []Check
	PropertyTypes []Bucket
	ListingTypes  []Bucket
	Metadata      map[string]string
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	return len(r.Failed()) == 0
}

// Failed returns the checks that found violations.
func (r *Report) Failed() []Check {
	var failed []Check
	for _, c := range r.Checks {
		if !c.Passed() {
			failed = append(failed, c)
		}
	}
	return failed
}

// Log writes the report through the validate phase logger.
func (r *Report) Log() {
	log := logging.Phase("validate")

	tables := make([]string, 0, len(r.Counts))
	for t := range r.Counts {
		tables = append(tables, t)
	}
	sort.Strings(tables)
	for _, t := range tables {
		log.Info().Str("table", t).Int64("rows", r.Counts[t]).Msg("Row count")
	}
	for _, b := range r.PropertyTypes {
		log.Info().Str("property_type", b.Name).Int64("count", b.Count).Msg("Property type distribution")
	}
	for _, b := range r.ListingTypes {
		log.Info().Str("listing_type", b.Name).Int64("count", b.Count).Msg("Listing type distribution")
	}
	for _, c := range r.Checks {
		if c.Passed() {
			log.Info().Str("check", c.Name).Msg("Check passed")
		} else {
			log.Error().Str("check", c.Name).Int64("violations", c.Violations).Msg("Check failed")
		}
	}
	if seed, ok := r.Metadata["seed"]; ok {
		log.Info().Str("seed", seed).Str("generated_at", r.Metadata["generated_at"]).Msg("Generation metadata")
	}
}

// check is a query returning the number of violating rows.
type check struct {
	name string
	sql  string
	args []any
}

// GroundTypeNames returns the property type names whose category carries
// a lot size.
func GroundTypeNames(cat *catalog.Catalog) []string {
	var names []string
	for _, pt := range cat.PropertyTypes {
		c, _ := catalog.ParseCategory(pt.Name)
		if c.Profile().Ground {
			names = append(names, pt.Name)
		}
	}
	return names
}

// FeatureBounds returns the inclusive features-per-property range for a
// catalog of n features.
func FeatureBounds(n int64) (lo, hi int64) {
	return min(sampler.MinFeatures, n), min(sampler.MaxFeatures, n)
}

func checks(cat *catalog.Catalog, features int64) []check {
	lo, hi := FeatureBounds(features)
	return []check{
		{
			name: "agent emails unique",
			sql:  "SELECT COUNT(*) - COUNT(DISTINCT email) FROM agents",
		},
		{
			name: "agent licenses unique",
			sql:  "SELECT COUNT(*) - COUNT(DISTINCT license_number) FROM agents",
		},
		{
			name: "listing codes unique",
			sql:  "SELECT COUNT(mls_number) - COUNT(DISTINCT mls_number) FROM properties",
		},
		{
			name: "sale listings priced",
			sql: `SELECT COUNT(*) FROM properties p
				JOIN listing_types lt ON lt.id = p.listing_type_id
				WHERE lt.name = 'Sale' AND (p.list_price IS NULL OR p.monthly_rent IS NOT NULL)`,
		},
		{
			name: "rental listings priced",
			sql: `SELECT COUNT(*) FROM properties p
				JOIN listing_types lt ON lt.id = p.listing_type_id
				WHERE lt.name <> 'Sale' AND (p.monthly_rent IS NULL OR p.list_price IS NOT NULL)`,
		},
		{
			name: "lot size on ground categories only",
			sql: `SELECT COUNT(*) FROM properties p
				JOIN property_types pt ON pt.id = p.property_type_id
				WHERE (pt.name = ANY($1)) <> (p.lot_size_sqft IS NOT NULL)`,
			args: []any{GroundTypeNames(cat)},
		},
		{
			name: "one primary image first",
			sql: `SELECT COUNT(*) FROM (
				SELECT p.id FROM properties p
				LEFT JOIN property_images i ON i.property_id = p.id
				GROUP BY p.id
				HAVING COUNT(*) FILTER (WHERE i.is_primary) <> 1
				    OR MIN(i.display_order) FILTER (WHERE i.is_primary) IS DISTINCT FROM MIN(i.display_order)
			) v`,
		},
		{
			name: "features per property",
			sql: `SELECT COUNT(*) FROM (
				SELECT COUNT(m.feature_id) AS n, COUNT(DISTINCT m.feature_id) AS d
				FROM properties p
				LEFT JOIN property_feature_mappings m ON m.property_id = p.id
				GROUP BY p.id
			) v WHERE n <> d OR n < $1 OR n > $2`,
			args: []any{lo, hi},
		},
		{
			name: "search rows match properties",
			sql: `SELECT COUNT(*) FROM properties p
				FULL JOIN search_table s ON s.id = p.id
				WHERE p.id IS NULL OR s.id IS NULL`,
		},
	}
}

// Run executes every check and gathers the report. It fails only when a
// query cannot run; failing checks are reported in the result.
func Run(ctx context.Context, q db.Querier, cat *catalog.Catalog) (*Report, error) {
	r := &Report{Counts: make(map[string]int64)}

	for _, table := range schema.Tables {
		n, err := db.CountRows(ctx, q, table)
		if err != nil {
			return nil, err
		}
		r.Counts[table] = n
	}

	for _, c := range checks(cat, r.Counts[schema.Features]) {
		var violations int64
		if err := q.QueryRow(ctx, c.sql, c.args...).Scan(&violations); err != nil {
			return nil, fmt.Errorf("check %q failed to run: %w", c.name, err)
		}
		r.Checks = append(r.Checks, Check{Name: c.name, Violations: violations})
	}

	var err error
	r.PropertyTypes, err = distribution(ctx, q, schema.PropertyTypes, "property_type_id")
	if err != nil {
		return nil, err
	}
	r.ListingTypes, err = distribution(ctx, q, schema.ListingTypes, "listing_type_id")
	if err != nil {
		return nil, err
	}

	r.Metadata, err = db.GetAllMetadata(ctx, q)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func distribution(ctx context.Context, q db.Querier, table, fk string) ([]Bucket, error) {
	sql := fmt.Sprintf(`SELECT t.name, COUNT(p.id)
		FROM %s t LEFT JOIN properties p ON p.%s = t.id
		GROUP BY t.name ORDER BY COUNT(p.id) DESC, t.name`,
		pgx.Identifier{table}.Sanitize(), pgx.Identifier{fk}.Sanitize())
	rows, err := q.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s distribution: %w", table, err)
	}
	buckets, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Bucket])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s distribution: %w", table, err)
	}
	return buckets, nil
}
