//-------------------------------------------------------------------------
//
// pgEdge Listing Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package pipeline runs the generation phases in order, each in its own
// transaction: reference seeding, locations, agents, properties and the
// search table rebuild.
package pipeline

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pgEdge/pgedge-listgen/internal/catalog"
	"github.com/pgEdge/pgedge-listgen/internal/config"
	"github.com/pgEdge/pgedge-listgen/internal/datagen"
	"github.com/pgEdge/pgedge-listgen/internal/db"
	"github.com/pgEdge/pgedge-listgen/internal/listing"
	"github.com/pgEdge/pgedge-listgen/internal/logging"
	"github.com/pgEdge/pgedge-listgen/internal/sampler"
	"github.com/pgEdge/pgedge-listgen/internal/schema"
	"github.com/pgEdge/pgedge-listgen/internal/search"
	"github.com/pgEdge/pgedge-listgen/internal/seed"
	"github.com/pgEdge/pgedge-listgen/pkg/version"
)

// Phase names, as used in logs and PhaseError.
const (
	PhaseReset      = "reset"
	PhaseReference  = "reference"
	PhaseLocations  = "locations"
	PhaseAgents     = "agents"
	PhaseProperties = "properties"
	PhaseSearch     = "search"
)

// Options configures a run.
type Options struct {
	Catalog  *catalog.Catalog
	Generate config.GenerateConfig

	// Today anchors listing and availability dates.
	Today time.Time
}

// Result summarizes a run.
type Result struct {
	// Skipped is set when existing data was found and Force was not given.
	Skipped bool

	Reference  seed.ReferenceStats
	Locations  seed.LocationStats
	Agents     int64
	Listings   listing.Stats
	SearchRows int64
	Elapsed    time.Duration
}

// Existing holds the fact table counts checked before a run.
type Existing struct {
	Properties int64
	Agents     int64
}

// Found reports whether a previous run left data behind.
func (e Existing) Found() bool {
	return e.Properties > 0 || e.Agents > 0
}

// CheckExisting counts the rows of the two fact tables.
func CheckExisting(ctx context.Context, q db.Querier) (Existing, error) {
	var e Existing
	var err error
	if e.Properties, err = db.CountRows(ctx, q, schema.Properties); err != nil {
		return e, err
	}
	if e.Agents, err = db.CountRows(ctx, q, schema.Agents); err != nil {
		return e, err
	}
	return e, nil
}

var tableSizes = datagen.NewSizeCalculator([]datagen.TableSizeInfo{
	{Name: schema.Agents, BaseRowSize: 220},
	{Name: schema.Properties, BaseRowSize: 900, IndexFactor: 1.4},
	{Name: schema.FeatureMappings, BaseRowSize: 60, IndexFactor: 2.0},
	{Name: schema.Images, BaseRowSize: 180},
	{Name: schema.SearchTable, BaseRowSize: 1600, IndexFactor: 1.2},
})

// EstimateSize returns the approximate on-disk size of a run generating
// the given numbers of properties and agents.
func EstimateSize(properties, agents int) int64 {
	lo, hi := sampler.MinFeatures, sampler.MaxFeatures
	p := int64(properties)
	return tableSizes.EstimatedSize(map[string]int64{
		schema.Agents:          int64(agents),
		schema.Properties:      p,
		schema.FeatureMappings: p * int64(lo+hi) / 2,
		schema.Images:          p * int64(listing.MinImages+listing.MaxImages) / 2,
		schema.SearchTable:     p,
	})
}

// Run executes the pipeline. A failed phase rolls back its own work only;
// phases committed before it stay committed and the returned error is a
// *db.PhaseError naming the failed phase.
func Run(ctx context.Context, d db.DB, opts Options) (*Result, error) {
	start := time.Now()
	g := opts.Generate
	res := &Result{}

	if g.CreateSchema {
		if err := schema.Create(ctx, d); err != nil {
			return nil, err
		}
	}

	existing, err := CheckExisting(ctx, d)
	if err != nil {
		return nil, err
	}
	if existing.Found() {
		if !g.Force {
			logging.Warn().
				Int64("properties", existing.Properties).
				Int64("agents", existing.Agents).
				Msg("Data already exists, skipping generation (use --force to regenerate)")
			res.Skipped = true
			return res, nil
		}
		err := db.RunPhase(ctx, d, PhaseReset, func(ctx context.Context, tx pgx.Tx) error {
			return schema.Reset(ctx, tx)
		})
		if err != nil {
			return nil, err
		}
	}

	logging.Info().
		Int("properties", g.Properties).
		Int("agents", g.Agents).
		Uint64("seed", g.Seed).
		Str("estimated_size", datagen.FormatSize(EstimateSize(g.Properties, g.Agents))).
		Msg("Generating listing data")

	s := datagen.NewSession(g.Seed, opts.Today)
	batch := datagen.BatchInsertConfig{BatchSize: g.BatchSize, ProgressInterval: int64(g.ProgressInterval)}

	err = db.RunPhase(ctx, d, PhaseReference, func(ctx context.Context, tx pgx.Tx) error {
		stats, err := seed.SeedReference(ctx, tx, opts.Catalog, g.BatchSize)
		res.Reference = stats
		return err
	})
	if err != nil {
		return nil, err
	}

	err = db.RunPhase(ctx, d, PhaseLocations, func(ctx context.Context, tx pgx.Tx) error {
		stats, err := seed.GenerateLocations(ctx, tx, s, opts.Catalog, g.NeighborhoodsPerCity, g.BatchSize)
		res.Locations = stats
		return err
	})
	if err != nil {
		return nil, err
	}

	err = db.RunPhase(ctx, d, PhaseAgents, func(ctx context.Context, tx pgx.Tx) error {
		n, err := seed.GenerateAgents(ctx, tx, s, g.Agents, batch)
		res.Agents = n
		return err
	})
	if err != nil {
		return nil, err
	}

	err = db.RunPhase(ctx, d, PhaseProperties, func(ctx context.Context, tx pgx.Tx) error {
		snap, err := sampler.Load(ctx, tx, opts.Catalog.ActiveStatus)
		if err != nil {
			return err
		}
		res.Listings, err = listing.GenerateProperties(ctx, tx, s, snap, g.Properties, batch, g.ListingCodeAttempts)
		return err
	})
	if err != nil {
		return nil, err
	}

	if res.SearchRows, err = Materialize(ctx, d); err != nil {
		return nil, err
	}

	meta := version.Metadata()
	meta["generated_at"] = time.Now().UTC().Format(time.RFC3339)
	meta["seed"] = strconv.FormatUint(g.Seed, 10)
	meta["properties"] = strconv.FormatInt(res.Listings.Properties, 10)
	meta["agents"] = strconv.FormatInt(res.Agents, 10)
	if err := db.SaveMetadata(ctx, d, meta); err != nil {
		return nil, err
	}

	res.Elapsed = time.Since(start)
	logging.Info().
		Int64("properties", res.Listings.Properties).
		Int64("feature_links", res.Listings.FeatureLinks).
		Int64("images", res.Listings.Images).
		Int64("agents", res.Agents).
		Int64("search_rows", res.SearchRows).
		Dur("elapsed", res.Elapsed).
		Msg("Generation complete")
	return res, nil
}

// Materialize runs only the search table rebuild phase.
func Materialize(ctx context.Context, d db.DB) (int64, error) {
	var rows int64
	err := db.RunPhase(ctx, d, PhaseSearch, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		rows, err = search.Materialize(ctx, tx)
		return err
	})
	return rows, err
}
