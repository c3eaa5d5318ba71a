//-------------------------------------------------------------------------
//
// pgEdge Listing Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

//go:build integration
// +build integration

// Integration tests for the generation pipeline.
// Run with: go test -tags=integration ./internal/pipeline/...
// Requires PostgreSQL to be available.
// Set PGEDGE_TEST_CONN environment variable to override connection string.

package pipeline_test

import (
	"context"
	"testing"
	"time"

	"github.com/pgEdge/pgedge-listgen/internal/catalog"
	"github.com/pgEdge/pgedge-listgen/internal/config"
	"github.com/pgEdge/pgedge-listgen/internal/db"
	"github.com/pgEdge/pgedge-listgen/internal/pipeline"
	"github.com/pgEdge/pgedge-listgen/internal/schema"
	"github.com/pgEdge/pgedge-listgen/internal/testutil"
	"github.com/pgEdge/pgedge-listgen/internal/validate"
)

func smallRun(force bool) pipeline.Options {
	g := config.DefaultConfig().Generate
	g.Properties = 50
	g.Agents = 10
	g.NeighborhoodsPerCity = 5
	g.BatchSize = 20
	g.ProgressInterval = 25
	g.Force = force
	return pipeline.Options{
		Catalog:  catalog.Default().Subset(3, 2),
		Generate: g,
		Today:    time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestPipelineIntegration(t *testing.T) {
	pool := testutil.NewSchemaDB(t, "pipeline")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := pipeline.Run(ctx, pool, smallRun(false))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Skipped {
		t.Fatal("First run should not be skipped")
	}

	want := map[string]int64{
		schema.Cities:        6,
		schema.Neighborhoods: 30,
		schema.Agents:        10,
		schema.Properties:    50,
		schema.SearchTable:   50,
	}
	for table, n := range want {
		if got := testutil.Count(t, pool, table); got != n {
			t.Errorf("Expected %d rows in %s, got %d", n, table, got)
		}
	}
	if n := testutil.CountDistinct(t, pool, schema.Agents, "email"); n != 10 {
		t.Errorf("Expected 10 distinct agent emails, got %d", n)
	}
	if n := testutil.CountDistinct(t, pool, schema.Agents, "license_number"); n != 10 {
		t.Errorf("Expected 10 distinct licenses, got %d", n)
	}
	links := testutil.Count(t, pool, schema.FeatureMappings)
	if links < 150 || links > 400 {
		t.Errorf("Expected 150 to 400 feature links, got %d", links)
	}
	if links != res.Listings.FeatureLinks {
		t.Errorf("Result reports %d links, table holds %d", res.Listings.FeatureLinks, links)
	}

	t.Run("Validate", func(t *testing.T) {
		report, err := validate.Run(ctx, pool, catalog.Default())
		if err != nil {
			t.Fatalf("Validate failed to run: %v", err)
		}
		for _, c := range report.Failed() {
			t.Errorf("Check %q found %d violations", c.Name, c.Violations)
		}
		if report.Metadata["seed"] != "42" || report.Metadata["properties"] != "50" {
			t.Errorf("Unexpected metadata %v", report.Metadata)
		}
	})

	t.Run("SecondRunSkips", func(t *testing.T) {
		res, err := pipeline.Run(ctx, pool, smallRun(false))
		if err != nil {
			t.Fatalf("Second run failed: %v", err)
		}
		if !res.Skipped {
			t.Error("Second run should be skipped")
		}
		if n := testutil.Count(t, pool, schema.Properties); n != 50 {
			t.Errorf("Skipped run changed property count to %d", n)
		}
	})

	t.Run("ForceRegenerates", func(t *testing.T) {
		res, err := pipeline.Run(ctx, pool, smallRun(true))
		if err != nil {
			t.Fatalf("Forced run failed: %v", err)
		}
		if res.Skipped {
			t.Fatal("Forced run should not be skipped")
		}
		for table, n := range want {
			if got := testutil.Count(t, pool, table); got != n {
				t.Errorf("Expected %d rows in %s after force, got %d", n, table, got)
			}
		}
	})

	t.Run("MaterializeOnly", func(t *testing.T) {
		rows, err := pipeline.Materialize(ctx, pool)
		if err != nil {
			t.Fatalf("Materialize failed: %v", err)
		}
		if rows != 50 {
			t.Errorf("Expected 50 search rows, got %d", rows)
		}
	})
}

func TestPipelineDeterministic(t *testing.T) {
	a := testutil.NewSchemaDB(t, "determinism_a")
	b := testutil.NewSchemaDB(t, "determinism_b")
	ctx := context.Background()

	for _, pool := range []db.DB{a, b} {
		if _, err := pipeline.Run(ctx, pool, smallRun(false)); err != nil {
			t.Fatalf("Run failed: %v", err)
		}
	}

	const q = `SELECT string_agg(id::text || coalesce(mls_number, ''), ',' ORDER BY id) FROM properties`
	var sa, sb string
	if err := a.QueryRow(ctx, q).Scan(&sa); err != nil {
		t.Fatal(err)
	}
	if err := b.QueryRow(ctx, q).Scan(&sb); err != nil {
		t.Fatal(err)
	}
	if sa != sb {
		t.Error("Equal seeds should produce identical properties")
	}
}
