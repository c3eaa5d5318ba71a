//-------------------------------------------------------------------------
//
// pgEdge Listing Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-listgen/internal/catalog"
	"github.com/pgEdge/pgedge-listgen/internal/pipeline"
)

var (
	genProperties     int
	genAgents         int
	genNeighborhoods  int
	genBatchSize      int
	genSeed           uint64
	genForce          bool
	genCreateSchema   bool
	genProgressPeriod int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate listing data",
	Long: `Seed the reference tables, generate locations, agents and properties,
then rebuild the search table. Each phase commits on its own; a failed
phase is rolled back and earlier phases stay committed.

If agents or properties already exist the command logs a warning and
does nothing, unless --force is given, in which case the generated tables
are truncated first.

Example:
  pgedge-listgen generate --connection "postgres://..." --properties 20000 --agents 500
  pgedge-listgen generate --create-schema --seed 7 --force`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&genProperties, "properties", 0,
		"number of properties to generate (default: 20000)")
	generateCmd.Flags().IntVar(&genAgents, "agents", 0,
		"number of agents to generate (default: 500)")
	generateCmd.Flags().IntVar(&genNeighborhoods, "neighborhoods-per-city", 0,
		"neighborhoods sampled per city (default: 5)")
	generateCmd.Flags().IntVar(&genBatchSize, "batch-size", 0,
		"rows per COPY chunk (default: 1000)")
	generateCmd.Flags().IntVar(&genProgressPeriod, "progress-interval", 0,
		"log progress every N rows (default: 1000)")
	generateCmd.Flags().Uint64Var(&genSeed, "seed", 0,
		"random seed (default: 42)")
	generateCmd.Flags().BoolVar(&genForce, "force", false,
		"truncate and regenerate when data already exists")
	generateCmd.Flags().BoolVar(&genCreateSchema, "create-schema", false,
		"create the tables before generating")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	g := &cfg.Generate
	if cmd.Flags().Changed("properties") {
		g.Properties = genProperties
	}
	if cmd.Flags().Changed("agents") {
		g.Agents = genAgents
	}
	if cmd.Flags().Changed("neighborhoods-per-city") {
		g.NeighborhoodsPerCity = genNeighborhoods
	}
	if genBatchSize > 0 {
		g.BatchSize = genBatchSize
	}
	if genProgressPeriod > 0 {
		g.ProgressInterval = genProgressPeriod
	}
	if cmd.Flags().Changed("seed") {
		g.Seed = genSeed
	}
	if genForce {
		g.Force = true
	}
	if genCreateSchema {
		g.CreateSchema = true
	}

	if err := cfg.ValidateGenerate(); err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	pool, err := connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	res, err := pipeline.Run(ctx, pool, pipeline.Options{
		Catalog:  catalog.Default(),
		Generate: *g,
		Today:    time.Now(),
	})
	if err != nil {
		return err
	}
	if res.Skipped {
		cmd.Println("Existing data found; nothing generated. Use --force to regenerate.")
	}
	return nil
}
