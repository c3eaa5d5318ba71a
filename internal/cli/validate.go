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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-listgen/internal/catalog"
	"github.com/pgEdge/pgedge-listgen/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a generated database for consistency",
	Long: `Run read-only checks against the generated data: unique agent emails,
licenses and listing codes, pricing by listing type, lot sizes by
category, one primary image per property, features per property, and a
search table matching the properties one to one. Prints row counts and the
property and listing type distributions. Exits non-zero when a check fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		pool, err := connect(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		report, err := validate.Run(ctx, pool, catalog.Default())
		if err != nil {
			return err
		}
		report.Log()

		if failed := report.Failed(); len(failed) > 0 {
			return fmt.Errorf("%d of %d checks failed", len(failed), len(report.Checks))
		}
		cmd.Printf("All %d checks passed\n", len(report.Checks))
		return nil
	},
}
