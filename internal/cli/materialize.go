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
	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-listgen/internal/pipeline"
)

var materializeCmd = &cobra.Command{
	Use:   "materialize",
	Short: "Rebuild the search table",
	Long: `Delete every search_table row and rebuild one per property from the
current normalized tables, in a single transaction. Use it to re-run the
last phase after a failure without regenerating data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		pool, err := connect(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		rows, err := pipeline.Materialize(ctx, pool)
		if err != nil {
			return err
		}
		cmd.Printf("Rebuilt %d search rows\n", rows)
		return nil
	},
}
