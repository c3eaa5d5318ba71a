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

	"github.com/pgEdge/pgedge-listgen/internal/db"
	"github.com/pgEdge/pgedge-listgen/internal/logging"
	"github.com/pgEdge/pgedge-listgen/internal/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create or drop the listing tables",
}

var schemaCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create the listing tables if they do not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		pool, err := connect(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		return schema.Create(ctx, pool)
	},
}

var schemaDropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Drop the listing tables and generation metadata",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		pool, err := connect(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := schema.Drop(ctx, pool); err != nil {
			return err
		}
		if err := db.DropMetadata(ctx, pool); err != nil {
			logging.Debug().Err(err).Msg("No metadata table to drop")
		}
		return nil
	},
}

func init() {
	schemaCmd.AddCommand(schemaCreateCmd)
	schemaCmd.AddCommand(schemaDropCmd)
}
