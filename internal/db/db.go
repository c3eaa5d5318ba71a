//-------------------------------------------------------------------------
//
// pgEdge Listing Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx. Generators
// take a Querier so they run unchanged inside a phase transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// DB is a Querier that can also open transactions.
type DB interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// CountRows returns the number of rows in table.
func CountRows(ctx context.Context, q Querier, table string) (int64, error) {
	var n int64
	sql := "SELECT COUNT(*) FROM " + pgx.Identifier{table}.Sanitize()
	if err := q.QueryRow(ctx, sql).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}

// TruncateTables empties the given tables and resets their sequences.
func TruncateTables(ctx context.Context, q Querier, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}
	sql := "TRUNCATE TABLE "
	for i, t := range tables {
		if i > 0 {
			sql += ", "
		}
		sql += pgx.Identifier{t}.Sanitize()
	}
	sql += " RESTART IDENTITY CASCADE"
	if _, err := q.Exec(ctx, sql); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	return nil
}
