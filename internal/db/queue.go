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
)

// BatchQueue collects parameterized statements into a pgx.Batch and sends
// them in round-trips of at most size statements.
type BatchQueue struct {
	q        Querier
	size     int
	batch    *pgx.Batch
	affected int64
	sent     int
}

// NewBatchQueue creates a queue sending through q.
func NewBatchQueue(q Querier, size int) *BatchQueue {
	if size < 1 {
		size = 1
	}
	return &BatchQueue{q: q, size: size, batch: &pgx.Batch{}}
}

// Queue adds one statement, sending the batch when it is full.
func (b *BatchQueue) Queue(ctx context.Context, sql string, args ...any) error {
	b.batch.Queue(sql, args...)
	if b.batch.Len() >= b.size {
		return b.Flush(ctx)
	}
	return nil
}

// Flush sends every queued statement and waits for all results.
func (b *BatchQueue) Flush(ctx context.Context) error {
	n := b.batch.Len()
	if n == 0 {
		return nil
	}
	br := b.q.SendBatch(ctx, b.batch)
	b.batch = &pgx.Batch{}

	for i := 0; i < n; i++ {
		tag, err := br.Exec()
		if err != nil {
			_ = br.Close()
			return fmt.Errorf("batch statement %d of %d failed: %w", i+1, n, err)
		}
		b.affected += tag.RowsAffected()
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close batch: %w", err)
	}
	b.sent++
	return nil
}

// RowsAffected returns the total rows affected by sent statements.
func (b *BatchQueue) RowsAffected() int64 {
	return b.affected
}

// Sent returns the number of round-trips made.
func (b *BatchQueue) Sent() int {
	return b.sent
}
