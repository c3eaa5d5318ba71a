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
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// recordingCopier captures every CopyFrom call.
type recordingCopier struct {
	tables []string
	chunks [][][]any
	failAt int // 1-based chunk index that fails, 0 = never
}

func (c *recordingCopier) CopyFrom(ctx context.Context, table pgx.Identifier, cols []string, src pgx.CopyFromSource) (int64, error) {
	if c.failAt > 0 && len(c.chunks)+1 == c.failAt {
		return 0, errors.New("copy failed")
	}
	var rows [][]any
	for src.Next() {
		v, err := src.Values()
		if err != nil {
			return 0, err
		}
		rows = append(rows, v)
	}
	c.tables = append(c.tables, table.Sanitize())
	c.chunks = append(c.chunks, rows)
	return int64(len(rows)), nil
}

func TestBatchWriterAutoFlush(t *testing.T) {
	ctx := context.Background()
	c := &recordingCopier{}
	w := NewBatchWriter(c, "agents", []string{"id", "email"}, 3)

	for i := 0; i < 7; i++ {
		if err := w.Add(ctx, i, "x"); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	if len(c.chunks) != 2 {
		t.Fatalf("Expected 2 chunks before Flush, got %d", len(c.chunks))
	}
	if w.Pending() != 1 {
		t.Errorf("Expected 1 pending row, got %d", w.Pending())
	}

	if err := w.Flush(ctx); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if len(c.chunks) != 3 {
		t.Fatalf("Expected 3 chunks after Flush, got %d", len(c.chunks))
	}
	for i, chunk := range c.chunks {
		if len(chunk) > 3 {
			t.Errorf("Chunk %d has %d rows, exceeds chunk size", i, len(chunk))
		}
	}
	if w.Rows() != 7 {
		t.Errorf("Expected 7 rows written, got %d", w.Rows())
	}
	if w.Chunks() != 3 {
		t.Errorf("Expected 3 chunks, got %d", w.Chunks())
	}
	if c.tables[0] != `"agents"` {
		t.Errorf("Unexpected table identifier %s", c.tables[0])
	}
}

func TestBatchWriterDeferred(t *testing.T) {
	ctx := context.Background()
	c := &recordingCopier{}
	w := NewBatchWriter(c, "property_images", []string{"a"}, 4).Deferred()

	for i := 0; i < 10; i++ {
		if err := w.Add(ctx, i); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	if len(c.chunks) != 0 {
		t.Fatalf("Deferred writer flushed early: %d chunks", len(c.chunks))
	}
	if w.Pending() != 10 {
		t.Errorf("Expected 10 pending rows, got %d", w.Pending())
	}

	if err := w.Flush(ctx); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if len(c.chunks) != 3 {
		t.Fatalf("Expected 3 chunks, got %d", len(c.chunks))
	}
	sizes := []int{len(c.chunks[0]), len(c.chunks[1]), len(c.chunks[2])}
	if sizes[0] != 4 || sizes[1] != 4 || sizes[2] != 2 {
		t.Errorf("Unexpected chunk sizes %v", sizes)
	}
	if w.Pending() != 0 {
		t.Errorf("Expected empty buffer after Flush, got %d", w.Pending())
	}
}

func TestBatchWriterColumnMismatch(t *testing.T) {
	w := NewBatchWriter(&recordingCopier{}, "agents", []string{"a", "b"}, 10)
	if err := w.Add(context.Background(), 1); err == nil {
		t.Error("Expected error for wrong value count")
	}
}

func TestBatchWriterCopyError(t *testing.T) {
	ctx := context.Background()
	c := &recordingCopier{failAt: 2}
	w := NewBatchWriter(c, "agents", []string{"a"}, 2)

	var err error
	for i := 0; i < 4 && err == nil; i++ {
		err = w.Add(ctx, i)
	}
	if err == nil {
		t.Fatal("Expected copy error to surface through Add")
	}
	if w.Rows() != 2 {
		t.Errorf("Expected 2 rows written before failure, got %d", w.Rows())
	}
}

func TestBatchWriterEmptyFlush(t *testing.T) {
	c := &recordingCopier{}
	w := NewBatchWriter(c, "agents", []string{"a"}, 5)
	if err := w.Flush(context.Background()); err != nil {
		t.Fatalf("Flush on empty writer failed: %v", err)
	}
	if len(c.chunks) != 0 {
		t.Error("Empty Flush should not issue COPY")
	}
}

// fakeBatchResults replays command tags for a sent batch.
type fakeBatchResults struct {
	pgx.BatchResults
	n      int
	failAt int
	calls  int
	closed bool
}

func (r *fakeBatchResults) Exec() (pgconn.CommandTag, error) {
	r.calls++
	if r.calls == r.failAt {
		return pgconn.CommandTag{}, errors.New("duplicate key")
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (r *fakeBatchResults) Close() error {
	r.closed = true
	return nil
}

type batchingQuerier struct {
	Querier
	sizes  []int
	failAt int
	last   *fakeBatchResults
}

func (q *batchingQuerier) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	q.sizes = append(q.sizes, b.Len())
	q.last = &fakeBatchResults{n: b.Len(), failAt: q.failAt}
	return q.last
}

func TestBatchQueue(t *testing.T) {
	ctx := context.Background()
	q := &batchingQuerier{}
	bq := NewBatchQueue(q, 2)

	for i := 0; i < 5; i++ {
		if err := bq.Queue(ctx, "INSERT INTO t VALUES ($1)", i); err != nil {
			t.Fatalf("Queue failed: %v", err)
		}
	}
	if err := bq.Flush(ctx); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	if len(q.sizes) != 3 || q.sizes[0] != 2 || q.sizes[1] != 2 || q.sizes[2] != 1 {
		t.Errorf("Unexpected batch sizes %v", q.sizes)
	}
	if bq.RowsAffected() != 5 {
		t.Errorf("Expected 5 rows affected, got %d", bq.RowsAffected())
	}
	if bq.Sent() != 3 {
		t.Errorf("Expected 3 round-trips, got %d", bq.Sent())
	}

	// A second Flush with nothing queued is a no-op
	if err := bq.Flush(ctx); err != nil {
		t.Fatalf("Empty Flush failed: %v", err)
	}
	if len(q.sizes) != 3 {
		t.Error("Empty Flush sent a batch")
	}
}

func TestBatchQueueStatementError(t *testing.T) {
	ctx := context.Background()
	q := &batchingQuerier{failAt: 2}
	bq := NewBatchQueue(q, 10)

	for i := 0; i < 3; i++ {
		_ = bq.Queue(ctx, "INSERT INTO t VALUES ($1)", i)
	}
	if err := bq.Flush(ctx); err == nil {
		t.Fatal("Expected statement error")
	}
	if !q.last.closed {
		t.Error("Batch results not closed after error")
	}
}
