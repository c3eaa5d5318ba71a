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

	"github.com/pgEdge/pgedge-listgen/internal/datagen"
)

// Copier bulk-loads rows with the COPY protocol.
type Copier interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// BatchWriter buffers rows for one table and writes them with COPY in
// chunks of at most chunkSize rows.
//
// By default a chunk is flushed as soon as it fills. A deferred writer only
// buffers, and Flush writes the whole buffer chunk by chunk; that lets
// child rows wait until the parent rows they reference have been written.
type BatchWriter struct {
	dst       Copier
	table     string
	columns   []string
	chunkSize int
	deferred  bool
	progress  *datagen.ProgressReporter

	buf     [][]any
	written int64
	chunks  int
}

// NewBatchWriter creates a writer for table with the given column order.
func NewBatchWriter(dst Copier, table string, columns []string, chunkSize int) *BatchWriter {
	if chunkSize < 1 {
		chunkSize = 1
	}
	return &BatchWriter{
		dst:       dst,
		table:     table,
		columns:   columns,
		chunkSize: chunkSize,
	}
}

// Deferred switches the writer to buffer every row until Flush.
func (w *BatchWriter) Deferred() *BatchWriter {
	w.deferred = true
	return w
}

// WithProgress reports every written chunk to p.
func (w *BatchWriter) WithProgress(p *datagen.ProgressReporter) *BatchWriter {
	w.progress = p
	return w
}

// Add buffers one row. Values must follow the writer's column order.
func (w *BatchWriter) Add(ctx context.Context, values ...any) error {
	if len(values) != len(w.columns) {
		return fmt.Errorf("%s: row has %d values, want %d", w.table, len(values), len(w.columns))
	}
	w.buf = append(w.buf, values)
	if !w.deferred && len(w.buf) >= w.chunkSize {
		return w.Flush(ctx)
	}
	return nil
}

// Flush writes all buffered rows.
func (w *BatchWriter) Flush(ctx context.Context) error {
	for len(w.buf) > 0 {
		n := min(len(w.buf), w.chunkSize)
		chunk := w.buf[:n]
		copied, err := w.dst.CopyFrom(ctx, pgx.Identifier{w.table}, w.columns, pgx.CopyFromRows(chunk))
		if err != nil {
			return fmt.Errorf("failed to copy %d rows into %s: %w", n, w.table, err)
		}
		w.written += copied
		w.chunks++
		if w.progress != nil {
			w.progress.Update(copied)
		}
		w.buf = w.buf[n:]
	}
	w.buf = nil
	return nil
}

// Pending returns the number of buffered rows not yet written.
func (w *BatchWriter) Pending() int {
	return len(w.buf)
}

// Rows returns the number of rows written so far.
func (w *BatchWriter) Rows() int64 {
	return w.written
}

// Chunks returns the number of COPY statements issued so far.
func (w *BatchWriter) Chunks() int {
	return w.chunks
}
