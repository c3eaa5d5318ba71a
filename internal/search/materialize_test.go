//-------------------------------------------------------------------------
//
// pgEdge Listing Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package search

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pgEdge/pgedge-listgen/internal/listing"
)

type execRecorder struct {
	sql    []string
	failAt int // 1-based Exec call that fails, 0 = never
}

func (r *execRecorder) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	r.sql = append(r.sql, sql)
	if r.failAt == len(r.sql) {
		return pgconn.CommandTag{}, errors.New("exec failed")
	}
	if strings.HasPrefix(sql, "INSERT") {
		return pgconn.NewCommandTag("INSERT 0 50"), nil
	}
	return pgconn.NewCommandTag("DELETE 12"), nil
}

func (r *execRecorder) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not supported")
}

func (r *execRecorder) QueryRow(context.Context, string, ...any) pgx.Row { return nil }

func (r *execRecorder) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults { return nil }

func (r *execRecorder) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	return 0, errors.New("not supported")
}

func TestColumnsUnique(t *testing.T) {
	cols := Columns()
	want := len(listing.PropertyColumns) + 2 + len(joined) + len(aggregated)
	if len(cols) != want {
		t.Fatalf("Expected %d columns, got %d", want, len(cols))
	}
	seen := make(map[string]bool)
	for _, c := range cols {
		if seen[c] {
			t.Errorf("Duplicate search column %s", c)
		}
		seen[c] = true
	}
	if cols[0] != "id" {
		t.Errorf("First column should be id, got %s", cols[0])
	}
	if cols[len(cols)-1] != "property_features_descriptions" {
		t.Errorf("Last column should be the descriptions array, got %s", cols[len(cols)-1])
	}
}

func TestRebuildSQL(t *testing.T) {
	sql := rebuildSQL()

	insert, rest, ok := strings.Cut(sql, "SELECT")
	if !ok {
		t.Fatal("Rebuild statement has no SELECT")
	}
	selectList, groupBy, ok := strings.Cut(rest, "GROUP BY")
	if !ok {
		t.Fatal("Rebuild statement has no GROUP BY")
	}

	for _, c := range Columns() {
		if !strings.Contains(insert, c) {
			t.Errorf("Insert list is missing %s", c)
		}
	}
	if strings.Contains(groupBy, "ARRAY_AGG") {
		t.Error("Aggregates must not appear in GROUP BY")
	}
	for _, c := range joined {
		if !strings.Contains(groupBy, c.expr) {
			t.Errorf("GROUP BY is missing %s", c.expr)
		}
	}
	if n := strings.Count(selectList, "COALESCE(ARRAY_AGG(DISTINCT"); n != 3 {
		t.Errorf("Expected 3 null-safe feature aggregates, got %d", n)
	}
	if n := strings.Count(sql, "LEFT JOIN"); n != 9 {
		t.Errorf("Expected 9 left joins, got %d", n)
	}
}

func TestMaterialize(t *testing.T) {
	r := &execRecorder{}
	n, err := Materialize(context.Background(), r)
	if err != nil {
		t.Fatalf("Materialize failed: %v", err)
	}
	if n != 50 {
		t.Errorf("Expected 50 rows, got %d", n)
	}
	if len(r.sql) != 2 || !strings.HasPrefix(r.sql[0], "DELETE FROM search_table") {
		t.Fatalf("Expected DELETE then INSERT, got %v", r.sql)
	}
}

func TestMaterializeErrors(t *testing.T) {
	for _, failAt := range []int{1, 2} {
		r := &execRecorder{failAt: failAt}
		if _, err := Materialize(context.Background(), r); err == nil {
			t.Errorf("Expected error when Exec %d fails", failAt)
		}
		if len(r.sql) != failAt {
			t.Errorf("Expected %d statements before stopping, got %d", failAt, len(r.sql))
		}
	}
}
