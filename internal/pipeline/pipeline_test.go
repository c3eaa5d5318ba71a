//-------------------------------------------------------------------------
//
// pgEdge Listing Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pgEdge/pgedge-listgen/internal/catalog"
	"github.com/pgEdge/pgedge-listgen/internal/config"
	"github.com/pgEdge/pgedge-listgen/internal/db"
)

// countRow scans a fixed count.
type countRow struct {
	n   int64
	err error
}

func (r countRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int64) = r.n
	return nil
}

// countingDB answers COUNT(*) queries from a table map and refuses to
// open transactions.
type countingDB struct {
	counts map[string]int64
	begins int
}

var errNoTx = errors.New("transactions not available")

func (d *countingDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	for table, n := range d.counts {
		if strings.HasSuffix(sql, `"`+table+`"`) {
			return countRow{n: n}
		}
	}
	return countRow{err: errors.New("unexpected query: " + sql)}
}

func (d *countingDB) Begin(ctx context.Context) (pgx.Tx, error) {
	d.begins++
	return nil, errNoTx
}

func (d *countingDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("not supported")
}

func (d *countingDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not supported")
}

func (d *countingDB) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults { return nil }

func (d *countingDB) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	return 0, errors.New("not supported")
}

func testOptions(force bool) Options {
	g := config.DefaultConfig().Generate
	g.Force = force
	return Options{Catalog: catalog.Default(), Generate: g, Today: time.Now()}
}

func TestExistingFound(t *testing.T) {
	tests := []struct {
		e    Existing
		want bool
	}{
		{Existing{}, false},
		{Existing{Properties: 1}, true},
		{Existing{Agents: 1}, true},
		{Existing{Properties: 5, Agents: 5}, true},
	}
	for _, tt := range tests {
		if got := tt.e.Found(); got != tt.want {
			t.Errorf("%+v.Found() = %v, want %v", tt.e, got, tt.want)
		}
	}
}

func TestRunSkipsExistingData(t *testing.T) {
	d := &countingDB{counts: map[string]int64{"properties": 0, "agents": 10}}

	res, err := Run(context.Background(), d, testOptions(false))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !res.Skipped {
		t.Error("Run should skip when agents exist")
	}
	if d.begins != 0 {
		t.Errorf("Skipped run opened %d transactions", d.begins)
	}
}

func TestRunForceStartsWithReset(t *testing.T) {
	d := &countingDB{counts: map[string]int64{"properties": 50, "agents": 10}}

	_, err := Run(context.Background(), d, testOptions(true))
	var pe *db.PhaseError
	if !errors.As(err, &pe) {
		t.Fatalf("Expected PhaseError, got %v", err)
	}
	if pe.Phase != PhaseReset {
		t.Errorf("Expected the reset phase to run first, got %s", pe.Phase)
	}
	if !errors.Is(err, errNoTx) {
		t.Errorf("PhaseError should wrap the begin error, got %v", err)
	}
}

func TestRunEmptyDatabaseStartsWithReference(t *testing.T) {
	d := &countingDB{counts: map[string]int64{"properties": 0, "agents": 0}}

	_, err := Run(context.Background(), d, testOptions(false))
	var pe *db.PhaseError
	if !errors.As(err, &pe) || pe.Phase != PhaseReference {
		t.Fatalf("Expected reference phase error, got %v", err)
	}
}

func TestRunGuardQueryError(t *testing.T) {
	d := &countingDB{counts: map[string]int64{}}
	if _, err := Run(context.Background(), d, testOptions(false)); err == nil {
		t.Fatal("Expected an error when the guard cannot count rows")
	}
}

func TestEstimateSize(t *testing.T) {
	small := EstimateSize(100, 10)
	large := EstimateSize(10000, 10)
	if small <= 0 {
		t.Fatalf("Expected a positive estimate, got %d", small)
	}
	if large <= small {
		t.Errorf("Estimate should grow with properties: %d <= %d", large, small)
	}
	if EstimateSize(0, 0) != 0 {
		t.Error("Empty run should estimate zero bytes")
	}
}
