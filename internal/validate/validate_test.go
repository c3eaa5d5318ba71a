//-------------------------------------------------------------------------
//
// pgEdge Listing Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package validate

import (
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/pgEdge/pgedge-listgen/internal/catalog"
)

func TestGroundTypeNames(t *testing.T) {
	got := GroundTypeNames(catalog.Default())
	want := []string{"House", "Townhouse", "Duplex", "Bungalow"}

	slices.Sort(got)
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Errorf("GroundTypeNames = %v, want %v", got, want)
	}
}

func TestFeatureBounds(t *testing.T) {
	tests := []struct {
		n      int64
		lo, hi int64
	}{
		{32, 3, 8},
		{5, 3, 5},
		{2, 2, 2},
		{0, 0, 0},
	}
	for _, tt := range tests {
		lo, hi := FeatureBounds(tt.n)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("FeatureBounds(%d) = (%d, %d), want (%d, %d)", tt.n, lo, hi, tt.lo, tt.hi)
		}
	}
}

func TestReportOK(t *testing.T) {
	r := &Report{Checks: []Check{{Name: "a"}, {Name: "b"}}}
	if !r.OK() {
		t.Error("Report with no violations should be OK")
	}

	r.Checks = append(r.Checks, Check{Name: "c", Violations: 3})
	if r.OK() {
		t.Error("Report with violations should not be OK")
	}
	failed := r.Failed()
	if len(failed) != 1 || failed[0].Name != "c" {
		t.Errorf("Expected only check c to fail, got %v", failed)
	}
}

func TestChecksWellFormed(t *testing.T) {
	list := checks(catalog.Default(), 32)
	names := make(map[string]bool)
	for _, c := range list {
		if names[c.name] {
			t.Errorf("Duplicate check name %q", c.name)
		}
		names[c.name] = true

		params := 0
		for i := 1; i <= 9; i++ {
			if strings.Contains(c.sql, "$"+strconv.Itoa(i)) {
				params = i
			}
		}
		if params != len(c.args) {
			t.Errorf("Check %q uses %d parameters but has %d args", c.name, params, len(c.args))
		}
	}
}
