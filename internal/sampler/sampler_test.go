//-------------------------------------------------------------------------
//
// pgEdge Listing Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package sampler

import (
	"testing"

	"github.com/pgEdge/pgedge-listgen/internal/catalog"
	"github.com/pgEdge/pgedge-listgen/internal/datagen"
)

func testSnapshot(features int) *Snapshot {
	snap := &Snapshot{
		Locations: []Location{
			{CityID: 1, CityName: "Toronto", RegionID: 1, RegionCode: "ON"},
			{CityID: 2, CityName: "Ottawa", RegionID: 1, RegionCode: "ON"},
		},
		PropertyTypes: []PropertyType{{ID: 1, Name: "House", Category: catalog.CategoryHouse}},
		ListingTypes:  []ListingType{{ID: 1, Name: "Sale", Kind: catalog.ListingSale}},
		Statuses: []Status{
			{ID: 1, Name: "Active"}, {ID: 2, Name: "Pending"}, {ID: 3, Name: "Sold"},
			{ID: 4, Name: "Rented"}, {ID: 5, Name: "Off Market"},
		},
		AgentIDs: []int{10, 11, 12},
	}
	snap.ActiveStatus = &snap.Statuses[0]
	for i := 1; i <= features; i++ {
		snap.FeatureIDs = append(snap.FeatureIDs, i)
	}
	return snap
}

func TestStatusBiasTowardsActive(t *testing.T) {
	f := datagen.NewFakerWithSeed(5)
	snap := testSnapshot(32)

	const n = 10000
	active := 0
	others := make(map[int]int)
	for i := 0; i < n; i++ {
		st := snap.Status(f)
		if st.ID == 1 {
			active++
		} else {
			others[st.ID]++
		}
	}

	// 0.7 + 0.3 * 1/5 = 0.76 expected
	ratio := float64(active) / n
	if ratio < 0.72 || ratio > 0.80 {
		t.Errorf("Active ratio %.3f outside [0.72, 0.80]", ratio)
	}
	if len(others) != 4 {
		t.Errorf("Non-active statuses should still appear, got %v", others)
	}
}

func TestStatusWithoutActive(t *testing.T) {
	f := datagen.NewFakerWithSeed(5)
	snap := testSnapshot(32)
	snap.ActiveStatus = nil
	for i := 0; i < 100; i++ {
		st := snap.Status(f)
		if st.ID < 1 || st.ID > 5 {
			t.Fatalf("Unexpected status %+v", st)
		}
	}
}

func TestAgentAssignment(t *testing.T) {
	f := datagen.NewFakerWithSeed(8)
	snap := testSnapshot(32)

	const n = 10000
	assigned := 0
	for i := 0; i < n; i++ {
		if id := snap.Agent(f); id != nil {
			assigned++
			if *id < 10 || *id > 12 {
				t.Fatalf("Agent id %d not in snapshot", *id)
			}
		}
	}
	ratio := float64(assigned) / n
	if ratio < 0.76 || ratio > 0.84 {
		t.Errorf("Assignment ratio %.3f outside [0.76, 0.84]", ratio)
	}
}

func TestAgentNoneAvailable(t *testing.T) {
	f := datagen.NewFakerWithSeed(8)
	snap := testSnapshot(32)
	snap.AgentIDs = nil
	for i := 0; i < 100; i++ {
		if snap.Agent(f) != nil {
			t.Fatal("Agent assigned without any agents")
		}
	}
}

func TestFeatures(t *testing.T) {
	tests := []struct {
		name    string
		catalog int
		lo, hi  int
	}{
		{"full catalog", 32, 3, 8},
		{"small catalog", 5, 3, 5},
		{"tiny catalog", 2, 2, 2},
		{"empty catalog", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := datagen.NewFakerWithSeed(3)
			snap := testSnapshot(tt.catalog)

			lo, hi := snap.FeatureBounds()
			if lo != tt.lo || hi != tt.hi {
				t.Fatalf("FeatureBounds = (%d, %d), want (%d, %d)", lo, hi, tt.lo, tt.hi)
			}

			for i := 0; i < 200; i++ {
				ids := snap.Features(f)
				if len(ids) < tt.lo || len(ids) > tt.hi {
					t.Fatalf("Got %d features, want between %d and %d", len(ids), tt.lo, tt.hi)
				}
				seen := make(map[int]bool)
				for _, id := range ids {
					if seen[id] {
						t.Fatalf("Duplicate feature %d", id)
					}
					seen[id] = true
				}
			}
		})
	}
}

func TestLocationFromSnapshot(t *testing.T) {
	f := datagen.NewFakerWithSeed(1)
	snap := testSnapshot(32)
	for i := 0; i < 50; i++ {
		loc := snap.Location(f)
		if loc.CityID != 1 && loc.CityID != 2 {
			t.Fatalf("Unexpected location %+v", loc)
		}
		if loc.NeighborhoodID != nil {
			t.Error("Snapshot location has no neighborhood")
		}
	}
}
