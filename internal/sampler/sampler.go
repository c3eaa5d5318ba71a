//-------------------------------------------------------------------------
//
// pgEdge Listing Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package sampler draws consistent combinations of committed reference
// rows (location, taxonomy entries, agent, features) for each generated
// property. It reads the store once and then samples from memory, so every
// identifier it hands out references a row that already exists.
package sampler

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pgEdge/pgedge-listgen/internal/catalog"
	"github.com/pgEdge/pgedge-listgen/internal/datagen"
	"github.com/pgEdge/pgedge-listgen/internal/db"
	"github.com/pgEdge/pgedge-listgen/internal/logging"
)

// Sampling probabilities.
const (
	// ActiveBias is the chance a sampled status is replaced by the active one.
	ActiveBias = 0.7

	// AgentAssignment is the chance a property gets an agent.
	AgentAssignment = 0.8

	MinFeatures = 3
	MaxFeatures = 8
)

var (
	// ErrEmptyLocations is returned when no city exists to place properties in.
	ErrEmptyLocations = errors.New("no cities available")

	// ErrEmptyCatalog is returned when a taxonomy the generator draws from is empty.
	ErrEmptyCatalog = errors.New("reference catalog is empty")

	// ErrUnknownListingType is returned for listing types outside the closed set.
	ErrUnknownListingType = errors.New("unknown listing type")
)

// Location is one row of the city, region and optional neighborhood join.
type Location struct {
	CityID         int
	CityName       string
	RegionID       int
	RegionCode     string
	NeighborhoodID *int
}

// PropertyType is a committed property type with its resolved category.
type PropertyType struct {
	ID       int
	Name     string
	Category catalog.Category
}

// ListingType is a committed listing type with its resolved kind.
type ListingType struct {
	ID   int
	Name string
	Kind catalog.ListingKind
}

// Status is a committed status.
type Status struct {
	ID   int
	Name string
}

// Snapshot holds the sampled-from identifiers.
type Snapshot struct {
	Locations     []Location
	PropertyTypes []PropertyType
	ListingTypes  []ListingType
	Statuses      []Status
	AgentIDs      []int
	FeatureIDs    []int

	// ActiveStatus is the status listings are biased towards, nil when the
	// catalog has none.
	ActiveStatus *Status
}

// Load reads the snapshot. activeStatus names the status to bias towards.
func Load(ctx context.Context, q db.Querier, activeStatus string) (*Snapshot, error) {
	snap := &Snapshot{}
	var err error

	snap.Locations, err = loadLocations(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(snap.Locations) == 0 {
		return nil, ErrEmptyLocations
	}

	snap.PropertyTypes, err = loadPropertyTypes(ctx, q)
	if err != nil {
		return nil, err
	}
	snap.ListingTypes, err = loadListingTypes(ctx, q)
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, `SELECT id, name FROM property_status ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to read statuses: %w", err)
	}
	snap.Statuses, err = pgx.CollectRows(rows, pgx.RowToStructByPos[Status])
	if err != nil {
		return nil, fmt.Errorf("failed to read statuses: %w", err)
	}
	for i := range snap.Statuses {
		if snap.Statuses[i].Name == activeStatus {
			snap.ActiveStatus = &snap.Statuses[i]
		}
	}

	snap.AgentIDs, err = loadIDs(ctx, q, "agents")
	if err != nil {
		return nil, err
	}
	snap.FeatureIDs, err = loadIDs(ctx, q, "property_features")
	if err != nil {
		return nil, err
	}

	switch {
	case len(snap.PropertyTypes) == 0:
		return nil, fmt.Errorf("%w: property_types", ErrEmptyCatalog)
	case len(snap.ListingTypes) == 0:
		return nil, fmt.Errorf("%w: listing_types", ErrEmptyCatalog)
	case len(snap.Statuses) == 0:
		return nil, fmt.Errorf("%w: property_status", ErrEmptyCatalog)
	}

	logging.Debug().
		Int("locations", len(snap.Locations)).
		Int("property_types", len(snap.PropertyTypes)).
		Int("listing_types", len(snap.ListingTypes)).
		Int("statuses", len(snap.Statuses)).
		Int("agents", len(snap.AgentIDs)).
		Int("features", len(snap.FeatureIDs)).
		Msg("Loaded sampling snapshot")

	return snap, nil
}

func loadLocations(ctx context.Context, q db.Querier) ([]Location, error) {
	rows, err := q.Query(ctx, `
        SELECT c.id, c.name, p.id, p.code, n.id
        FROM cities c
        JOIN provinces p ON c.province_id = p.id
        LEFT JOIN neighborhoods n ON n.city_id = c.id
        ORDER BY c.id, n.id
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to read locations: %w", err)
	}
	locs, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Location])
	if err != nil {
		return nil, fmt.Errorf("failed to read locations: %w", err)
	}
	return locs, nil
}

func loadPropertyTypes(ctx context.Context, q db.Querier) ([]PropertyType, error) {
	rows, err := q.Query(ctx, `SELECT id, name FROM property_types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to read property types: %w", err)
	}
	defer rows.Close()

	var out []PropertyType
	for rows.Next() {
		var pt PropertyType
		if err := rows.Scan(&pt.ID, &pt.Name); err != nil {
			return nil, fmt.Errorf("failed to read property types: %w", err)
		}
		cat, ok := catalog.ParseCategory(pt.Name)
		if !ok {
			logging.Warn().
				Str("property_type", pt.Name).
				Msg("Unknown property type, using default profile")
		}
		pt.Category = cat
		out = append(out, pt)
	}
	return out, rows.Err()
}

func loadListingTypes(ctx context.Context, q db.Querier) ([]ListingType, error) {
	rows, err := q.Query(ctx, `SELECT id, name FROM listing_types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to read listing types: %w", err)
	}
	defer rows.Close()

	var out []ListingType
	for rows.Next() {
		var lt ListingType
		if err := rows.Scan(&lt.ID, &lt.Name); err != nil {
			return nil, fmt.Errorf("failed to read listing types: %w", err)
		}
		kind, err := catalog.ParseListingKind(lt.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownListingType, lt.Name)
		}
		lt.Kind = kind
		out = append(out, lt)
	}
	return out, rows.Err()
}

func loadIDs(ctx context.Context, q db.Querier, table string) ([]int, error) {
	rows, err := q.Query(ctx, "SELECT id FROM "+pgx.Identifier{table}.Sanitize()+" ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table, err)
	}
	return ids, nil
}

// Location draws a location tuple uniformly.
func (s *Snapshot) Location(f *datagen.Faker) Location {
	return datagen.Choose(f, s.Locations)
}

// PropertyType draws a property type uniformly.
func (s *Snapshot) PropertyType(f *datagen.Faker) PropertyType {
	return datagen.Choose(f, s.PropertyTypes)
}

// ListingType draws a listing type uniformly.
func (s *Snapshot) ListingType(f *datagen.Faker) ListingType {
	return datagen.Choose(f, s.ListingTypes)
}

// Status draws a status uniformly, then replaces it with the active status
// with probability ActiveBias.
func (s *Snapshot) Status(f *datagen.Faker) Status {
	st := datagen.Choose(f, s.Statuses)
	if f.Chance(ActiveBias) && s.ActiveStatus != nil {
		st = *s.ActiveStatus
	}
	return st
}

// Agent returns an agent id with probability AgentAssignment, or nil. It
// is always nil when no agents exist.
func (s *Snapshot) Agent(f *datagen.Faker) *int {
	if !f.Chance(AgentAssignment) || len(s.AgentIDs) == 0 {
		return nil
	}
	id := datagen.Choose(f, s.AgentIDs)
	return &id
}

// FeatureBounds returns the inclusive range of features per property for
// the loaded catalog size.
func (s *Snapshot) FeatureBounds() (lo, hi int) {
	n := len(s.FeatureIDs)
	return min(MinFeatures, n), min(MaxFeatures, n)
}

// Features draws distinct feature ids, between FeatureBounds inclusive.
func (s *Snapshot) Features(f *datagen.Faker) []int {
	lo, hi := s.FeatureBounds()
	if hi == 0 {
		return nil
	}
	return datagen.Sample(f, s.FeatureIDs, f.Int(lo, hi))
}
