//-------------------------------------------------------------------------
//
// pgEdge Listing Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package seed

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

// Attribute ranges for generated locations.
var (
	PopulationRange   = catalog.IntRange{Min: 50000, Max: 3000000}
	IncomeRange       = catalog.IntRange{Min: 40000, Max: 150000}
	WalkabilityRange  = catalog.IntRange{Min: 20, Max: 100}
	SafetyRatingRange = catalog.IntRange{Min: 1, Max: 5}
)

// City is a generated cities row.
type City struct {
	Name       string
	RegionID   int
	Population int
	Latitude   float64
	Longitude  float64
}

// Neighborhood is a generated neighborhoods row.
type Neighborhood struct {
	Name             string
	CityID           int
	AverageIncome    int
	WalkabilityScore int
	SafetyRating     int
}

// LocationStats counts the location rows newly inserted.
type LocationStats struct {
	Cities        int64
	Neighborhoods int64
}

// RandomCoordinates draws a point inside the catalog bounding box.
func RandomCoordinates(f *datagen.Faker) (lat, lon float64) {
	lat = datagen.Round(f.Float64(catalog.MinLatitude, catalog.MaxLatitude), catalog.CoordinatePrecision)
	lon = datagen.Round(f.Float64(catalog.MinLongitude, catalog.MaxLongitude), catalog.CoordinatePrecision)
	return lat, lon
}

// NewCity attributes a city of the given region.
func NewCity(s *datagen.Session, name string, regionID int) City {
	c := City{
		Name:       name,
		RegionID:   regionID,
		Population: s.Faker.Int(PopulationRange.Min, PopulationRange.Max),
	}
	c.Latitude, c.Longitude = RandomCoordinates(s.Faker)
	return c
}

// NewNeighborhoods samples quota distinct names from pool for one city.
func NewNeighborhoods(s *datagen.Session, cityID int, pool []string, quota int) []Neighborhood {
	names := datagen.Sample(s.Faker, pool, quota)
	out := make([]Neighborhood, 0, len(names))
	for _, name := range names {
		out = append(out, Neighborhood{
			Name:             name,
			CityID:           cityID,
			AverageIncome:    s.Faker.Int(IncomeRange.Min, IncomeRange.Max),
			WalkabilityScore: s.Faker.Int(WalkabilityRange.Min, WalkabilityRange.Max),
			SafetyRating:     s.Faker.Int(SafetyRatingRange.Min, SafetyRatingRange.Max),
		})
	}
	return out
}

// GenerateLocations inserts the cities of every catalog region, then
// re-reads the full city set and inserts a neighborhood quota per city.
// Existing (name, parent) pairs are skipped.
func GenerateLocations(ctx context.Context, q db.Querier, s *datagen.Session, cat *catalog.Catalog, quota, batchSize int) (LocationStats, error) {
	var stats LocationStats

	cities := db.NewBatchQueue(q, batchSize)
	for _, r := range cat.Regions {
		regionID, err := lookupRegionID(ctx, q, r.Code)
		if err != nil {
			return stats, err
		}
		for _, name := range r.Cities {
			c := NewCity(s, name, regionID)
			if err := cities.Queue(ctx, `
                INSERT INTO cities (name, province_id, population, latitude, longitude)
                VALUES ($1, $2, $3, $4, $5)
                ON CONFLICT (name, province_id) DO NOTHING
            `, c.Name, c.RegionID, c.Population, c.Latitude, c.Longitude); err != nil {
				return stats, fmt.Errorf("failed to insert cities: %w", err)
			}
		}
	}
	if err := cities.Flush(ctx); err != nil {
		return stats, fmt.Errorf("failed to insert cities: %w", err)
	}
	stats.Cities = cities.RowsAffected()

	cityIDs, err := loadCityIDs(ctx, q)
	if err != nil {
		return stats, err
	}

	neighborhoods := db.NewBatchQueue(q, batchSize)
	for _, id := range cityIDs {
		for _, n := range NewNeighborhoods(s, id, cat.NeighborhoodNames, quota) {
			if err := neighborhoods.Queue(ctx, `
                INSERT INTO neighborhoods (name, city_id, average_income, walkability_score, safety_rating)
                VALUES ($1, $2, $3, $4, $5)
                ON CONFLICT (name, city_id) DO NOTHING
            `, n.Name, n.CityID, n.AverageIncome, n.WalkabilityScore, n.SafetyRating); err != nil {
				return stats, fmt.Errorf("failed to insert neighborhoods: %w", err)
			}
		}
	}
	if err := neighborhoods.Flush(ctx); err != nil {
		return stats, fmt.Errorf("failed to insert neighborhoods: %w", err)
	}
	stats.Neighborhoods = neighborhoods.RowsAffected()

	logging.Info().
		Int64("cities", stats.Cities).
		Int64("neighborhoods", stats.Neighborhoods).
		Msg("Locations generated")

	return stats, nil
}

func lookupRegionID(ctx context.Context, q db.Querier, code string) (int, error) {
	var id int
	err := q.QueryRow(ctx, `SELECT id FROM provinces WHERE code = $1`, code).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("province %s has not been seeded", code)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up province %s: %w", code, err)
	}
	return id, nil
}

func loadCityIDs(ctx context.Context, q db.Querier) ([]int, error) {
	rows, err := q.Query(ctx, `SELECT id FROM cities ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to read cities: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, fmt.Errorf("failed to read cities: %w", err)
	}
	return ids, nil
}
