//-------------------------------------------------------------------------
//
// pgEdge Listing Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package catalog holds the static reference data the generator seeds and
// samples from: regions with their cities, the property, listing, status
// and feature taxonomies, and the value pools used to attribute records.
package catalog

import "slices"

// Region is a province with the cities seeded under it.
type Region struct {
	Code        string
	Name        string
	CountryCode string
	Cities      []string
}

// PropertyType is a row of the property_types taxonomy.
type PropertyType struct {
	Name        string
	Description string
	Category    string
}

// ListingType is a row of the listing_types taxonomy.
type ListingType struct {
	Name        string
	Description string
}

// Status is a row of the property_status taxonomy.
type Status struct {
	Name        string
	Description string
	IsAvailable bool
}

// Feature is a row of the property_features catalog.
type Feature struct {
	Name        string
	Category    string
	Description string
}

// Catalog is the full set of static seed data for one run.
type Catalog struct {
	Regions           []Region
	PropertyTypes     []PropertyType
	ListingTypes      []ListingType
	Statuses          []Status
	Features          []Feature
	NeighborhoodNames []string

	// ActiveStatus names the status that listings are biased towards.
	ActiveStatus string
}

// Default returns the Canadian reference catalog.
func Default() *Catalog {
	return &Catalog{
		Regions:           slices.Clone(regions),
		PropertyTypes:     slices.Clone(propertyTypes),
		ListingTypes:      slices.Clone(listingTypes),
		Statuses:          slices.Clone(statuses),
		Features:          slices.Clone(features),
		NeighborhoodNames: slices.Clone(neighborhoodNames),
		ActiveStatus:      "Active",
	}
}

// CityCount returns the number of cities across all regions.
func (c *Catalog) CityCount() int {
	n := 0
	for _, r := range c.Regions {
		n += len(r.Cities)
	}
	return n
}

// Subset returns a copy of the catalog restricted to the first n regions,
// each keeping at most citiesPerRegion cities. Non-positive limits keep
// everything.
func (c *Catalog) Subset(n, citiesPerRegion int) *Catalog {
	out := *c
	rs := c.Regions
	if n > 0 && n < len(rs) {
		rs = rs[:n]
	}
	out.Regions = make([]Region, len(rs))
	for i, r := range rs {
		cities := r.Cities
		if citiesPerRegion > 0 && citiesPerRegion < len(cities) {
			cities = cities[:citiesPerRegion]
		}
		r.Cities = slices.Clone(cities)
		out.Regions[i] = r
	}
	return &out
}
