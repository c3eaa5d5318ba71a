//-------------------------------------------------------------------------
//
// pgEdge Listing Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package listing generates property records with their feature links and
// images, honoring the cross-field rules that tie pricing, lot size, dates
// and descriptions to a property's category and listing type.
package listing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pgEdge/pgedge-listgen/internal/catalog"
	"github.com/pgEdge/pgedge-listgen/internal/datagen"
	"github.com/pgEdge/pgedge-listgen/internal/sampler"
)

// ErrCodeSpaceExhausted is returned when no unused listing code was found
// within the configured number of attempts.
var ErrCodeSpaceExhausted = errors.New("listing code space exhausted")

// Generation constants.
const (
	// RentDivisor converts a sale price into a monthly rent.
	RentDivisor = 200.0

	ListingCodeChance = 0.7
	MaintenanceChance = 0.7
	UnitNumberChance  = 0.5
	TitleSuffixChance = 0.5
	PetFriendlyChance = 0.6
	FurnishedChance   = 0.3

	MaxListedAgeDays      = 365
	MaxAvailableAfterDays = 90

	MinImages = 1
	MaxImages = 5

	// ImageBaseURL is the placeholder image service.
	ImageBaseURL = "https://picsum.photos/800/600"
)

// Attribute ranges shared by every category.
var (
	StreetNumberRange   = catalog.IntRange{Min: 1, Max: 9999}
	UnitNumberRange     = catalog.IntRange{Min: 100, Max: 999}
	FloorsRange         = catalog.IntRange{Min: 1, Max: 3}
	HalfBathroomsRange  = catalog.IntRange{Min: 0, Max: 2}
	YearBuiltRange      = catalog.IntRange{Min: 1950, Max: 2023}
	ParkingSpacesRange  = catalog.IntRange{Min: 0, Max: 3}
	UtilitiesCountRange = catalog.IntRange{Min: 0, Max: 3}
	MaintenanceRange    = catalog.FloatRange{Min: 200, Max: 800}
	TaxRateRange        = catalog.FloatRange{Min: 0.01, Max: 0.02}
	ListingCodeRange    = catalog.IntRange{Min: 100000, Max: 999999}
)

// Generator produces property records from a sampling snapshot.
type Generator struct {
	session      *datagen.Session
	snap         *sampler.Snapshot
	codeAttempts int
}

// NewGenerator creates a generator. codeAttempts bounds the listing code
// resampling loop.
func NewGenerator(s *datagen.Session, snap *sampler.Snapshot, codeAttempts int) *Generator {
	return &Generator{
		session:      s,
		snap:         snap,
		codeAttempts: max(codeAttempts, 1),
	}
}

// Generate builds the record for the index-th property of the run.
func (g *Generator) Generate(index int) (Record, error) {
	f := g.session.Faker

	loc := g.snap.Location(f)
	ptype := g.snap.PropertyType(f)
	profile := ptype.Category.Profile()

	p := Property{
		ID:             uuid.MustParse(f.UUID()),
		PropertyTypeID: ptype.ID,
		CityID:         loc.CityID,
		ProvinceID:     loc.RegionID,
		NeighborhoodID: loc.NeighborhoodID,
		Category:       ptype.Category,
	}

	// Physical attributes
	p.Bedrooms = f.Int(profile.Bedrooms.Min, profile.Bedrooms.Max)
	p.Bathrooms = datagen.Round(f.Float64(profile.Bathrooms.Min, profile.Bathrooms.Max), 1)
	if p.Bedrooms >= 2 {
		p.HalfBathrooms = f.Int(HalfBathroomsRange.Min, HalfBathroomsRange.Max)
	}
	p.TotalAreaSqft = f.Int(profile.AreaSqft.Min, profile.AreaSqft.Max)
	if profile.Ground {
		lot := f.Int(p.TotalAreaSqft, p.TotalAreaSqft*3)
		p.LotSizeSqft = &lot
	}
	if profile.SingleStory {
		p.Floors = 1
	} else {
		p.Floors = f.Int(FloorsRange.Min, FloorsRange.Max)
	}

	// Listing type and pricing
	ltype := g.snap.ListingType(f)
	p.ListingTypeID = ltype.ID
	p.Kind = ltype.Kind
	base := f.Float64(profile.Price.Min, profile.Price.Max)
	if ltype.Kind.Rental() {
		rent := datagen.Round(base/RentDivisor, 2)
		p.MonthlyRent = &rent
	} else {
		list := datagen.Round(base, 2)
		ppsf := datagen.Round(list/float64(p.TotalAreaSqft), 2)
		p.ListPrice = &list
		p.PricePerSqft = &ppsf
	}
	if profile.Strata && f.Chance(MaintenanceChance) {
		fee := datagen.Round(f.Float64(MaintenanceRange.Min, MaintenanceRange.Max), 2)
		p.MaintenanceFee = &fee
	}
	if p.ListPrice != nil {
		tax := datagen.Round(*p.ListPrice*f.Float64(TaxRateRange.Min, TaxRateRange.Max), 2)
		p.PropertyTaxesAnnual = &tax
	}

	p.StatusID = g.snap.Status(f).ID
	p.AgentID = g.snap.Agent(f)

	// Address
	p.StreetAddress = fmt.Sprintf("%d %s",
		f.Int(StreetNumberRange.Min, StreetNumberRange.Max), datagen.Choose(f, catalog.Streets))
	if profile.InBuilding && f.Chance(UnitNumberChance) {
		unit := fmt.Sprintf("%d%s",
			f.Int(UnitNumberRange.Min, UnitNumberRange.Max), datagen.Choose(f, catalog.UnitSuffixes))
		p.UnitNumber = &unit
	}
	p.PostalCode = PostalCode(f, loc.RegionCode)
	p.Latitude = datagen.Round(f.Float64(catalog.MinLatitude, catalog.MaxLatitude), catalog.CoordinatePrecision)
	p.Longitude = datagen.Round(f.Float64(catalog.MinLongitude, catalog.MaxLongitude), catalog.CoordinatePrecision)

	// Remaining attributes the description depends on
	p.YearBuilt = f.Int(YearBuiltRange.Min, YearBuiltRange.Max)
	if !profile.NoParking {
		p.ParkingSpaces = f.Int(ParkingSpacesRange.Min, ParkingSpacesRange.Max)
	}
	p.PetFriendly = f.Chance(PetFriendlyChance)
	p.Furnished = f.Chance(FurnishedChance)

	p.Title = Title(f, ptype.Name, loc.CityName)
	p.Description = Description(f, &p, ptype.Name, loc.CityName)

	// Dates
	p.ListedDate = g.session.Today.AddDate(0, 0, -f.Int(0, MaxListedAgeDays))
	if ltype.Kind.Rental() {
		available := g.session.Today.AddDate(0, 0, f.Int(0, MaxAvailableAfterDays))
		p.AvailableDate = &available
	}

	if f.Chance(ListingCodeChance) {
		code, err := g.listingCode(loc.RegionCode)
		if err != nil {
			return Record{}, err
		}
		p.MLSNumber = &code
	}

	// Environment
	p.HeatingType = datagen.Choose(f, catalog.HeatingTypes)
	p.CoolingType = datagen.Choose(f, catalog.CoolingTypes)
	if p.ParkingSpaces > 0 {
		pt := datagen.Choose(f, catalog.ParkingTypes)
		p.ParkingType = &pt
	}
	if ltype.Kind.Rental() {
		n := f.Int(UtilitiesCountRange.Min, UtilitiesCountRange.Max)
		if n > 0 {
			p.UtilitiesIncluded = datagen.Sample(f, catalog.Utilities, n)
		}
	}

	rec := Record{Property: p}
	for _, id := range g.snap.Features(f) {
		rec.Features = append(rec.Features, FeatureLink{PropertyID: p.ID, FeatureID: id})
	}
	rec.Images = Images(f, p.ID, ptype.Name, index)

	return rec, nil
}

// listingCode draws a region-prefixed code not yet issued in this session,
// giving up after codeAttempts draws.
func (g *Generator) listingCode(regionCode string) (string, error) {
	f := g.session.Faker
	for attempt := 0; attempt < g.codeAttempts; attempt++ {
		code := fmt.Sprintf("%s%d", regionCode, f.Int(ListingCodeRange.Min, ListingCodeRange.Max))
		if g.session.Issue(code) {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: no free code for %s after %d attempts",
		ErrCodeSpaceExhausted, regionCode, g.codeAttempts)
}

// PostalCode generates a code of the form A1A 1A1 whose first letter is
// one used by the region.
func PostalCode(f *datagen.Faker, regionCode string) string {
	first := f.Letter()
	if prefixes := catalog.PostalPrefixes(regionCode); prefixes != "" {
		first = string(prefixes[f.Int(0, len(prefixes)-1)])
	}
	return fmt.Sprintf("%s%d%s %d%s%d",
		first, f.Int(0, 9), f.Letter(), f.Int(0, 9), f.Letter(), f.Int(0, 9))
}

// Title composes "<adjective> <type> in <city>" with an optional suffix.
func Title(f *datagen.Faker, typeName, city string) string {
	title := fmt.Sprintf("%s %s in %s", datagen.Choose(f, catalog.TitleAdjectives), typeName, city)
	if f.Chance(TitleSuffixChance) {
		title += " " + datagen.Choose(f, catalog.TitleSuffixes)
	}
	return title
}

// Description joins two to four template sentences filled from p.
func Description(f *datagen.Faker, p *Property, typeName, city string) string {
	audience := "families"
	if p.Bedrooms <= 2 {
		audience = "professionals or small families"
	}
	parking := "street parking available"
	if p.ParkingSpaces > 0 {
		parking = "parking included"
	}
	pets := "No pets allowed"
	if p.PetFriendly {
		pets = "Pet-friendly property"
	}
	furnished := "unfurnished"
	if p.Furnished {
		furnished = "furnished"
	}

	sentences := []string{
		fmt.Sprintf("This %d-bedroom, %.1f-bathroom %s offers %d sq ft of comfortable living space.",
			p.Bedrooms, p.Bathrooms, typeName, p.TotalAreaSqft),
		fmt.Sprintf("Located in the heart of %s, this property features modern amenities and excellent access to local attractions.", city),
		fmt.Sprintf("Perfect for %s, with %s.", audience, parking),
		fmt.Sprintf("%s with %s accommodation.", pets, furnished),
	}
	return strings.Join(datagen.Sample(f, sentences, f.Int(2, len(sentences))), " ")
}

// Images builds one to five images. The first is the primary exterior shot.
func Images(f *datagen.Faker, propertyID uuid.UUID, typeName string, index int) []Image {
	n := f.Int(MinImages, MaxImages)
	images := make([]Image, 0, n)
	for i := 0; i < n; i++ {
		imageType := catalog.PrimaryImageType
		if i > 0 {
			imageType = datagen.Choose(f, catalog.ImageTypes)
		}
		images = append(images, Image{
			PropertyID:   propertyID,
			URL:          fmt.Sprintf("%s?random=%d", ImageBaseURL, index*100+i),
			Type:         imageType,
			Caption:      typeName + " - " + datagen.TitleCase(imageType),
			DisplayOrder: i,
			Primary:      i == 0,
		})
	}
	return images
}
