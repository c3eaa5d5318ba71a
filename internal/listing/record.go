//-------------------------------------------------------------------------
//
// pgEdge Listing Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package listing

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pgEdge/pgedge-listgen/internal/catalog"
)

// Property is one generated properties row. Pointer fields are NULL when nil.
type Property struct {
	ID             uuid.UUID
	MLSNumber      *string
	PropertyTypeID int
	ListingTypeID  int
	StatusID       int
	AgentID        *int

	StreetAddress  string
	UnitNumber     *string
	NeighborhoodID *int
	CityID         int
	ProvinceID     int
	PostalCode     string
	Latitude       float64
	Longitude      float64

	Title       string
	Description string

	YearBuilt     int
	TotalAreaSqft int
	LotSizeSqft   *int
	Bedrooms      int
	Bathrooms     float64
	HalfBathrooms int
	Floors        int

	ListPrice           *float64
	PricePerSqft        *float64
	MonthlyRent         *float64
	MaintenanceFee      *float64
	PropertyTaxesAnnual *float64

	HeatingType       string
	CoolingType       string
	UtilitiesIncluded []string
	ParkingSpaces     int
	ParkingType       *string
	PetFriendly       bool
	Furnished         bool

	ListedDate    time.Time
	AvailableDate *time.Time
	SoldDate      *time.Time

	// Resolved taxonomy variants; not persisted.
	Category catalog.Category
	Kind     catalog.ListingKind
}

// FeatureLink is one property_feature_mappings row.
type FeatureLink struct {
	PropertyID uuid.UUID
	FeatureID  int
}

// Image is one property_images row.
type Image struct {
	PropertyID   uuid.UUID
	URL          string
	Type         string
	Caption      string
	DisplayOrder int
	Primary      bool
}

// Record is a property with its child rows.
type Record struct {
	Property Property
	Features []FeatureLink
	Images   []Image
}

// PropertyColumns is the COPY column order of Property.Values.
var PropertyColumns = []string{
	"id", "mls_number", "property_type_id", "listing_type_id", "status_id", "agent_id",
	"street_address", "unit_number", "neighborhood_id", "city_id", "province_id", "postal_code",
	"latitude", "longitude", "title", "description", "year_built",
	"total_area_sqft", "lot_size_sqft", "bedrooms", "bathrooms", "half_bathrooms", "floors",
	"list_price", "price_per_sqft", "monthly_rent", "maintenance_fee", "property_taxes_annual",
	"heating_type", "cooling_type", "utilities_included",
	"parking_spaces", "parking_type", "pet_friendly", "furnished",
	"listed_date", "available_date", "sold_date",
}

// FeatureLinkColumns is the COPY column order of FeatureLink.Values.
var FeatureLinkColumns = []string{"property_id", "feature_id"}

// ImageColumns is the COPY column order of Image.Values.
var ImageColumns = []string{"property_id", "image_url", "image_type", "caption", "display_order", "is_primary"}

func pgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

// Values returns the row in PropertyColumns order.
func (p *Property) Values() []any {
	var utilities any
	if p.UtilitiesIncluded != nil {
		utilities = p.UtilitiesIncluded
	}
	return []any{
		pgUUID(p.ID), p.MLSNumber, p.PropertyTypeID, p.ListingTypeID, p.StatusID, p.AgentID,
		p.StreetAddress, p.UnitNumber, p.NeighborhoodID, p.CityID, p.ProvinceID, p.PostalCode,
		p.Latitude, p.Longitude, p.Title, p.Description, p.YearBuilt,
		p.TotalAreaSqft, p.LotSizeSqft, p.Bedrooms, p.Bathrooms, p.HalfBathrooms, p.Floors,
		p.ListPrice, p.PricePerSqft, p.MonthlyRent, p.MaintenanceFee, p.PropertyTaxesAnnual,
		p.HeatingType, p.CoolingType, utilities,
		p.ParkingSpaces, p.ParkingType, p.PetFriendly, p.Furnished,
		p.ListedDate, p.AvailableDate, p.SoldDate,
	}
}

// Values returns the row in FeatureLinkColumns order.
func (l FeatureLink) Values() []any {
	return []any{pgUUID(l.PropertyID), l.FeatureID}
}

// Values returns the row in ImageColumns order.
func (img Image) Values() []any {
	return []any{pgUUID(img.PropertyID), img.URL, img.Type, img.Caption, img.DisplayOrder, img.Primary}
}
