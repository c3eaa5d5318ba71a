//-------------------------------------------------------------------------
//
// pgEdge Listing Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package catalog

import "fmt"

// Category is the closed set of property categories the generator knows
// how to attribute. Catalog rows whose names match none of them map to
// CategoryOther.
type Category int

const (
	CategoryOther Category = iota
	CategoryHouse
	CategoryCondo
	CategoryTownhouse
	CategoryApartment
	CategoryDuplex
	CategoryBungalow
	CategoryLoft
	CategoryStudio
)

// IntRange is an inclusive integer range.
type IntRange struct {
	Min, Max int
}

// FloatRange is a closed floating point range.
type FloatRange struct {
	Min, Max float64
}

// Profile is the attribute configuration carried by a category.
type Profile struct {
	Bedrooms  IntRange
	Bathrooms FloatRange
	AreaSqft  IntRange
	Price     FloatRange

	// Ground marks land-owning categories that carry a lot size.
	Ground bool

	// InBuilding marks units inside a larger building; they may carry a unit number.
	InBuilding bool

	// Strata marks categories that may carry a maintenance fee.
	Strata bool

	// SingleStory forces one floor.
	SingleStory bool

	// NoParking forces zero parking spaces.
	NoParking bool
}

var houseProfile = Profile{
	Bedrooms:  IntRange{2, 5},
	Bathrooms: FloatRange{1.5, 4.5},
	AreaSqft:  IntRange{1200, 3500},
	Price:     FloatRange{300000, 1200000},
	Ground:    true,
}

// Profile returns the attribute configuration for c.
func (c Category) Profile() Profile {
	switch c {
	case CategoryHouse:
		return houseProfile
	case CategoryCondo:
		return Profile{
			Bedrooms:   IntRange{1, 3},
			Bathrooms:  FloatRange{1.0, 2.5},
			AreaSqft:   IntRange{600, 1800},
			Price:      FloatRange{200000, 800000},
			InBuilding: true,
			Strata:     true,
		}
	case CategoryTownhouse:
		return Profile{
			Bedrooms:  IntRange{2, 4},
			Bathrooms: FloatRange{1.5, 3.5},
			AreaSqft:  IntRange{1000, 2500},
			Price:     FloatRange{250000, 900000},
			Ground:    true,
		}
	case CategoryApartment:
		return Profile{
			Bedrooms:   IntRange{1, 2},
			Bathrooms:  FloatRange{1.0, 2.0},
			AreaSqft:   IntRange{500, 1200},
			Price:      FloatRange{150000, 500000},
			InBuilding: true,
			Strata:     true,
		}
	case CategoryDuplex:
		return Profile{
			Bedrooms:  IntRange{3, 6},
			Bathrooms: FloatRange{2.0, 4.0},
			AreaSqft:  IntRange{1500, 3000},
			Price:     FloatRange{400000, 1000000},
			Ground:    true,
		}
	case CategoryBungalow:
		return Profile{
			Bedrooms:    IntRange{2, 4},
			Bathrooms:   FloatRange{1.5, 3.0},
			AreaSqft:    IntRange{1000, 2500},
			Price:       FloatRange{300000, 900000},
			Ground:      true,
			SingleStory: true,
		}
	case CategoryLoft:
		return Profile{
			Bedrooms:   IntRange{1, 2},
			Bathrooms:  FloatRange{1.0, 2.0},
			AreaSqft:   IntRange{800, 2000},
			Price:      FloatRange{250000, 700000},
			InBuilding: true,
		}
	case CategoryStudio:
		return Profile{
			Bedrooms:   IntRange{0, 1},
			Bathrooms:  FloatRange{1.0, 1.5},
			AreaSqft:   IntRange{400, 800},
			Price:      FloatRange{150000, 400000},
			InBuilding: true,
			NoParking:  true,
		}
	case CategoryOther:
		p := houseProfile
		p.Ground = false
		return p
	default:
		panic(fmt.Sprintf("catalog: unhandled category %d", int(c)))
	}
}

var categoryNames = map[string]Category{
	"House":     CategoryHouse,
	"Condo":     CategoryCondo,
	"Townhouse": CategoryTownhouse,
	"Apartment": CategoryApartment,
	"Duplex":    CategoryDuplex,
	"Bungalow":  CategoryBungalow,
	"Loft":      CategoryLoft,
	"Studio":    CategoryStudio,
}

// ParseCategory maps a property type name to its category. The boolean is
// false, and the category CategoryOther, when no category matches.
func ParseCategory(name string) (Category, bool) {
	c, ok := categoryNames[name]
	if !ok {
		return CategoryOther, false
	}
	return c, true
}

func (c Category) String() string {
	for name, v := range categoryNames {
		if v == c {
			return name
		}
	}
	return "Other"
}

// ListingKind is the closed set of listing types.
type ListingKind int

const (
	ListingSale ListingKind = iota + 1
	ListingRent
	ListingLease
)

// ParseListingKind maps a listing type name to its kind.
func ParseListingKind(name string) (ListingKind, error) {
	switch name {
	case "Sale":
		return ListingSale, nil
	case "Rent":
		return ListingRent, nil
	case "Lease":
		return ListingLease, nil
	default:
		return 0, fmt.Errorf("unknown listing type %q", name)
	}
}

// Rental reports whether the listing is priced as a monthly rent.
func (k ListingKind) Rental() bool {
	return k == ListingRent || k == ListingLease
}

func (k ListingKind) String() string {
	switch k {
	case ListingSale:
		return "Sale"
	case ListingRent:
		return "Rent"
	case ListingLease:
		return "Lease"
	default:
		return fmt.Sprintf("ListingKind(%d)", int(k))
	}
}
