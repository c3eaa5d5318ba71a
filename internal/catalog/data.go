//-------------------------------------------------------------------------
//
// pgEdge Listing Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package catalog

var regions = []Region{
	{Code: "ON", Name: "Ontario", CountryCode: "CA", Cities: []string{
		"Toronto", "Ottawa", "Hamilton", "London", "Kitchener", "Windsor", "Mississauga", "Brampton"}},
	{Code: "QC", Name: "Quebec", CountryCode: "CA", Cities: []string{
		"Montreal", "Quebec City", "Laval", "Gatineau", "Longueuil", "Sherbrooke"}},
	{Code: "BC", Name: "British Columbia", CountryCode: "CA", Cities: []string{
		"Vancouver", "Victoria", "Surrey", "Burnaby", "Richmond", "Abbotsford"}},
	{Code: "AB", Name: "Alberta", CountryCode: "CA", Cities: []string{
		"Calgary", "Edmonton", "Red Deer", "Lethbridge", "Medicine Hat"}},
	{Code: "MB", Name: "Manitoba", CountryCode: "CA", Cities: []string{
		"Winnipeg", "Brandon", "Steinbach", "Thompson"}},
	{Code: "SK", Name: "Saskatchewan", CountryCode: "CA", Cities: []string{
		"Saskatoon", "Regina", "Prince Albert", "Moose Jaw"}},
	{Code: "NS", Name: "Nova Scotia", CountryCode: "CA", Cities: []string{
		"Halifax", "Sydney", "Dartmouth", "Truro"}},
	{Code: "NB", Name: "New Brunswick", CountryCode: "CA", Cities: []string{
		"Saint John", "Moncton", "Fredericton", "Dieppe"}},
	{Code: "NL", Name: "Newfoundland and Labrador", CountryCode: "CA", Cities: []string{
		"St. Johns", "Mount Pearl", "Corner Brook"}},
	{Code: "PE", Name: "Prince Edward Island", CountryCode: "CA", Cities: []string{
		"Charlottetown", "Summerside"}},
}

var propertyTypes = []PropertyType{
	{Name: "House", Description: "Single-family detached house", Category: "residential"},
	{Name: "Condo", Description: "Condominium unit", Category: "residential"},
	{Name: "Townhouse", Description: "Multi-level attached home", Category: "residential"},
	{Name: "Apartment", Description: "Rental apartment unit", Category: "residential"},
	{Name: "Duplex", Description: "Two-unit residential building", Category: "residential"},
	{Name: "Bungalow", Description: "Single-story house", Category: "residential"},
	{Name: "Loft", Description: "Open-concept living space", Category: "residential"},
	{Name: "Studio", Description: "Single-room living space", Category: "residential"},
}

var listingTypes = []ListingType{
	{Name: "Sale", Description: "Property available for purchase"},
	{Name: "Rent", Description: "Property available for rental"},
	{Name: "Lease", Description: "Property available for lease"},
}

var statuses = []Status{
	{Name: "Active", Description: "Currently available", IsAvailable: true},
	{Name: "Pending", Description: "Offer accepted, pending completion", IsAvailable: false},
	{Name: "Sold", Description: "Sale completed", IsAvailable: false},
	{Name: "Rented", Description: "Currently rented", IsAvailable: false},
	{Name: "Off Market", Description: "Temporarily unavailable", IsAvailable: false},
}

var features = []Feature{
	// Interior
	{Name: "Hardwood Floors", Category: "interior", Description: "Beautiful hardwood flooring throughout"},
	{Name: "Granite Countertops", Category: "interior", Description: "Premium granite kitchen countertops"},
	{Name: "Stainless Steel Appliances", Category: "interior", Description: "Modern stainless steel kitchen appliances"},
	{Name: "Walk-in Closet", Category: "interior", Description: "Spacious walk-in closet in master bedroom"},
	{Name: "Fireplace", Category: "interior", Description: "Cozy fireplace in living area"},
	{Name: "Updated Kitchen", Category: "interior", Description: "Recently renovated modern kitchen"},
	{Name: "Ensuite Bathroom", Category: "interior", Description: "Private bathroom in master bedroom"},
	{Name: "High Ceilings", Category: "interior", Description: "Soaring high ceilings create spacious feel"},
	{Name: "In-Unit Laundry", Category: "interior", Description: "Washer and dryer in unit"},
	{Name: "Central Air", Category: "interior", Description: "Central air conditioning system"},

	// Exterior
	{Name: "Balcony", Category: "exterior", Description: "Private outdoor balcony space"},
	{Name: "Patio", Category: "exterior", Description: "Outdoor patio area"},
	{Name: "Garden", Category: "exterior", Description: "Private garden space"},
	{Name: "Garage", Category: "exterior", Description: "Attached or detached garage"},
	{Name: "Driveway", Category: "exterior", Description: "Private driveway parking"},
	{Name: "Deck", Category: "exterior", Description: "Outdoor deck space"},
	{Name: "Fenced Yard", Category: "exterior", Description: "Fully fenced backyard"},
	{Name: "Pool", Category: "exterior", Description: "Swimming pool on property"},

	// Building
	{Name: "Gym", Category: "building", Description: "On-site fitness facility"},
	{Name: "Concierge", Category: "building", Description: "24/7 concierge service"},
	{Name: "Rooftop Terrace", Category: "building", Description: "Shared rooftop outdoor space"},
	{Name: "Storage Locker", Category: "building", Description: "Additional storage space"},
	{Name: "Bike Storage", Category: "building", Description: "Secure bicycle storage"},
	{Name: "Party Room", Category: "building", Description: "Shared entertainment space"},
	{Name: "Guest Suite", Category: "building", Description: "Guest accommodation available"},
	{Name: "Security System", Category: "building", Description: "Building security system"},

	// Neighborhood
	{Name: "Near Transit", Category: "neighborhood", Description: "Close to public transportation"},
	{Name: "Near Schools", Category: "neighborhood", Description: "Walking distance to schools"},
	{Name: "Near Shopping", Category: "neighborhood", Description: "Close to shopping centers"},
	{Name: "Near Parks", Category: "neighborhood", Description: "Close to parks and recreation"},
	{Name: "Waterfront", Category: "neighborhood", Description: "Waterfront location"},
	{Name: "Downtown", Category: "neighborhood", Description: "Downtown location"},
}

var neighborhoodNames = []string{
	"Downtown", "Uptown", "Midtown", "Old Town", "New Town", "Riverside", "Hillside",
	"Parkside", "Westside", "Eastside", "Northside", "Southside", "Central", "Heights", "Gardens",
}

// Value pools used when attributing generated rows.
var (
	Agencies = []string{
		"Royal LePage", "RE/MAX", "Century 21", "Coldwell Banker", "Keller Williams",
		"Sutton Group", "HomeLife", "Realty Executives", "Exit Realty",
		"Chestnut Park Real Estate", "Bosley Real Estate", "Right at Home Realty",
		"iPro Realty", "Sage Real Estate",
	}

	EmailDomains = []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com"}

	Streets = []string{
		"Main St", "Oak Ave", "Maple Dr", "Pine Rd", "Cedar Blvd", "Elm St", "King St",
		"Queen St", "First Ave", "Second Ave", "Park Ave", "Church St", "Mill Rd", "Hill St",
		"Lake Dr", "Forest Ave", "Garden St", "Spring St", "River Rd", "Mountain View Dr",
		"Sunset Blvd", "Victoria St", "Wellington St", "Richmond St", "York St", "Bay St",
		"College St",
	}

	UnitSuffixes = []string{"A", "B", "C", ""}

	TitleAdjectives = []string{
		"Beautiful", "Stunning", "Modern", "Spacious", "Charming", "Luxurious", "Cozy",
		"Bright", "Updated", "Renovated", "Contemporary", "Classic", "Elegant",
		"Comfortable", "Stylish",
	}

	TitleSuffixes = []string{
		"with great views", "in prime location", "with modern amenities", "near downtown",
		"with parking", "newly renovated", "move-in ready", "with outdoor space",
		"in quiet neighborhood", "with lots of natural light",
	}

	HeatingTypes = []string{"Forced Air", "Radiant", "Baseboard", "Heat Pump", "Electric", "Gas", "Oil"}

	CoolingTypes = []string{"Central Air", "Window Units", "None", "Heat Pump"}

	ParkingTypes = []string{"Garage", "Driveway", "Street", "Underground", "Surface Lot"}

	Utilities = []string{"Electricity", "Water", "Heat", "Internet", "Cable"}

	// PrimaryImageType is the category of every property's first image.
	PrimaryImageType = "exterior"

	ImageTypes = []string{"exterior", "interior", "floor_plan", "kitchen", "bathroom", "bedroom", "living_room"}
)

// Geographic bounding box for generated coordinates.
const (
	MinLatitude  = 42.0
	MaxLatitude  = 70.0
	MinLongitude = -141.0
	MaxLongitude = -52.0

	// CoordinatePrecision is the number of decimal places kept.
	CoordinatePrecision = 8
)

// postalPrefixes maps region codes to the first letters of their postal
// forward sortation areas.
var postalPrefixes = map[string]string{
	"ON": "KLMNP",
	"QC": "GHJ",
	"BC": "V",
	"AB": "T",
	"MB": "R",
	"SK": "S",
	"NS": "B",
	"NB": "E",
	"NL": "A",
	"PE": "C",
}

// PostalPrefixes returns the leading postal letters used by a region, or
// "" when the region code is unknown.
func PostalPrefixes(regionCode string) string {
	return postalPrefixes[regionCode]
}
