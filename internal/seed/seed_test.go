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
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/pgEdge/pgedge-listgen/internal/catalog"
	"github.com/pgEdge/pgedge-listgen/internal/datagen"
)

func newSession() *datagen.Session {
	return datagen.NewSession(42, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestNewAgentUniqueIdentifiers(t *testing.T) {
	s := newSession()
	emails := make(map[string]bool)
	licenses := make(map[string]bool)

	const n = 2000
	for i := 0; i < n; i++ {
		a := NewAgent(s, i)
		if emails[a.Email] {
			t.Fatalf("Duplicate email %s at index %d", a.Email, i)
		}
		if licenses[a.LicenseNumber] {
			t.Fatalf("Duplicate license %s at index %d", a.LicenseNumber, i)
		}
		emails[a.Email] = true
		licenses[a.LicenseNumber] = true
	}
}

func TestNewAgentFormat(t *testing.T) {
	s := newSession()
	emailRE := regexp.MustCompile(`^[\p{Ll}\p{Nd}]+\.[\p{Ll}\p{Nd}]+\.(\d+)@(gmail|yahoo|hotmail|outlook)\.com$`)
	phoneRE := regexp.MustCompile(`^[2-9]\d\d-[2-9]\d\d-\d{4}$`)

	for i := 0; i < 200; i++ {
		a := NewAgent(s, i)

		m := emailRE.FindStringSubmatch(a.Email)
		if m == nil {
			t.Fatalf("Email %q has unexpected format", a.Email)
		}
		if want := strconv.Itoa(i + 1); m[1] != want {
			t.Errorf("Email %q should embed sequence %s", a.Email, want)
		}
		if !phoneRE.MatchString(a.Phone) {
			t.Errorf("Phone %q has unexpected format", a.Phone)
		}
		if a.FirstName == "" || a.LastName == "" {
			t.Error("Agent name is empty")
		}
		if a.YearsExperience < 1 || a.YearsExperience > 30 {
			t.Errorf("Experience %d out of range", a.YearsExperience)
		}
		if a.Rating < 3.0 || a.Rating > 5.0 {
			t.Errorf("Rating %.2f out of range", a.Rating)
		}
		if datagen.Round(a.Rating, 2) != a.Rating {
			t.Errorf("Rating %v not rounded to 2 decimals", a.Rating)
		}
		if a.TotalReviews < 5 || a.TotalReviews > 200 {
			t.Errorf("Reviews %d out of range", a.TotalReviews)
		}
	}
}

func TestLicenseSequence(t *testing.T) {
	s := newSession()
	tests := []struct {
		index int
		want  string
	}{
		{0, "RE100000"},
		{1, "RE100001"},
		{499, "RE100499"},
	}
	for _, tt := range tests {
		if got := NewAgent(s, tt.index).LicenseNumber; got != tt.want {
			t.Errorf("License for index %d = %s, want %s", tt.index, got, tt.want)
		}
	}
}

func TestEmailPart(t *testing.T) {
	tests := map[string]string{
		"Mary":    "mary",
		"O'Kon":   "okon",
		"Van Der": "vander",
		"---":     "agent",
	}
	for in, want := range tests {
		if got := emailPart(in); got != want {
			t.Errorf("emailPart(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewCity(t *testing.T) {
	s := newSession()
	for i := 0; i < 100; i++ {
		c := NewCity(s, "Toronto", 7)
		if c.Name != "Toronto" || c.RegionID != 7 {
			t.Fatalf("Unexpected city identity %+v", c)
		}
		if c.Population < PopulationRange.Min || c.Population > PopulationRange.Max {
			t.Errorf("Population %d out of range", c.Population)
		}
		if c.Latitude < catalog.MinLatitude || c.Latitude > catalog.MaxLatitude {
			t.Errorf("Latitude %f outside bounding box", c.Latitude)
		}
		if c.Longitude < catalog.MinLongitude || c.Longitude > catalog.MaxLongitude {
			t.Errorf("Longitude %f outside bounding box", c.Longitude)
		}
		if datagen.Round(c.Latitude, 8) != c.Latitude {
			t.Errorf("Latitude %v not rounded to 8 decimals", c.Latitude)
		}
	}
}

func TestNewNeighborhoods(t *testing.T) {
	s := newSession()
	pool := catalog.Default().NeighborhoodNames

	tests := []struct {
		name  string
		quota int
		want  int
	}{
		{"default quota", 5, 5},
		{"whole pool", len(pool), len(pool)},
		{"above pool", len(pool) + 3, len(pool)},
		{"none", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns := NewNeighborhoods(s, 3, pool, tt.quota)
			if len(ns) != tt.want {
				t.Fatalf("Got %d neighborhoods, want %d", len(ns), tt.want)
			}
			seen := make(map[string]bool)
			for _, n := range ns {
				if seen[n.Name] {
					t.Errorf("Duplicate neighborhood %s in one city", n.Name)
				}
				seen[n.Name] = true
				if n.CityID != 3 {
					t.Errorf("Neighborhood linked to city %d, want 3", n.CityID)
				}
				if n.AverageIncome < IncomeRange.Min || n.AverageIncome > IncomeRange.Max {
					t.Errorf("Income %d out of range", n.AverageIncome)
				}
				if n.WalkabilityScore < WalkabilityRange.Min || n.WalkabilityScore > WalkabilityRange.Max {
					t.Errorf("Walkability %d out of range", n.WalkabilityScore)
				}
				if n.SafetyRating < 1 || n.SafetyRating > 5 {
					t.Errorf("Safety rating %d out of range", n.SafetyRating)
				}
			}
		})
	}
}

func TestAgentValuesMatchColumns(t *testing.T) {
	a := NewAgent(newSession(), 0)
	if len(a.values()) != len(agentColumns) {
		t.Errorf("Agent has %d values for %d columns", len(a.values()), len(agentColumns))
	}
}
