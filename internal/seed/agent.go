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
	"fmt"
	"strings"
	"unicode"

	"github.com/pgEdge/pgedge-listgen/internal/catalog"
	"github.com/pgEdge/pgedge-listgen/internal/datagen"
	"github.com/pgEdge/pgedge-listgen/internal/db"
)

// LicenseBase offsets the agent license sequence.
const LicenseBase = 100000

// Attribute ranges for generated agents.
var (
	ExperienceRange = catalog.IntRange{Min: 1, Max: 30}
	RatingRange     = catalog.FloatRange{Min: 3.0, Max: 5.0}
	ReviewsRange    = catalog.IntRange{Min: 5, Max: 200}
)

// Agent is a generated agents row.
type Agent struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	LicenseNumber   string
	AgencyName      string
	YearsExperience int
	Rating          float64
	TotalReviews    int
}

var agentColumns = []string{
	"first_name", "last_name", "email", "phone", "license_number",
	"agency_name", "years_experience", "rating", "total_reviews",
}

func (a Agent) values() []any {
	return []any{
		a.FirstName, a.LastName, a.Email, a.Phone, a.LicenseNumber,
		a.AgencyName, a.YearsExperience, a.Rating, a.TotalReviews,
	}
}

// NewAgent attributes the agent with sequence index i. Email and license
// embed i, so agents of one run never collide on either.
func NewAgent(s *datagen.Session, i int) Agent {
	f := s.Faker
	first := f.FirstName()
	last := f.LastName()
	domain := datagen.Choose(f, catalog.EmailDomains)

	return Agent{
		FirstName:       first,
		LastName:        last,
		Email:           fmt.Sprintf("%s.%s.%d@%s", emailPart(first), emailPart(last), i+1, domain),
		Phone:           fmt.Sprintf("%d-%d-%d", f.Int(200, 999), f.Int(200, 999), f.Int(1000, 9999)),
		LicenseNumber:   fmt.Sprintf("RE%06d", LicenseBase+i),
		AgencyName:      datagen.Choose(f, catalog.Agencies),
		YearsExperience: f.Int(ExperienceRange.Min, ExperienceRange.Max),
		Rating:          datagen.Round(f.Float64(RatingRange.Min, RatingRange.Max), 2),
		TotalReviews:    f.Int(ReviewsRange.Min, ReviewsRange.Max),
	}
}

// emailPart lower-cases a name and drops anything but letters and digits.
func emailPart(name string) string {
	part := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, name)
	if part == "" {
		return "agent"
	}
	return part
}

// GenerateAgents writes count agents in chunks of cfg.BatchSize.
func GenerateAgents(ctx context.Context, q db.Querier, s *datagen.Session, count int, cfg datagen.BatchInsertConfig) (int64, error) {
	progress := datagen.NewProgressReporter("agents", int64(count), cfg.ProgressInterval)
	w := db.NewBatchWriter(q, "agents", agentColumns, cfg.BatchSize).WithProgress(progress)

	for i := 0; i < count; i++ {
		if err := w.Add(ctx, NewAgent(s, i).values()...); err != nil {
			return w.Rows(), fmt.Errorf("failed to insert agents: %w", err)
		}
	}
	if err := w.Flush(ctx); err != nil {
		return w.Rows(), fmt.Errorf("failed to insert agents: %w", err)
	}

	progress.Done()
	return w.Rows(), nil
}
