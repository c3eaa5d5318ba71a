//-------------------------------------------------------------------------
//
// pgEdge Listing Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package search rebuilds the denormalized search_table projection from
// the normalized listing tables.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgEdge/pgedge-listgen/internal/db"
	"github.com/pgEdge/pgedge-listgen/internal/listing"
	"github.com/pgEdge/pgedge-listgen/internal/logging"
	"github.com/pgEdge/pgedge-listgen/internal/schema"
)

// column maps a search_table column to the expression that fills it.
type column struct {
	name string
	expr string
}

// joined lists the parent attributes flattened into each search row, by
// table alias.
var joined = []column{
	{"province_code", "prov.code"},
	{"province_name", "prov.name"},
	{"country_code", "prov.country_code"},
	{"city_name", "c.name"},
	{"city_population", "c.population"},
	{"city_latitude", "c.latitude"},
	{"city_longitude", "c.longitude"},
	{"neighborhood_name", "n.name"},
	{"neighborhood_average_income", "n.average_income"},
	{"neighborhood_walkability_score", "n.walkability_score"},
	{"neighborhood_safety_rating", "n.safety_rating"},
	{"property_type_name", "pt.name"},
	{"property_type_description", "pt.description"},
	{"property_type_category", "pt.category"},
	{"listing_type_name", "lt.name"},
	{"listing_type_description", "lt.description"},
	{"property_status_name", "ps.name"},
	{"property_status_description", "ps.description"},
	{"property_status_is_available", "ps.is_available"},
	{"agent_first_name", "a.first_name"},
	{"agent_last_name", "a.last_name"},
	{"agent_email", "a.email"},
	{"agent_phone", "a.phone"},
	{"agent_license_number", "a.license_number"},
	{"agent_agency_name", "a.agency_name"},
	{"agent_years_experience", "a.years_experience"},
	{"agent_rating", "a.rating"},
	{"agent_total_reviews", "a.total_reviews"},
}

// aggregated lists the feature arrays. Properties without features get
// empty arrays.
var aggregated = []column{
	{"property_features_names", featureArray("pf.name")},
	{"property_features_categories", featureArray("pf.category")},
	{"property_features_descriptions", featureArray("pf.description")},
}

func featureArray(expr string) string {
	return fmt.Sprintf("COALESCE(ARRAY_AGG(DISTINCT %s) FILTER (WHERE %s IS NOT NULL), ARRAY[]::TEXT[])", expr, expr)
}

// scalars returns every grouped column: the property's own columns
// followed by the flattened parent attributes.
func scalars() []column {
	var cols []column
	for _, name := range append(append([]string{}, listing.PropertyColumns...), "last_updated", "created_at") {
		cols = append(cols, column{name, "p." + name})
	}
	return append(cols, joined...)
}

// Columns returns the search_table columns filled by Materialize, in order.
func Columns() []string {
	var names []string
	for _, c := range append(scalars(), aggregated...) {
		names = append(names, c.name)
	}
	return names
}

const fromClause = `
FROM properties p
LEFT JOIN provinces prov ON p.province_id = prov.id
LEFT JOIN cities c ON p.city_id = c.id
LEFT JOIN neighborhoods n ON p.neighborhood_id = n.id
LEFT JOIN property_types pt ON p.property_type_id = pt.id
LEFT JOIN listing_types lt ON p.listing_type_id = lt.id
LEFT JOIN property_status ps ON p.status_id = ps.id
LEFT JOIN agents a ON p.agent_id = a.id
LEFT JOIN property_feature_mappings pfm ON p.id = pfm.property_id
LEFT JOIN property_features pf ON pfm.feature_id = pf.id`

// rebuildSQL returns the INSERT ... SELECT that fills search_table.
func rebuildSQL() string {
	group := scalars()
	all := append(append([]column{}, group...), aggregated...)

	names := make([]string, len(all))
	exprs := make([]string, len(all))
	for i, c := range all {
		names[i] = c.name
		exprs[i] = c.expr
	}
	keys := make([]string, len(group))
	for i, c := range group {
		keys[i] = c.expr
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "INSERT INTO %s (\n    %s\n)\n", schema.SearchTable, strings.Join(names, ",\n    "))
	fmt.Fprintf(&sb, "SELECT\n    %s", strings.Join(exprs, ",\n    "))
	sb.WriteString(fromClause)
	fmt.Fprintf(&sb, "\nGROUP BY\n    %s", strings.Join(keys, ",\n    "))
	return sb.String()
}

// Materialize deletes every search row and rebuilds one per property. Run
// it inside a transaction so a failed rebuild leaves the previous
// projection untouched.
func Materialize(ctx context.Context, q db.Querier) (int64, error) {
	log := logging.Phase("search")

	if _, err := q.Exec(ctx, "DELETE FROM "+schema.SearchTable); err != nil {
		return 0, fmt.Errorf("failed to clear %s: %w", schema.SearchTable, err)
	}

	tag, err := q.Exec(ctx, rebuildSQL())
	if err != nil {
		return 0, fmt.Errorf("failed to rebuild %s: %w", schema.SearchTable, err)
	}

	log.Info().Int64("rows", tag.RowsAffected()).Msg("Search table rebuilt")
	return tag.RowsAffected(), nil
}
