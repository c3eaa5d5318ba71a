//-------------------------------------------------------------------------
//
// pgEdge Listing Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package schema holds the DDL for the listing database the generator
// populates. It is a fixed definition, not a migration tool.
package schema

import (
	"context"
	"fmt"

	"github.com/pgEdge/pgedge-listgen/internal/db"
	"github.com/pgEdge/pgedge-listgen/internal/logging"
)

// Schema SQL for creating the listing database schema.
const createSchemaSQL = `
-- Provinces: top of the location hierarchy
CREATE TABLE IF NOT EXISTS provinces (
    id              SERIAL PRIMARY KEY,
    code            VARCHAR(2) NOT NULL UNIQUE,
    name            VARCHAR(100) NOT NULL,
    country_code    VARCHAR(2) NOT NULL DEFAULT 'CA',
    created_at      TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS cities (
    id              SERIAL PRIMARY KEY,
    name            VARCHAR(100) NOT NULL,
    province_id     INTEGER NOT NULL REFERENCES provinces(id),
    population      INTEGER,
    latitude        NUMERIC(10,8),
    longitude       NUMERIC(11,8),
    created_at      TIMESTAMP NOT NULL DEFAULT NOW(),
    UNIQUE (name, province_id)
);

CREATE TABLE IF NOT EXISTS neighborhoods (
    id                  SERIAL PRIMARY KEY,
    name                VARCHAR(100) NOT NULL,
    city_id             INTEGER NOT NULL REFERENCES cities(id),
    average_income      INTEGER,
    walkability_score   INTEGER,
    safety_rating       INTEGER,
    created_at          TIMESTAMP NOT NULL DEFAULT NOW(),
    UNIQUE (name, city_id)
);

-- Taxonomies
CREATE TABLE IF NOT EXISTS property_types (
    id              SERIAL PRIMARY KEY,
    name            VARCHAR(50) NOT NULL UNIQUE,
    description     TEXT,
    category        VARCHAR(50),
    created_at      TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS listing_types (
    id              SERIAL PRIMARY KEY,
    name            VARCHAR(50) NOT NULL UNIQUE,
    description     TEXT,
    created_at      TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS property_status (
    id              SERIAL PRIMARY KEY,
    name            VARCHAR(50) NOT NULL UNIQUE,
    description     TEXT,
    is_available    BOOLEAN NOT NULL DEFAULT TRUE,
    created_at      TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS property_features (
    id              SERIAL PRIMARY KEY,
    name            VARCHAR(100) NOT NULL UNIQUE,
    category        VARCHAR(50),
    description     TEXT,
    created_at      TIMESTAMP NOT NULL DEFAULT NOW()
);

-- Agents
CREATE TABLE IF NOT EXISTS agents (
    id                  SERIAL PRIMARY KEY,
    first_name          VARCHAR(50) NOT NULL,
    last_name           VARCHAR(50) NOT NULL,
    email               VARCHAR(100) UNIQUE,
    phone               VARCHAR(20),
    license_number      VARCHAR(50) UNIQUE,
    agency_name         VARCHAR(100),
    years_experience    INTEGER,
    rating              NUMERIC(3,2),
    total_reviews       INTEGER NOT NULL DEFAULT 0,
    created_at          TIMESTAMP NOT NULL DEFAULT NOW()
);

-- Properties: the central fact table
CREATE TABLE IF NOT EXISTS properties (
    id                      UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    mls_number              VARCHAR(50) UNIQUE,
    property_type_id        INTEGER NOT NULL REFERENCES property_types(id),
    listing_type_id         INTEGER NOT NULL REFERENCES listing_types(id),
    status_id               INTEGER NOT NULL REFERENCES property_status(id),
    agent_id                INTEGER REFERENCES agents(id),
    street_address          VARCHAR(200) NOT NULL,
    unit_number             VARCHAR(20),
    neighborhood_id         INTEGER REFERENCES neighborhoods(id),
    city_id                 INTEGER NOT NULL REFERENCES cities(id),
    province_id             INTEGER NOT NULL REFERENCES provinces(id),
    postal_code             VARCHAR(10),
    latitude                NUMERIC(10,8),
    longitude               NUMERIC(11,8),
    title                   VARCHAR(200) NOT NULL,
    description             TEXT,
    year_built              INTEGER,
    total_area_sqft         INTEGER,
    lot_size_sqft           INTEGER,
    bedrooms                INTEGER,
    bathrooms               NUMERIC(3,1),
    half_bathrooms          INTEGER NOT NULL DEFAULT 0,
    floors                  INTEGER,
    list_price              NUMERIC(12,2),
    price_per_sqft          NUMERIC(8,2),
    monthly_rent            NUMERIC(10,2),
    maintenance_fee         NUMERIC(8,2),
    property_taxes_annual   NUMERIC(10,2),
    heating_type            VARCHAR(50),
    cooling_type            VARCHAR(50),
    utilities_included      TEXT[],
    parking_spaces          INTEGER NOT NULL DEFAULT 0,
    parking_type            VARCHAR(50),
    pet_friendly            BOOLEAN NOT NULL DEFAULT FALSE,
    furnished               BOOLEAN NOT NULL DEFAULT FALSE,
    listed_date             DATE,
    available_date          DATE,
    sold_date               DATE,
    last_updated            TIMESTAMP NOT NULL DEFAULT NOW(),
    created_at              TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS property_feature_mappings (
    id              SERIAL PRIMARY KEY,
    property_id     UUID NOT NULL REFERENCES properties(id),
    feature_id      INTEGER NOT NULL REFERENCES property_features(id),
    created_at      TIMESTAMP NOT NULL DEFAULT NOW(),
    UNIQUE (property_id, feature_id)
);

CREATE TABLE IF NOT EXISTS property_images (
    id              SERIAL PRIMARY KEY,
    property_id     UUID NOT NULL REFERENCES properties(id),
    image_url       VARCHAR(500) NOT NULL,
    image_type      VARCHAR(50),
    caption         TEXT,
    display_order   INTEGER NOT NULL DEFAULT 0,
    is_primary      BOOLEAN NOT NULL DEFAULT FALSE,
    created_at      TIMESTAMP NOT NULL DEFAULT NOW()
);

-- Search table: one flattened row per property, rebuilt after each run
CREATE TABLE IF NOT EXISTS search_table (
    id                              UUID PRIMARY KEY,
    mls_number                      VARCHAR(50),
    property_type_id                INTEGER,
    listing_type_id                 INTEGER,
    status_id                       INTEGER,
    agent_id                        INTEGER,
    street_address                  VARCHAR(200),
    unit_number                     VARCHAR(20),
    neighborhood_id                 INTEGER,
    city_id                         INTEGER,
    province_id                     INTEGER,
    postal_code                     VARCHAR(10),
    latitude                        NUMERIC(10,8),
    longitude                       NUMERIC(11,8),
    title                           VARCHAR(200),
    description                     TEXT,
    year_built                      INTEGER,
    total_area_sqft                 INTEGER,
    lot_size_sqft                   INTEGER,
    bedrooms                        INTEGER,
    bathrooms                       NUMERIC(3,1),
    half_bathrooms                  INTEGER,
    floors                          INTEGER,
    list_price                      NUMERIC(12,2),
    price_per_sqft                  NUMERIC(8,2),
    monthly_rent                    NUMERIC(10,2),
    maintenance_fee                 NUMERIC(8,2),
    property_taxes_annual           NUMERIC(10,2),
    heating_type                    VARCHAR(50),
    cooling_type                    VARCHAR(50),
    utilities_included              TEXT[],
    parking_spaces                  INTEGER,
    parking_type                    VARCHAR(50),
    pet_friendly                    BOOLEAN,
    furnished                       BOOLEAN,
    listed_date                     DATE,
    available_date                  DATE,
    sold_date                       DATE,
    last_updated                    TIMESTAMP,
    created_at                      TIMESTAMP,
    province_code                   VARCHAR(2),
    province_name                   VARCHAR(100),
    country_code                    VARCHAR(2),
    city_name                       VARCHAR(100),
    city_population                 INTEGER,
    city_latitude                   NUMERIC(10,8),
    city_longitude                  NUMERIC(11,8),
    neighborhood_name               VARCHAR(100),
    neighborhood_average_income     INTEGER,
    neighborhood_walkability_score  INTEGER,
    neighborhood_safety_rating      INTEGER,
    property_type_name              VARCHAR(50),
    property_type_description       TEXT,
    property_type_category          VARCHAR(50),
    listing_type_name               VARCHAR(50),
    listing_type_description        TEXT,
    property_status_name            VARCHAR(50),
    property_status_description     TEXT,
    property_status_is_available    BOOLEAN,
    agent_first_name                VARCHAR(50),
    agent_last_name                 VARCHAR(50),
    agent_email                     VARCHAR(100),
    agent_phone                     VARCHAR(20),
    agent_license_number            VARCHAR(50),
    agent_agency_name               VARCHAR(100),
    agent_years_experience          INTEGER,
    agent_rating                    NUMERIC(3,2),
    agent_total_reviews             INTEGER,
    property_features_names         TEXT[] NOT NULL DEFAULT ARRAY[]::TEXT[],
    property_features_categories    TEXT[] NOT NULL DEFAULT ARRAY[]::TEXT[],
    property_features_descriptions  TEXT[] NOT NULL DEFAULT ARRAY[]::TEXT[]
);

-- Indexes for common lookups
CREATE INDEX IF NOT EXISTS idx_cities_province ON cities(province_id);
CREATE INDEX IF NOT EXISTS idx_neighborhoods_city ON neighborhoods(city_id);
CREATE INDEX IF NOT EXISTS idx_properties_city ON properties(city_id);
CREATE INDEX IF NOT EXISTS idx_properties_agent ON properties(agent_id);
CREATE INDEX IF NOT EXISTS idx_feature_mappings_property ON property_feature_mappings(property_id);
CREATE INDEX IF NOT EXISTS idx_images_property ON property_images(property_id);
CREATE INDEX IF NOT EXISTS idx_search_city ON search_table(city_name);
CREATE INDEX IF NOT EXISTS idx_search_listing_type ON search_table(listing_type_name);
`

const dropSchemaSQL = `
DROP TABLE IF EXISTS search_table CASCADE;
DROP TABLE IF EXISTS property_images CASCADE;
DROP TABLE IF EXISTS property_feature_mappings CASCADE;
DROP TABLE IF EXISTS properties CASCADE;
DROP TABLE IF EXISTS agents CASCADE;
DROP TABLE IF EXISTS property_features CASCADE;
DROP TABLE IF EXISTS property_status CASCADE;
DROP TABLE IF EXISTS listing_types CASCADE;
DROP TABLE IF EXISTS property_types CASCADE;
DROP TABLE IF EXISTS neighborhoods CASCADE;
DROP TABLE IF EXISTS cities CASCADE;
DROP TABLE IF EXISTS provinces CASCADE;
`

// Table names.
const (
	Provinces       = "provinces"
	Cities          = "cities"
	Neighborhoods   = "neighborhoods"
	PropertyTypes   = "property_types"
	ListingTypes    = "listing_types"
	PropertyStatus  = "property_status"
	Features        = "property_features"
	Agents          = "agents"
	Properties      = "properties"
	FeatureMappings = "property_feature_mappings"
	Images          = "property_images"
	SearchTable     = "search_table"
)

// Tables lists every table in the schema, parents first.
var Tables = []string{
	Provinces, Cities, Neighborhoods, PropertyTypes, ListingTypes, PropertyStatus, Features,
	Agents, Properties, FeatureMappings, Images, SearchTable,
}

// GeneratedTables lists the tables a run fills with per-run rows, children
// first. Taxonomy tables are not included; they are upserted.
var GeneratedTables = []string{
	SearchTable, Images, FeatureMappings, Properties, Agents, Neighborhoods, Cities,
}

// Create creates every table if it does not already exist.
func Create(ctx context.Context, q db.Querier) error {
	if _, err := q.Exec(ctx, createSchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	logging.Info().Msg("Schema created")
	return nil
}

// Drop removes every table.
func Drop(ctx context.Context, q db.Querier) error {
	if _, err := q.Exec(ctx, dropSchemaSQL); err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	logging.Info().Msg("Schema dropped")
	return nil
}

// Reset empties the generated tables so a forced run starts clean.
func Reset(ctx context.Context, q db.Querier) error {
	if err := db.TruncateTables(ctx, q, GeneratedTables...); err != nil {
		return err
	}
	logging.Warn().
		Strs("tables", GeneratedTables).
		Msg("Cleared generated tables")
	return nil
}
