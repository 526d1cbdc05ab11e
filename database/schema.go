package database

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		full_name TEXT NOT NULL,
		phone TEXT,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'buyer',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS properties (
		id BIGSERIAL PRIMARY KEY,
		seller_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		locality TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL,
		state TEXT NOT NULL DEFAULT '',
		price NUMERIC NOT NULL,
		property_type TEXT NOT NULL,
		listing_type TEXT NOT NULL DEFAULT 'sale',
		area_sqft NUMERIC NOT NULL DEFAULT 0,
		bedrooms INT,
		bathrooms INT,
		floors INT,
		parking BOOLEAN,
		plot_number TEXT,
		facing TEXT,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		is_farmland BOOLEAN NOT NULL DEFAULT FALSE,
		google_earth_link TEXT,
		amenities TEXT[] NOT NULL DEFAULT '{}',
		images TEXT[] NOT NULL DEFAULT '{}',
		status TEXT NOT NULL DEFAULT 'pending',
		views BIGINT NOT NULL DEFAULT 0,
		full_name TEXT,
		email TEXT,
		phone TEXT,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS properties_seller_idx ON properties(seller_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS properties_status_idx ON properties(status, is_active, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS enquiries (
		id BIGSERIAL PRIMARY KEY,
		property_id BIGINT NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
		buyer_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		seller_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
		message TEXT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS enquiries_seller_idx ON enquiries(seller_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS enquiries_buyer_idx ON enquiries(buyer_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS property_requirements (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT,
		property_type TEXT NOT NULL,
		min_budget NUMERIC NOT NULL,
		max_budget NUMERIC NOT NULL,
		preferred_location TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT,
		min_area_sqft NUMERIC,
		max_area_sqft NUMERIC,
		bedrooms INT,
		bathrooms INT,
		additional_requirements TEXT,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		is_fulfilled BOOLEAN NOT NULL DEFAULT FALSE,
		matched_properties BIGINT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS investments (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		location TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		investment_type TEXT NOT NULL,
		min_investment NUMERIC NOT NULL,
		expected_roi NUMERIC,
		investment_period TEXT,
		highlights TEXT[] NOT NULL DEFAULT '{}',
		risk_level TEXT,
		images TEXT[] NOT NULL DEFAULT '{}',
		documents TEXT[] NOT NULL DEFAULT '{}',
		investors_count INT NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS investor_registrations (
		id BIGSERIAL PRIMARY KEY,
		opportunity_id BIGINT REFERENCES investments(id) ON DELETE SET NULL,
		user_id BIGINT,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT NOT NULL,
		investment_budget NUMERIC,
		preferred_investment_type TEXT,
		message TEXT,
		is_contacted BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS rentals (
		id BIGSERIAL PRIMARY KEY,
		owner_id BIGINT,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		locality TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		monthly_rent NUMERIC NOT NULL,
		security_deposit NUMERIC,
		property_type TEXT NOT NULL,
		area_sqft NUMERIC NOT NULL,
		bedrooms INT,
		bathrooms INT,
		rent_type TEXT NOT NULL DEFAULT 'unfurnished',
		tenant_type TEXT NOT NULL DEFAULT 'any',
		available_from TIMESTAMPTZ,
		amenities TEXT[] NOT NULL DEFAULT '{}',
		images TEXT[] NOT NULL DEFAULT '{}',
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		status TEXT NOT NULL DEFAULT 'pending',
		full_name TEXT,
		email TEXT,
		phone TEXT,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		location TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		status TEXT NOT NULL,
		total_units INT,
		available_units INT,
		price_range_min NUMERIC,
		price_range_max NUMERIC,
		amenities TEXT[] NOT NULL DEFAULT '{}',
		highlights TEXT[] NOT NULL DEFAULT '{}',
		images TEXT[] NOT NULL DEFAULT '{}',
		gallery TEXT[] NOT NULL DEFAULT '{}',
		videos TEXT[] NOT NULL DEFAULT '{}',
		brochure_url TEXT,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		completion_date TIMESTAMPTZ,
		possession_date TIMESTAMPTZ,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		location TEXT NOT NULL,
		city TEXT NOT NULL,
		event_date TIMESTAMPTZ NOT NULL,
		event_time TEXT,
		is_past BOOLEAN NOT NULL DEFAULT FALSE,
		registration_link TEXT,
		max_attendees INT,
		images TEXT[] NOT NULL DEFAULT '{}',
		videos TEXT[] NOT NULL DEFAULT '{}',
		registered_count INT NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS event_registrations (
		id BIGSERIAL PRIMARY KEY,
		event_id BIGINT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE(event_id, email)
	)`,
	`CREATE TABLE IF NOT EXISTS contact_submissions (
		id BIGSERIAL PRIMARY KEY,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		subject TEXT NOT NULL,
		message TEXT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		is_responded BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS recommendations (
		id BIGSERIAL PRIMARY KEY,
		buyer_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		form_data JSONB NOT NULL,
		matched_properties BIGINT[] NOT NULL DEFAULT '{}',
		ai_summary TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema creates required tables and indexes if they do not exist.
func EnsureSchema(ctx context.Context) error {
	if Pool == nil {
		return fmt.Errorf("schema: pool not connected")
	}
	for _, s := range schemaStatements {
		if _, err := Pool.Exec(ctx, s); err != nil {
			return fmt.Errorf("schema ensure: %w", err)
		}
	}
	return nil
}
