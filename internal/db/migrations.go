package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'vehicle_owner') THEN
			CREATE TYPE vehicle_owner AS ENUM ('OWN', 'SUBCONTRACTOR');
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'vehicle_type') THEN
			CREATE TYPE vehicle_type AS ENUM ('CARGO', 'HEAVY_EQUIPMENT', 'PASSENGER');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS fuel_records (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		plate VARCHAR(32) NOT NULL,
		transaction_date VARCHAR(32),
		time VARCHAR(16),
		fuel_amount DOUBLE PRECISION NOT NULL,
		unit_price DOUBLE PRECISION,
		line_total DOUBLE PRECISION,
		product_name VARCHAR(128),
		odometer_km DOUBLE PRECISION,
		content_hash VARCHAR(32) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_fuel_records_plate ON fuel_records (plate);`,
	`CREATE INDEX IF NOT EXISTS idx_fuel_records_transaction_date ON fuel_records (transaction_date);`,
	// Deliberately non-unique: the dedup snapshot race is accepted, and a
	// unique constraint here would turn it into chunk insert failures.
	`CREATE INDEX IF NOT EXISTS idx_fuel_records_content_hash ON fuel_records (content_hash);`,
	`CREATE TABLE IF NOT EXISTS weight_records (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		plate VARCHAR(32) NOT NULL,
		date VARCHAR(32),
		quantity DOUBLE PRECISION,
		unit VARCHAR(32),
		net_weight DOUBLE PRECISION NOT NULL,
		address TEXT,
		processing_point VARCHAR(255),
		customer_name VARCHAR(255),
		content_hash VARCHAR(32) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_weight_records_plate ON weight_records (plate);`,
	`CREATE INDEX IF NOT EXISTS idx_weight_records_date ON weight_records (date);`,
	`CREATE INDEX IF NOT EXISTS idx_weight_records_content_hash ON weight_records (content_hash);`,
	`CREATE TABLE IF NOT EXISTS tracking_segments (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		plate VARCHAR(32) NOT NULL,
		driver_name VARCHAR(255),
		vehicle_groups VARCHAR(255),
		date VARCHAR(32),
		movement_start VARCHAR(32),
		movement_end VARCHAR(32),
		start_address TEXT,
		end_address TEXT,
		total_km DOUBLE PRECISION NOT NULL,
		movement_duration VARCHAR(32),
		idle_duration VARCHAR(32),
		parked_duration VARCHAR(32),
		daily_fuel_liters DOUBLE PRECISION,
		content_hash VARCHAR(32) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_tracking_segments_plate ON tracking_segments (plate);`,
	`CREATE INDEX IF NOT EXISTS idx_tracking_segments_date ON tracking_segments (date);`,
	`CREATE INDEX IF NOT EXISTS idx_tracking_segments_content_hash ON tracking_segments (content_hash);`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		plate VARCHAR(32) NOT NULL UNIQUE,
		owner vehicle_owner NOT NULL DEFAULT 'OWN',
		vehicle_type vehicle_type NOT NULL DEFAULT 'CARGO',
		active BOOLEAN NOT NULL DEFAULT TRUE,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicles_vehicle_type ON vehicles (vehicle_type);`,
}

func RunMigrations(database *gorm.DB) error {
	for i, statement := range migrationStatements {
		if err := database.Exec(statement).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	return nil
}
