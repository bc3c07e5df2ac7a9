package database

import (
	"room-booking-api/core/logger"

	"github.com/jmoiron/sqlx"
)

// schema is applied idempotently on startup. The exclusion constraint on
// bookings is the storage half of the no-double-booking invariant: even if two
// writers validate against the same stale read, at most one insert commits and
// the loser receives exclusion_violation (23P01).
var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS btree_gist`,

	`CREATE TABLE IF NOT EXISTS rooms (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		slug TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		capacity INT NOT NULL DEFAULT 0,
		description TEXT NOT NULL DEFAULT '',
		amenities TEXT[] NOT NULL DEFAULT '{}',
		color TEXT NOT NULL DEFAULT '#2563eb',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS department_codes (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		code TEXT NOT NULL UNIQUE,
		department_name TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		room_id UUID NOT NULL REFERENCES rooms(id),
		date DATE NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		start_minutes INT NOT NULL,
		end_minutes INT NOT NULL,
		status TEXT NOT NULL DEFAULT 'confirmed',
		title TEXT NOT NULL,
		description TEXT,
		user_name TEXT NOT NULL DEFAULT '',
		user_email TEXT NOT NULL DEFAULT '',
		user_phone TEXT NOT NULL DEFAULT '',
		department_code TEXT,
		contact_person TEXT,
		contact_email TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT bookings_interval_valid CHECK (start_minutes < end_minutes)
	)`,

	`DO $$ BEGIN
		ALTER TABLE bookings ADD CONSTRAINT bookings_no_overlap
			EXCLUDE USING gist (
				room_id WITH =,
				date WITH =,
				int4range(start_minutes, end_minutes) WITH &&
			) WHERE (status = 'confirmed');
	EXCEPTION
		WHEN duplicate_table THEN NULL;
		WHEN duplicate_object THEN NULL;
	END $$`,

	`CREATE INDEX IF NOT EXISTS idx_bookings_room_date ON bookings (room_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings (status)`,

	`CREATE TABLE IF NOT EXISTS system_settings (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		key TEXT NOT NULL UNIQUE,
		value JSONB NOT NULL,
		category TEXT NOT NULL DEFAULT 'scheduling',
		description TEXT,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS notifications (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		department_code TEXT NOT NULL,
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		type TEXT NOT NULL,
		data JSONB,
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_notifications_department ON notifications (department_code, created_at DESC)`,
}

func migrate(db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	logger.Info("Database:Migrate:Success", "statements", len(schema))
	return nil
}
