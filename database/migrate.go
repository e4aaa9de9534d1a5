package database

import (
	"database/sql"
	"fmt"
)

func RunMigrations(db *sql.DB) error {
	queries := []string{
		`CREATE SCHEMA IF NOT EXISTS core;`,

		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,

		// donation_intent table: donor form data captured at initialization,
		// keyed by the gateway reference so verification can find it later
		`CREATE TABLE IF NOT EXISTS core.donation_intent (
			reference VARCHAR(255) PRIMARY KEY,
			email VARCHAR(255) NOT NULL,
			amount BIGINT NOT NULL,
			name VARCHAR(255) NOT NULL,
			phone VARCHAR(70) NOT NULL,
			donation_date VARCHAR(70) NOT NULL,
			donation_time VARCHAR(70) NOT NULL,
			date_create TIMESTAMP DEFAULT now()
		);`,

		// donation table: one row per verified gateway reference
		`CREATE TABLE IF NOT EXISTS core.donation (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			email VARCHAR(255) NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			name VARCHAR(255) NOT NULL,
			phone VARCHAR(70) NOT NULL,
			donation_date VARCHAR(70) NOT NULL,
			donation_time VARCHAR(70) NOT NULL,
			reference VARCHAR(255) UNIQUE NOT NULL,
			date_create TIMESTAMP DEFAULT now()
		);`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("error running migration: %v\nquery: %s", err, query)
		}
	}

	return nil
}
