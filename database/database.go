package database

import (
	"database/sql"
	"fmt"

	"BACK_CHARITY_GO/config"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// Connect opens a connection to the PostgreSQL database
func Connect() (*sql.DB, error) {
	dbURL := config.GetDatabaseURL()

	// Open the connection
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("could not connect to the database: %v", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error testing the database connection: %v", err)
	}

	return db, nil
}
