package database

import (
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Close shuts the pool down and waits for acquired connections to be
// released. Safe to call more than once.
func (db *PostgresDB) Close() error {
	if db.Pool == nil {
		return nil
	}

	log.Println("[DATABASE] Closing database connection pool...")
	db.Pool.Close()
	db.Pool = nil

	return nil
}

// Stats returns a snapshot of the pool statistics, or nil before Connect.
func (db *PostgresDB) Stats() *pgxpool.Stat {
	if db.Pool == nil {
		return nil
	}
	return db.Pool.Stat()
}
