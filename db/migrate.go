package db

import (
	"log"
)

// createTables creates the necessary tables in the database if they don't exist.
func createTables() {
	createQuotesTableSQL := `
	CREATE TABLE IF NOT EXISTS quotes (
		id TEXT PRIMARY KEY,
		text TEXT NOT NULL,
		author TEXT,
		emoji TEXT NOT NULL,
		proposer_id TEXT,
		created_at INTEGER NOT NULL
	);`

	_, err := DB.Exec(createQuotesTableSQL)
	if err != nil {
		log.Fatalf("Failed to create quotes table: %v", err)
	}

	createPendingTableSQL := `
	CREATE TABLE IF NOT EXISTS pending_submissions (
		id TEXT PRIMARY KEY,
		text TEXT NOT NULL,
		author TEXT,
		emoji TEXT NOT NULL,
		proposer_id TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		reviewer_id TEXT,
		review_channel_id TEXT,
		review_message_ts TEXT,
		created_at INTEGER NOT NULL
	);`

	_, err = DB.Exec(createPendingTableSQL)
	if err != nil {
		log.Fatalf("Failed to create pending_submissions table: %v", err)
	}

	createFiltersTableSQL := `
	CREATE TABLE IF NOT EXISTS user_filters (
		user_id TEXT PRIMARY KEY,
		author_filter TEXT NOT NULL
	);`

	_, err = DB.Exec(createFiltersTableSQL)
	if err != nil {
		log.Fatalf("Failed to create user_filters table: %v", err)
	}

	createUserStatsTableSQL := `
	CREATE TABLE IF NOT EXISTS user_stats (
		user_id TEXT PRIMARY KEY,
		update_window_start INTEGER NOT NULL DEFAULT 0,
		update_window_count INTEGER NOT NULL DEFAULT 0,
		pending_count INTEGER NOT NULL DEFAULT 0,
		daily_approved_count INTEGER NOT NULL DEFAULT 0,
		last_activity_date TEXT NOT NULL DEFAULT '',
		last_submission_ts INTEGER NOT NULL DEFAULT 0
	);`

	_, err = DB.Exec(createUserStatsTableSQL)
	if err != nil {
		log.Fatalf("Failed to create user_stats table: %v", err)
	}

	log.Println("Database tables initialized successfully.")
}
