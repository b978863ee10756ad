// Package storage provides SQLite-based persistence for match results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// It only ever observes match summaries, never board internals.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for match persistence.
type Store struct {
	db *sql.DB
}

// MatchRecord represents one finished game.
type MatchRecord struct {
	ID              int64
	Opponent        string // Registered opponent ID
	Winner          string // "player" or "ai"
	PlayerShots     int
	PlayerHits      int
	AIShots         int
	AIHits          int
	PlayerShipsLost int
	AIShipsLost     int
	DurationSecs    int
	CreatedAt       time.Time
}

// Stats contains aggregated results, optionally per opponent.
type Stats struct {
	Opponent   string
	Games      int
	PlayerWins int
	AIWins     int
	// Accuracy is the player's lifetime hit rate in [0,1].
	Accuracy   float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			opponent TEXT NOT NULL,
			winner TEXT NOT NULL,
			player_shots INTEGER NOT NULL,
			player_hits INTEGER NOT NULL,
			ai_shots INTEGER NOT NULL,
			ai_hits INTEGER NOT NULL,
			player_ships_lost INTEGER NOT NULL,
			ai_ships_lost INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_opponent ON matches(opponent);
		CREATE INDEX IF NOT EXISTS idx_matches_recent ON matches(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch records a finished match. Returns the ID of the inserted row.
func (s *Store) SaveMatch(rec MatchRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO matches
		 (opponent, winner, player_shots, player_hits, ai_shots, ai_hits,
		  player_ships_lost, ai_ships_lost, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Opponent,
		rec.Winner,
		rec.PlayerShots,
		rec.PlayerHits,
		rec.AIShots,
		rec.AIHits,
		rec.PlayerShipsLost,
		rec.AIShipsLost,
		rec.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, opponent, winner, player_shots, player_hits, ai_shots,
		        ai_hits, player_ships_lost, ai_ships_lost, duration_secs, created_at
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var rec MatchRecord
		var createdAt any
		if err := rows.Scan(
			&rec.ID,
			&rec.Opponent,
			&rec.Winner,
			&rec.PlayerShots,
			&rec.PlayerHits,
			&rec.AIShots,
			&rec.AIHits,
			&rec.PlayerShipsLost,
			&rec.AIShipsLost,
			&rec.DurationSecs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.CreatedAt = parseTime(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// OpponentMatches retrieves the most recent matches against one opponent,
// newest first.
func (s *Store) OpponentMatches(opponent string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, opponent, winner, player_shots, player_hits, ai_shots,
		        ai_hits, player_ships_lost, ai_ships_lost, duration_secs, created_at
		 FROM matches
		 WHERE opponent = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		opponent,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var rec MatchRecord
		var createdAt any
		if err := rows.Scan(
			&rec.ID,
			&rec.Opponent,
			&rec.Winner,
			&rec.PlayerShots,
			&rec.PlayerHits,
			&rec.AIShots,
			&rec.AIHits,
			&rec.PlayerShipsLost,
			&rec.AIShipsLost,
			&rec.DurationSecs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.CreatedAt = parseTime(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// OpponentStats retrieves aggregated results against one opponent.
func (s *Store) OpponentStats(opponent string) (*Stats, error) {
	stats := &Stats{Opponent: opponent}

	var shots, hits sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 'player' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 'ai' THEN 1 ELSE 0 END), 0),
		        SUM(player_shots), SUM(player_hits)
		 FROM matches WHERE opponent = ?`,
		opponent,
	).Scan(&stats.Games, &stats.PlayerWins, &stats.AIWins, &shots, &hits)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get opponent stats: %w", err)
	}
	if shots.Valid && shots.Int64 > 0 {
		stats.Accuracy = float64(hits.Int64) / float64(shots.Int64)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM matches WHERE opponent = ? ORDER BY created_at DESC LIMIT 1`,
		opponent,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// AllStats retrieves aggregated results per opponent.
func (s *Store) AllStats() (map[string]*Stats, error) {
	rows, err := s.db.Query(
		`SELECT opponent, COUNT(*),
		        SUM(CASE WHEN winner = 'player' THEN 1 ELSE 0 END),
		        SUM(CASE WHEN winner = 'ai' THEN 1 ELSE 0 END),
		        SUM(player_shots), SUM(player_hits), MAX(created_at)
		 FROM matches
		 GROUP BY opponent`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*Stats)
	for rows.Next() {
		var st Stats
		var shots, hits sql.NullInt64
		var lastPlayed any
		if err := rows.Scan(&st.Opponent, &st.Games, &st.PlayerWins, &st.AIWins, &shots, &hits, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		if shots.Valid && shots.Int64 > 0 {
			st.Accuracy = float64(hits.Int64) / float64(shots.Int64)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Opponent] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearMatches deletes all stored matches.
func (s *Store) ClearMatches() error {
	_, err := s.db.Exec("DELETE FROM matches")
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
