// Package ledger persists win/loss records in SQLite. It backs the
// cmd/ledger service; the game server only ever reaches it over HTTP.
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/pefman/card-rpg/internal/score"
)

const schema = `
CREATE TABLE IF NOT EXISTS scores (
	player TEXT PRIMARY KEY,
	wins   INTEGER NOT NULL DEFAULT 0,
	losses INTEGER NOT NULL DEFAULT 0
);`

// Store is the authoritative score store.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("ledger db path is required")
	}
	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Score returns one player's record; unknown players are 0/0.
func (s *Store) Score(ctx context.Context, player string) (score.Entry, error) {
	e := score.Entry{Player: player}
	row := s.db.QueryRowContext(ctx, `SELECT wins, losses FROM scores WHERE player = ?`, player)
	err := row.Scan(&e.Wins, &e.Losses)
	if err == sql.ErrNoRows {
		return e, nil
	}
	if err != nil {
		return e, fmt.Errorf("query score: %w", err)
	}
	return e, nil
}

// AllScores returns every record, ordered by player for stable output.
func (s *Store) AllScores(ctx context.Context) ([]score.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT player, wins, losses FROM scores ORDER BY player`)
	if err != nil {
		return nil, fmt.Errorf("query scores: %w", err)
	}
	defer rows.Close()
	var out []score.Entry
	for rows.Next() {
		var e score.Entry
		if err := rows.Scan(&e.Player, &e.Wins, &e.Losses); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// RecordGame increments the player's wins or losses by one.
func (s *Store) RecordGame(ctx context.Context, player string, won bool) error {
	if strings.TrimSpace(player) == "" {
		return fmt.Errorf("player is required")
	}
	win, loss := 0, 1
	if won {
		win, loss = 1, 0
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scores (player, wins, losses) VALUES (?, ?, ?)
		ON CONFLICT(player) DO UPDATE SET
			wins = wins + excluded.wins,
			losses = losses + excluded.losses`,
		player, win, loss)
	if err != nil {
		return fmt.Errorf("record game: %w", err)
	}
	return nil
}
