package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteFavoritesDAO persists per-user favourite venues in a SQLite file.
type SQLiteFavoritesDAO struct {
	db *sql.DB
}

// OpenSQLiteFavorites opens (or creates) the database and ensures the schema.
func OpenSQLiteFavorites(path string) (*SQLiteFavoritesDAO, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	dao := &SQLiteFavoritesDAO{db: db}
	if err := dao.EnsureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return dao, nil
}

func (s *SQLiteFavoritesDAO) Close() error { return s.db.Close() }

func (s *SQLiteFavoritesDAO) EnsureSchema() error {
	const createTable = `
CREATE TABLE IF NOT EXISTS favorites (
  user_id TEXT NOT NULL,
  venue_id TEXT NOT NULL,
  created_at INTEGER NOT NULL,
  PRIMARY KEY (user_id, venue_id)
);
`
	if _, err := s.db.Exec(createTable); err != nil {
		return fmt.Errorf("create favorites table: %w", err)
	}
	return nil
}

func (s *SQLiteFavoritesDAO) AddFavorite(userID, venueID string) error {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO favorites (user_id, venue_id, created_at) VALUES (?, ?, ?)`,
		userID, venueID, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("add favorite %s for %s: %w", venueID, userID, err)
	}
	return nil
}

func (s *SQLiteFavoritesDAO) RemoveFavorite(userID, venueID string) error {
	if _, err := s.db.Exec(`DELETE FROM favorites WHERE user_id = ? AND venue_id = ?`, userID, venueID); err != nil {
		return fmt.Errorf("remove favorite %s for %s: %w", venueID, userID, err)
	}
	return nil
}

func (s *SQLiteFavoritesDAO) IsFavorite(userID, venueID string) (bool, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM favorites WHERE user_id = ? AND venue_id = ?`, userID, venueID,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check favorite %s for %s: %w", venueID, userID, err)
	}
	return n > 0, nil
}

// ListFavorites returns the user's favourite venue IDs in sorted order.
func (s *SQLiteFavoritesDAO) ListFavorites(userID string) ([]string, error) {
	rows, err := s.db.Query(`SELECT venue_id FROM favorites WHERE user_id = ? ORDER BY venue_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites for %s: %w", userID, err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
