package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// VisitorStorage is one visitor's key/value slot, the server-side stand-in
// for browser local storage.
type VisitorStorage struct {
	db        *DB
	visitorID string
}

// ForVisitor returns the storage of visitorID.
func (d *DB) ForVisitor(visitorID string) *VisitorStorage {
	return &VisitorStorage{db: d, visitorID: visitorID}
}

func (s *VisitorStorage) GetItem(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(
		`SELECT value FROM preferences WHERE visitor_id = ? AND key = ?`,
		s.visitorID, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading preference %s: %w", key, err)
	}
	return value, true, nil
}

func (s *VisitorStorage) SetItem(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO preferences (visitor_id, key, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(visitor_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, s.visitorID, key, value)
	if err != nil {
		return fmt.Errorf("writing preference %s: %w", key, err)
	}
	return nil
}

// CountPreference returns how many visitors store value under key.
func (d *DB) CountPreference(key, value string) (int64, error) {
	var n int64
	err := d.QueryRow(`SELECT COUNT(*) FROM preferences WHERE key = ? AND value = ?`, key, value).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting %s=%s: %w", key, value, err)
	}
	return n, nil
}
