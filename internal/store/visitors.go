package store

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

// VisitorMetric is one anonymous page view. The IP is stored only as a salted
// hash.
type VisitorMetric struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// Stats summarises visits and theme choices for the admin dashboard.
type Stats struct {
	TotalVisitors    int64           `json:"total_visitors"`
	UniqueVisitors   int64           `json:"unique_visitors"`
	VisitorsToday    int64           `json:"visitors_today"`
	VisitorsThisWeek int64           `json:"visitors_this_week"`
	DarkThemeUsers   int64           `json:"dark_theme_users"`
	LightThemeUsers  int64           `json:"light_theme_users"`
	RecentVisitors   []VisitorMetric `json:"recent_visitors"`
}

// Tracker records visits with hashed IPs.
type Tracker struct {
	db   *DB
	salt string
	now  func() time.Time
}

// NewTracker returns a tracker with a fresh random salt, so hashes cannot be
// correlated across restarts.
func NewTracker(db *DB) *Tracker {
	return &Tracker{db: db, salt: randomHex(32), now: time.Now}
}

// HashIP hashes ip with the tracker's salt. The same IP hashes the same way
// for the life of the tracker.
func (t *Tracker) HashIP(ip string) string {
	h := sha256.New()
	h.Write([]byte(ip + t.salt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// Track records one page view.
func (t *Tracker) Track(ip, userAgent, path string) error {
	_, err := t.db.Exec(`
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, t.HashIP(ip), userAgent, path, t.now().UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("recording visitor: %w", err)
	}
	return nil
}

// Cleanup removes visits older than retention and returns how many went.
func (t *Tracker) Cleanup(retention time.Duration) (int64, error) {
	cutoff := t.now().Add(-retention).UTC().Format(timeLayout)
	result, err := t.db.Exec(`DELETE FROM visitors WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleaning up visitors: %w", err)
	}
	n, _ := result.RowsAffected()
	if n > 0 {
		log.Printf("store: privacy cleanup removed %d visitor records", n)
	}
	return n, nil
}

// Stats collects the admin dashboard numbers. themeKey is the preference key
// the theme is stored under.
func (t *Tracker) Stats(themeKey string, recent int) (*Stats, error) {
	stats := &Stats{}
	now := t.now().UTC()
	today := now.Truncate(24 * time.Hour).Format(timeLayout)
	week := now.Add(-7 * 24 * time.Hour).Format(timeLayout)

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{today}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{week}},
	}
	for _, c := range counts {
		if err := t.db.QueryRow(c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("loading stats: %w", err)
		}
	}

	var err error
	if stats.DarkThemeUsers, err = t.db.CountPreference(themeKey, "true"); err != nil {
		return nil, err
	}
	if stats.LightThemeUsers, err = t.db.CountPreference(themeKey, "false"); err != nil {
		return nil, err
	}

	if stats.RecentVisitors, err = t.Recent(recent); err != nil {
		return nil, err
	}
	return stats, nil
}

// Recent returns the latest visits, newest first.
func (t *Tracker) Recent(limit int) ([]VisitorMetric, error) {
	rows, err := t.db.Query(`
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("loading visitors: %w", err)
	}
	defer rows.Close()

	var visitors []VisitorMetric
	for rows.Next() {
		var v VisitorMetric
		var ts string
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			continue
		}
		v.Timestamp = parseTimestamp(ts)
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}

// parseTimestamp accepts the stored layout and the RFC 3339 form the driver
// produces when it decodes DATETIME columns itself.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{timeLayout, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		log.Fatal("store: reading random bytes:", err)
	}
	return hex.EncodeToString(b)
}

// NewToken returns a random hex token for admin sessions.
func NewToken() string { return randomHex(32) }
