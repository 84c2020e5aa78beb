package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"
)

// DefaultRetention is how long visits are kept before cleanup removes them.
const DefaultRetention = 365 * 24 * time.Hour

// Visit is a stored page view. The client IP is never stored, only a salted
// hash of it.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	At        time.Time `json:"timestamp"`
}

// PathStat is a visit count for one path.
type PathStat struct {
	Path   string `json:"path"`
	Visits int64  `json:"visits"`
}

// EventStat aggregates events sharing an action and label.
type EventStat struct {
	Action  string  `json:"action"`
	Label   string  `json:"label"`
	Count   int64   `json:"count"`
	Average float64 `json:"average"`
}

// Stats summarizes the stored analytics.
type Stats struct {
	TotalVisits    int64       `json:"total_visits"`
	UniqueVisitors int64       `json:"unique_visitors"`
	VisitsToday    int64       `json:"visits_today"`
	VisitsThisWeek int64       `json:"visits_this_week"`
	TopPaths       []PathStat  `json:"top_paths"`
	RecentVisits   []Visit     `json:"recent_visits"`
	Events         []EventStat `json:"events"`
}

// SQLiteTracker stores privacy-conscious visit records and events.
type SQLiteTracker struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

// SQLiteOption configures a SQLiteTracker.
type SQLiteOption func(*SQLiteTracker)

// WithSalt fixes the IP hashing salt. By default a random salt is drawn per
// process, so hashes cannot be correlated across restarts.
func WithSalt(salt string) SQLiteOption {
	return func(t *SQLiteTracker) { t.salt = salt }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) SQLiteOption {
	return func(t *SQLiteTracker) { t.now = now }
}

// NewSQLiteTracker returns a tracker over an already migrated database.
func NewSQLiteTracker(db *sql.DB, opts ...SQLiteOption) (*SQLiteTracker, error) {
	t := &SQLiteTracker{db: db, now: time.Now}
	for _, o := range opts {
		o(t)
	}
	if t.salt == "" {
		salt, err := randomHex(32)
		if err != nil {
			return nil, fmt.Errorf("generate hashing salt: %w", err)
		}
		t.salt = salt
	}
	return t, nil
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// HashIP returns the truncated salted hash stored in place of ip.
func (t *SQLiteTracker) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + t.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func (t *SQLiteTracker) stamp(at time.Time) int64 {
	if at.IsZero() {
		at = t.now()
	}
	return at.UTC().UnixMilli()
}

// PageView implements Tracker.
func (t *SQLiteTracker) PageView(ctx context.Context, v PageView) error {
	_, err := t.db.ExecContext(ctx,
		`INSERT INTO visits (hashed_ip, user_agent, path, visited_at) VALUES (?, ?, ?, ?)`,
		t.HashIP(v.ClientIP), v.UserAgent, v.Path, t.stamp(v.At))
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// Event implements Tracker.
func (t *SQLiteTracker) Event(ctx context.Context, e Event) error {
	var value sql.NullInt64
	if e.Value != nil {
		value = sql.NullInt64{Int64: *e.Value, Valid: true}
	}
	_, err := t.db.ExecContext(ctx,
		`INSERT INTO events (action, category, label, value, recorded_at) VALUES (?, ?, ?, ?, ?)`,
		e.Action, e.Category, e.Label, value, t.stamp(e.At))
	if err != nil {
		return fmt.Errorf("record event: %w", err)
	}
	return nil
}

// Cleanup deletes visits and events older than retention and returns how
// many rows went.
func (t *SQLiteTracker) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := t.now().Add(-retention).UTC().UnixMilli()

	var removed int64
	for _, q := range []string{
		`DELETE FROM visits WHERE visited_at < ?`,
		`DELETE FROM events WHERE recorded_at < ?`,
	} {
		res, err := t.db.ExecContext(ctx, q, cutoff)
		if err != nil {
			return removed, fmt.Errorf("cleanup: %w", err)
		}
		n, _ := res.RowsAffected()
		removed += n
	}
	return removed, nil
}

// Stats summarizes stored visits and events.
func (t *SQLiteTracker) Stats(ctx context.Context) (*Stats, error) {
	now := t.now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	stats := &Stats{}

	counts := []struct {
		query string
		args  []any
		dest  *int64
	}{
		{`SELECT COUNT(*) FROM visits`, nil, &stats.TotalVisits},
		{`SELECT COUNT(DISTINCT hashed_ip) FROM visits`, nil, &stats.UniqueVisitors},
		{`SELECT COUNT(*) FROM visits WHERE visited_at >= ?`, []any{midnight.UnixMilli()}, &stats.VisitsToday},
		{`SELECT COUNT(*) FROM visits WHERE visited_at >= ?`, []any{now.Add(-7 * 24 * time.Hour).UnixMilli()}, &stats.VisitsThisWeek},
	}
	for _, c := range counts {
		if err := t.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("count visits: %w", err)
		}
	}

	rows, err := t.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS visits
		FROM visits
		GROUP BY path
		ORDER BY visits DESC, path
		LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("top paths: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p PathStat
		if err := rows.Scan(&p.Path, &p.Visits); err != nil {
			return nil, fmt.Errorf("scan path: %w", err)
		}
		stats.TopPaths = append(stats.TopPaths, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	recent, err := t.db.QueryContext(ctx, `
		SELECT id, hashed_ip, user_agent, path, visited_at
		FROM visits
		ORDER BY visited_at DESC, id DESC
		LIMIT 50`)
	if err != nil {
		return nil, fmt.Errorf("recent visits: %w", err)
	}
	defer recent.Close()
	for recent.Next() {
		var v Visit
		var at int64
		if err := recent.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &at); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		v.At = time.UnixMilli(at).UTC()
		stats.RecentVisits = append(stats.RecentVisits, v)
	}
	if err := recent.Err(); err != nil {
		return nil, err
	}

	events, err := t.db.QueryContext(ctx, `
		SELECT action, label, COUNT(*), COALESCE(AVG(value), 0)
		FROM events
		GROUP BY action, label
		ORDER BY action, label`)
	if err != nil {
		return nil, fmt.Errorf("event stats: %w", err)
	}
	defer events.Close()
	for events.Next() {
		var e EventStat
		if err := events.Scan(&e.Action, &e.Label, &e.Count, &e.Average); err != nil {
			return nil, fmt.Errorf("scan event stat: %w", err)
		}
		stats.Events = append(stats.Events, e)
	}
	return stats, events.Err()
}
