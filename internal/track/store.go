// Package track records contact-channel clicks and page visits with
// privacy in mind: IP addresses are salted and hashed before storage, and
// visitors sending Do-Not-Track are never recorded.
package track

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/folio-dev/folio/internal/db"
)

// validChannels mirrors the contact section's channel set.
var validChannels = map[string]bool{
	"email":    true,
	"linkedin": true,
	"github":   true,
	"behance":  true,
}

// Store persists tracking events.
type Store struct {
	db   *db.DB
	salt string
}

// NewStore creates a Store with a fresh random hashing salt. The salt is
// per-process, so hashed IPs are only comparable within one server run.
func NewStore(database *db.DB) (*Store, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generating hashing salt: %w", err)
	}
	return &Store{db: database, salt: hex.EncodeToString(salt)}, nil
}

// HashIP hashes an IP address with the per-process salt, truncated for
// storage efficiency.
func (s *Store) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// RecordClick stores one contact-channel click. Unknown channels are
// rejected so arbitrary client payloads cannot grow the table.
func (s *Store) RecordClick(ctx context.Context, channel, ip string) error {
	if !validChannels[channel] {
		return fmt.Errorf("unknown contact channel %q", channel)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_clicks (id, channel, hashed_ip) VALUES (?, ?, ?)`,
		uuid.NewString(), channel, s.HashIP(ip))
	if err != nil {
		return fmt.Errorf("recording click: %w", err)
	}
	return nil
}

// RecordVisit stores one page visit.
func (s *Store) RecordVisit(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visits (id, hashed_ip, user_agent, path) VALUES (?, ?, ?, ?)`,
		uuid.NewString(), s.HashIP(ip), userAgent, path)
	if err != nil {
		return fmt.Errorf("recording visit: %w", err)
	}
	return nil
}

// Stats summarises tracking activity.
type Stats struct {
	TotalVisits     int64            `json:"total_visits"`
	UniqueVisitors  int64            `json:"unique_visitors"`
	VisitsToday     int64            `json:"visits_today"`
	ClicksByChannel map[string]int64 `json:"clicks_by_channel"`
}

// Stats aggregates visit and click counts.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{ClicksByChannel: make(map[string]int64)}

	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM visits`).Scan(&st.TotalVisits); err != nil {
		return nil, fmt.Errorf("counting visits: %w", err)
	}
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT hashed_ip) FROM visits`).Scan(&st.UniqueVisitors); err != nil {
		return nil, fmt.Errorf("counting unique visitors: %w", err)
	}
	today := time.Now().UTC().Format("2006-01-02")
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM visits WHERE date(visited_at) = ?`, today).Scan(&st.VisitsToday); err != nil {
		return nil, fmt.Errorf("counting today's visits: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT channel, COUNT(*) FROM contact_clicks GROUP BY channel`)
	if err != nil {
		return nil, fmt.Errorf("counting clicks: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var channel string
		var count int64
		if err := rows.Scan(&channel, &count); err != nil {
			return nil, fmt.Errorf("scanning click counts: %w", err)
		}
		st.ClicksByChannel[channel] = count
	}
	return st, rows.Err()
}
