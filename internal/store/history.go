package store

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// AddHistory queues a command snapshot for async persistence. Non-blocking.
// Empty commands and repeats of the newest entry are not recorded.
func (s *Store) AddHistory(lines []string) {
	if s == nil || strings.Join(lines, "") == "" {
		return
	}
	snapshot := append([]string(nil), lines...)

	s.qmu.Lock()
	defer s.qmu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.saveCh <- saveReq{lines: snapshot}:
	default:
		log.Warn().Int("lines", len(lines)).Msg("save channel full, dropping history entry")
	}
}

// writeHistory performs the actual DB insert for a history entry.
func (s *Store) writeHistory(lines []string) {
	enc, err := encodeLines(lines)
	if err != nil {
		log.Warn().Err(err).Msg("failed to encode history entry")
		return
	}

	s.mu.Lock()
	var latest string
	err = s.db.QueryRow("SELECT lines FROM history ORDER BY id DESC LIMIT 1").Scan(&latest)
	if err == nil && latest == enc {
		s.mu.Unlock()
		return
	}

	_, err = s.db.Exec(
		"INSERT INTO history (lines, created) VALUES (?, ?)",
		enc, time.Now().Unix(),
	)
	s.mu.Unlock()
	if err != nil {
		log.Warn().Err(err).Msg("failed to save history entry")
		return
	}
	s.trimHistory()
}

// History returns all recorded commands, oldest first.
func (s *Store) History() ([][]string, error) {
	if s == nil {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT lines FROM history ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			continue
		}
		lines, err := decodeLines(raw)
		if err != nil {
			log.Warn().Err(err).Msg("skipping corrupt history entry")
			continue
		}
		out = append(out, lines)
	}
	return out, rows.Err()
}

// trimHistory keeps only the newest maxEntries rows.
func (s *Store) trimHistory() {
	if s.maxEntries <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		"DELETE FROM history WHERE id NOT IN (SELECT id FROM history ORDER BY id DESC LIMIT ?)",
		s.maxEntries,
	)
	if err != nil {
		log.Warn().Err(err).Msg("failed to trim history")
		return
	}
	if n, _ := res.RowsAffected(); n > 0 {
		log.Debug().Int64("deleted", n).Msg("trimmed history")
	}
}
