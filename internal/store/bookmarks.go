package store

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// ToggleBookmark adds lines as a bookmark, or removes it if it is already
// bookmarked. It reports whether the command is bookmarked afterwards.
func (s *Store) ToggleBookmark(lines []string) (bool, error) {
	if s == nil {
		return false, nil
	}
	enc, err := encodeLines(lines)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM bookmarks WHERE lines = ?", enc)
	if err != nil {
		return false, fmt.Errorf("remove bookmark: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return false, nil
	}
	if _, err := s.db.Exec(
		"INSERT INTO bookmarks (lines, created) VALUES (?, ?)",
		enc, time.Now().Unix(),
	); err != nil {
		return false, fmt.Errorf("add bookmark: %w", err)
	}
	return true, nil
}

// IsBookmarked reports whether lines is bookmarked.
func (s *Store) IsBookmarked(lines []string) bool {
	if s == nil {
		return false
	}
	enc, err := encodeLines(lines)
	if err != nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var one int
	return s.db.QueryRow("SELECT 1 FROM bookmarks WHERE lines = ?", enc).Scan(&one) == nil
}

// Bookmarks returns all bookmarks, newest first.
func (s *Store) Bookmarks() ([][]string, error) {
	if s == nil {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT lines FROM bookmarks ORDER BY created DESC, rowid DESC")
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
			log.Warn().Err(err).Msg("skipping corrupt bookmark")
			continue
		}
		out = append(out, lines)
	}
	return out, rows.Err()
}
