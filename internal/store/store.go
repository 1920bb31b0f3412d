// Package store persists command history and bookmarks in SQLite.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // register sqlite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS history (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	lines    TEXT NOT NULL,
	created  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS bookmarks (
	lines    TEXT PRIMARY KEY,
	created  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bookmarks_created ON bookmarks(created);
`

const saveQueueSize = 64

// Store is a SQLite-backed history and bookmark store. All methods are safe
// to call on a nil receiver, which behaves as an empty store that discards
// writes.
type Store struct {
	mu         sync.Mutex // guards db
	db         *sql.DB
	maxEntries int

	qmu    sync.Mutex // guards saveCh sends against Close
	closed bool
	saveCh chan saveReq
	done   chan struct{}
}

type saveReq struct {
	lines []string
	flush chan struct{}
}

// Open creates or opens a store database at the given path. History is
// trimmed to the newest maxEntries commands.
func Open(dbPath string, maxEntries int) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store db: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	s := &Store{
		db:         db,
		maxEntries: maxEntries,
		saveCh:     make(chan saveReq, saveQueueSize),
		done:       make(chan struct{}),
	}
	s.trimHistory()
	go s.saveLoop()
	return s, nil
}

// Close flushes pending writes and closes the database.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	s.qmu.Lock()
	if s.closed {
		s.qmu.Unlock()
		return nil
	}
	s.closed = true
	close(s.saveCh)
	s.qmu.Unlock()

	<-s.done
	return s.db.Close()
}

// Flush blocks until all queued async saves have been written to the DB.
// Times out after 5 seconds to avoid deadlocking the caller.
func (s *Store) Flush() {
	if s == nil {
		return
	}
	s.qmu.Lock()
	defer s.qmu.Unlock()
	if s.closed {
		return
	}
	done := make(chan struct{})
	select {
	case s.saveCh <- saveReq{flush: done}:
		<-done
	case <-time.After(5 * time.Second):
		log.Warn().Msg("flush timed out waiting to enqueue")
	}
}

// saveLoop drains saveCh and writes history entries to the DB.
func (s *Store) saveLoop() {
	defer close(s.done)
	for req := range s.saveCh {
		if req.flush != nil {
			close(req.flush)
			continue
		}
		s.writeHistory(req.lines)
	}
}

func encodeLines(lines []string) (string, error) {
	if lines == nil {
		lines = []string{}
	}
	b, err := json.Marshal(lines)
	if err != nil {
		return "", fmt.Errorf("encode lines: %w", err)
	}
	return string(b), nil
}

func decodeLines(raw string) ([]string, error) {
	var lines []string
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, fmt.Errorf("decode lines: %w", err)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines, nil
}
