package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/sukalov/lyricsdivision/internal/division"
	"github.com/sukalov/lyricsdivision/internal/export"
)

// ErrNotFound is returned when no snapshot exists for a song
var ErrNotFound = errors.New("snapshot not found")

const createSchedulesTable = `
	CREATE TABLE IF NOT EXISTS schedules (
		id       TEXT PRIMARY KEY,
		song     TEXT NOT NULL,
		built_at TIMESTAMP NOT NULL,
		lines    INTEGER NOT NULL,
		parts    INTEGER NOT NULL,
		xml      TEXT NOT NULL
	)
`

// Snapshot is one stored build of a song
type Snapshot struct {
	ID      string
	Song    string
	BuiltAt time.Time
	Lines   int
	Parts   int
	XML     []byte
}

// SnapshotStore keeps XML snapshots of built schedules in libsql
type SnapshotStore struct {
	db *sql.DB
}

// DSN builds the libsql connection string
func DSN(url, authToken string) string {
	if authToken == "" {
		return url
	}
	return fmt.Sprintf("%s?authToken=%s", url, authToken)
}

// OpenSnapshotStore connects to libsql and makes sure the schedules table exists
func OpenSnapshotStore(ctx context.Context, url, authToken string) (*SnapshotStore, error) {
	db, err := sql.Open("libsql", DSN(url, authToken))
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := NewSnapshotStore(db)
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// NewSnapshotStore wraps an open database
func NewSnapshotStore(db *sql.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

func (s *SnapshotStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createSchedulesTable); err != nil {
		return fmt.Errorf("failed to create schedules table: %w", err)
	}
	return nil
}

// Save stores schedule as a new snapshot of song and returns its id
func (s *SnapshotStore) Save(ctx context.Context, song string, schedule *division.Schedule) (string, error) {
	var buf bytes.Buffer
	if err := export.WriteXML(&buf, schedule); err != nil {
		return "", err
	}

	id := uuid.NewString()
	query := `INSERT INTO schedules (id, song, built_at, lines, parts, xml) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query, id, song, time.Now().UTC(), len(schedule.Lines), schedule.PartCount(), buf.String())
	if err != nil {
		return "", fmt.Errorf("failed to save snapshot of %s: %w", song, err)
	}

	return id, nil
}

// Latest returns the most recent snapshot of song
func (s *SnapshotStore) Latest(ctx context.Context, song string) (*Snapshot, error) {
	query := `SELECT id, song, built_at, lines, parts, xml FROM schedules WHERE song = ? ORDER BY built_at DESC LIMIT 1`

	var snap Snapshot
	var xml string
	err := s.db.QueryRowContext(ctx, query, song).Scan(&snap.ID, &snap.Song, &snap.BuiltAt, &snap.Lines, &snap.Parts, &xml)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, song)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot of %s: %w", song, err)
	}

	snap.XML = []byte(xml)
	return &snap, nil
}

// Close closes the database connection
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}
