package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SscSPs/offering_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/offering_tracker/internal/core/ports/repositories"
	"github.com/shopspring/decimal"

	_ "modernc.org/sqlite"
)

// Store keeps each collection as one JSON row in a local SQLite file.
type Store struct {
	db *sql.DB
}

// NewStore opens (creating if needed) the database at dbPath and migrates it.
func NewStore(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// a single writer avoids SQLITE_BUSY between concurrent saves
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

var (
	_ portsrepo.ClosableStore   = (*Store)(nil)
	_ portsrepo.WeekIndexReader = (*Store)(nil)
)

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) LoadCollection(ctx context.Context, key string, dest any) (bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM collections WHERE key = ?`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("load collection %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(payload), dest); err != nil {
		return false, fmt.Errorf("decode collection %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) SaveCollection(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", key, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO collections (key, payload, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT (key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		key, string(payload))
	if err != nil {
		return fmt.Errorf("save collection %s: %w", key, err)
	}

	if records, ok := value.([]domain.WeeklyRecord); ok {
		if err := rebuildWeekIndex(ctx, tx, records); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit collection %s: %w", key, err)
	}
	return nil
}

func rebuildWeekIndex(ctx context.Context, tx *sql.Tx, records []domain.WeeklyRecord) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM weekly_record_index`); err != nil {
		return fmt.Errorf("clear weekly record index: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO weekly_record_index (record_id, week_number, start_date, end_date, minister, donation_count, total)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare weekly record index: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		e := domain.NewWeekIndexEntry(rec)
		_, err := stmt.ExecContext(ctx,
			e.RecordID, e.WeekNumber, e.StartDate, e.EndDate, e.Minister, e.DonationCount, e.Total.String())
		if err != nil {
			return fmt.Errorf("index weekly record %s: %w", rec.ID, err)
		}
	}
	return nil
}

// WeekIndex returns the projection ordered by start date, then record id.
func (s *Store) WeekIndex(ctx context.Context) ([]domain.WeekIndexEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT record_id, week_number, start_date, end_date, minister, donation_count, total
		FROM weekly_record_index
		ORDER BY start_date, record_id`)
	if err != nil {
		return nil, fmt.Errorf("query weekly record index: %w", err)
	}
	defer rows.Close()

	entries := []domain.WeekIndexEntry{}
	for rows.Next() {
		var (
			e     domain.WeekIndexEntry
			total string
		)
		if err := rows.Scan(&e.RecordID, &e.WeekNumber, &e.StartDate, &e.EndDate, &e.Minister, &e.DonationCount, &total); err != nil {
			return nil, fmt.Errorf("scan weekly record index: %w", err)
		}
		if e.Total, err = decimal.NewFromString(total); err != nil {
			return nil, fmt.Errorf("decode total of %s: %w", e.RecordID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
