package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/offering_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/offering_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxCollectionStore keeps each collection as one JSONB row. Saving the weekly records also
// rebuilds the weekly_record_index projection inside the same transaction.
type PgxCollectionStore struct {
	BaseRepository
}

// NewCollectionStore creates a store over an open pool.
func NewCollectionStore(pool *pgxpool.Pool) *PgxCollectionStore {
	return &PgxCollectionStore{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.ClosableStore   = (*PgxCollectionStore)(nil)
	_ portsrepo.WeekIndexReader = (*PgxCollectionStore)(nil)
)

// LoadCollection reads the payload stored under key.
func (r *PgxCollectionStore) LoadCollection(ctx context.Context, key string, dest any) (bool, error) {
	query := `SELECT payload FROM collections WHERE key = $1;`

	var payload []byte
	err := r.Pool.QueryRow(ctx, query, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load collection %s: %w", key, err)
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("failed to decode collection %s: %w", key, err)
	}
	return true, nil
}

// SaveCollection upserts the payload stored under key.
func (r *PgxCollectionStore) SaveCollection(ctx context.Context, key string, value any) (err error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", key, err)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	query := `
		INSERT INTO collections (key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err = tx.Exec(ctx, query, key, payload); err != nil {
		return fmt.Errorf("failed to save collection %s: %w", key, err)
	}

	if records, ok := value.([]domain.WeeklyRecord); ok {
		if err = r.rebuildWeekIndex(ctx, tx, records); err != nil {
			return err
		}
	}

	if err = r.Commit(ctx, tx); err != nil {
		return fmt.Errorf("failed to commit collection %s: %w", key, err)
	}
	return nil
}

func (r *PgxCollectionStore) rebuildWeekIndex(ctx context.Context, tx pgx.Tx, records []domain.WeeklyRecord) error {
	if _, err := tx.Exec(ctx, `DELETE FROM weekly_record_index;`); err != nil {
		return fmt.Errorf("failed to clear weekly record index: %w", err)
	}
	if len(records) == 0 {
		return nil
	}

	insert := `
		INSERT INTO weekly_record_index (record_id, week_number, start_date, end_date, minister, donation_count, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7::numeric);
	`
	batch := &pgx.Batch{}
	for _, rec := range records {
		e := domain.NewWeekIndexEntry(rec)
		batch.Queue(insert,
			e.RecordID,
			e.WeekNumber,
			rec.Date(),
			rec.EndDate(),
			e.Minister,
			e.DonationCount,
			e.Total.String(),
		)
	}

	results := tx.SendBatch(ctx, batch)
	for range records {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("failed to index weekly record: %w", err)
		}
	}
	return results.Close()
}

// WeekIndex reads the projection ordered by start date, then record id.
func (r *PgxCollectionStore) WeekIndex(ctx context.Context) ([]domain.WeekIndexEntry, error) {
	query := `
		SELECT record_id, week_number, start_date, end_date, minister, donation_count, total::text
		FROM weekly_record_index
		ORDER BY start_date, record_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query weekly record index: %w", err)
	}
	defer rows.Close()

	entries := []domain.WeekIndexEntry{}
	for rows.Next() {
		var (
			e          domain.WeekIndexEntry
			start, end time.Time
			total      string
		)
		if err := rows.Scan(&e.RecordID, &e.WeekNumber, &start, &end, &e.Minister, &e.DonationCount, &total); err != nil {
			return nil, fmt.Errorf("failed to scan weekly record index: %w", err)
		}
		e.StartDate = start.Format(domain.IndexDateLayout)
		e.EndDate = end.Format(domain.IndexDateLayout)
		if e.Total, err = decimal.NewFromString(total); err != nil {
			return nil, fmt.Errorf("failed to decode total of %s: %w", e.RecordID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the pool.
func (r *PgxCollectionStore) Close() error {
	r.Pool.Close()
	return nil
}
