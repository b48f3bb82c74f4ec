package repositories

import (
	"context"

	"github.com/SscSPs/offering_tracker/internal/core/domain"
)

// WeekIndexReader reads the weekly record index, ordered by start date then record id.
// SQL stores implement it over the projection they maintain on every save.
type WeekIndexReader interface {
	WeekIndex(ctx context.Context) ([]domain.WeekIndexEntry, error)
}
