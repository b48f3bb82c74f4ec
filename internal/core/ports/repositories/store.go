package repositories

import "context"

// Collection keys understood by every CollectionStore.
const (
	KeyMembers        = "members"
	KeyCategories     = "categories"
	KeyFormulas       = "formulas"
	KeyWeeklyRecords  = "weeklyRecords"
	KeyMonthlyReports = "monthlyReports"
)

// CollectionStore is the persistence collaborator. Each key maps to one whole collection that
// is loaded and saved as a unit.
type CollectionStore interface {
	// LoadCollection decodes the stored collection into dest. found is false when nothing has
	// been stored under key yet, in which case dest is left untouched.
	LoadCollection(ctx context.Context, key string, dest any) (found bool, err error)

	// SaveCollection replaces the stored collection atomically. It either fully succeeds or
	// leaves the previous value in place.
	SaveCollection(ctx context.Context, key string, value any) error
}

// ClosableStore is implemented by stores holding connections.
type ClosableStore interface {
	CollectionStore
	Close() error
}
