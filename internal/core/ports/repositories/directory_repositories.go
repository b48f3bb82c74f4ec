package repositories

import (
	"context"

	"github.com/SscSPs/offering_tracker/internal/core/domain"
)

// MemberReader defines read operations for the member directory
type MemberReader interface {
	// ListMembers returns the members in insertion order.
	ListMembers(ctx context.Context) ([]domain.Member, error)
}

// MemberWriter defines write operations for the member directory
type MemberWriter interface {
	// UpdateMembers applies fn to a copy of the current members and persists the result.
	// When fn or the save fails, the stored members are unchanged.
	UpdateMembers(ctx context.Context, fn func([]domain.Member) ([]domain.Member, error)) ([]domain.Member, error)
}

// MemberRepositoryFacade combines all member repository interfaces
type MemberRepositoryFacade interface {
	MemberReader
	MemberWriter
}

// CategoryReader defines read operations for the category set
type CategoryReader interface {
	ListCategories(ctx context.Context) ([]string, error)
}

// CategoryWriter defines write operations for the category set
type CategoryWriter interface {
	UpdateCategories(ctx context.Context, fn func([]string) ([]string, error)) ([]string, error)
}

// CategoryRepositoryFacade combines all category repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
