package services

import (
	"context"

	"github.com/SscSPs/offering_tracker/internal/core/domain"
	"github.com/SscSPs/offering_tracker/internal/dto"
)

// DirectoryReaderSvc defines read operations over members and categories
type DirectoryReaderSvc interface {
	ListMembers(ctx context.Context) ([]domain.Member, error)
	GetMember(ctx context.Context, memberID string) (*domain.Member, error)
	ListCategories(ctx context.Context) ([]string, error)
}

// DirectoryWriterSvc defines write operations over members and categories.
// Names are unique ignoring case; removals never touch recorded donations.
type DirectoryWriterSvc interface {
	AddMember(ctx context.Context, req dto.MemberRequest) (*domain.Member, error)
	RenameMember(ctx context.Context, memberID string, req dto.MemberRequest) (*domain.Member, error)
	RemoveMember(ctx context.Context, memberID string) error
	AddCategory(ctx context.Context, req dto.CategoryRequest) ([]string, error)
	RenameCategory(ctx context.Context, oldName string, req dto.CategoryRequest) ([]string, error)
	RemoveCategory(ctx context.Context, name string) ([]string, error)
}

// DirectorySvcFacade combines all directory service interfaces
type DirectorySvcFacade interface {
	DirectoryReaderSvc
	DirectoryWriterSvc
}
