package services

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/SscSPs/offering_tracker/internal/apperrors"
	"github.com/SscSPs/offering_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/offering_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/offering_tracker/internal/core/ports/services"
	"github.com/SscSPs/offering_tracker/internal/dto"
)

// directoryService implements the DirectorySvcFacade interface
type directoryService struct {
	BaseService
	memberRepo   portsrepo.MemberRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewDirectoryService creates the member and category directory service.
func NewDirectoryService(
	memberRepo portsrepo.MemberRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	opts ...Option,
) portssvc.DirectorySvcFacade {
	return &directoryService{
		BaseService:  newBaseService(opts...),
		memberRepo:   memberRepo,
		categoryRepo: categoryRepo,
	}
}

var _ portssvc.DirectorySvcFacade = (*directoryService)(nil)

func cleanName(kind, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.NewValidationError("%s name cannot be empty", kind)
	}
	return name, nil
}

func (s *directoryService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	members, err := s.memberRepo.ListMembers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list members")
		return nil, err
	}
	return members, nil
}

func (s *directoryService) GetMember(ctx context.Context, memberID string) (*domain.Member, error) {
	members, err := s.ListMembers(ctx)
	if err != nil {
		return nil, err
	}
	idx := slices.IndexFunc(members, func(m domain.Member) bool { return m.ID == memberID })
	if idx < 0 {
		return nil, apperrors.NewNotFoundError("member", memberID)
	}
	return &members[idx], nil
}

func (s *directoryService) AddMember(ctx context.Context, req dto.MemberRequest) (*domain.Member, error) {
	if err := dto.Validate(req); err != nil {
		s.LogWarn(ctx, err, "Invalid member request")
		return nil, err
	}
	name, err := cleanName("member", req.Name)
	if err != nil {
		return nil, err
	}

	var created domain.Member
	_, err = s.memberRepo.UpdateMembers(ctx, func(members []domain.Member) ([]domain.Member, error) {
		for _, m := range members {
			if domain.SameName(m.Name, name) {
				return nil, apperrors.NewDuplicateNameError("member", name)
			}
		}
		created = domain.Member{ID: s.NewID("m-"), Name: name}
		return append(members, created), nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to add member", slog.String("name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Member added", slog.String("member_id", created.ID))
	return &created, nil
}

func (s *directoryService) RenameMember(ctx context.Context, memberID string, req dto.MemberRequest) (*domain.Member, error) {
	if err := dto.Validate(req); err != nil {
		s.LogWarn(ctx, err, "Invalid member request")
		return nil, err
	}
	name, err := cleanName("member", req.Name)
	if err != nil {
		return nil, err
	}

	var renamed domain.Member
	_, err = s.memberRepo.UpdateMembers(ctx, func(members []domain.Member) ([]domain.Member, error) {
		idx := -1
		for i, m := range members {
			if m.ID == memberID {
				idx = i
				continue
			}
			if domain.SameName(m.Name, name) {
				return nil, apperrors.NewDuplicateNameError("member", name)
			}
		}
		if idx < 0 {
			return nil, apperrors.NewNotFoundError("member", memberID)
		}
		members[idx].Name = name
		renamed = members[idx]
		return members, nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to rename member", slog.String("member_id", memberID))
		return nil, err
	}

	s.LogInfo(ctx, "Member renamed", slog.String("member_id", memberID))
	return &renamed, nil
}

func (s *directoryService) RemoveMember(ctx context.Context, memberID string) error {
	_, err := s.memberRepo.UpdateMembers(ctx, func(members []domain.Member) ([]domain.Member, error) {
		idx := slices.IndexFunc(members, func(m domain.Member) bool { return m.ID == memberID })
		if idx < 0 {
			return nil, apperrors.NewNotFoundError("member", memberID)
		}
		return slices.Delete(members, idx, idx+1), nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to remove member", slog.String("member_id", memberID))
		return err
	}

	s.LogInfo(ctx, "Member removed", slog.String("member_id", memberID))
	return nil
}

func (s *directoryService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, err
	}
	return categories, nil
}

func (s *directoryService) AddCategory(ctx context.Context, req dto.CategoryRequest) ([]string, error) {
	if err := dto.Validate(req); err != nil {
		s.LogWarn(ctx, err, "Invalid category request")
		return nil, err
	}
	name, err := cleanName("category", req.Name)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.UpdateCategories(ctx, func(categories []string) ([]string, error) {
		for _, c := range categories {
			if domain.SameName(c, name) {
				return nil, apperrors.NewDuplicateNameError("category", name)
			}
		}
		return append(categories, name), nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to add category", slog.String("category", name))
		return nil, err
	}

	s.LogInfo(ctx, "Category added", slog.String("category", name))
	return categories, nil
}

func (s *directoryService) RenameCategory(ctx context.Context, oldName string, req dto.CategoryRequest) ([]string, error) {
	if err := dto.Validate(req); err != nil {
		s.LogWarn(ctx, err, "Invalid category request")
		return nil, err
	}
	name, err := cleanName("category", req.Name)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.UpdateCategories(ctx, func(categories []string) ([]string, error) {
		idx := indexOfCategory(categories, oldName)
		if idx < 0 {
			return nil, apperrors.NewNotFoundError("category", oldName)
		}
		for i, c := range categories {
			if i != idx && domain.SameName(c, name) {
				return nil, apperrors.NewDuplicateNameError("category", name)
			}
		}
		categories[idx] = name
		return categories, nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to rename category", slog.String("category", oldName))
		return nil, err
	}

	s.LogInfo(ctx, "Category renamed", slog.String("from", oldName), slog.String("to", name))
	return categories, nil
}

func (s *directoryService) RemoveCategory(ctx context.Context, name string) ([]string, error) {
	categories, err := s.categoryRepo.UpdateCategories(ctx, func(categories []string) ([]string, error) {
		idx := indexOfCategory(categories, name)
		if idx < 0 {
			return nil, apperrors.NewNotFoundError("category", name)
		}
		return slices.Delete(categories, idx, idx+1), nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to remove category", slog.String("category", name))
		return nil, err
	}

	s.LogInfo(ctx, "Category removed", slog.String("category", name))
	return categories, nil
}

// indexOfCategory prefers an exact match and falls back to a case-insensitive one.
func indexOfCategory(categories []string, name string) int {
	if idx := slices.Index(categories, name); idx >= 0 {
		return idx
	}
	return slices.IndexFunc(categories, func(c string) bool { return domain.SameName(c, name) })
}
