package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/offering_tracker/internal/apperrors"
	"github.com/SscSPs/offering_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/offering_tracker/internal/core/ports/services"
	"github.com/SscSPs/offering_tracker/internal/core/services"
	"github.com/SscSPs/offering_tracker/internal/dto"
	"github.com/stretchr/testify/suite"
)

type DirectoryServiceTestSuite struct {
	suite.Suite
	store   *flakyStore
	service portssvc.DirectorySvcFacade
	ctx     context.Context
}

func (suite *DirectoryServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = newFlakyStore()
	repos := newRepositories(suite.store)
	suite.service = services.NewDirectoryService(repos.MemberRepo, repos.CategoryRepo, testOptions()...)
}

func (suite *DirectoryServiceTestSuite) addMember(name string) *domain.Member {
	m, err := suite.service.AddMember(suite.ctx, dto.MemberRequest{Name: name})
	suite.Require().NoError(err)
	return m
}

func (suite *DirectoryServiceTestSuite) TestAddMember_TrimsAndAssignsID() {
	m := suite.addMember("  Ana Lopez ")

	suite.Equal("m-1", m.ID)
	suite.Equal("Ana Lopez", m.Name)

	members, err := suite.service.ListMembers(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal([]domain.Member{{ID: "m-1", Name: "Ana Lopez"}}, members)
}

func (suite *DirectoryServiceTestSuite) TestAddMember_Rejected() {
	suite.addMember("Ana")

	_, err := suite.service.AddMember(suite.ctx, dto.MemberRequest{Name: " ANA "})
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	_, err = suite.service.AddMember(suite.ctx, dto.MemberRequest{Name: "   "})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.AddMember(suite.ctx, dto.MemberRequest{})
	suite.ErrorIs(err, apperrors.ErrValidation)

	members, _ := suite.service.ListMembers(suite.ctx)
	suite.Len(members, 1)
}

func (suite *DirectoryServiceTestSuite) TestRenameMember() {
	ana := suite.addMember("Ana")
	suite.addMember("Luis")

	renamed, err := suite.service.RenameMember(suite.ctx, ana.ID, dto.MemberRequest{Name: "ANA"})
	suite.Require().NoError(err, "changing only the casing of the same member is allowed")
	suite.Equal("ANA", renamed.Name)

	_, err = suite.service.RenameMember(suite.ctx, ana.ID, dto.MemberRequest{Name: "luis"})
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	_, err = suite.service.RenameMember(suite.ctx, "m-404", dto.MemberRequest{Name: "Eva"})
	suite.ErrorIs(err, apperrors.ErrNotFound)

	got, err := suite.service.GetMember(suite.ctx, ana.ID)
	suite.Require().NoError(err)
	suite.Equal("ANA", got.Name)
}

func (suite *DirectoryServiceTestSuite) TestRemoveMember() {
	ana := suite.addMember("Ana")

	suite.Require().NoError(suite.service.RemoveMember(suite.ctx, ana.ID))
	suite.ErrorIs(suite.service.RemoveMember(suite.ctx, ana.ID), apperrors.ErrNotFound)

	_, err := suite.service.GetMember(suite.ctx, ana.ID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *DirectoryServiceTestSuite) TestCategories() {
	categories, err := suite.service.ListCategories(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(domain.DefaultCategories, categories)

	_, err = suite.service.AddCategory(suite.ctx, dto.CategoryRequest{Name: "luz"})
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	categories, err = suite.service.AddCategory(suite.ctx, dto.CategoryRequest{Name: " Construccion "})
	suite.Require().NoError(err)
	suite.Equal("Construccion", categories[len(categories)-1])

	categories, err = suite.service.RenameCategory(suite.ctx, "Luz", dto.CategoryRequest{Name: "Electricidad"})
	suite.Require().NoError(err)
	suite.Equal("Electricidad", categories[2])

	_, err = suite.service.RenameCategory(suite.ctx, "Electricidad", dto.CategoryRequest{Name: "agua"})
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	_, err = suite.service.RenameCategory(suite.ctx, "Gas", dto.CategoryRequest{Name: "Gasolina"})
	suite.ErrorIs(err, apperrors.ErrNotFound)

	categories, err = suite.service.RemoveCategory(suite.ctx, "ofrenda especial")
	suite.Require().NoError(err)
	suite.NotContains(categories, "Ofrenda Especial")

	_, err = suite.service.RemoveCategory(suite.ctx, "Ofrenda Especial")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *DirectoryServiceTestSuite) TestFailedSaveKeepsDirectory() {
	suite.addMember("Ana")
	suite.store.failSaves.Store(true)

	_, err := suite.service.AddMember(suite.ctx, dto.MemberRequest{Name: "Luis"})
	suite.ErrorIs(err, apperrors.ErrPersistence)
	suite.ErrorIs(err, errStoreDown)

	members, err := suite.service.ListMembers(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(members, 1)
}

func TestDirectoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DirectoryServiceTestSuite))
}
