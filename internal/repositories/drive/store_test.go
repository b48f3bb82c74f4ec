package drive

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/offering_tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockFileAPI struct {
	mock.Mock
}

func (m *mockFileAPI) Find(ctx context.Context, folderID, name string) (string, error) {
	args := m.Called(ctx, folderID, name)
	return args.String(0), args.Error(1)
}

func (m *mockFileAPI) Download(ctx context.Context, fileID string) ([]byte, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockFileAPI) Create(ctx context.Context, folderID, name string, content []byte) (string, error) {
	args := m.Called(ctx, folderID, name, content)
	return args.String(0), args.Error(1)
}

func (m *mockFileAPI) Update(ctx context.Context, fileID string, content []byte) error {
	args := m.Called(ctx, fileID, content)
	return args.Error(0)
}

func TestStore_LoadMissingFile(t *testing.T) {
	ctx := context.Background()
	api := new(mockFileAPI)
	api.On("Find", ctx, "folder", "members.json").Return("", nil).Once()

	var members []domain.Member
	found, err := newStore(api, "folder").LoadCollection(ctx, "members", &members)
	require.NoError(t, err)
	assert.False(t, found)
	api.AssertExpectations(t)
}

func TestStore_LoadExistingFile(t *testing.T) {
	ctx := context.Background()
	api := new(mockFileAPI)
	api.On("Find", ctx, "folder", "categories.json").Return("file-1", nil).Once()
	api.On("Download", ctx, "file-1").Return([]byte(`["Diezmo","Luz"]`), nil).Once()

	var categories []string
	found, err := newStore(api, "folder").LoadCollection(ctx, "categories", &categories)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"Diezmo", "Luz"}, categories)
	api.AssertExpectations(t)
}

func TestStore_SaveCreatesThenUpdates(t *testing.T) {
	ctx := context.Background()
	api := new(mockFileAPI)
	api.On("Find", ctx, "folder", "categories.json").Return("", nil).Once()
	api.On("Create", ctx, "folder", "categories.json", mock.Anything).Return("file-9", nil).Once()
	api.On("Update", ctx, "file-9", mock.MatchedBy(func(b []byte) bool {
		return assert.JSONEq(t, `["Diezmo","Agua"]`, string(b))
	})).Return(nil).Once()

	store := newStore(api, "folder")
	require.NoError(t, store.SaveCollection(ctx, "categories", []string{"Diezmo"}))
	require.NoError(t, store.SaveCollection(ctx, "categories", []string{"Diezmo", "Agua"}))
	api.AssertExpectations(t)
}

func TestStore_PropagatesFailures(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("quota exceeded")
	api := new(mockFileAPI)
	api.On("Find", ctx, "folder", "formulas.json").Return("file-2", nil).Once()
	api.On("Update", ctx, "file-2", mock.Anything).Return(boom).Once()

	err := newStore(api, "folder").SaveCollection(ctx, "formulas", domain.DefaultFormulas())
	assert.ErrorIs(t, err, boom)
}

func TestEscapeQuery(t *testing.T) {
	assert.Equal(t, `it\'s`, escapeQuery("it's"))
	assert.Equal(t, `a\\b`, escapeQuery(`a\b`))
}
