package membership

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodgram/internal/domain/recipe"
)

type MockMembershipRepository struct {
	mock.Mock
}

func (m *MockMembershipRepository) Add(ctx context.Context, kind Kind, userID, recipeID int64) error {
	args := m.Called(ctx, kind, userID, recipeID)
	return args.Error(0)
}

func (m *MockMembershipRepository) Remove(ctx context.Context, kind Kind, userID, recipeID int64) error {
	args := m.Called(ctx, kind, userID, recipeID)
	return args.Error(0)
}

func (m *MockMembershipRepository) FavoritedSet(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]bool, error) {
	args := m.Called(ctx, userID, recipeIDs)
	return args.Get(0).(map[int64]bool), args.Error(1)
}

func (m *MockMembershipRepository) InCartSet(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]bool, error) {
	args := m.Called(ctx, userID, recipeIDs)
	return args.Get(0).(map[int64]bool), args.Error(1)
}

type MockRecipeGetter struct {
	mock.Mock
}

func (m *MockRecipeGetter) GetByID(ctx context.Context, id int64) (*recipe.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipe.Recipe), args.Error(1)
}

func TestService_Add_Success(t *testing.T) {
	repo := new(MockMembershipRepository)
	recipes := new(MockRecipeGetter)
	service := NewService(repo, recipes)

	rec := &recipe.Recipe{ID: 10, Name: "Каша", Image: "kasha.png", CookingTime: 15}
	recipes.On("GetByID", mock.Anything, int64(10)).Return(rec, nil)
	repo.On("Add", mock.Anything, KindFavorite, int64(1), int64(10)).Return(nil)

	short, err := service.Add(context.Background(), KindFavorite, 1, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(10), short.ID)
	assert.Equal(t, "Каша", short.Name)
	repo.AssertExpectations(t)
}

func TestService_Add_MissingRecipe(t *testing.T) {
	repo := new(MockMembershipRepository)
	recipes := new(MockRecipeGetter)
	service := NewService(repo, recipes)

	recipes.On("GetByID", mock.Anything, int64(99)).Return(nil, recipe.ErrNotFound)

	_, err := service.Add(context.Background(), KindCart, 1, 99)

	assert.ErrorIs(t, err, ErrRecipeMissing)
	repo.AssertNotCalled(t, "Add")
}

func TestService_Add_Duplicate(t *testing.T) {
	repo := new(MockMembershipRepository)
	recipes := new(MockRecipeGetter)
	service := NewService(repo, recipes)

	rec := &recipe.Recipe{ID: 10, Name: "Каша"}
	recipes.On("GetByID", mock.Anything, int64(10)).Return(rec, nil)
	repo.On("Add", mock.Anything, KindFavorite, int64(1), int64(10)).Return(ErrAlreadyExists)

	_, err := service.Add(context.Background(), KindFavorite, 1, 10)

	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestService_Remove_MissingEntry(t *testing.T) {
	repo := new(MockMembershipRepository)
	recipes := new(MockRecipeGetter)
	service := NewService(repo, recipes)

	rec := &recipe.Recipe{ID: 10}
	recipes.On("GetByID", mock.Anything, int64(10)).Return(rec, nil)
	repo.On("Remove", mock.Anything, KindCart, int64(1), int64(10)).Return(ErrNoSuchEntry)

	err := service.Remove(context.Background(), KindCart, 1, 10)

	assert.ErrorIs(t, err, ErrNoSuchEntry)
}
