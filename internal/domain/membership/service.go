package membership

import (
	"context"
	"errors"

	"foodgram/internal/domain/recipe"
)

// RecipeGetter нужен, чтобы убедиться, что рецепт существует,
// и вернуть его краткое представление в ответе на добавление.
type RecipeGetter interface {
	GetByID(ctx context.Context, id int64) (*recipe.Recipe, error)
}

// Service contains business logic for favorite/cart toggles
type Service struct {
	memberships Repository
	recipes     RecipeGetter
}

func NewService(memberships Repository, recipes RecipeGetter) *Service {
	return &Service{memberships: memberships, recipes: recipes}
}

// Add включает рецепт в избранное или корзину и возвращает его краткую форму.
func (s *Service) Add(ctx context.Context, kind Kind, userID, recipeID int64) (*recipe.Short, error) {
	rec, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, recipe.ErrNotFound) {
			return nil, ErrRecipeMissing
		}
		return nil, err
	}

	if err := s.memberships.Add(ctx, kind, userID, recipeID); err != nil {
		return nil, err
	}

	short := recipe.NewShort(rec)
	return &short, nil
}

func (s *Service) Remove(ctx context.Context, kind Kind, userID, recipeID int64) error {
	if _, err := s.recipes.GetByID(ctx, recipeID); err != nil {
		if errors.Is(err, recipe.ErrNotFound) {
			return ErrRecipeMissing
		}
		return err
	}

	return s.memberships.Remove(ctx, kind, userID, recipeID)
}
