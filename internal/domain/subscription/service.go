package subscription

import (
	"context"

	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/user"
)

type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
}

// RecipeLister отдаёт рецепты автора в порядке убывания новизны.
type RecipeLister interface {
	ShortByAuthor(ctx context.Context, authorID int64, limit int) ([]recipe.Recipe, error)
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
}

// Service contains business logic for subscriptions
type Service struct {
	subs    Repository
	users   UserGetter
	recipes RecipeLister
}

func NewService(subs Repository, users UserGetter, recipes RecipeLister) *Service {
	return &Service{subs: subs, users: users, recipes: recipes}
}

// Subscribe оформляет подписку follower → author и возвращает карточку
// автора с его рецептами.
func (s *Service) Subscribe(ctx context.Context, followerID, authorID int64, recipesLimit int) (*FollowView, error) {
	if followerID == authorID {
		return nil, ErrSelfSubscription
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	exists, err := s.subs.IsSubscribed(ctx, followerID, authorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateSubscription
	}

	if err := s.subs.Create(ctx, followerID, authorID); err != nil {
		return nil, err
	}

	return s.followView(ctx, author, recipesLimit)
}

func (s *Service) Unsubscribe(ctx context.Context, followerID, authorID int64) error {
	if _, err := s.users.GetByID(ctx, authorID); err != nil {
		return err
	}
	return s.subs.Delete(ctx, followerID, authorID)
}

// List возвращает всех авторов, на которых подписан follower, с рецептами,
// ограниченными recipesLimit (0 — без ограничения).
func (s *Service) List(ctx context.Context, followerID int64, recipesLimit, limit, offset int) ([]FollowView, int64, error) {
	authors, total, err := s.subs.ListAuthors(ctx, followerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	views := make([]FollowView, 0, len(authors))
	for i := range authors {
		view, err := s.followView(ctx, &authors[i], recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		views = append(views, *view)
	}
	return views, total, nil
}

func (s *Service) followView(ctx context.Context, author *user.User, recipesLimit int) (*FollowView, error) {
	recipes, err := s.recipes.ShortByAuthor(ctx, author.ID, recipesLimit)
	if err != nil {
		return nil, err
	}
	count, err := s.recipes.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	shorts := make([]recipe.Short, 0, len(recipes))
	for i := range recipes {
		shorts = append(shorts, recipe.NewShort(&recipes[i]))
	}

	return &FollowView{
		Email:        author.Email,
		ID:           author.ID,
		Username:     author.Username,
		FirstName:    author.FirstName,
		LastName:     author.LastName,
		IsSubscribed: true,
		Recipes:      shorts,
		RecipesCount: count,
	}, nil
}
