package membership

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Repository handles persistence for favorite/cart membership rows
type Repository interface {
	// Add создаёт строку членства. Повтор пары (user, recipe) даёт
	// ErrAlreadyExists: сначала проверкой существования, а при гонке —
	// переводом ошибки уникального индекса.
	Add(ctx context.Context, kind Kind, userID, recipeID int64) error
	Remove(ctx context.Context, kind Kind, userID, recipeID int64) error

	FavoritedSet(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]bool, error)
	InCartSet(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) model(kind Kind) any {
	if kind == KindCart {
		return &ShoppingCartEntry{}
	}
	return &Favorite{}
}

func (r *repository) Add(ctx context.Context, kind Kind, userID, recipeID int64) error {
	var count int64
	err := r.db.WithContext(ctx).Model(r.model(kind)).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrAlreadyExists
	}

	if kind == KindCart {
		err = r.db.WithContext(ctx).Create(&ShoppingCartEntry{UserID: userID, RecipeID: recipeID}).Error
	} else {
		err = r.db.WithContext(ctx).Create(&Favorite{UserID: userID, RecipeID: recipeID}).Error
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *repository) Remove(ctx context.Context, kind Kind, userID, recipeID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(r.model(kind))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoSuchEntry
	}
	return nil
}

func (r *repository) FavoritedSet(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]bool, error) {
	return r.memberSet(ctx, &Favorite{}, userID, recipeIDs)
}

func (r *repository) InCartSet(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]bool, error) {
	return r.memberSet(ctx, &ShoppingCartEntry{}, userID, recipeIDs)
}

func (r *repository) memberSet(ctx context.Context, model any, userID int64, recipeIDs []int64) (map[int64]bool, error) {
	set := make(map[int64]bool, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return set, nil
	}

	var ids []int64
	err := r.db.WithContext(ctx).Model(model).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
