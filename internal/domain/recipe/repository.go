package recipe

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository handles persistence for the recipe aggregate
type Repository interface {
	Create(ctx context.Context, r *Recipe, ingredients []IngredientAmount, tagIDs []int64) error
	// Update сохраняет скалярные поля и заменяет оба join-набора целиком
	// (удалить всё — вставить заново) в одной транзакции.
	Update(ctx context.Context, r *Recipe, ingredients []IngredientAmount, tagIDs []int64) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Recipe, error)
	List(ctx context.Context, f Filter) ([]Recipe, int64, error)

	// IngredientsOf возвращает строки ингредиентов в порядке подачи.
	IngredientsOf(ctx context.Context, recipeIDs []int64) ([]RecipeIngredient, error)
	TagsOf(ctx context.Context, recipeIDs []int64) ([]RecipeTag, error)

	ShortByAuthor(ctx context.Context, authorID int64, limit int) ([]Recipe, error)
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rec *Recipe, ingredients []IngredientAmount, tagIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rec).Error; err != nil {
			return err
		}
		return insertJoins(tx, rec.ID, ingredients, tagIDs)
	})
}

func (r *repository) Update(ctx context.Context, rec *Recipe, ingredients []IngredientAmount, tagIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&Recipe{}).Where("id = ?", rec.ID).Updates(map[string]any{
			"name":         rec.Name,
			"image":        rec.Image,
			"text":         rec.Text,
			"cooking_time": rec.CookingTime,
		}).Error
		if err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", rec.ID).Delete(&RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", rec.ID).Delete(&RecipeTag{}).Error; err != nil {
			return err
		}

		return insertJoins(tx, rec.ID, ingredients, tagIDs)
	})
}

// insertJoins пишет join-строки в порядке подачи: автоинкрементные id
// сохраняют порядок для последующего чтения.
func insertJoins(tx *gorm.DB, recipeID int64, ingredients []IngredientAmount, tagIDs []int64) error {
	ingredientRows := make([]RecipeIngredient, 0, len(ingredients))
	for _, ing := range ingredients {
		ingredientRows = append(ingredientRows, RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: ing.ID,
			Amount:       ing.Amount,
		})
	}
	if err := tx.Create(&ingredientRows).Error; err != nil {
		return err
	}

	tagRows := make([]RecipeTag, 0, len(tagIDs))
	for _, id := range tagIDs {
		tagRows = append(tagRows, RecipeTag{
			RecipeID: recipeID,
			TagID:    id,
		})
	}
	return tx.Create(&tagRows).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&RecipeTag{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&Recipe{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Recipe, error) {
	var rec Recipe
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *repository) List(ctx context.Context, f Filter) ([]Recipe, int64, error) {
	var total int64
	countQuery := f.apply(r.db.WithContext(ctx).Model(&Recipe{}))
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := f.apply(r.db.WithContext(ctx).Model(&Recipe{})).Order("recipes.id DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var recipes []Recipe
	if err := q.Find(&recipes).Error; err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

func (r *repository) IngredientsOf(ctx context.Context, recipeIDs []int64) ([]RecipeIngredient, error) {
	if len(recipeIDs) == 0 {
		return nil, nil
	}
	var rows []RecipeIngredient
	err := r.db.WithContext(ctx).
		Where("recipe_id IN ?", recipeIDs).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) TagsOf(ctx context.Context, recipeIDs []int64) ([]RecipeTag, error) {
	if len(recipeIDs) == 0 {
		return nil, nil
	}
	var rows []RecipeTag
	err := r.db.WithContext(ctx).
		Where("recipe_id IN ?", recipeIDs).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ShortByAuthor(ctx context.Context, authorID int64, limit int) ([]Recipe, error) {
	q := r.db.WithContext(ctx).Where("author_id = ?", authorID).Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var recipes []Recipe
	err := q.Find(&recipes).Error
	return recipes, err
}

func (r *repository) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Recipe{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}
