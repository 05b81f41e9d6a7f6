package ingredient

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository handles persistence for ingredients
type Repository interface {
	// Search ищет по подстроке без учёта регистра; совпадения по префиксу
	// идут первыми. Пустой запрос возвращает весь справочник.
	Search(ctx context.Context, name string) ([]Ingredient, error)
	GetByID(ctx context.Context, id int64) (*Ingredient, error)
	GetByIDs(ctx context.Context, ids []int64) ([]Ingredient, error)
	CreateBatch(ctx context.Context, items []Ingredient) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Search(ctx context.Context, name string) ([]Ingredient, error) {
	var items []Ingredient

	if name == "" {
		err := r.db.WithContext(ctx).Order("id DESC").Find(&items).Error
		return items, err
	}

	err := r.db.WithContext(ctx).Raw(
		`SELECT * FROM ingredients
		 WHERE lower(name) LIKE lower(?)
		 ORDER BY CASE WHEN lower(name) LIKE lower(?) THEN 0 ELSE 1 END, name`,
		"%"+name+"%", name+"%",
	).Scan(&items).Error
	return items, err
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Ingredient, error) {
	var i Ingredient
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&i).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &i, nil
}

func (r *repository) GetByIDs(ctx context.Context, ids []int64) ([]Ingredient, error) {
	var items []Ingredient
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *repository) CreateBatch(ctx context.Context, items []Ingredient) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(items, 500).Error
}
