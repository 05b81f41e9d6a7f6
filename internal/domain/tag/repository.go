package tag

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository handles persistence for tags.
// Теги — справочные данные: создаются сидером или админом, дальше read-only.
type Repository interface {
	List(ctx context.Context) ([]Tag, error)
	GetByID(ctx context.Context, id int64) (*Tag, error)
	GetByIDs(ctx context.Context, ids []int64) ([]Tag, error)
	// Create отклоняет теги с невалидным hex-цветом.
	Create(ctx context.Context, t *Tag) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	err := r.db.WithContext(ctx).Order("id DESC").Find(&tags).Error
	return tags, err
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Tag, error) {
	var t Tag
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) GetByIDs(ctx context.Context, ids []int64) ([]Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []Tag
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}

func (r *repository) Create(ctx context.Context, t *Tag) error {
	if !ValidColor(t.Color) {
		return ErrInvalidColor
	}
	return r.db.WithContext(ctx).Create(t).Error
}
