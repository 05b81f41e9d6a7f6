package subscription

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"foodgram/internal/domain/user"
)

// Repository handles persistence for subscriptions
type Repository interface {
	Create(ctx context.Context, followerID, authorID int64) error
	Delete(ctx context.Context, followerID, authorID int64) error
	IsSubscribed(ctx context.Context, followerID, authorID int64) (bool, error)
	// ListAuthors возвращает авторов, на которых подписан follower,
	// в порядке оформления подписки.
	ListAuthors(ctx context.Context, followerID int64, limit, offset int) ([]user.User, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, followerID, authorID int64) error {
	err := r.db.WithContext(ctx).Create(&Subscription{
		UserID:   followerID,
		AuthorID: authorID,
	}).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateSubscription
		}
		return err
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, followerID, authorID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", followerID, authorID).
		Delete(&Subscription{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) IsSubscribed(ctx context.Context, followerID, authorID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Subscription{}).
		Where("user_id = ? AND author_id = ?", followerID, authorID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ListAuthors(ctx context.Context, followerID int64, limit, offset int) ([]user.User, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&Subscription{}).
		Where("user_id = ?", followerID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	q := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN subscriptions s ON s.author_id = users.id").
		Where("s.user_id = ?", followerID).
		Order("s.id ASC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var authors []user.User
	if err := q.Find(&authors).Error; err != nil {
		return nil, 0, err
	}
	return authors, total, nil
}
