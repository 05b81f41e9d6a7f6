package subscription

import "time"

// Subscription — факт "пользователь подписан на автора".
// Подписка на самого себя запрещена на уровне сервиса.
type Subscription struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_author"`
	AuthorID  int64     `json:"author_id" gorm:"not null;uniqueIndex:idx_user_author"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Subscription) TableName() string { return "subscriptions" }
