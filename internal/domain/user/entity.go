package user

import (
	"regexp"
	"time"
)

// User — зарегистрированный пользователь платформы.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"size:254;not null;uniqueIndex"`
	Username     string    `json:"username" gorm:"size:150;not null;uniqueIndex"`
	FirstName    string    `json:"first_name" gorm:"size:150"`
	LastName     string    `json:"last_name" gorm:"size:150"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"-" gorm:"autoCreateTime"`
}

func (User) TableName() string { return "users" }

var usernameRe = regexp.MustCompile(`[\w.@+\-]+`)

// ValidUsername проверяет, что логин содержит допустимый непустой префикс.
// Сопоставление идёт с начала строки, как re.match в исходном API.
func ValidUsername(username string) bool {
	loc := usernameRe.FindStringIndex(username)
	return loc != nil && loc[0] == 0
}
