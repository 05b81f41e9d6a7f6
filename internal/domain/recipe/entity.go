package recipe

import (
	"time"

	"foodgram/internal/domain/user"
)

// Recipe — агрегат: сам рецепт плюс его строки ингредиентов и тегов.
// Join-строки всегда пишутся и заменяются вместе с рецептом в одной транзакции.
type Recipe struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	AuthorID    int64     `json:"author_id" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	Image       string    `json:"image" gorm:"size:255"`
	Text        string    `json:"text" gorm:"not null"`
	CookingTime int       `json:"cooking_time" gorm:"not null"`
	CreatedAt   time.Time `json:"-" gorm:"autoCreateTime"`

	Author *user.User `json:"-" gorm:"foreignKey:AuthorID"`
}

func (Recipe) TableName() string { return "recipes" }

// RecipeIngredient — связь рецепта с ингредиентом и количеством.
// Порядок подачи сохраняется порядком вставки (автоинкрементный id).
type RecipeIngredient struct {
	ID           int64 `json:"id" gorm:"primaryKey"`
	RecipeID     int64 `json:"recipe_id" gorm:"not null;index;uniqueIndex:idx_recipe_ingredient"`
	IngredientID int64 `json:"ingredient_id" gorm:"not null;uniqueIndex:idx_recipe_ingredient"`
	Amount       int   `json:"amount" gorm:"not null"`
}

func (RecipeIngredient) TableName() string { return "recipe_ingredients" }

// RecipeTag — связь рецепта с тегом.
type RecipeTag struct {
	ID       int64 `json:"id" gorm:"primaryKey"`
	RecipeID int64 `json:"recipe_id" gorm:"not null;index;uniqueIndex:idx_recipe_tag"`
	TagID    int64 `json:"tag_id" gorm:"not null;uniqueIndex:idx_recipe_tag"`
}

func (RecipeTag) TableName() string { return "recipe_tags" }

// IngredientAmount — пара (ингредиент, количество) из запроса на запись.
type IngredientAmount struct {
	ID     int64 `json:"id" validate:"required"`
	Amount int   `json:"amount" validate:"required"`
}
