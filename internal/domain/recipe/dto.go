package recipe

import (
	"foodgram/internal/domain/tag"
	"foodgram/internal/domain/user"
	"foodgram/internal/pkg/images"
)

// WriteRequest — входные данные создания/обновления рецепта.
// Image — base64 data URI; при обновлении пустое значение оставляет
// прежнюю картинку.
type WriteRequest struct {
	Name        string             `json:"name" validate:"required,max=200"`
	Text        string             `json:"text" validate:"required"`
	CookingTime int                `json:"cooking_time" validate:"required,min=1"`
	Image       string             `json:"image"`
	Tags        []int64            `json:"tags"`
	Ingredients []IngredientAmount `json:"ingredients"`
}

// IngredientView — строка ингредиента в представлении рецепта.
type IngredientView struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// View — полное представление рецепта для чтения.
type View struct {
	ID               int64            `json:"id"`
	Tags             []tag.Tag        `json:"tags"`
	Author           user.Profile     `json:"author"`
	Ingredients      []IngredientView `json:"ingredients"`
	Name             string           `json:"name"`
	Image            string           `json:"image"`
	Text             string           `json:"text"`
	CookingTime      int              `json:"cooking_time"`
	IsFavorited      bool             `json:"is_favorited"`
	IsInShoppingCart bool             `json:"is_in_shopping_cart"`
}

// Short — краткое представление (ответ на добавление в избранное/корзину,
// рецепты в списке подписок).
type Short struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

func NewShort(r *Recipe) Short {
	return Short{
		ID:          r.ID,
		Name:        r.Name,
		Image:       images.URL(r.Image),
		CookingTime: r.CookingTime,
	}
}
