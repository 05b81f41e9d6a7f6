package subscription

import "foodgram/internal/domain/recipe"

// FollowView — автор из списка подписок вместе с его рецептами.
type FollowView struct {
	Email        string         `json:"email"`
	ID           int64          `json:"id"`
	Username     string         `json:"username"`
	FirstName    string         `json:"first_name"`
	LastName     string         `json:"last_name"`
	IsSubscribed bool           `json:"is_subscribed"`
	Recipes      []recipe.Short `json:"recipes"`
	RecipesCount int64          `json:"recipes_count"`
}
