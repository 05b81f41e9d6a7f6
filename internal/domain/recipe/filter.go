package recipe

import "gorm.io/gorm"

// Filter описывает параметры отбора рецептов.
// RequesterID == 0 означает анонимный запрос.
type Filter struct {
	AuthorID    int64
	TagSlugs    []string
	Favorited   bool
	InCart      bool
	RequesterID int64
	Limit       int
	Offset      int
}

// apply навешивает условия фильтра на запрос по таблице recipes.
//   - автор: точное совпадение;
//   - теги: достаточно одного общего слага (OR-семантика);
//   - избранное/корзина: сужение по членству автора запроса; для анонима
//     фильтр сознательно не делает ничего.
func (f Filter) apply(q *gorm.DB) *gorm.DB {
	if f.AuthorID != 0 {
		q = q.Where("recipes.author_id = ?", f.AuthorID)
	}

	if len(f.TagSlugs) > 0 {
		q = q.Where(
			"recipes.id IN (SELECT rt.recipe_id FROM recipe_tags rt JOIN tags t ON t.id = rt.tag_id WHERE t.slug IN ?)",
			f.TagSlugs,
		)
	}

	if f.Favorited && f.RequesterID != 0 {
		q = q.Where(
			"EXISTS (SELECT 1 FROM favorites fav WHERE fav.recipe_id = recipes.id AND fav.user_id = ?)",
			f.RequesterID,
		)
	}

	if f.InCart && f.RequesterID != 0 {
		q = q.Where(
			"EXISTS (SELECT 1 FROM shopping_cart_entries sc WHERE sc.recipe_id = recipes.id AND sc.user_id = ?)",
			f.RequesterID,
		)
	}

	return q
}
