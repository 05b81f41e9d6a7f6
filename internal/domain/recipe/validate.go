package recipe

// ValidateComposition проверяет состав рецепта без обращения к БД и
// возвращает все найденные нарушения. Правила:
//   - минимум один ингредиент, без повторов, каждое количество >= 1;
//   - минимум один тег, без повторов.
func ValidateComposition(ingredients []IngredientAmount, tagIDs []int64) []FieldError {
	var violations []FieldError

	if len(ingredients) == 0 {
		violations = append(violations, FieldError{Field: "ingredients", Err: ErrEmptyIngredients})
	}

	seenIngredients := make(map[int64]bool, len(ingredients))
	for _, ing := range ingredients {
		if seenIngredients[ing.ID] {
			violations = append(violations, FieldError{Field: "ingredients", Err: ErrDuplicateIngredient})
		}
		seenIngredients[ing.ID] = true

		if ing.Amount < 1 {
			violations = append(violations, FieldError{Field: "amount", Err: ErrNonPositiveAmount})
		}
	}

	if len(tagIDs) == 0 {
		violations = append(violations, FieldError{Field: "tags", Err: ErrEmptyTags})
	}

	seenTags := make(map[int64]bool, len(tagIDs))
	for _, id := range tagIDs {
		if seenTags[id] {
			violations = append(violations, FieldError{Field: "tags", Err: ErrDuplicateTag})
		}
		seenTags[id] = true
	}

	return violations
}
