package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateComposition_Valid(t *testing.T) {
	violations := ValidateComposition(
		[]IngredientAmount{{ID: 1, Amount: 5}, {ID: 2, Amount: 1}},
		[]int64{1, 2},
	)
	assert.Empty(t, violations)
}

func TestValidateComposition_EmptyIngredients(t *testing.T) {
	violations := ValidateComposition(nil, []int64{1})

	assert.Len(t, violations, 1)
	assert.ErrorIs(t, violations[0].Err, ErrEmptyIngredients)
	assert.Equal(t, "ingredients", violations[0].Field)
}

func TestValidateComposition_DuplicateIngredient(t *testing.T) {
	violations := ValidateComposition(
		[]IngredientAmount{{ID: 1, Amount: 5}, {ID: 1, Amount: 3}},
		[]int64{1},
	)

	assert.Len(t, violations, 1)
	assert.ErrorIs(t, violations[0].Err, ErrDuplicateIngredient)
}

func TestValidateComposition_NonPositiveAmount(t *testing.T) {
	violations := ValidateComposition(
		[]IngredientAmount{{ID: 1, Amount: 0}},
		[]int64{1},
	)

	assert.Len(t, violations, 1)
	assert.ErrorIs(t, violations[0].Err, ErrNonPositiveAmount)
	assert.Equal(t, "amount", violations[0].Field)
}

func TestValidateComposition_EmptyTags(t *testing.T) {
	violations := ValidateComposition(
		[]IngredientAmount{{ID: 1, Amount: 5}},
		nil,
	)

	assert.Len(t, violations, 1)
	assert.ErrorIs(t, violations[0].Err, ErrEmptyTags)
}

func TestValidateComposition_DuplicateTag(t *testing.T) {
	violations := ValidateComposition(
		[]IngredientAmount{{ID: 1, Amount: 5}},
		[]int64{7, 7},
	)

	assert.Len(t, violations, 1)
	assert.ErrorIs(t, violations[0].Err, ErrDuplicateTag)
}

func TestValidateComposition_CollectsAllViolations(t *testing.T) {
	violations := ValidateComposition(
		[]IngredientAmount{{ID: 1, Amount: 0}, {ID: 1, Amount: 2}},
		nil,
	)

	// дубликат, неположительное количество и отсутствие тегов — всё сразу
	assert.Len(t, violations, 3)
}
