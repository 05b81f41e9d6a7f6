package recipe

import (
	"errors"
	"strings"
)

var (
	ErrNotFound  = errors.New("recipe not found")
	ErrNotAuthor = errors.New("only the author can modify this recipe")

	ErrEmptyIngredients    = errors.New("recipe must contain at least one ingredient")
	ErrDuplicateIngredient = errors.New("ingredients must not repeat")
	ErrNonPositiveAmount   = errors.New("amount must be greater than zero")
	ErrEmptyTags           = errors.New("recipe must have at least one tag")
	ErrDuplicateTag        = errors.New("tags must be unique")
	ErrUnknownIngredient   = errors.New("ingredient does not exist")
	ErrUnknownTag          = errors.New("tag does not exist")
	ErrInvalidImage        = errors.New("image must be a base64 data URI")
)

// FieldError привязывает нарушение к полю запроса.
type FieldError struct {
	Field string
	Err   error
}

// ValidationError собирает все нарушения состава рецепта.
type ValidationError struct {
	Violations []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Err.Error())
	}
	return strings.Join(parts, "; ")
}

// Fields возвращает нарушения в виде поле → сообщение для ответа API.
func (e *ValidationError) Fields() map[string]string {
	fields := make(map[string]string, len(e.Violations))
	for _, v := range e.Violations {
		if _, seen := fields[v.Field]; !seen {
			fields[v.Field] = v.Err.Error()
		}
	}
	return fields
}
