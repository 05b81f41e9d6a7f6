package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name        string `json:"name" validate:"required"`
	CookingTime int    `json:"cooking_time" validate:"required,min=1"`
	Internal    string `validate:"omitempty,email"`
}

func TestValidate_Valid(t *testing.T) {
	assert.Nil(t, Validate(sample{Name: "Каша", CookingTime: 15}))
}

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	errs := Validate(sample{})

	require.NotNil(t, errs)
	assert.Equal(t, "required", errs["name"])
	assert.Equal(t, "required", errs["cooking_time"])
}

func TestValidate_FallsBackToGoName(t *testing.T) {
	errs := Validate(sample{Name: "Каша", CookingTime: 15, Internal: "not-an-email"})

	require.NotNil(t, errs)
	assert.Equal(t, "email", errs["Internal"])
}
