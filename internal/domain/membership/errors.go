package membership

import "errors"

var (
	ErrAlreadyExists = errors.New("recipe is already in the list")
	ErrNoSuchEntry   = errors.New("recipe is not in the list")
	ErrRecipeMissing = errors.New("recipe not found")
)
