package cart

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrItemNotFound = errors.New("item not found")
)
