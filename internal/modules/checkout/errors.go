package checkout

import "errors"

var (
	ErrEmptyCart   = errors.New("cart is empty")
	ErrPersistence = errors.New("failed to record purchase")
)
