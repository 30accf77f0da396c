package domain

import "errors"

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidRequest  = errors.New("invalid request")
)
