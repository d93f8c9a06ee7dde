package line_item

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDescription    = errors.New("service description must not be empty")
	ErrInvalidQuantity       = errors.New("service quantity must be positive")
	ErrInvalidPrice          = errors.New("service price must not be negative and must have at most 2 decimal places")

	ErrServiceNotFound = errors.New("request service not found")
)
