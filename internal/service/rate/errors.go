package rate

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidUnit           = errors.New("invalid rate unit")
	ErrInvalidPrice          = errors.New("rate price must be positive with at most 2 decimal places")
	ErrNegativeBound         = errors.New("rate bounds must not be negative")
	ErrInvalidRange          = errors.New("rate min bound is greater than max bound")
	ErrBoundsForUnit         = errors.New("rate bounds do not match unit")

	ErrRateNotFound = errors.New("rate not found")
	ErrCityNotFound = errors.New("rate city not found")
	ErrConflict     = errors.New("city already has a kg rate")
)
