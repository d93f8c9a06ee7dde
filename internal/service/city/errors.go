package city

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidShortName      = errors.New("invalid city short name")
	ErrInvalidFullName       = errors.New("invalid city full name")

	ErrCityNotFound = errors.New("city not found")
	ErrConflict     = errors.New("city with this short name already exists")
	ErrCityInUse    = errors.New("city is referenced by rates, requests or schedule")
)
