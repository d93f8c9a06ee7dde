package schedule

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDate           = errors.New("delivery date is not a valid date")
	ErrInvalidAcceptDays     = errors.New("accept days must not be empty")

	ErrEntryNotFound = errors.New("schedule entry not found")
	ErrCityNotFound  = errors.New("city not found")
)
