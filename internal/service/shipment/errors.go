package shipment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrRequestNotFound       = errors.New("shipment request not found")
)
