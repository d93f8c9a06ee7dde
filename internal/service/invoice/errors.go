package invoice

import "errors"

var (
	ErrNoItems         = errors.New("invoice must have at least one item")
	ErrInvalidItem     = errors.New("invoice item needs a description, positive quantity and non-negative price")
	ErrNoRecipient     = errors.New("invoice has no telegram recipient")
	ErrInvoiceNotFound = errors.New("invoice not found")

	ErrDeliveryFailed = errors.New("invoice delivery failed")
)
