package counterparty

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidName           = errors.New("counterparty name must not be empty")
	ErrInvalidINN            = errors.New("inn must be 10 or 12 digits")
	ErrInvalidKPP            = errors.New("kpp must be 9 digits")
	ErrInvalidOGRN           = errors.New("ogrn must be 13 or 15 digits")
	ErrInvalidBIK            = errors.New("bik must be 9 digits")
	ErrInvalidAccount        = errors.New("account must be 20 digits")

	ErrCounterpartyNotFound = errors.New("counterparty not found")
	ErrCounterpartyInUse    = errors.New("counterparty has invoices")
	ErrContactNotFound      = errors.New("contact client not found")
)
