package notification

import "errors"

var (
	ErrNoRecipient = errors.New("event has no telegram recipient")
	ErrSendFailed  = errors.New("notification send failed")
)
