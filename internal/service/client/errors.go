package client

import "errors"

var (
	ErrInvalidTelegramID = errors.New("invalid telegram id")
	ErrClientNotFound    = errors.New("client not found")
)
