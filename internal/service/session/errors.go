package session

import "errors"

var (
	ErrInvalidTelegramID = errors.New("telegram id must be positive")
	ErrInvalidState      = errors.New("session state must be a JSON object")
	ErrSessionNotFound   = errors.New("session not found")
)
