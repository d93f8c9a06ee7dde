package telegram

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError ответ Bot API с ok == false.
type APIError struct {
	StatusCode  int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram api %d: %s", e.StatusCode, e.Description)
}

// ретраим лимиты, ошибки сервера и сетевые ошибки
func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= http.StatusInternalServerError
	}
	return true
}

func statusLabel(err error) string {
	if err == nil {
		return "OK"
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return http.StatusText(apiErr.StatusCode)
	}
	return "TRANSPORT"
}
