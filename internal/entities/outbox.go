package entities

import (
	"time"
)

const TopicRequestStatusChanged = "request-status-changed"

type OutboxMessage struct {
	ID        int64
	Topic     string
	Key       string
	Payload   []byte
	Attempts  int
	LastError *string
	CreatedAt time.Time
	SentAt    *time.Time
}

// StatusChangedEvent уходит в Kafka и по нему клиенту отправляется уведомление.
type StatusChangedEvent struct {
	EventID    string        `json:"eventId"`
	RequestID  int64         `json:"requestId"`
	TelegramID int64         `json:"telegramId"`
	City       string        `json:"city"`
	OldStatus  RequestStatus `json:"oldStatus"`
	NewStatus  RequestStatus `json:"newStatus"`
	ChangedAt  time.Time     `json:"changedAt"`
}
