package entities

import (
	"time"
)

type Client struct {
	ID            int64
	TelegramID    int64
	Username      *string
	FirstName     *string
	LastName      *string
	ConsentAt     *time.Time
	RequestsCount int
	CreatedAt     time.Time
}

func (c Client) ConsentGiven() bool {
	return c.ConsentAt != nil
}

// ClientProfile данные Telegram-профиля, которыми обновляется клиент при каждом обращении.
type ClientProfile struct {
	TelegramID int64
	Username   *string
	FirstName  *string
	LastName   *string
}
