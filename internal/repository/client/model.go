package client

import (
	"time"
)

type ClientDB struct {
	ID            int64      `db:"id"`
	TelegramID    int64      `db:"telegram_id"`
	Username      *string    `db:"username"`
	FirstName     *string    `db:"first_name"`
	LastName      *string    `db:"last_name"`
	ConsentAt     *time.Time `db:"consent_at"`
	RequestsCount int        `db:"requests_count"`
	CreatedAt     time.Time  `db:"created_at"`
}
