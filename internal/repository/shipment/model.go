package shipment

import (
	"time"
)

type RequestDB struct {
	ID            int64     `db:"id"`
	ClientID      int64     `db:"client_id"`
	CityID        *int64    `db:"city_id"`
	City          string    `db:"city"`
	CityFullName  *string   `db:"city_full_name"`
	DeliveryDate  time.Time `db:"delivery_date"`
	PackagingType string    `db:"packaging_type"`
	BoxCount      int       `db:"box_count"`
	Volume        *float64  `db:"volume"`
	Weight        *float64  `db:"weight"`
	Comment       *string   `db:"comment"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`

	Client ClientDB
}

type ClientDB struct {
	ID         int64      `db:"id"`
	TelegramID int64      `db:"telegram_id"`
	Username   *string    `db:"username"`
	FirstName  *string    `db:"first_name"`
	LastName   *string    `db:"last_name"`
	ConsentAt  *time.Time `db:"consent_at"`
	CreatedAt  time.Time  `db:"created_at"`
}
