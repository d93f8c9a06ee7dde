package schedule

import (
	"time"
)

type ScheduleEntryDB struct {
	ID           int64     `db:"id"`
	CityID       int64     `db:"city_id"`
	Destination  string    `db:"destination"`
	DeliveryDate time.Time `db:"delivery_date"`
	AcceptDays   string    `db:"accept_days"`
}
