package entities

import (
	"time"
)

type ScheduleEntry struct {
	ID           int64
	CityID       int64
	Destination  string
	DeliveryDate time.Time
	AcceptDays   string
}

type ScheduleEntryModify struct {
	CityID       *int64
	DeliveryDate *string
	AcceptDays   *string
}
