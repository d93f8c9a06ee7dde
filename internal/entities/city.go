package entities

import (
	"time"
)

type City struct {
	ID        int64
	ShortName string
	FullName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CityModify struct {
	ID        *int64
	ShortName *string
	FullName  *string
}
