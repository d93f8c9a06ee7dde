package city

import (
	"time"
)

type CityDB struct {
	ID        int64     `db:"id"`
	ShortName string    `db:"short_name"`
	FullName  string    `db:"full_name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type CityModifyDB struct {
	ID        *int64
	ShortName *string
	FullName  *string
}
