package rate

import (
	"time"
)

type RateDB struct {
	ID          int64     `db:"id"`
	CityID      int64     `db:"city_id"`
	Unit        string    `db:"unit"`
	MinWeightKg *float64  `db:"min_weight_kg"`
	MaxWeightKg *float64  `db:"max_weight_kg"`
	MinVolumeM3 *float64  `db:"min_volume_m3"`
	MaxVolumeM3 *float64  `db:"max_volume_m3"`
	Price       string    `db:"price"` // NUMERIC читаем текстом
	Comment     *string   `db:"comment"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type RateModifyDB struct {
	ID          *int64
	CityID      *int64
	Unit        *string
	MinWeightKg *float64
	MaxWeightKg *float64
	MinVolumeM3 *float64
	MaxVolumeM3 *float64
	Price       *string
	Comment     *string
}
