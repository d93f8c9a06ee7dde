package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type RateUnit string

const (
	UnitPallet RateUnit = "pallet"
	UnitKg     RateUnit = "kg"
	UnitM3     RateUnit = "m3"
)

func (u RateUnit) String() string {
	return string(u)
}

func (u RateUnit) IsValid() bool {
	switch u {
	case UnitPallet, UnitKg, UnitM3:
		return true
	default:
		return false
	}
}

func (u RateUnit) Label() string {
	switch u {
	case UnitPallet:
		return "Паллет"
	case UnitKg:
		return "Кг"
	case UnitM3:
		return "м³"
	default:
		return string(u)
	}
}

// PriceRate тариф города. У pallet задаются только границы веса, у m3 только объема,
// у kg границ нет.
type PriceRate struct {
	ID          int64
	CityID      int64
	Unit        RateUnit
	MinWeightKg *float64
	MaxWeightKg *float64
	MinVolumeM3 *float64
	MaxVolumeM3 *float64
	Price       decimal.Decimal
	Comment     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Bounds возвращает границы диапазона для единицы тарифа.
func (r PriceRate) Bounds() (minBound, maxBound *float64) {
	switch r.Unit {
	case UnitPallet:
		return r.MinWeightKg, r.MaxWeightKg
	case UnitM3:
		return r.MinVolumeM3, r.MaxVolumeM3
	default:
		return nil, nil
	}
}

// PriceRateModify полностью описывает тариф при создании и замене.
type PriceRateModify struct {
	ID          *int64
	CityID      *int64
	Unit        *RateUnit
	MinWeightKg *float64
	MaxWeightKg *float64
	MinVolumeM3 *float64
	MaxVolumeM3 *float64
	Price       *decimal.Decimal
	Comment     *string
}
