package rate

import (
	"math"

	"crm/internal/entities"
)

func validateRate(rateModify entities.PriceRateModify) error {
	if rateModify.CityID == nil || rateModify.Unit == nil || rateModify.Price == nil {
		return ErrMissingRequiredFields
	}
	if !rateModify.Unit.IsValid() {
		return ErrInvalidUnit
	}
	// в базе цена хранится с точностью до копейки
	if !rateModify.Price.IsPositive() || !rateModify.Price.Equal(rateModify.Price.Round(2)) {
		return ErrInvalidPrice
	}

	hasWeight := rateModify.MinWeightKg != nil || rateModify.MaxWeightKg != nil
	hasVolume := rateModify.MinVolumeM3 != nil || rateModify.MaxVolumeM3 != nil

	switch *rateModify.Unit {
	case entities.UnitPallet:
		if hasVolume {
			return ErrBoundsForUnit
		}
		return validateRange(rateModify.MinWeightKg, rateModify.MaxWeightKg)
	case entities.UnitM3:
		if hasWeight {
			return ErrBoundsForUnit
		}
		return validateRange(rateModify.MinVolumeM3, rateModify.MaxVolumeM3)
	default:
		if hasWeight || hasVolume {
			return ErrBoundsForUnit
		}
		return nil
	}
}

func validateRange(minBound, maxBound *float64) error {
	for _, bound := range []*float64{minBound, maxBound} {
		if bound == nil {
			continue
		}
		if math.IsNaN(*bound) || math.IsInf(*bound, 0) || *bound < 0 {
			return ErrNegativeBound
		}
	}
	if minBound != nil && maxBound != nil && *minBound > *maxBound {
		return ErrInvalidRange
	}
	return nil
}
