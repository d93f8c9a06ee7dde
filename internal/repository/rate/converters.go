package rate

import (
	"fmt"

	"github.com/shopspring/decimal"

	"crm/internal/entities"
)

func ToDomain(r *RateDB) (*entities.PriceRate, error) {
	if r == nil {
		return nil, nil
	}

	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return nil, fmt.Errorf("rate %d price %q: %w", r.ID, r.Price, err)
	}

	return &entities.PriceRate{
		ID:          r.ID,
		CityID:      r.CityID,
		Unit:        entities.RateUnit(r.Unit),
		MinWeightKg: r.MinWeightKg,
		MaxWeightKg: r.MaxWeightKg,
		MinVolumeM3: r.MinVolumeM3,
		MaxVolumeM3: r.MaxVolumeM3,
		Price:       price,
		Comment:     r.Comment,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

func FromDomainModify(rateModify *entities.PriceRateModify) *RateModifyDB {
	if rateModify == nil {
		return nil
	}

	rateDB := &RateModifyDB{
		ID:          rateModify.ID,
		CityID:      rateModify.CityID,
		MinWeightKg: rateModify.MinWeightKg,
		MaxWeightKg: rateModify.MaxWeightKg,
		MinVolumeM3: rateModify.MinVolumeM3,
		MaxVolumeM3: rateModify.MaxVolumeM3,
		Comment:     rateModify.Comment,
	}
	if rateModify.Unit != nil {
		unit := rateModify.Unit.String()
		rateDB.Unit = &unit
	}
	if rateModify.Price != nil {
		price := rateModify.Price.String()
		rateDB.Price = &price
	}
	return rateDB
}

func ToDomainList(ratesDB []RateDB) ([]entities.PriceRate, error) {
	result := make([]entities.PriceRate, 0, len(ratesDB))
	for i := range ratesDB {
		rate, err := ToDomain(&ratesDB[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *rate)
	}
	return result, nil
}
