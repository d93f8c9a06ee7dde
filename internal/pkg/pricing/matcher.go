package pricing

import (
	"crm/internal/entities"
)

// FindTier возвращает первый тариф нужной единицы, в диапазон которого попадает measure.
// Границы включительные, отсутствующая нижняя граница считается нулем, верхняя бесконечностью.
// Тариф kg подходит всегда.
func FindTier(tiers []entities.PriceRate, unit entities.RateUnit, measure float64) (entities.PriceRate, bool) {
	for _, tier := range tiers {
		if tier.Unit != unit {
			continue
		}
		if unit == entities.UnitKg || inRange(tier, measure) {
			return tier, true
		}
	}
	return entities.PriceRate{}, false
}

func inRange(tier entities.PriceRate, measure float64) bool {
	minBound, maxBound := tier.Bounds()

	lower := 0.0
	if minBound != nil {
		lower = *minBound
	}
	if measure < lower {
		return false
	}
	return maxBound == nil || measure <= *maxBound
}
