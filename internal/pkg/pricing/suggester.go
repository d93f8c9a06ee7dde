package pricing

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"crm/internal/entities"
)

const (
	MessageNoRates   = "Для города не заведены тарифы"
	MessageNoCity    = "Город заявки не найден в справочнике, тариф подобрать нельзя"
	MessageNoMatches = "Подходящий тариф не найден"
)

// Shipment то, что нужно подборщику от заявки.
type Shipment struct {
	CityFullName  string
	PackagingType entities.PackagingType
	BoxCount      int
	Weight        *float64
	Volume        *float64
}

// Suggest подбирает строку услуги: сначала по весу в единице упаковки,
// затем, если есть объем, по тарифам m3. Ненайденный тариф не ошибка, а Found == false.
func Suggest(shipment Shipment, tiers []entities.PriceRate) entities.Suggestion {
	if len(tiers) == 0 {
		return NotFound(MessageNoRates)
	}

	unit := shipment.PackagingType.RateUnit()

	tier, ok := matchPrimary(tiers, unit, shipment.Weight)
	if !ok && shipment.Volume != nil {
		tier, ok = FindTier(tiers, entities.UnitM3, *shipment.Volume)
	}
	if !ok {
		return NotFound(MessageNoMatches)
	}

	quantity := decimal.NewFromInt(1)
	if shipment.PackagingType == entities.PackagingPallets {
		quantity = decimal.NewFromInt(int64(shipment.BoxCount))
	}

	return entities.Suggestion{
		Found:       true,
		Description: Description(shipment.CityFullName, tier),
		Unit:        tier.Unit.Label(),
		Quantity:    quantity,
		Price:       tier.Price,
		Amount:      quantity.Mul(tier.Price),
		Rate:        &tier,
	}
}

// без веса подходит только безразмерный тариф kg
func matchPrimary(tiers []entities.PriceRate, unit entities.RateUnit, weight *float64) (entities.PriceRate, bool) {
	if weight != nil {
		return FindTier(tiers, unit, *weight)
	}
	if unit == entities.UnitKg {
		return FindTier(tiers, unit, 0)
	}
	return entities.PriceRate{}, false
}

func NotFound(message string) entities.Suggestion {
	return entities.Suggestion{
		Found:   false,
		Message: message,
	}
}

// Description собирает "{город} — {единица} — {диапазон}".
func Description(cityFullName string, tier entities.PriceRate) string {
	return fmt.Sprintf("%s — %s — %s", cityFullName, tier.Unit.Label(), RangeLabel(tier))
}

// RangeLabel "{min}–{max} кг" для весовых тарифов и "{min}–{max} м³" для объемных.
func RangeLabel(tier entities.PriceRate) string {
	minBound, maxBound := tier.Bounds()

	lower := "0"
	if minBound != nil {
		lower = formatMeasure(*minBound)
	}
	upper := "∞"
	if maxBound != nil {
		upper = formatMeasure(*maxBound)
	}

	suffix := "кг"
	if tier.Unit == entities.UnitM3 {
		suffix = "м³"
	}
	return fmt.Sprintf("%s–%s %s", lower, upper, suffix)
}

func formatMeasure(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
