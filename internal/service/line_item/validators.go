package line_item

import (
	"strings"

	"crm/internal/entities"
)

// apply накладывает изменения на строку и пересчитывает сумму.
func apply(item entities.RequestService, modify entities.RequestServiceModify) (entities.RequestService, error) {
	if modify.Description != nil {
		item.Description = strings.TrimSpace(*modify.Description)
	}
	if modify.Unit != nil {
		item.Unit = strings.TrimSpace(*modify.Unit)
	}
	if modify.Quantity != nil {
		item.Quantity = *modify.Quantity
	}
	if modify.Price != nil {
		item.Price = *modify.Price
	}

	if item.Description == "" {
		return entities.RequestService{}, ErrInvalidDescription
	}
	if item.Unit == "" {
		item.Unit = entities.DefaultServiceUnit
	}
	if !item.Quantity.IsPositive() {
		return entities.RequestService{}, ErrInvalidQuantity
	}
	if item.Price.IsNegative() || !item.Price.Equal(item.Price.Round(2)) {
		return entities.RequestService{}, ErrInvalidPrice
	}

	item.Amount = item.Quantity.Mul(item.Price).Round(2)
	return item, nil
}
