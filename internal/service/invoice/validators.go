package invoice

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"crm/internal/entities"
)

// normalizeItems нумерует строки с единицы и пересчитывает суммы.
func normalizeItems(items []entities.InvoiceItem) ([]entities.InvoiceItem, decimal.Decimal, error) {
	if len(items) == 0 {
		return nil, decimal.Zero, ErrNoItems
	}

	result := make([]entities.InvoiceItem, 0, len(items))
	total := decimal.Zero
	for i, item := range items {
		item.Description = strings.TrimSpace(item.Description)
		item.Unit = strings.TrimSpace(item.Unit)

		if item.Description == "" || !item.Quantity.IsPositive() || item.Price.IsNegative() {
			return nil, decimal.Zero, fmt.Errorf("item %d: %w", i+1, ErrInvalidItem)
		}
		if item.Unit == "" {
			item.Unit = entities.DefaultInvoiceUnit
		}

		item.Position = i + 1
		item.Amount = item.Quantity.Mul(item.Price).Round(2)
		total = total.Add(item.Amount)
		result = append(result, item)
	}

	return result, total, nil
}
