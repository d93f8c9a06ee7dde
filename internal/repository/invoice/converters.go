package invoice

import (
	"fmt"

	"github.com/shopspring/decimal"

	"crm/internal/entities"
)

func ToDomain(i *InvoiceDB, items []entities.InvoiceItem) (*entities.Invoice, error) {
	if i == nil {
		return nil, nil
	}

	total, err := decimal.NewFromString(i.Total)
	if err != nil {
		return nil, fmt.Errorf("invoice %d total %q: %w", i.ID, i.Total, err)
	}

	if items == nil {
		items = []entities.InvoiceItem{}
	}

	return &entities.Invoice{
		ID:             i.ID,
		Number:         i.Number,
		CounterpartyID: i.CounterpartyID,
		RequestID:      i.RequestID,
		IssuedAt:       i.IssuedAt,
		Items:          items,
		Total:          total,
	}, nil
}

func ItemToDomain(i ItemDB) (entities.InvoiceItem, error) {
	var values [3]decimal.Decimal
	for n, raw := range []string{i.Quantity, i.Price, i.Amount} {
		value, err := decimal.NewFromString(raw)
		if err != nil {
			return entities.InvoiceItem{}, fmt.Errorf("invoice %d item %d value %q: %w", i.InvoiceID, i.Position, raw, err)
		}
		values[n] = value
	}

	return entities.InvoiceItem{
		Position:    i.Position,
		Description: i.Description,
		Unit:        i.Unit,
		Quantity:    values[0],
		Price:       values[1],
		Amount:      values[2],
	}, nil
}
