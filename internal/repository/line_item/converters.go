package line_item

import (
	"fmt"

	"github.com/shopspring/decimal"

	"crm/internal/entities"
)

func ToDomain(s *ServiceDB) (*entities.RequestService, error) {
	if s == nil {
		return nil, nil
	}

	var values [3]decimal.Decimal
	for i, raw := range []string{s.Quantity, s.Price, s.Amount} {
		value, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("request service %d value %q: %w", s.ID, raw, err)
		}
		values[i] = value
	}

	return &entities.RequestService{
		ID:          s.ID,
		RequestID:   s.RequestID,
		Description: s.Description,
		Unit:        s.Unit,
		Quantity:    values[0],
		Price:       values[1],
		Amount:      values[2],
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}, nil
}

func ToDomainList(servicesDB []ServiceDB) ([]entities.RequestService, error) {
	result := make([]entities.RequestService, 0, len(servicesDB))
	for i := range servicesDB {
		item, err := ToDomain(&servicesDB[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}
	return result, nil
}
