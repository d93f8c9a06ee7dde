package shipment

import (
	"time"

	"crm/internal/entities"
)

func ToDomain(r *RequestDB) *entities.ShipmentRequest {
	if r == nil {
		return nil
	}

	return &entities.ShipmentRequest{
		ID:       r.ID,
		ClientID: r.ClientID,
		Client: &entities.Client{
			ID:         r.Client.ID,
			TelegramID: r.Client.TelegramID,
			Username:   r.Client.Username,
			FirstName:  r.Client.FirstName,
			LastName:   r.Client.LastName,
			ConsentAt:  r.Client.ConsentAt,
			CreatedAt:  r.Client.CreatedAt,
		},
		CityID:        r.CityID,
		City:          r.City,
		CityFullName:  r.CityFullName,
		DeliveryDate:  dateOnly(r.DeliveryDate),
		PackagingType: entities.PackagingType(r.PackagingType),
		BoxCount:      r.BoxCount,
		Volume:        r.Volume,
		Weight:        r.Weight,
		Comment:       r.Comment,
		Status:        entities.RequestStatus(r.Status),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func ToDomainList(requestsDB []RequestDB) []entities.ShipmentRequest {
	if len(requestsDB) == 0 {
		return []entities.ShipmentRequest{}
	}

	result := make([]entities.ShipmentRequest, len(requestsDB))
	for i := range requestsDB {
		result[i] = *ToDomain(&requestsDB[i])
	}
	return result
}

// DATE приходит полуночью без зоны, приводим к UTC как и валидатор.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
