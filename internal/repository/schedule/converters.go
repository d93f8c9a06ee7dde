package schedule

import (
	"time"

	"crm/internal/entities"
)

func ToDomain(s *ScheduleEntryDB) *entities.ScheduleEntry {
	if s == nil {
		return nil
	}

	return &entities.ScheduleEntry{
		ID:           s.ID,
		CityID:       s.CityID,
		Destination:  s.Destination,
		DeliveryDate: time.Date(s.DeliveryDate.Year(), s.DeliveryDate.Month(), s.DeliveryDate.Day(), 0, 0, 0, 0, time.UTC),
		AcceptDays:   s.AcceptDays,
	}
}

func ToDomainList(entriesDB []ScheduleEntryDB) []entities.ScheduleEntry {
	result := make([]entities.ScheduleEntry, 0, len(entriesDB))
	for i := range entriesDB {
		result = append(result, *ToDomain(&entriesDB[i]))
	}
	return result
}
