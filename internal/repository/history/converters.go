package history

import (
	"crm/internal/entities"
)

func StatusToDomain(e *StatusEntryDB) *entities.StatusHistoryEntry {
	if e == nil {
		return nil
	}

	return &entities.StatusHistoryEntry{
		ID:        e.ID,
		RequestID: e.RequestID,
		OldStatus: entities.RequestStatus(e.OldStatus),
		NewStatus: entities.RequestStatus(e.NewStatus),
		ChangedAt: e.ChangedAt,
		ChangedBy: entities.Actor{ManagerID: e.ChangedByID, Name: e.ChangedByName},
	}
}

func FieldToDomain(e *FieldEntryDB) *entities.FieldHistoryEntry {
	if e == nil {
		return nil
	}

	return &entities.FieldHistoryEntry{
		ID:        e.ID,
		RequestID: e.RequestID,
		Field:     entities.TrackedField(e.Field),
		OldValue:  e.OldValue,
		NewValue:  e.NewValue,
		ChangedAt: e.ChangedAt,
		ChangedBy: entities.Actor{ManagerID: e.ChangedByID, Name: e.ChangedByName},
	}
}
