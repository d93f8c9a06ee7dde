package entities

import (
	"time"
)

type TrackedField string

const (
	FieldWeight        TrackedField = "weight"
	FieldBoxCount      TrackedField = "boxCount"
	FieldVolume        TrackedField = "volume"
	FieldPackagingType TrackedField = "packagingType"
	FieldDeliveryDate  TrackedField = "deliveryDate"
)

func (f TrackedField) String() string {
	return string(f)
}

func (f TrackedField) Label() string {
	switch f {
	case FieldWeight:
		return "Вес"
	case FieldBoxCount:
		return "Кол-во мест"
	case FieldVolume:
		return "Объём"
	case FieldPackagingType:
		return "Упаковка"
	case FieldDeliveryDate:
		return "Дата доставки"
	default:
		return string(f)
	}
}

// Actor менеджер, совершивший изменение. Пустой для системных изменений.
type Actor struct {
	ManagerID *int64
	Name      *string
}

type StatusHistoryEntry struct {
	ID        int64
	RequestID int64
	OldStatus RequestStatus
	NewStatus RequestStatus
	ChangedAt time.Time
	ChangedBy Actor
}

type FieldHistoryEntry struct {
	ID        int64
	RequestID int64
	Field     TrackedField
	OldValue  *string
	NewValue  *string
	ChangedAt time.Time
	ChangedBy Actor
}

// FieldChange изменение одного отслеживаемого поля, старое и новое значения в строковом виде.
type FieldChange struct {
	Field    TrackedField
	OldValue *string
	NewValue *string
}

type TimelineKind string

const (
	TimelineStatus TimelineKind = "status"
	TimelineField  TimelineKind = "field"
)

func (k TimelineKind) String() string {
	return string(k)
}

// TimelineItem элемент общей ленты истории, заполнено ровно одно из Status/Field.
type TimelineItem struct {
	Kind   TimelineKind
	At     time.Time
	Status *StatusHistoryEntry
	Field  *FieldHistoryEntry
}
