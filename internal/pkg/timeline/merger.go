package timeline

import (
	"slices"

	"crm/internal/entities"
)

// Merge объединяет историю статусов и историю полей в одну ленту по возрастанию времени.
// Сортировка стабильная: при равном времени сохраняется порядок внутри каждого списка,
// а записи статусов идут раньше записей полей.
func Merge(statuses []entities.StatusHistoryEntry, fields []entities.FieldHistoryEntry) []entities.TimelineItem {
	items := make([]entities.TimelineItem, 0, len(statuses)+len(fields))

	for i := range statuses {
		entry := statuses[i]
		items = append(items, entities.TimelineItem{
			Kind:   entities.TimelineStatus,
			At:     entry.ChangedAt,
			Status: &entry,
		})
	}
	for i := range fields {
		entry := fields[i]
		items = append(items, entities.TimelineItem{
			Kind:  entities.TimelineField,
			At:    entry.ChangedAt,
			Field: &entry,
		})
	}

	slices.SortStableFunc(items, func(a, b entities.TimelineItem) int {
		return a.At.Compare(b.At)
	})

	return items
}
