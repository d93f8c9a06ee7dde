package history

import (
	"time"
)

type StatusEntryDB struct {
	ID            int64     `db:"id"`
	RequestID     int64     `db:"request_id"`
	OldStatus     string    `db:"old_status"`
	NewStatus     string    `db:"new_status"`
	ChangedAt     time.Time `db:"changed_at"`
	ChangedByID   *int64    `db:"changed_by_id"`
	ChangedByName *string   `db:"changed_by_name"`
}

type FieldEntryDB struct {
	ID            int64     `db:"id"`
	RequestID     int64     `db:"request_id"`
	Field         string    `db:"field"`
	OldValue      *string   `db:"old_value"`
	NewValue      *string   `db:"new_value"`
	ChangedAt     time.Time `db:"changed_at"`
	ChangedByID   *int64    `db:"changed_by_id"`
	ChangedByName *string   `db:"changed_by_name"`
}
