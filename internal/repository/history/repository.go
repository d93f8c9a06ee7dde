package history

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"crm/internal/entities"
	"crm/internal/repository"
)

// Repository только дописывает строки истории, изменения и удаления нет.
type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) AddStatusEntry(ctx context.Context, entry entities.StatusHistoryEntry) (*entities.StatusHistoryEntry, error) {
	builder := repository.QB.
		Insert("request_status_history").
		Columns("request_id", "old_status", "new_status", "changed_by_id", "changed_by_name").
		Values(entry.RequestID, entry.OldStatus.String(), entry.NewStatus.String(), entry.ChangedBy.ManagerID, entry.ChangedBy.Name).
		Suffix("RETURNING id, request_id, old_status, new_status, changed_at, changed_by_id, changed_by_name")

	entryModel, err := scanStatusEntry(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		return nil, fmt.Errorf("unexpected history repository addstatusentry error: %w", err)
	}
	return StatusToDomain(entryModel), nil
}

// AddFieldEntries пишет все изменения одним INSERT, у них общее время изменения.
func (r *Repository) AddFieldEntries(
	ctx context.Context,
	requestID int64,
	changes []entities.FieldChange,
	actor entities.Actor,
) error {
	if len(changes) == 0 {
		return nil
	}

	builder := repository.QB.
		Insert("request_field_history").
		Columns("request_id", "field", "old_value", "new_value", "changed_by_id", "changed_by_name")
	for _, change := range changes {
		builder = builder.Values(requestID, change.Field.String(), change.OldValue, change.NewValue, actor.ManagerID, actor.Name)
	}

	if _, err := r.querier.ExecBuilder(ctx, builder); err != nil {
		return fmt.Errorf("unexpected history repository addfieldentries error: %w", err)
	}
	return nil
}

// GetStatusHistory в порядке записи.
func (r *Repository) GetStatusHistory(ctx context.Context, requestID int64) ([]entities.StatusHistoryEntry, error) {
	builder := repository.QB.
		Select("id", "request_id", "old_status", "new_status", "changed_at", "changed_by_id", "changed_by_name").
		From("request_status_history").
		Where(sq.Eq{"request_id": requestID}).
		OrderBy("id")

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected history repository getstatushistory error: %w", err)
	}
	defer rows.Close()

	entries := make([]entities.StatusHistoryEntry, 0, 4)
	for rows.Next() {
		entryModel, err := scanStatusEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected history repository getstatushistory error: %w", err)
		}
		entries = append(entries, *StatusToDomain(entryModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected history repository getstatushistory error: %w", err)
	}
	return entries, nil
}

func (r *Repository) GetFieldHistory(ctx context.Context, requestID int64) ([]entities.FieldHistoryEntry, error) {
	builder := repository.QB.
		Select("id", "request_id", "field", "old_value", "new_value", "changed_at", "changed_by_id", "changed_by_name").
		From("request_field_history").
		Where(sq.Eq{"request_id": requestID}).
		OrderBy("id")

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected history repository getfieldhistory error: %w", err)
	}
	defer rows.Close()

	entries := make([]entities.FieldHistoryEntry, 0, 8)
	for rows.Next() {
		var m FieldEntryDB
		err := rows.Scan(&m.ID, &m.RequestID, &m.Field, &m.OldValue, &m.NewValue, &m.ChangedAt, &m.ChangedByID, &m.ChangedByName)
		if err != nil {
			return nil, fmt.Errorf("unexpected history repository getfieldhistory error: %w", err)
		}
		entries = append(entries, *FieldToDomain(&m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected history repository getfieldhistory error: %w", err)
	}
	return entries, nil
}

func scanStatusEntry(row pgx.Row) (*StatusEntryDB, error) {
	var m StatusEntryDB
	err := row.Scan(&m.ID, &m.RequestID, &m.OldStatus, &m.NewStatus, &m.ChangedAt, &m.ChangedByID, &m.ChangedByName)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
