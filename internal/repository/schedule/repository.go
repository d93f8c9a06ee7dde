package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"crm/internal/entities"
	"crm/internal/repository"
	"crm/internal/service/schedule"
)

// направление берется из справочника городов
func selectEntries() sq.SelectBuilder {
	return repository.QB.
		Select("se.id", "se.city_id", "c.full_name", "se.delivery_date", "se.accept_days").
		From("schedule_entries se").
		Join("cities c ON c.id = se.city_id")
}

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, cityID int64, deliveryDate time.Time, acceptDays string) (*entities.ScheduleEntry, error) {
	builder := repository.QB.
		Insert("schedule_entries").
		Columns("city_id", "delivery_date", "accept_days").
		Values(cityID, deliveryDate, acceptDays).
		Suffix("RETURNING id")

	var id int64
	if err := r.querier.QueryRowBuilder(ctx, builder).Scan(&id); err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, schedule.ErrCityNotFound
		}
		return nil, fmt.Errorf("unexpected schedule repository create error: %w", err)
	}

	entryModel, err := scanEntry(r.querier.QueryRowBuilder(ctx, selectEntries().Where(sq.Eq{"se.id": id})))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrEntryNotFound
		}
		return nil, fmt.Errorf("unexpected schedule repository create error: %w", err)
	}

	return ToDomain(entryModel), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.querier.ExecBuilder(ctx, repository.QB.Delete("schedule_entries").Where(sq.Eq{"id": id}))
	if err != nil {
		return fmt.Errorf("unexpected schedule repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrEntryNotFound
	}

	return nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.ScheduleEntry, error) {
	rows, err := r.querier.QueryBuilder(ctx, selectEntries().OrderBy("se.delivery_date", "c.full_name", "se.id"))
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository getall error: %w", err)
	}
	defer rows.Close()

	entryModels := make([]ScheduleEntryDB, 0, 16)
	for rows.Next() {
		entryModel, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected schedule repository getall error: %w", err)
		}
		entryModels = append(entryModels, *entryModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected schedule repository getall error: %w", err)
	}

	return ToDomainList(entryModels), nil
}

func (r *Repository) GetDestinations(ctx context.Context) ([]string, error) {
	builder := repository.QB.
		Select("c.full_name").
		Distinct().
		From("schedule_entries se").
		Join("cities c ON c.id = se.city_id").
		OrderBy("c.full_name")

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository getdestinations error: %w", err)
	}
	defer rows.Close()

	destinations := make([]string, 0, 16)
	for rows.Next() {
		var destination string
		if err := rows.Scan(&destination); err != nil {
			return nil, fmt.Errorf("unexpected schedule repository getdestinations error: %w", err)
		}
		destinations = append(destinations, destination)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected schedule repository getdestinations error: %w", err)
	}

	return destinations, nil
}

func scanEntry(row pgx.Row) (*ScheduleEntryDB, error) {
	var entryModel ScheduleEntryDB
	err := row.Scan(
		&entryModel.ID,
		&entryModel.CityID,
		&entryModel.Destination,
		&entryModel.DeliveryDate,
		&entryModel.AcceptDays,
	)
	if err != nil {
		return nil, err
	}

	return &entryModel, nil
}
