package rate

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"crm/internal/entities"
	"crm/internal/repository"
	"crm/internal/service/rate"
)

const returning = "RETURNING id, city_id, unit, min_weight_kg, max_weight_kg, min_volume_m3, max_volume_m3, " +
	"price::text, comment, created_at, updated_at"

var columns = []string{
	"id", "city_id", "unit",
	"min_weight_kg", "max_weight_kg", "min_volume_m3", "max_volume_m3",
	"price::text", "comment", "created_at", "updated_at",
}

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, rateModifyEntity entities.PriceRateModify) (*entities.PriceRate, error) {
	m := FromDomainModify(&rateModifyEntity)

	builder := repository.QB.
		Insert("price_rates").
		Columns("city_id", "unit", "min_weight_kg", "max_weight_kg", "min_volume_m3", "max_volume_m3", "price", "comment").
		Values(m.CityID, m.Unit, m.MinWeightKg, m.MaxWeightKg, m.MinVolumeM3, m.MaxVolumeM3, m.Price, m.Comment).
		Suffix(returning)

	rateModel, err := scanRate(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		return nil, mapWriteError("create", err)
	}
	return ToDomain(rateModel)
}

// Update заменяет все поля тарифа.
func (r *Repository) Update(ctx context.Context, rateModifyEntity entities.PriceRateModify) (*entities.PriceRate, error) {
	m := FromDomainModify(&rateModifyEntity)

	builder := repository.QB.
		Update("price_rates").
		Set("city_id", m.CityID).
		Set("unit", m.Unit).
		Set("min_weight_kg", m.MinWeightKg).
		Set("max_weight_kg", m.MaxWeightKg).
		Set("min_volume_m3", m.MinVolumeM3).
		Set("max_volume_m3", m.MaxVolumeM3).
		Set("price", m.Price).
		Set("comment", m.Comment).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": m.ID}).
		Suffix(returning)

	rateModel, err := scanRate(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rate.ErrRateNotFound
		}
		return nil, mapWriteError("update", err)
	}
	return ToDomain(rateModel)
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.querier.ExecBuilder(ctx, repository.QB.Delete("price_rates").Where(sq.Eq{"id": id}))
	if err != nil {
		return fmt.Errorf("unexpected rate repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return rate.ErrRateNotFound
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.PriceRate, error) {
	builder := repository.QB.
		Select(columns...).
		From("price_rates").
		Where(sq.Eq{"id": id})

	rateModel, err := scanRate(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rate.ErrRateNotFound
		}
		return nil, fmt.Errorf("unexpected rate repository getbyid error: %w", err)
	}
	return ToDomain(rateModel)
}

// GetByCityID возвращает тарифы в порядке, в котором их перебирает подбор.
func (r *Repository) GetByCityID(ctx context.Context, cityID int64) ([]entities.PriceRate, error) {
	builder := repository.QB.
		Select(columns...).
		From("price_rates").
		Where(sq.Eq{"city_id": cityID}).
		OrderBy("unit", "COALESCE(min_weight_kg, min_volume_m3, 0)", "id")

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected rate repository getbycityid error: %w", err)
	}
	defer rows.Close()

	rateModels := make([]RateDB, 0, 8)
	for rows.Next() {
		rateModel, err := scanRate(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected rate repository getbycityid error: %w", err)
		}
		rateModels = append(rateModels, *rateModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected rate repository getbycityid error: %w", err)
	}

	return ToDomainList(rateModels)
}

func mapWriteError(op string, err error) error {
	switch {
	case repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation):
		return rate.ErrConflict
	case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
		return rate.ErrCityNotFound
	case repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation):
		return rate.ErrBoundsForUnit
	default:
		return fmt.Errorf("unexpected rate repository %s error: %w", op, err)
	}
}

func scanRate(row pgx.Row) (*RateDB, error) {
	var rateModel RateDB
	err := row.Scan(
		&rateModel.ID,
		&rateModel.CityID,
		&rateModel.Unit,
		&rateModel.MinWeightKg,
		&rateModel.MaxWeightKg,
		&rateModel.MinVolumeM3,
		&rateModel.MaxVolumeM3,
		&rateModel.Price,
		&rateModel.Comment,
		&rateModel.CreatedAt,
		&rateModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rateModel, nil
}
