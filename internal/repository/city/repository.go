package city

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"crm/internal/entities"
	"crm/internal/repository"
	"crm/internal/service/city"
)

var columns = []string{"id", "short_name", "full_name", "created_at", "updated_at"}

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, cityModifyEntity entities.CityModify) (*entities.City, error) {
	cityModifyModel := FromDomainModify(&cityModifyEntity)

	builder := repository.QB.
		Insert("cities").
		Columns("short_name", "full_name").
		Values(cityModifyModel.ShortName, cityModifyModel.FullName).
		Suffix("RETURNING id, short_name, full_name, created_at, updated_at")

	cityModel, err := scanCity(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, city.ErrConflict
		}
		return nil, fmt.Errorf("unexpected city repository create error: %w", err)
	}

	return ToDomain(cityModel), nil
}

func (r *Repository) Update(ctx context.Context, cityModifyEntity entities.CityModify) (*entities.City, error) {
	cityModifyModel := FromDomainModify(&cityModifyEntity)

	builder := repository.QB.Update("cities")
	if cityModifyModel.ShortName != nil {
		builder = builder.Set("short_name", cityModifyModel.ShortName)
	}
	if cityModifyModel.FullName != nil {
		builder = builder.Set("full_name", cityModifyModel.FullName)
	}
	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": cityModifyModel.ID}).
		Suffix("RETURNING id, short_name, full_name, created_at, updated_at")

	cityModel, err := scanCity(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, city.ErrCityNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, city.ErrConflict
		}
		return nil, fmt.Errorf("unexpected city repository update error: %w", err)
	}

	return ToDomain(cityModel), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.querier.ExecBuilder(ctx, repository.QB.Delete("cities").Where(sq.Eq{"id": id}))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return city.ErrCityInUse
		}
		return fmt.Errorf("unexpected city repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return city.ErrCityNotFound
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.City, error) {
	builder := repository.QB.
		Select(columns...).
		From("cities").
		Where(sq.Eq{"id": id})

	cityModel, err := scanCity(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, city.ErrCityNotFound
		}
		return nil, fmt.Errorf("unexpected city repository getbyid error: %w", err)
	}

	return ToDomain(cityModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.City, error) {
	builder := repository.QB.
		Select(columns...).
		From("cities").
		OrderBy("short_name")

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected city repository getall error: %w", err)
	}
	defer rows.Close()

	cityModels := make([]CityDB, 0, 16)
	for rows.Next() {
		cityModel, err := scanCity(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected city repository getall error: %w", err)
		}
		cityModels = append(cityModels, *cityModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected city repository getall error: %w", err)
	}

	return ToDomainList(cityModels), nil
}

func scanCity(row pgx.Row) (*CityDB, error) {
	var cityModel CityDB
	err := row.Scan(
		&cityModel.ID,
		&cityModel.ShortName,
		&cityModel.FullName,
		&cityModel.CreatedAt,
		&cityModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cityModel, nil
}
