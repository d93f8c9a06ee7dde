package line_item

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"crm/internal/entities"
	"crm/internal/repository"
	"crm/internal/service/line_item"
	"crm/internal/service/shipment"
)

const returning = "RETURNING id, request_id, description, unit, quantity::text, price::text, amount::text, " +
	"created_at, updated_at"

var columns = []string{
	"id", "request_id", "description", "unit",
	"quantity::text", "price::text", "amount::text", "created_at", "updated_at",
}

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, item entities.RequestService) (*entities.RequestService, error) {
	builder := repository.QB.
		Insert("request_services").
		Columns("request_id", "description", "unit", "quantity", "price", "amount").
		Values(item.RequestID, item.Description, item.Unit,
			item.Quantity.String(), item.Price.String(), item.Amount.String()).
		Suffix(returning)

	serviceModel, err := scanService(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, shipment.ErrRequestNotFound
		}
		return nil, fmt.Errorf("unexpected request service repository create error: %w", err)
	}

	return ToDomain(serviceModel)
}

func (r *Repository) Update(ctx context.Context, item entities.RequestService) (*entities.RequestService, error) {
	builder := repository.QB.
		Update("request_services").
		Set("description", item.Description).
		Set("unit", item.Unit).
		Set("quantity", item.Quantity.String()).
		Set("price", item.Price.String()).
		Set("amount", item.Amount.String()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": item.ID, "request_id": item.RequestID}).
		Suffix(returning)

	serviceModel, err := scanService(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, line_item.ErrServiceNotFound
		}
		return nil, fmt.Errorf("unexpected request service repository update error: %w", err)
	}

	return ToDomain(serviceModel)
}

func (r *Repository) Delete(ctx context.Context, requestID, id int64) error {
	builder := repository.QB.
		Delete("request_services").
		Where(sq.Eq{"id": id, "request_id": requestID})

	tag, err := r.querier.ExecBuilder(ctx, builder)
	if err != nil {
		return fmt.Errorf("unexpected request service repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return line_item.ErrServiceNotFound
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, requestID, id int64) (*entities.RequestService, error) {
	builder := repository.QB.
		Select(columns...).
		From("request_services").
		Where(sq.Eq{"id": id, "request_id": requestID})

	serviceModel, err := scanService(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, line_item.ErrServiceNotFound
		}
		return nil, fmt.Errorf("unexpected request service repository getbyid error: %w", err)
	}

	return ToDomain(serviceModel)
}

func (r *Repository) GetByRequestID(ctx context.Context, requestID int64) ([]entities.RequestService, error) {
	builder := repository.QB.
		Select(columns...).
		From("request_services").
		Where(sq.Eq{"request_id": requestID}).
		OrderBy("id")

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected request service repository getbyrequestid error: %w", err)
	}
	defer rows.Close()

	serviceModels := make([]ServiceDB, 0, 4)
	for rows.Next() {
		serviceModel, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected request service repository getbyrequestid error: %w", err)
		}
		serviceModels = append(serviceModels, *serviceModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected request service repository getbyrequestid error: %w", err)
	}

	return ToDomainList(serviceModels)
}

func scanService(row pgx.Row) (*ServiceDB, error) {
	var serviceModel ServiceDB
	err := row.Scan(
		&serviceModel.ID,
		&serviceModel.RequestID,
		&serviceModel.Description,
		&serviceModel.Unit,
		&serviceModel.Quantity,
		&serviceModel.Price,
		&serviceModel.Amount,
		&serviceModel.CreatedAt,
		&serviceModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &serviceModel, nil
}
