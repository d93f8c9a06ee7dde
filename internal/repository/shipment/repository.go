package shipment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"crm/internal/entities"
	"crm/internal/repository"
	"crm/internal/service/shipment"
)

var columns = []string{
	"sr.id", "sr.client_id", "sr.city_id", "sr.city", "c.full_name",
	"sr.delivery_date", "sr.packaging_type", "sr.box_count",
	"sr.volume", "sr.weight", "sr.comment", "sr.status",
	"sr.created_at", "sr.updated_at",
	"cl.id", "cl.telegram_id", "cl.username", "cl.first_name", "cl.last_name",
	"cl.consent_at", "cl.created_at",
}

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, request entities.ShipmentRequest) (*entities.ShipmentRequest, error) {
	builder := repository.QB.
		Insert("shipment_requests").
		Columns(
			"client_id", "city_id", "city", "delivery_date", "packaging_type",
			"box_count", "volume", "weight", "comment", "status",
		).
		Values(
			request.ClientID, request.CityID, request.City, request.DeliveryDate, request.PackagingType.String(),
			request.BoxCount, request.Volume, request.Weight, request.Comment, request.Status.String(),
		).
		Suffix("RETURNING id")

	var id int64
	err := r.querier.QueryRowBuilder(ctx, builder).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.ShipmentRequest, error) {
	return r.getOne(ctx, selectRequests().Where(sq.Eq{"sr.id": id}), "getbyid")
}

// GetByIDForUpdate блокирует строку заявки до конца транзакции.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.ShipmentRequest, error) {
	return r.getOne(ctx, selectRequests().Where(sq.Eq{"sr.id": id}).Suffix("FOR UPDATE OF sr"), "getbyidforupdate")
}

func (r *Repository) GetAll(ctx context.Context, filter entities.RequestFilter) ([]entities.ShipmentRequest, error) {
	builder := selectRequests().OrderBy("sr.created_at DESC", "sr.id DESC")
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"sr.status": filter.Status.String()})
	}
	if filter.ClientID != nil {
		builder = builder.Where(sq.Eq{"sr.client_id": *filter.ClientID})
	}

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getall error: %w", err)
	}
	defer rows.Close()

	requestModels := make([]RequestDB, 0, 32)
	for rows.Next() {
		requestModel, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository getall error: %w", err)
		}
		requestModels = append(requestModels, *requestModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getall error: %w", err)
	}

	return ToDomainList(requestModels), nil
}

func (r *Repository) Update(ctx context.Context, id int64, update entities.RequestUpdate) (*entities.ShipmentRequest, error) {
	builder := repository.QB.Update("shipment_requests")

	if update.City != nil {
		builder = builder.Set("city", *update.City)
	}
	if update.CityID.IsSpecified() {
		builder = builder.Set("city_id", nullableValue(update.CityID))
	}
	if update.DeliveryDate != nil {
		builder = builder.Set("delivery_date", *update.DeliveryDate)
	}
	if update.PackagingType != nil {
		builder = builder.Set("packaging_type", update.PackagingType.String())
	}
	if update.BoxCount != nil {
		builder = builder.Set("box_count", *update.BoxCount)
	}
	if update.Volume.IsSpecified() {
		builder = builder.Set("volume", nullableValue(update.Volume))
	}
	if update.Weight.IsSpecified() {
		builder = builder.Set("weight", nullableValue(update.Weight))
	}
	if update.Comment.IsSpecified() {
		builder = builder.Set("comment", nullableValue(update.Comment))
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id})

	return r.execUpdate(ctx, id, builder, "update")
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.RequestStatus) (*entities.ShipmentRequest, error) {
	builder := repository.QB.
		Update("shipment_requests").
		Set("status", status.String()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id})

	return r.execUpdate(ctx, id, builder, "updatestatus")
}

func (r *Repository) execUpdate(ctx context.Context, id int64, builder sq.UpdateBuilder, op string) (*entities.ShipmentRequest, error) {
	tag, err := r.querier.ExecBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository %s error: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, shipment.ErrRequestNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *Repository) getOne(ctx context.Context, builder sq.SelectBuilder, op string) (*entities.ShipmentRequest, error) {
	requestModel, err := scanRequest(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrRequestNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository %s error: %w", op, err)
	}
	return ToDomain(requestModel), nil
}

func selectRequests() sq.SelectBuilder {
	return repository.QB.
		Select(columns...).
		From("shipment_requests sr").
		Join("clients cl ON cl.id = sr.client_id").
		LeftJoin("cities c ON c.id = sr.city_id")
}

func scanRequest(row pgx.Row) (*RequestDB, error) {
	var m RequestDB
	err := row.Scan(
		&m.ID,
		&m.ClientID,
		&m.CityID,
		&m.City,
		&m.CityFullName,
		&m.DeliveryDate,
		&m.PackagingType,
		&m.BoxCount,
		&m.Volume,
		&m.Weight,
		&m.Comment,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.Client.ID,
		&m.Client.TelegramID,
		&m.Client.Username,
		&m.Client.FirstName,
		&m.Client.LastName,
		&m.Client.ConsentAt,
		&m.Client.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
