package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"crm/internal/entities"
	"crm/internal/repository"
	"crm/internal/service/client"
)

const requestsCount = "(SELECT COUNT(*) FROM shipment_requests sr WHERE sr.client_id = clients.id)"

var columns = []string{
	"id", "telegram_id", "username", "first_name", "last_name", "consent_at",
	requestsCount + " AS requests_count", "created_at",
}

// пустые поля профиля не затирают сохраненные
const upsertProfile = `ON CONFLICT (telegram_id) DO UPDATE SET
	username = COALESCE(EXCLUDED.username, clients.username),
	first_name = COALESCE(EXCLUDED.first_name, clients.first_name),
	last_name = COALESCE(EXCLUDED.last_name, clients.last_name)`

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Upsert(ctx context.Context, profile entities.ClientProfile) (*entities.Client, error) {
	builder := repository.QB.
		Insert("clients").
		Columns("telegram_id", "username", "first_name", "last_name").
		Values(profile.TelegramID, profile.Username, profile.FirstName, profile.LastName).
		Suffix(upsertProfile + " RETURNING " + strings.Join(columns, ", "))

	clientModel, err := scanClient(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		return nil, fmt.Errorf("unexpected client repository upsert error: %w", err)
	}
	return ToDomain(clientModel), nil
}

func (r *Repository) SetConsent(ctx context.Context, profile entities.ClientProfile) (*entities.Client, error) {
	builder := repository.QB.
		Insert("clients").
		Columns("telegram_id", "username", "first_name", "last_name", "consent_at").
		Values(profile.TelegramID, profile.Username, profile.FirstName, profile.LastName, sq.Expr("NOW()")).
		Suffix(upsertProfile + ", consent_at = COALESCE(clients.consent_at, EXCLUDED.consent_at) RETURNING " + strings.Join(columns, ", "))

	clientModel, err := scanClient(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		return nil, fmt.Errorf("unexpected client repository setconsent error: %w", err)
	}
	return ToDomain(clientModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Client, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, "getbyid")
}

func (r *Repository) GetByTelegramID(ctx context.Context, telegramID int64) (*entities.Client, error) {
	return r.getOne(ctx, sq.Eq{"telegram_id": telegramID}, "getbytelegramid")
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Client, error) {
	builder := repository.QB.
		Select(columns...).
		From("clients").
		OrderBy("created_at DESC", "id DESC")

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected client repository getall error: %w", err)
	}
	defer rows.Close()

	clientModels := make([]ClientDB, 0, 32)
	for rows.Next() {
		clientModel, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected client repository getall error: %w", err)
		}
		clientModels = append(clientModels, *clientModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected client repository getall error: %w", err)
	}

	return ToDomainList(clientModels), nil
}

func (r *Repository) getOne(ctx context.Context, where sq.Eq, op string) (*entities.Client, error) {
	builder := repository.QB.
		Select(columns...).
		From("clients").
		Where(where)

	clientModel, err := scanClient(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, client.ErrClientNotFound
		}
		return nil, fmt.Errorf("unexpected client repository %s error: %w", op, err)
	}
	return ToDomain(clientModel), nil
}

func scanClient(row pgx.Row) (*ClientDB, error) {
	var clientModel ClientDB
	err := row.Scan(
		&clientModel.ID,
		&clientModel.TelegramID,
		&clientModel.Username,
		&clientModel.FirstName,
		&clientModel.LastName,
		&clientModel.ConsentAt,
		&clientModel.RequestsCount,
		&clientModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &clientModel, nil
}
