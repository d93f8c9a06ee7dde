package counterparty

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"crm/internal/entities"
	"crm/internal/repository"
	"crm/internal/service/counterparty"
)

var columns = []string{
	"id", "name", "inn", "kpp", "ogrn", "address", "account", "bik",
	"correspondent_account", "bank", "director", "contract", "created_at", "updated_at",
}

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, counterpartyModify entities.CounterpartyModify) (int64, error) {
	cols, values := requisites(counterpartyModify)
	builder := repository.QB.
		Insert("counterparties").
		Columns(cols...).
		Values(values...).
		Suffix("RETURNING id")

	var id int64
	if err := r.querier.QueryRowBuilder(ctx, builder).Scan(&id); err != nil {
		return 0, fmt.Errorf("unexpected counterparty repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, counterpartyModify entities.CounterpartyModify) error {
	builder := repository.QB.
		Update("counterparties").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": counterpartyModify.ID})

	cols, values := requisites(counterpartyModify)
	for i, column := range cols {
		builder = builder.Set(column, values[i])
	}

	tag, err := r.querier.ExecBuilder(ctx, builder)
	if err != nil {
		return fmt.Errorf("unexpected counterparty repository update error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return counterparty.ErrCounterpartyNotFound
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.querier.ExecBuilder(ctx, repository.QB.Delete("counterparties").Where(sq.Eq{"id": id}))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return counterparty.ErrCounterpartyInUse
		}
		return fmt.Errorf("unexpected counterparty repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return counterparty.ErrCounterpartyNotFound
	}

	return nil
}

// SetContacts заменяет список контактов контрагента.
func (r *Repository) SetContacts(ctx context.Context, counterpartyID int64, clientIDs []int64) error {
	_, err := r.querier.ExecBuilder(ctx, repository.QB.
		Delete("counterparty_contacts").
		Where(sq.Eq{"counterparty_id": counterpartyID}))
	if err != nil {
		return fmt.Errorf("unexpected counterparty repository setcontacts error: %w", err)
	}

	if len(clientIDs) == 0 {
		return nil
	}

	builder := repository.QB.
		Insert("counterparty_contacts").
		Columns("counterparty_id", "client_id").
		Suffix("ON CONFLICT DO NOTHING")
	for _, clientID := range clientIDs {
		builder = builder.Values(counterpartyID, clientID)
	}

	if _, err := r.querier.ExecBuilder(ctx, builder); err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return counterparty.ErrContactNotFound
		}
		return fmt.Errorf("unexpected counterparty repository setcontacts error: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Counterparty, error) {
	builder := repository.QB.
		Select(columns...).
		From("counterparties").
		Where(sq.Eq{"id": id})

	counterpartyModel, err := scanCounterparty(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, counterparty.ErrCounterpartyNotFound
		}
		return nil, fmt.Errorf("unexpected counterparty repository getbyid error: %w", err)
	}

	contacts, err := r.getContacts(ctx, sq.Eq{"cc.counterparty_id": id})
	if err != nil {
		return nil, err
	}

	return ToDomain(counterpartyModel, contacts[id]), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Counterparty, error) {
	builder := repository.QB.
		Select(columns...).
		From("counterparties").
		OrderBy("name", "id")

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected counterparty repository getall error: %w", err)
	}
	defer rows.Close()

	counterpartyModels := make([]CounterpartyDB, 0, 16)
	for rows.Next() {
		counterpartyModel, err := scanCounterparty(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected counterparty repository getall error: %w", err)
		}
		counterpartyModels = append(counterpartyModels, *counterpartyModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected counterparty repository getall error: %w", err)
	}

	contacts, err := r.getContacts(ctx, nil)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Counterparty, 0, len(counterpartyModels))
	for i := range counterpartyModels {
		result = append(result, *ToDomain(&counterpartyModels[i], contacts[counterpartyModels[i].ID]))
	}

	return result, nil
}

// getContacts возвращает контакты, сгруппированные по контрагенту.
func (r *Repository) getContacts(ctx context.Context, where sq.Sqlizer) (map[int64][]entities.Client, error) {
	builder := repository.QB.
		Select("cc.counterparty_id", "cl.id", "cl.telegram_id", "cl.username", "cl.first_name",
			"cl.last_name", "cl.consent_at", "cl.created_at").
		From("counterparty_contacts cc").
		Join("clients cl ON cl.id = cc.client_id").
		OrderBy("cc.counterparty_id", "cl.id")
	if where != nil {
		builder = builder.Where(where)
	}

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected counterparty repository getcontacts error: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]entities.Client)
	for rows.Next() {
		var c ContactDB
		if err := rows.Scan(
			&c.CounterpartyID,
			&c.ID,
			&c.TelegramID,
			&c.Username,
			&c.FirstName,
			&c.LastName,
			&c.ConsentAt,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("unexpected counterparty repository getcontacts error: %w", err)
		}
		result[c.CounterpartyID] = append(result[c.CounterpartyID], ContactToDomain(c))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected counterparty repository getcontacts error: %w", err)
	}

	return result, nil
}

func scanCounterparty(row pgx.Row) (*CounterpartyDB, error) {
	var counterpartyModel CounterpartyDB
	err := row.Scan(
		&counterpartyModel.ID,
		&counterpartyModel.Name,
		&counterpartyModel.INN,
		&counterpartyModel.KPP,
		&counterpartyModel.OGRN,
		&counterpartyModel.Address,
		&counterpartyModel.Account,
		&counterpartyModel.BIK,
		&counterpartyModel.CorrespondentAccount,
		&counterpartyModel.Bank,
		&counterpartyModel.Director,
		&counterpartyModel.Contract,
		&counterpartyModel.CreatedAt,
		&counterpartyModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &counterpartyModel, nil
}
