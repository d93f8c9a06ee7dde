package invoice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"crm/internal/entities"
	"crm/internal/repository"
	"crm/internal/service/counterparty"
	"crm/internal/service/invoice"
	"crm/internal/service/shipment"
)

var columns = []string{"id", "number", "counterparty_id", "request_id", "issued_at", "total::text"}

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create пишет счет и его строки, вызывается внутри транзакции.
func (r *Repository) Create(ctx context.Context, create entities.InvoiceCreate, total decimal.Decimal) (*entities.Invoice, error) {
	builder := repository.QB.
		Insert("invoices").
		Columns("counterparty_id", "request_id", "total").
		Values(create.CounterpartyID, create.RequestID, total.String()).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	invoiceModel, err := scanInvoice(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		return nil, mapWriteError("create", err)
	}

	items := repository.QB.
		Insert("invoice_items").
		Columns("invoice_id", "position", "description", "unit", "quantity", "price", "amount")
	for _, item := range create.Items {
		items = items.Values(invoiceModel.ID, item.Position, item.Description, item.Unit,
			item.Quantity.String(), item.Price.String(), item.Amount.String())
	}

	if _, err := r.querier.ExecBuilder(ctx, items); err != nil {
		return nil, fmt.Errorf("unexpected invoice repository create items error: %w", err)
	}

	return ToDomain(invoiceModel, create.Items)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Invoice, error) {
	builder := repository.QB.
		Select(columns...).
		From("invoices").
		Where(sq.Eq{"id": id})

	invoiceModel, err := scanInvoice(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invoice.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("unexpected invoice repository getbyid error: %w", err)
	}

	items, err := r.getItems(ctx, sq.Eq{"invoice_id": id})
	if err != nil {
		return nil, err
	}

	return ToDomain(invoiceModel, items[id])
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Invoice, error) {
	builder := repository.QB.
		Select(columns...).
		From("invoices").
		OrderBy("number DESC")

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected invoice repository getall error: %w", err)
	}
	defer rows.Close()

	invoiceModels := make([]InvoiceDB, 0, 16)
	for rows.Next() {
		invoiceModel, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected invoice repository getall error: %w", err)
		}
		invoiceModels = append(invoiceModels, *invoiceModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected invoice repository getall error: %w", err)
	}

	items, err := r.getItems(ctx, nil)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Invoice, 0, len(invoiceModels))
	for i := range invoiceModels {
		inv, err := ToDomain(&invoiceModels[i], items[invoiceModels[i].ID])
		if err != nil {
			return nil, err
		}
		result = append(result, *inv)
	}

	return result, nil
}

func (r *Repository) getItems(ctx context.Context, where sq.Sqlizer) (map[int64][]entities.InvoiceItem, error) {
	builder := repository.QB.
		Select("invoice_id", "position", "description", "unit", "quantity::text", "price::text", "amount::text").
		From("invoice_items").
		OrderBy("invoice_id", "position")
	if where != nil {
		builder = builder.Where(where)
	}

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected invoice repository getitems error: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]entities.InvoiceItem)
	for rows.Next() {
		var itemModel ItemDB
		if err := rows.Scan(
			&itemModel.InvoiceID,
			&itemModel.Position,
			&itemModel.Description,
			&itemModel.Unit,
			&itemModel.Quantity,
			&itemModel.Price,
			&itemModel.Amount,
		); err != nil {
			return nil, fmt.Errorf("unexpected invoice repository getitems error: %w", err)
		}

		item, err := ItemToDomain(itemModel)
		if err != nil {
			return nil, err
		}
		result[itemModel.InvoiceID] = append(result[itemModel.InvoiceID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected invoice repository getitems error: %w", err)
	}

	return result, nil
}

func mapWriteError(op string, err error) error {
	if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
		if repository.ConstraintName(err) == "invoices_request_id_fkey" {
			return shipment.ErrRequestNotFound
		}
		return counterparty.ErrCounterpartyNotFound
	}
	return fmt.Errorf("unexpected invoice repository %s error: %w", op, err)
}

func scanInvoice(row pgx.Row) (*InvoiceDB, error) {
	var invoiceModel InvoiceDB
	err := row.Scan(
		&invoiceModel.ID,
		&invoiceModel.Number,
		&invoiceModel.CounterpartyID,
		&invoiceModel.RequestID,
		&invoiceModel.IssuedAt,
		&invoiceModel.Total,
	)
	if err != nil {
		return nil, err
	}

	return &invoiceModel, nil
}
