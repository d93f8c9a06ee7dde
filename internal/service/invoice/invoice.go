package invoice

import (
	"context"
	"fmt"

	"crm/internal/entities"
)

type Invoice struct {
	repository         Repository
	counterpartyReader CounterpartyReader
	requestReader      RequestReader
	renderer           Renderer
	documentSender     DocumentSender
	txManager          TxManager
}

func New(
	repository Repository,
	counterpartyReader CounterpartyReader,
	requestReader RequestReader,
	renderer Renderer,
	documentSender DocumentSender,
	txManager TxManager,
) *Invoice {
	return &Invoice{
		repository:         repository,
		counterpartyReader: counterpartyReader,
		requestReader:      requestReader,
		renderer:           renderer,
		documentSender:     documentSender,
		txManager:          txManager,
	}
}

// CreateInvoice выставляет счет. Строки копируются в счет и дальше со строками заявки не связаны.
func (s *Invoice) CreateInvoice(ctx context.Context, create entities.InvoiceCreate) (*entities.Invoice, error) {
	items, total, err := normalizeItems(create.Items)
	if err != nil {
		return nil, err
	}
	create.Items = items

	var created *entities.Invoice
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		counterparty, err := s.counterpartyReader.GetByID(ctx, create.CounterpartyID)
		if err != nil {
			return err
		}

		if create.RequestID != nil {
			if _, err := s.requestReader.GetByID(ctx, *create.RequestID); err != nil {
				return err
			}
		}

		created, err = s.repository.Create(ctx, create, total)
		if err != nil {
			return err
		}
		created.Counterparty = counterparty
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	return created, nil
}

func (s *Invoice) GetInvoice(ctx context.Context, id int64) (*entities.Invoice, error) {
	invoice, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	counterparty, err := s.counterpartyReader.GetByID(ctx, invoice.CounterpartyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice counterparty: %w", err)
	}
	invoice.Counterparty = counterparty

	return invoice, nil
}

func (s *Invoice) GetInvoices(ctx context.Context) ([]entities.Invoice, error) {
	invoices, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoices: %w", err)
	}
	return invoices, nil
}

func (s *Invoice) RenderPDF(ctx context.Context, id int64) (*entities.Invoice, []byte, error) {
	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	document, err := s.renderer.Render(*invoice)
	if err != nil {
		return nil, nil, fmt.Errorf("render invoice %d: %w", id, err)
	}
	return invoice, document, nil
}

// SendInvoice отправляет PDF в чат. Без chatID счет уходит клиенту заявки.
func (s *Invoice) SendInvoice(ctx context.Context, id int64, chatID *int64) error {
	invoice, document, err := s.RenderPDF(ctx, id)
	if err != nil {
		return err
	}

	recipient, err := s.recipient(ctx, invoice, chatID)
	if err != nil {
		return err
	}

	caption := fmt.Sprintf("Счёт на оплату № %d", invoice.Number)
	if err := s.documentSender.SendDocument(ctx, recipient, FileName(invoice), document, caption); err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	return nil
}

func (s *Invoice) recipient(ctx context.Context, invoice *entities.Invoice, chatID *int64) (int64, error) {
	if chatID != nil {
		return *chatID, nil
	}
	if invoice.RequestID == nil {
		return 0, ErrNoRecipient
	}

	request, err := s.requestReader.GetByID(ctx, *invoice.RequestID)
	if err != nil {
		return 0, fmt.Errorf("failed to get invoice request: %w", err)
	}
	if request.Client == nil || request.Client.TelegramID == 0 {
		return 0, ErrNoRecipient
	}
	return request.Client.TelegramID, nil
}

func FileName(invoice *entities.Invoice) string {
	return fmt.Sprintf("invoice-%d.pdf", invoice.Number)
}
