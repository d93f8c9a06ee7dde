package counterparty

import (
	"context"
	"fmt"

	"crm/internal/entities"
)

type Counterparty struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Counterparty {
	return &Counterparty{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Counterparty) CreateCounterparty(ctx context.Context, counterpartyModify entities.CounterpartyModify) (*entities.Counterparty, error) {
	if counterpartyModify.Name == nil {
		return nil, ErrMissingRequiredFields
	}
	if err := validate(&counterpartyModify); err != nil {
		return nil, err
	}

	var created *entities.Counterparty
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		id, err := s.repository.Create(ctx, counterpartyModify)
		if err != nil {
			return err
		}

		if counterpartyModify.ContactClientIDs != nil {
			if err := s.repository.SetContacts(ctx, id, *counterpartyModify.ContactClientIDs); err != nil {
				return err
			}
		}

		created, err = s.repository.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create counterparty: %w", err)
	}
	return created, nil
}

// UpdateCounterparty меняет переданные поля. Переданный список контактов заменяет текущий.
func (s *Counterparty) UpdateCounterparty(ctx context.Context, counterpartyModify entities.CounterpartyModify) (*entities.Counterparty, error) {
	if counterpartyModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if err := validate(&counterpartyModify); err != nil {
		return nil, err
	}

	id := *counterpartyModify.ID

	var updated *entities.Counterparty
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repository.Update(ctx, counterpartyModify); err != nil {
			return err
		}

		if counterpartyModify.ContactClientIDs != nil {
			if err := s.repository.SetContacts(ctx, id, *counterpartyModify.ContactClientIDs); err != nil {
				return err
			}
		}

		var err error
		updated, err = s.repository.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update counterparty: %w", err)
	}
	return updated, nil
}

func (s *Counterparty) DeleteCounterparty(ctx context.Context, id int64) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete counterparty: %w", err)
	}
	return nil
}

func (s *Counterparty) GetCounterparty(ctx context.Context, id int64) (*entities.Counterparty, error) {
	counterparty, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get counterparty: %w", err)
	}
	return counterparty, nil
}

func (s *Counterparty) GetCounterparties(ctx context.Context) ([]entities.Counterparty, error) {
	counterparties, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get counterparties: %w", err)
	}
	return counterparties, nil
}
