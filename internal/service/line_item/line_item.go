package line_item

import (
	"context"
	"fmt"

	"crm/internal/entities"
	"crm/internal/pkg/pricing"
)

type LineItem struct {
	repository    Repository
	requestReader RequestReader
	rateReader    RateReader
	txManager     TxManager
}

func New(repository Repository, requestReader RequestReader, rateReader RateReader, txManager TxManager) *LineItem {
	return &LineItem{
		repository:    repository,
		requestReader: requestReader,
		rateReader:    rateReader,
		txManager:     txManager,
	}
}

func (s *LineItem) GetServices(ctx context.Context, requestID int64) ([]entities.RequestService, error) {
	if _, err := s.requestReader.GetByID(ctx, requestID); err != nil {
		return nil, fmt.Errorf("failed to get request services: %w", err)
	}

	items, err := s.repository.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get request services: %w", err)
	}
	return items, nil
}

func (s *LineItem) CreateService(ctx context.Context, modify entities.RequestServiceModify) (*entities.RequestService, error) {
	if modify.RequestID == nil || modify.Description == nil || modify.Quantity == nil || modify.Price == nil {
		return nil, ErrMissingRequiredFields
	}

	item, err := apply(entities.RequestService{RequestID: *modify.RequestID}, modify)
	if err != nil {
		return nil, err
	}

	if _, err := s.requestReader.GetByID(ctx, item.RequestID); err != nil {
		return nil, fmt.Errorf("create request service: %w", err)
	}

	created, err := s.repository.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create request service: %w", err)
	}
	return created, nil
}

// UpdateService меняет переданные поля, сумма пересчитывается всегда.
func (s *LineItem) UpdateService(ctx context.Context, modify entities.RequestServiceModify) (*entities.RequestService, error) {
	if modify.ID == nil || modify.RequestID == nil {
		return nil, ErrMissingRequiredFields
	}

	var updated *entities.RequestService
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := s.repository.GetByID(ctx, *modify.RequestID, *modify.ID)
		if err != nil {
			return err
		}

		item, err := apply(*existing, modify)
		if err != nil {
			return err
		}

		updated, err = s.repository.Update(ctx, item)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update request service: %w", err)
	}
	return updated, nil
}

func (s *LineItem) DeleteService(ctx context.Context, requestID, id int64) error {
	if err := s.repository.Delete(ctx, requestID, id); err != nil {
		return fmt.Errorf("delete request service: %w", err)
	}
	return nil
}

// Suggest подбирает тариф по заявке и ничего не сохраняет.
// Ненайденный тариф возвращается как Found == false без ошибки.
func (s *LineItem) Suggest(ctx context.Context, requestID int64) (entities.Suggestion, error) {
	request, err := s.requestReader.GetByID(ctx, requestID)
	if err != nil {
		return entities.Suggestion{}, fmt.Errorf("suggest request service: %w", err)
	}

	if request.CityID == nil {
		return pricing.NotFound(pricing.MessageNoCity), nil
	}

	tiers, err := s.rateReader.GetByCityID(ctx, *request.CityID)
	if err != nil {
		return entities.Suggestion{}, fmt.Errorf("suggest request service: %w", err)
	}

	cityName := request.City
	if request.CityFullName != nil {
		cityName = *request.CityFullName
	}

	suggestion := pricing.Suggest(pricing.Shipment{
		CityFullName:  cityName,
		PackagingType: request.PackagingType,
		BoxCount:      request.BoxCount,
		Weight:        request.Weight,
		Volume:        request.Volume,
	}, tiers)
	return suggestion, nil
}
