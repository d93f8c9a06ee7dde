package rate

import (
	"context"
	"errors"
	"fmt"

	"crm/internal/entities"
	"crm/internal/service/city"
)

type Rate struct {
	repository  Repository
	cityService CityService
}

func New(repository Repository, cityService CityService) *Rate {
	return &Rate{
		repository:  repository,
		cityService: cityService,
	}
}

func (s *Rate) CreateRate(ctx context.Context, rateModify entities.PriceRateModify) (*entities.PriceRate, error) {
	if err := validateRate(rateModify); err != nil {
		return nil, err
	}

	rate, err := s.repository.Create(ctx, rateModify)
	if err != nil {
		return nil, fmt.Errorf("create rate: %w", err)
	}
	return rate, nil
}

// UpdateRate полностью заменяет тариф, границы не переданные в запросе сбрасываются.
func (s *Rate) UpdateRate(ctx context.Context, rateModify entities.PriceRateModify) (*entities.PriceRate, error) {
	if rateModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if err := validateRate(rateModify); err != nil {
		return nil, err
	}

	rate, err := s.repository.Update(ctx, rateModify)
	if err != nil {
		return nil, fmt.Errorf("update rate: %w", err)
	}
	return rate, nil
}

func (s *Rate) DeleteRate(ctx context.Context, id int64) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete rate: %w", err)
	}
	return nil
}

func (s *Rate) GetRate(ctx context.Context, id int64) (*entities.PriceRate, error) {
	rate, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get rate: %w", err)
	}
	return rate, nil
}

// GetCityRates тарифы города в порядке подбора: единица, нижняя граница, id.
func (s *Rate) GetCityRates(ctx context.Context, cityID int64) ([]entities.PriceRate, error) {
	if _, err := s.cityService.GetCity(ctx, cityID); err != nil {
		if errors.Is(err, city.ErrCityNotFound) {
			return nil, ErrCityNotFound
		}
		return nil, fmt.Errorf("failed to get rates city: %w", err)
	}

	rates, err := s.repository.GetByCityID(ctx, cityID)
	if err != nil {
		return nil, fmt.Errorf("failed to get city rates: %w", err)
	}
	return rates, nil
}
