package city

import (
	"context"
	"fmt"
	"strings"

	"crm/internal/entities"
)

type City struct {
	repository Repository
}

func New(repository Repository) *City {
	return &City{
		repository: repository,
	}
}

func (s *City) CreateCity(ctx context.Context, cityModify entities.CityModify) (*entities.City, error) {
	if cityModify.ShortName == nil || cityModify.FullName == nil {
		return nil, ErrMissingRequiredFields
	}
	if err := validate(&cityModify); err != nil {
		return nil, err
	}

	city, err := s.repository.Create(ctx, cityModify)
	if err != nil {
		return nil, fmt.Errorf("create city: %w", err)
	}
	return city, nil
}

func (s *City) UpdateCity(ctx context.Context, cityModify entities.CityModify) (*entities.City, error) {
	if cityModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if cityModify.ShortName == nil && cityModify.FullName == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}
	if err := validate(&cityModify); err != nil {
		return nil, err
	}

	city, err := s.repository.Update(ctx, cityModify)
	if err != nil {
		return nil, fmt.Errorf("update city: %w", err)
	}
	return city, nil
}

// DeleteCity удаляет город, если на него не ссылаются тарифы, заявки и расписание.
// Проверку делает внешний ключ, поэтому гонки между проверкой и удалением нет.
func (s *City) DeleteCity(ctx context.Context, id int64) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete city: %w", err)
	}
	return nil
}

func (s *City) GetCity(ctx context.Context, id int64) (*entities.City, error) {
	city, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get city: %w", err)
	}
	return city, nil
}

func (s *City) GetCities(ctx context.Context) ([]entities.City, error) {
	cities, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get cities: %w", err)
	}
	return cities, nil
}

// FindCityByName ищет город по короткому или полному названию без учета регистра.
// Сравнение делается здесь, а не в SQL: LOWER в postgres зависит от локали базы.
func (s *City) FindCityByName(ctx context.Context, name string) (*entities.City, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCityNotFound
	}

	cities, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find city %q: %w", name, err)
	}

	for i := range cities {
		if strings.EqualFold(cities[i].ShortName, name) || strings.EqualFold(cities[i].FullName, name) {
			return &cities[i], nil
		}
	}
	return nil, fmt.Errorf("find city %q: %w", name, ErrCityNotFound)
}

func validate(cityModify *entities.CityModify) error {
	if cityModify.ShortName != nil {
		if !isValidShortName(*cityModify.ShortName) {
			return ErrInvalidShortName
		}
		shortName := strings.TrimSpace(*cityModify.ShortName)
		cityModify.ShortName = &shortName
	}
	if cityModify.FullName != nil {
		if !isValidFullName(*cityModify.FullName) {
			return ErrInvalidFullName
		}
		fullName := strings.TrimSpace(*cityModify.FullName)
		cityModify.FullName = &fullName
	}
	return nil
}
