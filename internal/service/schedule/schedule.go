package schedule

import (
	"context"
	"fmt"
	"strings"

	"crm/internal/entities"
	"crm/internal/pkg/mutation"
)

type Schedule struct {
	repository Repository
}

func New(repository Repository) *Schedule {
	return &Schedule{
		repository: repository,
	}
}

// GetSchedule возвращает расписание по дате, внутри даты по направлению.
func (s *Schedule) GetSchedule(ctx context.Context) ([]entities.ScheduleEntry, error) {
	entries, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	return entries, nil
}

func (s *Schedule) GetDestinations(ctx context.Context) ([]string, error) {
	destinations, err := s.repository.GetDestinations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get destinations: %w", err)
	}
	return destinations, nil
}

func (s *Schedule) CreateEntry(ctx context.Context, modify entities.ScheduleEntryModify) (*entities.ScheduleEntry, error) {
	if modify.CityID == nil || modify.DeliveryDate == nil || modify.AcceptDays == nil {
		return nil, ErrMissingRequiredFields
	}

	deliveryDate, err := mutation.ParseDate(*modify.DeliveryDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}

	acceptDays := strings.TrimSpace(*modify.AcceptDays)
	if acceptDays == "" {
		return nil, ErrInvalidAcceptDays
	}

	entry, err := s.repository.Create(ctx, *modify.CityID, deliveryDate, acceptDays)
	if err != nil {
		return nil, fmt.Errorf("create schedule entry: %w", err)
	}
	return entry, nil
}

func (s *Schedule) DeleteEntry(ctx context.Context, id int64) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete schedule entry: %w", err)
	}
	return nil
}
