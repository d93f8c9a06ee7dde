package shipment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/oapi-codegen/nullable"

	"crm/internal/entities"
	"crm/internal/pkg/mutation"
	"crm/internal/pkg/timeline"
	"crm/internal/service/city"
	"crm/internal/service/client"
)

type Shipment struct {
	repository        Repository
	historyRepository HistoryRepository
	outboxRepository  OutboxRepository
	clientService     ClientService
	cityResolver      CityResolver
	txManager         TxManager
}

func New(
	repository Repository,
	historyRepository HistoryRepository,
	outboxRepository OutboxRepository,
	clientService ClientService,
	cityResolver CityResolver,
	txManager TxManager,
) *Shipment {
	return &Shipment{
		repository:        repository,
		historyRepository: historyRepository,
		outboxRepository:  outboxRepository,
		clientService:     clientService,
		cityResolver:      cityResolver,
		txManager:         txManager,
	}
}

// CreateRequest заводит заявку клиента. Клиент создается или обновляется по telegram id,
// город ищется в справочнике; незнакомый город сохраняется текстом без ссылки.
func (s *Shipment) CreateRequest(ctx context.Context, create entities.RequestCreate) (*entities.ShipmentRequest, error) {
	update, err := validateCreate(create)
	if err != nil {
		return nil, err
	}

	var created *entities.ShipmentRequest
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		owner, err := s.clientService.UpsertProfile(ctx, create.Client)
		if err != nil {
			return err
		}

		cityID, cityFullName, err := s.resolveCity(ctx, *update.City)
		if err != nil {
			return err
		}

		request := entities.ShipmentRequest{
			ClientID:      owner.ID,
			CityID:        cityID,
			City:          *update.City,
			DeliveryDate:  *update.DeliveryDate,
			PackagingType: *update.PackagingType,
			BoxCount:      *update.BoxCount,
			Volume:        valueOrNil(update.Volume),
			Weight:        valueOrNil(update.Weight),
			Comment:       valueOrNil(update.Comment),
			Status:        entities.DefaultRequestStatus,
		}

		created, err = s.repository.Create(ctx, request)
		if err != nil {
			return err
		}
		created.Client = owner
		created.CityFullName = cityFullName
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create shipment request: %w", err)
	}

	return created, nil
}

func (s *Shipment) GetRequests(ctx context.Context, filter entities.RequestFilter) ([]entities.ShipmentRequest, error) {
	requests, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get shipment requests: %w", err)
	}
	return requests, nil
}

// GetClientRequests заявки клиента из бота, новые первыми. Незнакомому клиенту
// отдается пустой список.
func (s *Shipment) GetClientRequests(ctx context.Context, telegramID int64) ([]entities.ShipmentRequest, error) {
	c, err := s.clientService.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, client.ErrClientNotFound) {
			return []entities.ShipmentRequest{}, nil
		}
		return nil, fmt.Errorf("failed to get client requests: %w", err)
	}

	requests, err := s.repository.GetAll(ctx, entities.RequestFilter{ClientID: &c.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to get client requests: %w", err)
	}
	return requests, nil
}

// GetRequest заявка вместе с объединенной историей, читается одним снимком.
func (s *Shipment) GetRequest(ctx context.Context, id int64) (*entities.ShipmentRequestDetail, error) {
	var detail *entities.ShipmentRequestDetail
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		request, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return err
		}

		items, err := s.timeline(ctx, id)
		if err != nil {
			return err
		}

		detail = &entities.ShipmentRequestDetail{
			ShipmentRequest: *request,
			Timeline:        items,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get shipment request: %w", err)
	}

	return detail, nil
}

func (s *Shipment) GetTimeline(ctx context.Context, id int64) ([]entities.TimelineItem, error) {
	detail, err := s.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	return detail.Timeline, nil
}

// UpdateRequest применяет правку менеджера. Поля и строки истории пишутся в одной транзакции.
func (s *Shipment) UpdateRequest(
	ctx context.Context,
	id int64,
	patch entities.RequestPatch,
	actor entities.Actor,
) (*entities.ShipmentRequest, error) {
	var updated *entities.ShipmentRequest
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		result, err := mutation.Validate(*existing, patch)
		if err != nil {
			return err
		}

		update := result.Update
		if update.City != nil && *update.City != existing.City {
			cityID, _, err := s.resolveCity(ctx, *update.City)
			if err != nil {
				return err
			}
			if cityID == nil {
				update.CityID = nullable.NewNullNullable[int64]()
			} else {
				update.CityID = nullable.NewNullableWithValue(*cityID)
			}
		}

		if update.IsEmpty() {
			updated = existing
			return nil
		}

		updated, err = s.repository.Update(ctx, id, update)
		if err != nil {
			return err
		}

		if len(result.Changes) == 0 {
			return nil
		}
		return s.historyRepository.AddFieldEntries(ctx, id, result.Changes, actor)
	})
	if err != nil {
		return nil, fmt.Errorf("update shipment request: %w", err)
	}

	return updated, nil
}

// UpdateStatus переводит заявку в новый статус. Строка истории и сообщение для
// уведомления клиента коммитятся вместе со статусом; тот же статус ничего не меняет.
func (s *Shipment) UpdateStatus(
	ctx context.Context,
	id int64,
	requested string,
	actor entities.Actor,
) (*entities.ShipmentRequest, error) {
	var updated *entities.ShipmentRequest
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		status, changed, err := mutation.ResolveStatus(existing.Status, requested)
		if err != nil {
			return err
		}
		if !changed {
			updated = existing
			return nil
		}

		updated, err = s.repository.UpdateStatus(ctx, id, status)
		if err != nil {
			return err
		}

		entry, err := s.historyRepository.AddStatusEntry(ctx, entities.StatusHistoryEntry{
			RequestID: id,
			OldStatus: existing.Status,
			NewStatus: status,
			ChangedBy: actor,
		})
		if err != nil {
			return err
		}

		message, err := statusChangedMessage(existing, entry)
		if err != nil {
			return err
		}
		return s.outboxRepository.Add(ctx, message)
	})
	if err != nil {
		return nil, fmt.Errorf("update shipment request status: %w", err)
	}

	return updated, nil
}

func (s *Shipment) timeline(ctx context.Context, id int64) ([]entities.TimelineItem, error) {
	statuses, err := s.historyRepository.GetStatusHistory(ctx, id)
	if err != nil {
		return nil, err
	}

	fields, err := s.historyRepository.GetFieldHistory(ctx, id)
	if err != nil {
		return nil, err
	}

	return timeline.Merge(statuses, fields), nil
}

func (s *Shipment) resolveCity(ctx context.Context, name string) (*int64, *string, error) {
	c, err := s.cityResolver.FindCityByName(ctx, name)
	if err != nil {
		if errors.Is(err, city.ErrCityNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	return &c.ID, &c.FullName, nil
}

func statusChangedMessage(request *entities.ShipmentRequest, entry *entities.StatusHistoryEntry) (entities.OutboxMessage, error) {
	event := entities.StatusChangedEvent{
		EventID:   uuid.NewString(),
		RequestID: request.ID,
		City:      request.City,
		OldStatus: entry.OldStatus,
		NewStatus: entry.NewStatus,
		ChangedAt: entry.ChangedAt,
	}
	if request.Client != nil {
		event.TelegramID = request.Client.TelegramID
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return entities.OutboxMessage{}, fmt.Errorf("marshal status changed event: %w", err)
	}

	return entities.OutboxMessage{
		Topic:   entities.TopicRequestStatusChanged,
		Key:     strconv.FormatInt(request.ID, 10),
		Payload: payload,
	}, nil
}

func valueOrNil[T any](v nullable.Nullable[T]) *T {
	if !v.IsSpecified() || v.IsNull() {
		return nil
	}
	value := v.MustGet()
	return &value
}
