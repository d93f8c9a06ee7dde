package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"crm/internal/entities"
)

type Client struct {
	repository Repository
}

func New(repository Repository) *Client {
	return &Client{
		repository: repository,
	}
}

// UpsertProfile создает клиента по telegram id или обновляет его профиль.
func (s *Client) UpsertProfile(ctx context.Context, profile entities.ClientProfile) (*entities.Client, error) {
	if profile.TelegramID <= 0 {
		return nil, ErrInvalidTelegramID
	}

	client, err := s.repository.Upsert(ctx, normalizeProfile(profile))
	if err != nil {
		return nil, fmt.Errorf("upsert client: %w", err)
	}
	return client, nil
}

// AcceptConsent фиксирует согласие на обработку данных. Повторное согласие
// не сдвигает дату первого.
func (s *Client) AcceptConsent(ctx context.Context, profile entities.ClientProfile) (*entities.Client, error) {
	if profile.TelegramID <= 0 {
		return nil, ErrInvalidTelegramID
	}

	client, err := s.repository.SetConsent(ctx, normalizeProfile(profile))
	if err != nil {
		return nil, fmt.Errorf("accept consent: %w", err)
	}
	return client, nil
}

// GetConsent для незнакомого клиента возвращает false без ошибки.
func (s *Client) GetConsent(ctx context.Context, telegramID int64) (bool, error) {
	if telegramID <= 0 {
		return false, ErrInvalidTelegramID
	}

	client, err := s.repository.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, ErrClientNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get consent: %w", err)
	}
	return client.ConsentGiven(), nil
}

func (s *Client) GetClient(ctx context.Context, id int64) (*entities.Client, error) {
	client, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return client, nil
}

func (s *Client) GetByTelegramID(ctx context.Context, telegramID int64) (*entities.Client, error) {
	if telegramID <= 0 {
		return nil, ErrInvalidTelegramID
	}

	client, err := s.repository.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return client, nil
}

func (s *Client) GetClients(ctx context.Context) ([]entities.Client, error) {
	clients, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get clients: %w", err)
	}
	return clients, nil
}

func normalizeProfile(profile entities.ClientProfile) entities.ClientProfile {
	profile.Username = trimOptional(profile.Username)
	profile.FirstName = trimOptional(profile.FirstName)
	profile.LastName = trimOptional(profile.LastName)
	return profile
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimPrefix(strings.TrimSpace(*s), "@")
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
