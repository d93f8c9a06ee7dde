package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"crm/internal/entities"
)

type Session struct {
	repository Repository
	ttl        time.Duration
	now        func() time.Time
}

func New(repository Repository, ttl time.Duration) *Session {
	return &Session{
		repository: repository,
		ttl:        ttl,
		now:        time.Now,
	}
}

func (s *Session) GetSession(ctx context.Context, telegramID int64) (*entities.BotSession, error) {
	if telegramID <= 0 {
		return nil, ErrInvalidTelegramID
	}

	botSession, err := s.repository.Get(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return botSession, nil
}

// SaveSession сохраняет состояние как есть, проверяется только что это JSON объект.
func (s *Session) SaveSession(ctx context.Context, telegramID int64, state json.RawMessage) (*entities.BotSession, error) {
	if telegramID <= 0 {
		return nil, ErrInvalidTelegramID
	}

	trimmed := bytes.TrimSpace(state)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return nil, ErrInvalidState
	}

	botSession := entities.BotSession{
		TelegramID: telegramID,
		State:      json.RawMessage(trimmed),
		UpdatedAt:  s.now().UTC(),
	}
	if err := s.repository.Save(ctx, botSession, s.ttl); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &botSession, nil
}

func (s *Session) DeleteSession(ctx context.Context, telegramID int64) error {
	if telegramID <= 0 {
		return ErrInvalidTelegramID
	}

	if err := s.repository.Delete(ctx, telegramID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
