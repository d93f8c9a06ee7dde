package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"crm/internal/entities"
	"crm/internal/service/session"
)

const keyPrefix = "crm:bot-session:"

// Repository хранит сессии бота в redis одним JSON документом на telegram id.
type Repository struct {
	client *redis.Client
}

func New(client *redis.Client) *Repository {
	return &Repository{
		client: client,
	}
}

func key(telegramID int64) string {
	return keyPrefix + strconv.FormatInt(telegramID, 10)
}

func (r *Repository) Get(ctx context.Context, telegramID int64) (*entities.BotSession, error) {
	raw, err := r.client.Get(ctx, key(telegramID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, session.ErrSessionNotFound
		}
		return nil, fmt.Errorf("unexpected session repository get error: %w", err)
	}

	var botSession entities.BotSession
	if err := json.Unmarshal(raw, &botSession); err != nil {
		return nil, fmt.Errorf("decode session %d: %w", telegramID, err)
	}

	return &botSession, nil
}

// Save перезаписывает сессию и продлевает TTL.
func (r *Repository) Save(ctx context.Context, botSession entities.BotSession, ttl time.Duration) error {
	raw, err := json.Marshal(botSession)
	if err != nil {
		return fmt.Errorf("encode session %d: %w", botSession.TelegramID, err)
	}

	if err := r.client.Set(ctx, key(botSession.TelegramID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("unexpected session repository save error: %w", err)
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, telegramID int64) error {
	deleted, err := r.client.Del(ctx, key(telegramID)).Result()
	if err != nil {
		return fmt.Errorf("unexpected session repository delete error: %w", err)
	}
	if deleted == 0 {
		return session.ErrSessionNotFound
	}

	return nil
}
