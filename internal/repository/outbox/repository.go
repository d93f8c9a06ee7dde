package outbox

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"crm/internal/entities"
	"crm/internal/repository"
)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Add(ctx context.Context, message entities.OutboxMessage) error {
	builder := repository.QB.
		Insert("outbox").
		Columns("topic", "key", "payload").
		Values(message.Topic, message.Key, message.Payload)

	if _, err := r.querier.ExecBuilder(ctx, builder); err != nil {
		return fmt.Errorf("unexpected outbox repository add error: %w", err)
	}
	return nil
}

// GetPending берет неотправленные сообщения с блокировкой, параллельный релей
// пропускает уже взятые строки.
func (r *Repository) GetPending(ctx context.Context, limit uint64) ([]entities.OutboxMessage, error) {
	builder := repository.QB.
		Select("id", "topic", "key", "payload", "attempts", "last_error", "created_at", "sent_at").
		From("outbox").
		Where(sq.Eq{"sent_at": nil}).
		OrderBy("id").
		Limit(limit).
		Suffix("FOR UPDATE SKIP LOCKED")

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository getpending error: %w", err)
	}
	defer rows.Close()

	messages := make([]entities.OutboxMessage, 0, limit)
	for rows.Next() {
		var m entities.OutboxMessage
		err := rows.Scan(&m.ID, &m.Topic, &m.Key, &m.Payload, &m.Attempts, &m.LastError, &m.CreatedAt, &m.SentAt)
		if err != nil {
			return nil, fmt.Errorf("unexpected outbox repository getpending error: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected outbox repository getpending error: %w", err)
	}
	return messages, nil
}

func (r *Repository) MarkSent(ctx context.Context, id int64) error {
	builder := repository.QB.
		Update("outbox").
		Set("sent_at", sq.Expr("NOW()")).
		Set("attempts", sq.Expr("attempts + 1")).
		Set("last_error", nil).
		Where(sq.Eq{"id": id})

	if _, err := r.querier.ExecBuilder(ctx, builder); err != nil {
		return fmt.Errorf("unexpected outbox repository marksent error: %w", err)
	}
	return nil
}

func (r *Repository) MarkFailed(ctx context.Context, id int64, reason string) error {
	builder := repository.QB.
		Update("outbox").
		Set("attempts", sq.Expr("attempts + 1")).
		Set("last_error", reason).
		Where(sq.Eq{"id": id})

	if _, err := r.querier.ExecBuilder(ctx, builder); err != nil {
		return fmt.Errorf("unexpected outbox repository markfailed error: %w", err)
	}
	return nil
}
