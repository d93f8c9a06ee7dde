package notification

import (
	"context"
	"fmt"
	"html"
	"strings"

	"crm/internal/entities"
)

type Notification struct {
	sender MessageSender
}

func New(sender MessageSender) *Notification {
	return &Notification{
		sender: sender,
	}
}

func (s *Notification) NotifyStatusChanged(ctx context.Context, event entities.StatusChangedEvent) error {
	if event.TelegramID == 0 {
		return ErrNoRecipient
	}

	if err := s.sender.SendMessage(ctx, event.TelegramID, StatusMessage(event)); err != nil {
		return fmt.Errorf("%w: request %d: %w", ErrSendFailed, event.RequestID, err)
	}
	return nil
}

// StatusMessage текст уведомления в разметке HTML Bot API.
func StatusMessage(event entities.StatusChangedEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>Заявка №%d</b>\n", event.RequestID)
	fmt.Fprintf(&b, "Статус: %s", event.NewStatus.Label())
	if event.OldStatus != "" && event.OldStatus != event.NewStatus {
		fmt.Fprintf(&b, " (было: %s)", event.OldStatus.Label())
	}
	if event.City != "" {
		fmt.Fprintf(&b, "\nГород: %s", html.EscapeString(event.City))
	}
	return b.String()
}
