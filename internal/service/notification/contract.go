//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"
)

type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, html string) error
}
