//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=status_notification_test
package status_notification

import (
	"context"

	"crm/internal/entities"
	"crm/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	NotifyStatusChanged(ctx context.Context, event entities.StatusChangedEvent) error
}
