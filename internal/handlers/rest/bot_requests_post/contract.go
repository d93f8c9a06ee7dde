//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bot_requests_post_test
package bot_requests_post

import (
	"context"

	"crm/internal/entities"
	"crm/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreateRequest(ctx context.Context, create entities.RequestCreate) (*entities.ShipmentRequest, error)
}
