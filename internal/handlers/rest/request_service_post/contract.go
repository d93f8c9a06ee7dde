//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=request_service_post_test
package request_service_post

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
	CreateService(ctx context.Context, modify entities.RequestServiceModify) (*entities.RequestService, error)
}
