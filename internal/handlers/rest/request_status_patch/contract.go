//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=request_status_patch_test
package request_status_patch

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
	UpdateStatus(
		ctx context.Context,
		id int64,
		requested string,
		actor entities.Actor,
	) (*entities.ShipmentRequest, error)
}
