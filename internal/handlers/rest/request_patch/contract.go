//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=request_patch_test
package request_patch

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
	UpdateRequest(
		ctx context.Context,
		id int64,
		patch entities.RequestPatch,
		actor entities.Actor,
	) (*entities.ShipmentRequest, error)
}
