//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/go-redis/redis/v8"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"crm/internal/gateway/telegram"
	"crm/internal/handlers/tasks/outbox_relay"
	"crm/internal/pkg/config"
	"crm/internal/pkg/invoice_pdf"
	"crm/internal/pkg/kafka"

	cityService "crm/internal/service/city"
	clientService "crm/internal/service/client"
	counterpartyService "crm/internal/service/counterparty"
	invoiceService "crm/internal/service/invoice"
	lineItemService "crm/internal/service/line_item"
	outboxService "crm/internal/service/outbox"
	rateService "crm/internal/service/rate"
	scheduleService "crm/internal/service/schedule"
	sessionService "crm/internal/service/session"
	shipmentService "crm/internal/service/shipment"

	"crm/pkg/logger"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	producer *kafka.Producer,
	renderer *invoice_pdf.Renderer,
	telegramGateway *telegram.Gateway,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideRelayInterval,
		provideSessionTTL,

		provideShipmentRepository,
		provideHistoryRepository,
		provideOutboxRepository,
		provideLineItemRepository,
		provideCityRepository,
		provideRateRepository,
		provideClientRepository,
		provideCounterpartyRepository,
		provideScheduleRepository,
		provideInvoiceRepository,
		provideSessionRepository,

		provideServiceClient,
		provideServiceCity,
		provideServiceRate,
		provideServiceShipment,
		provideServiceLineItem,
		provideServiceCounterparty,
		provideServiceSchedule,
		provideServiceInvoice,
		provideServiceSession,
		provideServiceOutbox,

		provideOutboxRelayTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),
		wire.Bind(new(ServiceLineItem), new(*lineItemService.LineItem)),
		wire.Bind(new(ServiceCity), new(*cityService.City)),
		wire.Bind(new(ServiceRate), new(*rateService.Rate)),
		wire.Bind(new(ServiceClient), new(*clientService.Client)),
		wire.Bind(new(ServiceCounterparty), new(*counterpartyService.Counterparty)),
		wire.Bind(new(ServiceSchedule), new(*scheduleService.Schedule)),
		wire.Bind(new(ServiceInvoice), new(*invoiceService.Invoice)),
		wire.Bind(new(ServiceSession), new(*sessionService.Session)),

		wire.Bind(new(outbox_relay.Service), new(*outboxService.Outbox)),
	)
	return &Application{}, nil
}

// InitializeNotificationWorkerApp для Kafka воркера (cmd/worker-notifications)
func InitializeNotificationWorkerApp(telegramGateway *telegram.Gateway) (*NotificationWorkerApp, error) {
	wire.Build(
		provideServiceNotification,

		wire.Struct(new(NotificationWorkerApp), "*"),
	)
	return nil, nil
}
