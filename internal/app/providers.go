package app

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"

	"crm/internal/gateway/telegram"
	"crm/internal/handlers/tasks/outbox_relay"
	"crm/internal/pkg/config"
	"crm/internal/pkg/invoice_pdf"
	"crm/internal/pkg/kafka"

	cityRepo "crm/internal/repository/city"
	clientRepo "crm/internal/repository/client"
	counterpartyRepo "crm/internal/repository/counterparty"
	historyRepo "crm/internal/repository/history"
	invoiceRepo "crm/internal/repository/invoice"
	lineItemRepo "crm/internal/repository/line_item"
	outboxRepo "crm/internal/repository/outbox"
	rateRepo "crm/internal/repository/rate"
	scheduleRepo "crm/internal/repository/schedule"
	sessionRepo "crm/internal/repository/session"
	shipmentRepo "crm/internal/repository/shipment"

	cityService "crm/internal/service/city"
	clientService "crm/internal/service/client"
	counterpartyService "crm/internal/service/counterparty"
	invoiceService "crm/internal/service/invoice"
	lineItemService "crm/internal/service/line_item"
	notificationService "crm/internal/service/notification"
	outboxService "crm/internal/service/outbox"
	rateService "crm/internal/service/rate"
	scheduleService "crm/internal/service/schedule"
	sessionService "crm/internal/service/session"
	shipmentService "crm/internal/service/shipment"

	"crm/pkg/background"
	"crm/pkg/logger"
	"crm/pkg/querier"
	"crm/pkg/tx"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideRelayInterval(cfg *config.Config) RelayInterval {
	return RelayInterval(cfg.Tasks.OutboxRelayInterval)
}

func provideSessionTTL(cfg *config.Config) SessionTTL {
	return SessionTTL(cfg.Redis.SessionTTL)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideHistoryRepository(querier *querier.Querier) *historyRepo.Repository {
	return historyRepo.New(querier)
}

func provideOutboxRepository(querier *querier.Querier) *outboxRepo.Repository {
	return outboxRepo.New(querier)
}

func provideLineItemRepository(querier *querier.Querier) *lineItemRepo.Repository {
	return lineItemRepo.New(querier)
}

func provideCityRepository(querier *querier.Querier) *cityRepo.Repository {
	return cityRepo.New(querier)
}

func provideRateRepository(querier *querier.Querier) *rateRepo.Repository {
	return rateRepo.New(querier)
}

func provideClientRepository(querier *querier.Querier) *clientRepo.Repository {
	return clientRepo.New(querier)
}

func provideCounterpartyRepository(querier *querier.Querier) *counterpartyRepo.Repository {
	return counterpartyRepo.New(querier)
}

func provideScheduleRepository(querier *querier.Querier) *scheduleRepo.Repository {
	return scheduleRepo.New(querier)
}

func provideInvoiceRepository(querier *querier.Querier) *invoiceRepo.Repository {
	return invoiceRepo.New(querier)
}

func provideSessionRepository(client *redis.Client) *sessionRepo.Repository {
	return sessionRepo.New(client)
}

func provideServiceClient(repository *clientRepo.Repository) *clientService.Client {
	return clientService.New(repository)
}

func provideServiceCity(repository *cityRepo.Repository) *cityService.City {
	return cityService.New(repository)
}

func provideServiceRate(repository *rateRepo.Repository, cities *cityService.City) *rateService.Rate {
	return rateService.New(repository, cities)
}

func provideServiceShipment(
	repository *shipmentRepo.Repository,
	history *historyRepo.Repository,
	outbox *outboxRepo.Repository,
	clients *clientService.Client,
	cities *cityService.City,
	txManager *tx.Manager,
) *shipmentService.Shipment {
	return shipmentService.New(repository, history, outbox, clients, cities, txManager)
}

func provideServiceLineItem(
	repository *lineItemRepo.Repository,
	requests *shipmentRepo.Repository,
	rates *rateRepo.Repository,
	txManager *tx.Manager,
) *lineItemService.LineItem {
	return lineItemService.New(repository, requests, rates, txManager)
}

func provideServiceCounterparty(repository *counterpartyRepo.Repository, txManager *tx.Manager) *counterpartyService.Counterparty {
	return counterpartyService.New(repository, txManager)
}

func provideServiceSchedule(repository *scheduleRepo.Repository) *scheduleService.Schedule {
	return scheduleService.New(repository)
}

func provideServiceInvoice(
	repository *invoiceRepo.Repository,
	counterparties *counterpartyRepo.Repository,
	requests *shipmentRepo.Repository,
	renderer *invoice_pdf.Renderer,
	telegramGateway *telegram.Gateway,
	txManager *tx.Manager,
) *invoiceService.Invoice {
	return invoiceService.New(repository, counterparties, requests, renderer, telegramGateway, txManager)
}

func provideServiceSession(repository *sessionRepo.Repository, ttl SessionTTL) *sessionService.Session {
	return sessionService.New(repository, time.Duration(ttl))
}

func provideServiceOutbox(
	repository *outboxRepo.Repository,
	producer *kafka.Producer,
	txManager *tx.Manager,
	log logger.Logger,
	cfg *config.Config,
) *outboxService.Outbox {
	return outboxService.New(repository, producer, txManager, log, cfg.Tasks.OutboxBatchSize)
}

func provideServiceNotification(telegramGateway *telegram.Gateway) *notificationService.Notification {
	return notificationService.New(telegramGateway)
}

func provideOutboxRelayTask(
	log logger.Logger,
	service outbox_relay.Service,
	interval RelayInterval,
) *outbox_relay.OutboxRelay {
	return outbox_relay.NewOutboxRelay(log, service, time.Duration(interval))
}

func provideTaskList(outboxRelayTask *outbox_relay.OutboxRelay) []background.Task {
	return []background.Task{
		outboxRelayTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
