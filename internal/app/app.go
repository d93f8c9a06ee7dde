package app

import (
	"time"

	"crm/internal/handlers/rest/bot_consent_get"
	"crm/internal/handlers/rest/bot_consent_post"
	"crm/internal/handlers/rest/bot_requests_get"
	"crm/internal/handlers/rest/bot_requests_post"
	"crm/internal/handlers/rest/bot_session_delete"
	"crm/internal/handlers/rest/bot_session_get"
	"crm/internal/handlers/rest/bot_session_put"
	"crm/internal/handlers/rest/cities_get"
	"crm/internal/handlers/rest/city_delete"
	"crm/internal/handlers/rest/city_post"
	"crm/internal/handlers/rest/city_put"
	"crm/internal/handlers/rest/city_rates_get"
	"crm/internal/handlers/rest/clients_get"
	"crm/internal/handlers/rest/counterparties_get"
	"crm/internal/handlers/rest/counterparty_delete"
	"crm/internal/handlers/rest/counterparty_patch"
	"crm/internal/handlers/rest/counterparty_post"
	"crm/internal/handlers/rest/invoice_get"
	"crm/internal/handlers/rest/invoice_pdf_get"
	"crm/internal/handlers/rest/invoice_post"
	"crm/internal/handlers/rest/invoice_send_post"
	"crm/internal/handlers/rest/invoices_get"
	"crm/internal/handlers/rest/rate_delete"
	"crm/internal/handlers/rest/rate_post"
	"crm/internal/handlers/rest/rate_put"
	"crm/internal/handlers/rest/request_get"
	"crm/internal/handlers/rest/request_history_get"
	"crm/internal/handlers/rest/request_patch"
	"crm/internal/handlers/rest/request_service_delete"
	"crm/internal/handlers/rest/request_service_post"
	"crm/internal/handlers/rest/request_service_put"
	"crm/internal/handlers/rest/request_service_suggest_post"
	"crm/internal/handlers/rest/request_services_get"
	"crm/internal/handlers/rest/request_status_patch"
	"crm/internal/handlers/rest/requests_export_get"
	"crm/internal/handlers/rest/requests_get"
	"crm/internal/handlers/rest/schedule_delete"
	"crm/internal/handlers/rest/schedule_destinations_get"
	"crm/internal/handlers/rest/schedule_get"
	"crm/internal/handlers/rest/schedule_post"
	"crm/internal/service/notification"
	"crm/pkg/background"
)

type (
	RelayInterval time.Duration
	SessionTTL    time.Duration
)

type Application struct {
	ServiceShipment     ServiceShipment
	ServiceLineItem     ServiceLineItem
	ServiceCity         ServiceCity
	ServiceRate         ServiceRate
	ServiceClient       ServiceClient
	ServiceCounterparty ServiceCounterparty
	ServiceSchedule     ServiceSchedule
	ServiceInvoice      ServiceInvoice
	ServiceSession      ServiceSession
	BackgroundWorkers   *background.Worker
}

type ServiceShipment interface {
	requests_get.Service
	requests_export_get.Service
	request_get.Service
	request_history_get.Service
	request_patch.Service
	request_status_patch.Service
	bot_requests_post.Service
	bot_requests_get.Service
}

type ServiceLineItem interface {
	request_services_get.Service
	request_service_post.Service
	request_service_put.Service
	request_service_delete.Service
	request_service_suggest_post.Service
}

type ServiceCity interface {
	cities_get.Service
	city_post.Service
	city_put.Service
	city_delete.Service
}

type ServiceRate interface {
	city_rates_get.Service
	rate_post.Service
	rate_put.Service
	rate_delete.Service
}

type ServiceClient interface {
	clients_get.Service
	bot_consent_get.Service
	bot_consent_post.Service
}

type ServiceCounterparty interface {
	counterparties_get.Service
	counterparty_post.Service
	counterparty_patch.Service
	counterparty_delete.Service
}

type ServiceSchedule interface {
	schedule_get.Service
	schedule_destinations_get.Service
	schedule_post.Service
	schedule_delete.Service
}

type ServiceInvoice interface {
	invoices_get.Service
	invoice_get.Service
	invoice_post.Service
	invoice_pdf_get.Service
	invoice_send_post.Service
}

type ServiceSession interface {
	bot_session_get.Service
	bot_session_put.Service
	bot_session_delete.Service
}

type NotificationWorkerApp struct {
	NotificationService *notification.Notification
}
