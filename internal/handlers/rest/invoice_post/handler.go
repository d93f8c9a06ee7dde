package invoice_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"crm/internal/generated/dto"
	"crm/internal/handlers/rest/converters"
	"crm/internal/pkg/response"
	"crm/internal/service/counterparty"
	"crm/internal/service/invoice"
	"crm/internal/service/shipment"
	"crm/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var invoiceDTO dto.InvoiceCreate
	err := json.NewDecoder(r.Body).Decode(&invoiceDTO)
	if err != nil {
		response.BadRequest(w, r, h.log, err)
		return
	}

	res, err := h.service.CreateInvoice(r.Context(), converters.InvoiceCreate(invoiceDTO))
	if err != nil {
		switch {
		case errors.Is(err, invoice.ErrNoItems),
			errors.Is(err, invoice.ErrInvalidItem):
			response.Error(w, r, h.log, http.StatusBadRequest, response.CodeValidation, err.Error())
		case errors.Is(err, counterparty.ErrCounterpartyNotFound):
			response.NotFound(w, r, h.log, counterparty.ErrCounterpartyNotFound)
		case errors.Is(err, shipment.ErrRequestNotFound):
			response.NotFound(w, r, h.log, shipment.ErrRequestNotFound)
		default:
			h.log.Error("create invoice",
				logger.NewField("counterparty_id", invoiceDTO.CounterpartyId),
				logger.NewField("error", err),
			)
			response.Internal(w, r, h.log)
		}
		return
	}

	response.Data(w, h.log, http.StatusCreated, converters.Invoice(*res))
}
