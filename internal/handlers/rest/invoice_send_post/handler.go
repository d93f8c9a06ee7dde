package invoice_send_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"crm/internal/generated/dto"
	"crm/internal/pkg/response"
	"crm/internal/service/invoice"
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

// ServeHTTP отправляет PDF счета в Telegram. Тело запроса необязательное.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathID(r, "id")
	if err != nil {
		response.BadRequest(w, r, h.log, err)
		return
	}

	var sendDTO dto.InvoiceSend
	err = json.NewDecoder(r.Body).Decode(&sendDTO)
	if err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, r, h.log, err)
		return
	}

	err = h.service.SendInvoice(r.Context(), id, sendDTO.ChatId)
	if err != nil {
		switch {
		case errors.Is(err, invoice.ErrInvoiceNotFound):
			response.NotFound(w, r, h.log, invoice.ErrInvoiceNotFound)
		case errors.Is(err, invoice.ErrNoRecipient):
			response.Error(w, r, h.log, http.StatusBadRequest, response.CodeBadRequest, invoice.ErrNoRecipient.Error())
		case errors.Is(err, invoice.ErrDeliveryFailed):
			h.log.Warn("send invoice",
				logger.NewField("invoice_id", id),
				logger.NewField("error", err),
			)
			response.Error(w, r, h.log, http.StatusBadGateway, response.CodeBadGateway, invoice.ErrDeliveryFailed.Error())
		default:
			h.log.Error("send invoice",
				logger.NewField("invoice_id", id),
				logger.NewField("error", err),
			)
			response.Internal(w, r, h.log)
		}
		return
	}

	response.Data(w, h.log, http.StatusOK, map[string]bool{"sent": true})
}
