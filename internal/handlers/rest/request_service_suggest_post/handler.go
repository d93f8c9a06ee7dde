package request_service_suggest_post

import (
	"errors"
	"net/http"

	"crm/internal/handlers/rest/converters"
	"crm/internal/pkg/response"
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

// ServeHTTP подбирает тариф и добавляет строку услуги. Ненайденный тариф
// не ошибка: found=false и текст для менеджера.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID, err := response.PathID(r, "id")
	if err != nil {
		response.BadRequest(w, r, h.log, err)
		return
	}

	res, err := h.service.Suggest(r.Context(), requestID)
	if err != nil {
		if errors.Is(err, shipment.ErrRequestNotFound) {
			response.NotFound(w, r, h.log, shipment.ErrRequestNotFound)
			return
		}
		h.log.Error("suggest request service",
			logger.NewField("shipment_request_id", requestID),
			logger.NewField("error", err),
		)
		response.Internal(w, r, h.log)
		return
	}

	response.Data(w, h.log, http.StatusOK, converters.Suggestion(res))
}
