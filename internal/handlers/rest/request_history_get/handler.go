package request_history_get

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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathID(r, "id")
	if err != nil {
		response.BadRequest(w, r, h.log, err)
		return
	}

	res, err := h.service.GetTimeline(r.Context(), id)
	if err != nil {
		if errors.Is(err, shipment.ErrRequestNotFound) {
			response.NotFound(w, r, h.log, shipment.ErrRequestNotFound)
			return
		}
		h.log.Error("get shipment request history",
			logger.NewField("shipment_request_id", id),
			logger.NewField("error", err),
		)
		response.Internal(w, r, h.log)
		return
	}

	response.Data(w, h.log, http.StatusOK, converters.Timeline(res))
}
