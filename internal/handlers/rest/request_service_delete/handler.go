package request_service_delete

import (
	"errors"
	"net/http"

	"crm/internal/pkg/response"
	"crm/internal/service/line_item"
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
	requestID, err := response.PathID(r, "id")
	if err != nil {
		response.BadRequest(w, r, h.log, err)
		return
	}

	serviceID, err := response.PathID(r, "serviceId")
	if err != nil {
		response.BadRequest(w, r, h.log, err)
		return
	}

	err = h.service.DeleteService(r.Context(), requestID, serviceID)
	if err != nil {
		if errors.Is(err, line_item.ErrServiceNotFound) {
			response.NotFound(w, r, h.log, line_item.ErrServiceNotFound)
			return
		}
		h.log.Error("delete request service",
			logger.NewField("shipment_request_id", requestID),
			logger.NewField("service_id", serviceID),
			logger.NewField("error", err),
		)
		response.Internal(w, r, h.log)
		return
	}

	response.NoContent(w)
}
