package bot_requests_get

import (
	"net/http"

	"crm/internal/handlers/rest/converters"
	"crm/internal/pkg/response"
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
	telegramID, err := response.PathID(r, "telegramId")
	if err != nil {
		response.BadRequest(w, r, h.log, err)
		return
	}

	res, err := h.service.GetClientRequests(r.Context(), telegramID)
	if err != nil {
		h.log.Error("get client requests",
			logger.NewField("telegram_id", telegramID),
			logger.NewField("error", err),
		)
		response.Internal(w, r, h.log)
		return
	}

	response.Data(w, h.log, http.StatusOK, converters.ShipmentRequests(res))
}
