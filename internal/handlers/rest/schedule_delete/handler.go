package schedule_delete

import (
	"errors"
	"net/http"

	"crm/internal/pkg/response"
	"crm/internal/service/schedule"
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

	err = h.service.DeleteEntry(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrEntryNotFound):
			response.NotFound(w, r, h.log, schedule.ErrEntryNotFound)
		default:
			h.log.Error("delete schedule entry",
				logger.NewField("id", id),
				logger.NewField("error", err),
			)
			response.Internal(w, r, h.log)
		}
		return
	}

	response.NoContent(w)
}
