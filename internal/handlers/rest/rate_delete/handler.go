package rate_delete

import (
	"errors"
	"net/http"

	"crm/internal/pkg/response"
	"crm/internal/service/rate"
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

	err = h.service.DeleteRate(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, rate.ErrRateNotFound):
			response.NotFound(w, r, h.log, rate.ErrRateNotFound)
		default:
			h.log.Error("delete rate",
				logger.NewField("id", id),
				logger.NewField("error", err),
			)
			response.Internal(w, r, h.log)
		}
		return
	}

	response.NoContent(w)
}
