package cities_get

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
	res, err := h.service.GetCities(r.Context())
	if err != nil {
		h.log.Error("get cities", logger.NewField("error", err))
		response.Internal(w, r, h.log)
		return
	}

	response.Data(w, h.log, http.StatusOK, converters.Cities(res))
}
