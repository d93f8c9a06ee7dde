package city_rates_get

import (
	"errors"
	"net/http"

	"crm/internal/handlers/rest/converters"
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
	cityID, err := response.PathID(r, "id")
	if err != nil {
		response.BadRequest(w, r, h.log, err)
		return
	}

	res, err := h.service.GetCityRates(r.Context(), cityID)
	if err != nil {
		if errors.Is(err, rate.ErrCityNotFound) {
			response.NotFound(w, r, h.log, rate.ErrCityNotFound)
			return
		}
		h.log.Error("get city rates",
			logger.NewField("city_id", cityID),
			logger.NewField("error", err),
		)
		response.Internal(w, r, h.log)
		return
	}

	response.Data(w, h.log, http.StatusOK, converters.PriceRates(res))
}
