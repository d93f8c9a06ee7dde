package rate_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"crm/internal/generated/dto"
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
	var rateDTO dto.PriceRateModify
	err := json.NewDecoder(r.Body).Decode(&rateDTO)
	if err != nil {
		response.BadRequest(w, r, h.log, err)
		return
	}

	rateModify := converters.PriceRateModify(rateDTO)

	res, err := h.service.CreateRate(r.Context(), rateModify)
	if err != nil {
		switch {
		case errors.Is(err, rate.ErrMissingRequiredFields),
			errors.Is(err, rate.ErrInvalidUnit),
			errors.Is(err, rate.ErrInvalidPrice),
			errors.Is(err, rate.ErrNegativeBound),
			errors.Is(err, rate.ErrInvalidRange),
			errors.Is(err, rate.ErrBoundsForUnit):
			response.Error(w, r, h.log, http.StatusBadRequest, response.CodeValidation, err.Error())
		case errors.Is(err, rate.ErrRateNotFound):
			response.NotFound(w, r, h.log, rate.ErrRateNotFound)
		case errors.Is(err, rate.ErrCityNotFound):
			response.NotFound(w, r, h.log, rate.ErrCityNotFound)
		case errors.Is(err, rate.ErrConflict):
			response.Conflict(w, r, h.log, rate.ErrConflict)
		default:
			h.log.Error("create rate", logger.NewField("error", err))
			response.Internal(w, r, h.log)
		}
		return
	}

	response.Data(w, h.log, http.StatusCreated, converters.PriceRate(*res))
}
