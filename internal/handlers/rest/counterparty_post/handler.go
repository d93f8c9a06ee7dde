package counterparty_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"crm/internal/generated/dto"
	"crm/internal/handlers/rest/converters"
	"crm/internal/pkg/response"
	"crm/internal/service/counterparty"
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
	var counterpartyDTO dto.CounterpartyModify
	err := json.NewDecoder(r.Body).Decode(&counterpartyDTO)
	if err != nil {
		response.BadRequest(w, r, h.log, err)
		return
	}

	modify := converters.CounterpartyModify(counterpartyDTO)

	res, err := h.service.CreateCounterparty(r.Context(), modify)
	if err != nil {
		switch {
		case errors.Is(err, counterparty.ErrMissingRequiredFields),
			errors.Is(err, counterparty.ErrInvalidName),
			errors.Is(err, counterparty.ErrInvalidINN),
			errors.Is(err, counterparty.ErrInvalidKPP),
			errors.Is(err, counterparty.ErrInvalidOGRN),
			errors.Is(err, counterparty.ErrInvalidBIK),
			errors.Is(err, counterparty.ErrInvalidAccount):
			response.Error(w, r, h.log, http.StatusBadRequest, response.CodeValidation, err.Error())
		case errors.Is(err, counterparty.ErrCounterpartyNotFound):
			response.NotFound(w, r, h.log, counterparty.ErrCounterpartyNotFound)
		case errors.Is(err, counterparty.ErrContactNotFound):
			response.NotFound(w, r, h.log, counterparty.ErrContactNotFound)
		default:
			h.log.Error("create counterparty", logger.NewField("error", err))
			response.Internal(w, r, h.log)
		}
		return
	}

	response.Data(w, h.log, http.StatusCreated, converters.Counterparty(*res))
}
