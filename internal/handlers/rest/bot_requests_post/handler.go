package bot_requests_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"crm/internal/generated/dto"
	"crm/internal/handlers/rest/converters"
	"crm/internal/pkg/mutation"
	"crm/internal/pkg/response"
	"crm/internal/service/client"
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
	var createDTO dto.RequestCreate
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		response.BadRequest(w, r, h.log, err)
		return
	}

	res, err := h.service.CreateRequest(r.Context(), converters.RequestCreate(createDTO))
	if err != nil {
		var validationErr *mutation.ValidationError
		switch {
		case errors.As(err, &validationErr):
			response.Validation(w, r, h.log, validationErr)
		case errors.Is(err, shipment.ErrMissingRequiredFields),
			errors.Is(err, client.ErrInvalidTelegramID):
			response.Error(w, r, h.log, http.StatusBadRequest, response.CodeValidation, err.Error())
		default:
			h.log.Error("create shipment request",
				logger.NewField("telegram_id", createDTO.Client.TelegramId),
				logger.NewField("error", err),
			)
			response.Internal(w, r, h.log)
		}
		return
	}

	response.Data(w, h.log, http.StatusCreated, converters.ShipmentRequest(*res))
}
