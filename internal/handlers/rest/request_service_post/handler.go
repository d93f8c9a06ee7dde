package request_service_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"crm/internal/generated/dto"
	"crm/internal/handlers/rest/converters"
	"crm/internal/pkg/response"
	"crm/internal/service/line_item"
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
	requestID, err := response.PathID(r, "id")
	if err != nil {
		response.BadRequest(w, r, h.log, err)
		return
	}

	var serviceDTO dto.RequestServiceModify
	err = json.NewDecoder(r.Body).Decode(&serviceDTO)
	if err != nil {
		response.BadRequest(w, r, h.log, err)
		return
	}

	modify := converters.RequestServiceModify(serviceDTO)
	modify.RequestID = &requestID

	res, err := h.service.CreateService(r.Context(), modify)
	if err != nil {
		switch {
		case errors.Is(err, line_item.ErrMissingRequiredFields),
			errors.Is(err, line_item.ErrInvalidDescription),
			errors.Is(err, line_item.ErrInvalidQuantity),
			errors.Is(err, line_item.ErrInvalidPrice):
			response.Error(w, r, h.log, http.StatusBadRequest, response.CodeValidation, err.Error())
		case errors.Is(err, shipment.ErrRequestNotFound):
			response.NotFound(w, r, h.log, shipment.ErrRequestNotFound)
		case errors.Is(err, line_item.ErrServiceNotFound):
			response.NotFound(w, r, h.log, line_item.ErrServiceNotFound)
		default:
			h.log.Error("create request service",
				logger.NewField("shipment_request_id", requestID),
				logger.NewField("error", err),
			)
			response.Internal(w, r, h.log)
		}
		return
	}

	response.Data(w, h.log, http.StatusCreated, converters.RequestService(*res))
}
