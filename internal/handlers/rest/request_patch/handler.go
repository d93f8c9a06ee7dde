package request_patch

import (
	"encoding/json"
	"errors"
	"net/http"

	"crm/internal/generated/dto"
	"crm/internal/handlers/rest/converters"
	"crm/internal/pkg/middlewares/auth"
	"crm/internal/pkg/mutation"
	"crm/internal/pkg/response"
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
	id, err := response.PathID(r, "id")
	if err != nil {
		response.BadRequest(w, r, h.log, err)
		return
	}

	var patchDTO dto.RequestPatch
	err = json.NewDecoder(r.Body).Decode(&patchDTO)
	if err != nil {
		response.BadRequest(w, r, h.log, err)
		return
	}

	actor := auth.ActorFromContext(r.Context())

	res, err := h.service.UpdateRequest(r.Context(), id, converters.RequestPatch(patchDTO), actor)
	if err != nil {
		var validationErr *mutation.ValidationError
		switch {
		case errors.As(err, &validationErr):
			response.Validation(w, r, h.log, validationErr)
		case errors.Is(err, shipment.ErrRequestNotFound):
			response.NotFound(w, r, h.log, shipment.ErrRequestNotFound)
		default:
			h.log.Error("update shipment request",
				logger.NewField("shipment_request_id", id),
				logger.NewField("error", err),
			)
			response.Internal(w, r, h.log)
		}
		return
	}

	response.Data(w, h.log, http.StatusOK, converters.ShipmentRequest(*res))
}
