package requests_get

import (
	"errors"
	"net/http"

	"crm/internal/entities"
	"crm/internal/handlers/rest/converters"
	"crm/internal/pkg/mutation"
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
	filter, err := ParseFilter(r)
	if err != nil {
		var validationErr *mutation.ValidationError
		if errors.As(err, &validationErr) {
			response.Validation(w, r, h.log, validationErr)
			return
		}
		response.BadRequest(w, r, h.log, err)
		return
	}

	res, err := h.service.GetRequests(r.Context(), filter)
	if err != nil {
		h.log.Error("get shipment requests", logger.NewField("error", err))
		response.Internal(w, r, h.log)
		return
	}

	response.Data(w, h.log, http.StatusOK, converters.ShipmentRequests(res))
}

// ParseFilter читает ?status=; пустое значение означает все заявки.
func ParseFilter(r *http.Request) (entities.RequestFilter, error) {
	var filter entities.RequestFilter

	value := r.URL.Query().Get("status")
	if value == "" {
		return filter, nil
	}

	status := entities.RequestStatus(value)
	if !status.IsValid() {
		return filter, mutation.ErrInvalidStatus
	}
	filter.Status = &status
	return filter, nil
}
