package schedule_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"crm/internal/entities"
	"crm/internal/generated/dto"
	"crm/internal/handlers/rest/converters"
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
	var entryDTO dto.ScheduleEntryCreate
	err := json.NewDecoder(r.Body).Decode(&entryDTO)
	if err != nil {
		response.BadRequest(w, r, h.log, err)
		return
	}

	res, err := h.service.CreateEntry(r.Context(), entities.ScheduleEntryModify{
		CityID:       entryDTO.CityId,
		DeliveryDate: entryDTO.DeliveryDate,
		AcceptDays:   entryDTO.AcceptDays,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrMissingRequiredFields),
			errors.Is(err, schedule.ErrInvalidDate),
			errors.Is(err, schedule.ErrInvalidAcceptDays):
			response.Error(w, r, h.log, http.StatusBadRequest, response.CodeValidation, err.Error())
		case errors.Is(err, schedule.ErrCityNotFound):
			response.NotFound(w, r, h.log, schedule.ErrCityNotFound)
		default:
			h.log.Error("create schedule entry", logger.NewField("error", err))
			response.Internal(w, r, h.log)
		}
		return
	}

	response.Data(w, h.log, http.StatusCreated, converters.ScheduleEntry(*res))
}
