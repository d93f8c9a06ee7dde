package city_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"crm/internal/entities"
	"crm/internal/generated/dto"
	"crm/internal/handlers/rest/converters"
	"crm/internal/pkg/response"
	"crm/internal/service/city"
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
	var cityDTO dto.CityCreate
	err := json.NewDecoder(r.Body).Decode(&cityDTO)
	if err != nil {
		response.BadRequest(w, r, h.log, err)
		return
	}

	cityModify := entities.CityModify{
		ShortName: &cityDTO.ShortName,
		FullName:  &cityDTO.FullName,
	}

	res, err := h.service.CreateCity(r.Context(), cityModify)
	if err != nil {
		switch {
		case errors.Is(err, city.ErrMissingRequiredFields),
			errors.Is(err, city.ErrInvalidShortName),
			errors.Is(err, city.ErrInvalidFullName):
			response.Error(w, r, h.log, http.StatusBadRequest, response.CodeValidation, err.Error())
		case errors.Is(err, city.ErrCityNotFound):
			response.NotFound(w, r, h.log, city.ErrCityNotFound)
		case errors.Is(err, city.ErrConflict):
			response.Conflict(w, r, h.log, city.ErrConflict)
		default:
			h.log.Error("create city", logger.NewField("error", err))
			response.Internal(w, r, h.log)
		}
		return
	}

	response.Data(w, h.log, http.StatusCreated, converters.City(*res))
}
