package bot_session_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"crm/internal/generated/dto"
	"crm/internal/handlers/rest/converters"
	"crm/internal/pkg/response"
	"crm/internal/service/session"
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
	telegramID, err := response.PathID(r, "telegramId")
	if err != nil {
		response.BadRequest(w, r, h.log, err)
		return
	}

	var sessionDTO dto.BotSessionPut
	err = json.NewDecoder(r.Body).Decode(&sessionDTO)
	if err != nil {
		response.BadRequest(w, r, h.log, err)
		return
	}

	res, err := h.service.SaveSession(r.Context(), telegramID, sessionDTO.State)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidTelegramID),
			errors.Is(err, session.ErrInvalidState):
			response.Error(w, r, h.log, http.StatusBadRequest, response.CodeValidation, err.Error())
		default:
			h.log.Error("save bot session",
				logger.NewField("telegram_id", telegramID),
				logger.NewField("error", err),
			)
			response.Internal(w, r, h.log)
		}
		return
	}

	response.Data(w, h.log, http.StatusOK, converters.BotSession(*res))
}
