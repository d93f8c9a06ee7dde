package bot_session_get

import (
	"errors"
	"net/http"

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

	res, err := h.service.GetSession(r.Context(), telegramID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			response.NotFound(w, r, h.log, session.ErrSessionNotFound)
			return
		}
		h.log.Error("get bot session",
			logger.NewField("telegram_id", telegramID),
			logger.NewField("error", err),
		)
		response.Internal(w, r, h.log)
		return
	}

	response.Data(w, h.log, http.StatusOK, converters.BotSession(*res))
}
