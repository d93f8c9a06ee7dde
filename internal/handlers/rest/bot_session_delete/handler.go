package bot_session_delete

import (
	"errors"
	"net/http"

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

	err = h.service.DeleteSession(r.Context(), telegramID)
	if err != nil && !errors.Is(err, session.ErrSessionNotFound) {
		h.log.Error("delete bot session",
			logger.NewField("telegram_id", telegramID),
			logger.NewField("error", err),
		)
		response.Internal(w, r, h.log)
		return
	}

	response.NoContent(w)
}
