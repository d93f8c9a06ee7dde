package bot_consent_get

import (
	"net/http"

	"crm/internal/generated/dto"
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
	telegramID, err := response.PathID(r, "telegramId")
	if err != nil {
		response.BadRequest(w, r, h.log, err)
		return
	}

	accepted, err := h.service.GetConsent(r.Context(), telegramID)
	if err != nil {
		h.log.Error("get client consent",
			logger.NewField("telegram_id", telegramID),
			logger.NewField("error", err),
		)
		response.Internal(w, r, h.log)
		return
	}

	response.Data(w, h.log, http.StatusOK, dto.Consent{
		TelegramId: telegramID,
		Accepted:   accepted,
	})
}
