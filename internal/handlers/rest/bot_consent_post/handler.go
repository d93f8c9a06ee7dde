package bot_consent_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"crm/internal/generated/dto"
	"crm/internal/handlers/rest/converters"
	"crm/internal/pkg/response"
	"crm/internal/service/client"
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
	var profileDTO dto.ClientProfile
	err := json.NewDecoder(r.Body).Decode(&profileDTO)
	if err != nil {
		response.BadRequest(w, r, h.log, err)
		return
	}

	res, err := h.service.AcceptConsent(r.Context(), converters.ClientProfile(profileDTO))
	if err != nil {
		if errors.Is(err, client.ErrInvalidTelegramID) {
			response.Error(w, r, h.log, http.StatusBadRequest, response.CodeValidation, err.Error())
			return
		}
		h.log.Error("accept client consent",
			logger.NewField("telegram_id", profileDTO.TelegramId),
			logger.NewField("error", err),
		)
		response.Internal(w, r, h.log)
		return
	}

	response.Data(w, h.log, http.StatusOK, converters.Client(*res))
}
