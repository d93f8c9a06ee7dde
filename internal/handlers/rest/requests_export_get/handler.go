package requests_export_get

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"crm/internal/handlers/rest/requests_get"
	"crm/internal/pkg/mutation"
	"crm/internal/pkg/request_export"
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

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter, err := requests_get.ParseFilter(r)
	if err != nil {
		var validationErr *mutation.ValidationError
		if errors.As(err, &validationErr) {
			response.Validation(w, r, h.log, validationErr)
			return
		}
		response.BadRequest(w, r, h.log, err)
		return
	}

	requests, err := h.service.GetRequests(r.Context(), filter)
	if err != nil {
		h.log.Error("get shipment requests for export", logger.NewField("error", err))
		response.Internal(w, r, h.log)
		return
	}

	document, err := request_export.XLSX(requests)
	if err != nil {
		h.log.Error("build requests workbook", logger.NewField("error", err))
		response.Internal(w, r, h.log)
		return
	}

	fileName := fmt.Sprintf("requests-%s.xlsx", time.Now().Format("2006-01-02"))

	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(document)
	if err != nil {
		h.log.Error("write requests workbook", logger.NewField("error", err))
	}
}
