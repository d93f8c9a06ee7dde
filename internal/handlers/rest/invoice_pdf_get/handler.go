package invoice_pdf_get

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"crm/internal/pkg/response"
	"crm/internal/service/invoice"
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

	res, document, err := h.service.RenderPDF(r.Context(), id)
	if err != nil {
		if errors.Is(err, invoice.ErrInvoiceNotFound) {
			response.NotFound(w, r, h.log, invoice.ErrInvoiceNotFound)
			return
		}
		h.log.Error("render invoice",
			logger.NewField("invoice_id", id),
			logger.NewField("error", err),
		)
		response.Internal(w, r, h.log)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, invoice.FileName(res)))
	w.Header().Set("Content-Length", strconv.Itoa(len(document)))
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(document)
	if err != nil {
		h.log.Error("write invoice pdf", logger.NewField("error", err))
	}
}
