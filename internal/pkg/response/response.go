package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"crm/internal/generated/dto"
	"crm/internal/pkg/middlewares/request_id"
	"crm/internal/pkg/mutation"
	"crm/pkg/logger"
)

const (
	CodeBadRequest      = "BAD_REQUEST"
	CodeValidation      = "VALIDATION_ERROR"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeTooManyRequests = "TOO_MANY_REQUESTS"
	CodeBadGateway      = "BAD_GATEWAY"
	CodeUnavailable     = "SERVICE_UNAVAILABLE"
	CodeInternal        = "INTERNAL_ERROR"
)

var ErrInvalidPathID = errors.New("invalid path id")

type encodeLogger interface {
	Error(msg string, fields ...logger.Field)
}

type envelope struct {
	Data any `json:"data"`
}

// Data пишет успешный ответ в виде {"data": ...}.
func Data(w http.ResponseWriter, log encodeLogger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(envelope{Data: data})
	if err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

// Error пишет {code, message, requestId}. Для 500 текст ошибки наружу не уходит.
func Error(w http.ResponseWriter, r *http.Request, log encodeLogger, status int, code, message string) {
	writeError(w, r, log, status, dto.Error{Code: code, Message: message})
}

func BadRequest(w http.ResponseWriter, r *http.Request, log encodeLogger, err error) {
	Error(w, r, log, http.StatusBadRequest, CodeBadRequest, err.Error())
}

func NotFound(w http.ResponseWriter, r *http.Request, log encodeLogger, err error) {
	Error(w, r, log, http.StatusNotFound, CodeNotFound, err.Error())
}

func Conflict(w http.ResponseWriter, r *http.Request, log encodeLogger, err error) {
	Error(w, r, log, http.StatusConflict, CodeConflict, err.Error())
}

func Internal(w http.ResponseWriter, r *http.Request, log encodeLogger) {
	Error(w, r, log, http.StatusInternalServerError, CodeInternal, "Internal server error")
}

// Validation ошибка поля заявки: код вида INVALID_WEIGHT, поле в details.
func Validation(w http.ResponseWriter, r *http.Request, log encodeLogger, verr *mutation.ValidationError) {
	details := map[string]interface{}{"field": verr.Field}
	writeError(w, r, log, http.StatusBadRequest, dto.Error{
		Code:    verr.Code,
		Message: verr.Message,
		Details: &details,
	})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// PathID положительный int64 из переменной маршрута.
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidPathID
	}
	return id, nil
}

func writeError(w http.ResponseWriter, r *http.Request, log encodeLogger, status int, body dto.Error) {
	if id := request_id.FromContext(r.Context()); id != "" {
		body.RequestId = &id
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.Error("encode JSON error response", logger.NewField("error", err))
	}
}
