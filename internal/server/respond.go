package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"hwservices/internal/logger"
	"hwservices/internal/manager"
	"hwservices/internal/models"

	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError переводит ошибку менеджера в HTTP-ответ.
// notFound - текст detail для 404, он свой у каждого сервиса.
func writeError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	var verr *manager.ValidationError
	switch {
	case errors.Is(err, manager.ErrNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Detail: notFound})
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{Detail: verr.Error()})
	default:
		logger.Error(r.Context(), err, "Ошибка обработки запроса", "path", r.URL.Path)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Detail: "внутренняя ошибка"})
	}
}

// decodeJSON читает тело запроса; ошибка разбора - это ValidationError
func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return &manager.ValidationError{Field: "body", Reason: err.Error()}
	}
	// после JSON-значения допустимы только пробелы
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return &manager.ValidationError{Field: "body", Reason: "лишние данные после JSON"}
	}
	return nil
}

func intParam(r *http.Request, name string) (int, error) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, &manager.ValidationError{Field: name, Reason: "ожидалось целое число"}
	}
	return v, nil
}
