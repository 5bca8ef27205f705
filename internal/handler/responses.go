package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/osse101/DietDiary_Go/internal/domain"
	"github.com/osse101/DietDiary_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the mapped status and message.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}

	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP statuses and
// user-facing messages. Input errors carry their detail since it names the
// field or ingredient at fault; persistence errors never leak.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, detail(err, ErrMsgInvalidInputError)
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, detail(err, ErrMsgAlreadyExistsError)
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrMsgRecipeNotFoundError
	case errors.Is(err, domain.ErrIngredientNotFound):
		return http.StatusNotFound, detail(err, ErrMsgIngredientNotFound)
	case errors.Is(err, domain.ErrFoodNotFound):
		return http.StatusNotFound, ErrMsgFoodNotFoundError
	case errors.Is(err, domain.ErrEntryNotFound):
		return http.StatusNotFound, ErrMsgEntryNotFoundError
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrMsgNotFoundError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// detail returns the error text when it is short enough to show, else fallback.
func detail(err error, fallback string) string {
	msg := err.Error()
	if msg == "" || len(msg) > 300 || strings.ContainsAny(msg, "\n\r") {
		return fallback
	}
	return msg
}
