package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/DietDiary_Go/internal/domain"
	"github.com/osse101/DietDiary_Go/internal/logger"
	"github.com/osse101/DietDiary_Go/internal/middleware"
)

// Query parameter names shared by the diary endpoints.
const (
	paramUser      = "user"
	paramDate      = "date"
	paramDateStart = "date_start"
	paramDateEnd   = "date_end"
	paramFormat    = "format"
	paramName      = "name"
	paramLang      = "lang"
	paramUsername  = "username"
	paramID        = "id"

	formatJSON = "json"
	formatCSV  = "csv"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// It logs the operation and returns a standardized error response to the client.
//
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req RecordFoodRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Record food"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetQueryParam retrieves a required query parameter from the request.
// If the parameter is missing or empty, it writes an error response and returns false.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam retrieves an optional query parameter, falling back to defaultValue.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// LogRequestFields logs common request fields at debug level.
//
//	LogRequestFields(log, "user_id", userID, "food_id", req.FoodID)
func LogRequestFields(log *slog.Logger, keyvals ...any) {
	if len(keyvals)%2 != 0 {
		log.Warn("LogRequestFields called with odd number of arguments")
		return
	}
	log.Debug("Request details", keyvals...)
}

// parseIDParam reads a positive integer chi URL parameter.
func parseIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, paramID), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
		return 0, false
	}
	return id, true
}

// parseDayParam reads a required YYYY-MM-DD query parameter.
func parseDayParam(w http.ResponseWriter, r *http.Request, paramName string) (time.Time, bool) {
	raw, ok := GetQueryParam(r, w, paramName)
	if !ok {
		return time.Time{}, false
	}
	day, err := domain.ParseDay(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidDate, paramName))
		return time.Time{}, false
	}
	return day, true
}

// parseFormatParam accepts json (default) or csv.
func parseFormatParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	format := GetOptionalQueryParam(r, paramFormat, formatJSON)
	if format != formatJSON && format != formatCSV {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidFormat)
		return "", false
	}
	return format, true
}

// resolveUser picks the acting user. A verified bearer subject wins; an
// explicit user that disagrees with it is rejected with 403.
func resolveUser(w http.ResponseWriter, r *http.Request, explicit string) (string, bool) {
	subject := middleware.GetUserID(r.Context())
	switch {
	case subject != "" && explicit != "" && explicit != subject:
		logger.FromContext(r.Context()).Warn("Bearer subject does not match requested user",
			"subject", subject, "requested", explicit)
		respondError(w, http.StatusForbidden, ErrMsgForeignUser)
		return "", false
	case subject != "":
		return subject, true
	case explicit != "":
		return explicit, true
	default:
		respondError(w, http.StatusBadRequest, ErrMsgMissingUser)
		return "", false
	}
}
