package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/osse101/DietDiary_Go/internal/diary"
	"github.com/osse101/DietDiary_Go/internal/domain"
	"github.com/osse101/DietDiary_Go/internal/logger"
	"github.com/osse101/DietDiary_Go/internal/report"
)

const (
	reportKindStats = "stats"
	reportKindFoods = "foods"
)

// RecordFoodRequest logs one serving of a food for a day
type RecordFoodRequest struct {
	User   string `json:"user,omitempty" validate:"omitempty,uuid"`
	FoodID int    `json:"food_id" validate:"gt=0"`
	Date   string `json:"date" validate:"required,day"`
}

// ApplyDeltaRequest adds manual values to a day's statistics
type ApplyDeltaRequest struct {
	User string `json:"user,omitempty" validate:"omitempty,uuid"`
	Date string `json:"date" validate:"required,day"`
	NutrientsRequest
}

// PeriodResponse wraps a range of daily statistics with their totals
type PeriodResponse struct {
	Start   string               `json:"date_start"`
	End     string               `json:"date_end"`
	Summary domain.PeriodSummary `json:"summary"`
	Stats   []domain.DailyStat   `json:"stats"`
}

// HandleRecordFood logs a food for a user and day and returns the updated day
// @Summary Record food
// @Description Adds the food's per-100g values to the day and keeps a snapshot on the log entry
// @Tags diary
// @Accept json
// @Produce json
// @Param request body RecordFoodRequest true "Entry"
// @Success 200 {object} domain.DailyStat
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /diary/food [post]
func HandleRecordFood(acc diary.Accumulator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecordFoodRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Record food"); err != nil {
			return
		}
		userID, ok := resolveUser(w, r, req.User)
		if !ok {
			return
		}
		day, err := domain.ParseDay(req.Date)
		if err != nil {
			respondServiceError(w, r, "Record food", err)
			return
		}

		LogRequestFields(logger.FromContext(r.Context()), "user_id", userID, "food_id", req.FoodID, "date", req.Date)

		stat, err := acc.RecordFood(r.Context(), userID, req.FoodID, day)
		if err != nil {
			respondServiceError(w, r, "Record food", err)
			return
		}

		respondJSON(w, http.StatusOK, stat)
	}
}

// HandleDeleteEntry removes a log entry and subtracts its snapshot from the day
// @Summary Delete diary entry
// @Tags diary
// @Produce json
// @Param id path int true "Entry ID"
// @Param user query string false "User ID (ignored when a bearer token is sent)"
// @Success 200 {object} domain.DailyStat
// @Success 204 "Entry removed, no statistic row for its day"
// @Failure 404 {object} ErrorResponse
// @Router /diary/food/{id} [delete]
func HandleDeleteEntry(acc diary.Accumulator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(w, r)
		if !ok {
			return
		}
		userID, ok := resolveUser(w, r, r.URL.Query().Get(paramUser))
		if !ok {
			return
		}

		stat, err := acc.DeleteEntry(r.Context(), userID, id)
		if err != nil {
			respondServiceError(w, r, "Delete entry", err)
			return
		}
		if stat == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		respondJSON(w, http.StatusOK, stat)
	}
}

// HandleApplyDelta adds manual values to a day without a log entry
// @Summary Apply statistic delta
// @Tags diary
// @Accept json
// @Produce json
// @Param request body ApplyDeltaRequest true "Delta"
// @Success 200 {object} domain.DailyStat
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /diary/stat [post]
func HandleApplyDelta(acc diary.Accumulator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ApplyDeltaRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Apply delta"); err != nil {
			return
		}
		userID, ok := resolveUser(w, r, req.User)
		if !ok {
			return
		}
		day, err := domain.ParseDay(req.Date)
		if err != nil {
			respondServiceError(w, r, "Apply delta", err)
			return
		}

		stat, err := acc.ApplyDelta(r.Context(), userID, day, req.toDomain())
		if err != nil {
			respondServiceError(w, r, "Apply delta", err)
			return
		}

		respondJSON(w, http.StatusOK, stat)
	}
}

// HandleGetDay returns the statistics of one day
// @Summary Get day statistics
// @Description Responds 404 with a zero record when nothing was logged that day
// @Tags diary
// @Produce json
// @Param user query string false "User ID (taken from the bearer token when present)"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} domain.DailyStat
// @Failure 404 {object} domain.DailyStat
// @Router /diary/day [get]
func HandleGetDay(acc diary.Accumulator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := resolveUser(w, r, r.URL.Query().Get(paramUser))
		if !ok {
			return
		}
		day, ok := parseDayParam(w, r, paramDate)
		if !ok {
			return
		}

		stat, found, err := acc.GetDay(r.Context(), userID, day)
		if err != nil {
			respondServiceError(w, r, "Get day", err)
			return
		}
		if !found {
			respondJSON(w, http.StatusNotFound, stat)
			return
		}

		respondJSON(w, http.StatusOK, stat)
	}
}

// HandleListPeriod returns the daily statistics of an inclusive date range
// @Summary List period statistics
// @Tags diary
// @Produce json,text/csv
// @Param user query string false "User ID (taken from the bearer token when present)"
// @Param date_start query string true "First day (YYYY-MM-DD)"
// @Param date_end query string true "Last day (YYYY-MM-DD)"
// @Param format query string false "json or csv" default(json)
// @Success 200 {object} PeriodResponse
// @Failure 400 {object} ErrorResponse
// @Router /diary/period [get]
func HandleListPeriod(agg diary.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, start, end, format, ok := parsePeriodRequest(w, r)
		if !ok {
			return
		}

		stats, err := agg.ListRange(r.Context(), userID, start, end)
		if err != nil {
			respondServiceError(w, r, "List period", err)
			return
		}

		if format == formatCSV {
			respondCSV(w, r, report.FileName(reportKindStats, domain.FormatDay(start), domain.FormatDay(end)),
				report.StatHeader, report.StatRows(stats))
			return
		}

		if stats == nil {
			stats = []domain.DailyStat{}
		}
		respondJSON(w, http.StatusOK, PeriodResponse{
			Start:   domain.FormatDay(start),
			End:     domain.FormatDay(end),
			Summary: diary.Summarize(stats),
			Stats:   stats,
		})
	}
}

// HandleListEntries returns the foods logged on one day
// @Summary List day entries
// @Tags diary
// @Produce json
// @Param user query string false "User ID (taken from the bearer token when present)"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {array} domain.FoodLogEntry
// @Router /diary/foods [get]
func HandleListEntries(acc diary.Accumulator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := resolveUser(w, r, r.URL.Query().Get(paramUser))
		if !ok {
			return
		}
		day, ok := parseDayParam(w, r, paramDate)
		if !ok {
			return
		}

		entries, err := acc.ListEntries(r.Context(), userID, day)
		if err != nil {
			respondServiceError(w, r, "List entries", err)
			return
		}
		if entries == nil {
			entries = []domain.FoodLogEntry{}
		}

		respondJSON(w, http.StatusOK, entries)
	}
}

// HandleListEntriesPeriod returns the foods logged over an inclusive date range
// @Summary List period entries
// @Tags diary
// @Produce json,text/csv
// @Param user query string false "User ID (taken from the bearer token when present)"
// @Param date_start query string true "First day (YYYY-MM-DD)"
// @Param date_end query string true "Last day (YYYY-MM-DD)"
// @Param format query string false "json or csv" default(json)
// @Success 200 {array} domain.FoodLogEntry
// @Failure 400 {object} ErrorResponse
// @Router /diary/foods/period [get]
func HandleListEntriesPeriod(acc diary.Accumulator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, start, end, format, ok := parsePeriodRequest(w, r)
		if !ok {
			return
		}

		entries, err := acc.ListEntriesRange(r.Context(), userID, start, end)
		if err != nil {
			respondServiceError(w, r, "List period entries", err)
			return
		}

		if format == formatCSV {
			respondCSV(w, r, report.FileName(reportKindFoods, domain.FormatDay(start), domain.FormatDay(end)),
				report.EntryHeader, report.EntryRows(entries))
			return
		}

		if entries == nil {
			entries = []domain.FoodLogEntry{}
		}
		respondJSON(w, http.StatusOK, entries)
	}
}

func parsePeriodRequest(w http.ResponseWriter, r *http.Request) (userID string, start, end time.Time, format string, ok bool) {
	if userID, ok = resolveUser(w, r, r.URL.Query().Get(paramUser)); !ok {
		return
	}
	if start, ok = parseDayParam(w, r, paramDateStart); !ok {
		return
	}
	if end, ok = parseDayParam(w, r, paramDateEnd); !ok {
		return
	}
	format, ok = parseFormatParam(w, r)
	return
}

// respondCSV renders into a pooled buffer so a write failure can still become a 500.
func respondCSV(w http.ResponseWriter, r *http.Request, filename string, header []string, rows [][]string) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := report.WriteCSV(buf, header, rows); err != nil {
		logger.FromContext(r.Context()).Error("CSV export failed", "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgExportFailed)
		return
	}

	w.Header().Set("Content-Type", report.ContentTypeCSV)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.FromContext(r.Context()).Error("Failed to write CSV response", "error", err)
	}
}
