package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/DietDiary_Go/internal/database"
	"github.com/osse101/DietDiary_Go/internal/logger"
)

const (
	readinessTimeout = 2 * time.Second

	statusOK          = "ok"
	statusUnavailable = "unavailable"
	msgDatabaseDown   = "database connection failed"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: statusOK})
	}
}

// HandleReadyz reports ready only while the diary database answers pings
// @Summary Readiness check
// @Description Returns OK if the diary database is reachable
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(dbPool database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			logger.FromContext(r.Context()).Error("Readiness check failed", "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  statusUnavailable,
				Message: msgDatabaseDown,
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: statusOK})
	}
}
