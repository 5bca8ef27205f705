package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"

	"github.com/osse101/DietDiary_Go/internal/database"
	"github.com/osse101/DietDiary_Go/internal/diary"
	"github.com/osse101/DietDiary_Go/internal/food"
	"github.com/osse101/DietDiary_Go/internal/handler"
	"github.com/osse101/DietDiary_Go/internal/logger"
	"github.com/osse101/DietDiary_Go/internal/metrics"
	"github.com/osse101/DietDiary_Go/internal/middleware"
	"github.com/osse101/DietDiary_Go/internal/recipe"
	"github.com/osse101/DietDiary_Go/internal/user"
)

// Services groups the engine components exposed over HTTP.
type Services struct {
	Users       user.Service
	Foods       food.Service
	Recipes     recipe.Service
	Accumulator diary.Accumulator
	Aggregator  diary.Aggregator
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance. An empty jwtSecret disables bearer tokens.
func NewServer(port int, apiKey, jwtSecret string, trustedProxies []string, dbPool database.Pool, svc Services) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	if jwtSecret != "" {
		r.Use(middleware.BearerIdentity([]byte(jwtSecret)))
	}
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", handler.HandleRegisterUser(svc.Users))
			r.Get("/info", handler.HandleGetUserInfo(svc.Users))
		})

		r.Route("/food", func(r chi.Router) {
			r.Get("/search", handler.HandleSearchFood(svc.Foods))
			r.Post("/", handler.HandleCreateFood(svc.Foods))
			r.Delete("/{id}", handler.HandleDeleteFood(svc.Foods))
		})

		r.Route("/ingredient", func(r chi.Router) {
			r.Post("/", handler.HandleCreateIngredient(svc.Recipes))
			r.Delete("/{id}", handler.HandleDeleteIngredient(svc.Recipes))
		})

		r.Route("/recipe", func(r chi.Router) {
			r.Get("/", handler.HandleGetRecipe(svc.Recipes))
			r.Post("/", handler.HandleCreateRecipe(svc.Recipes))
			r.Put("/", handler.HandleReplaceRecipe(svc.Recipes))
			r.Delete("/line/{id}", handler.HandleDeleteRecipeLine(svc.Recipes))
		})

		r.Route("/diary", func(r chi.Router) {
			r.Post("/food", handler.HandleRecordFood(svc.Accumulator))
			r.Delete("/food/{id}", handler.HandleDeleteEntry(svc.Accumulator))
			r.Post("/stat", handler.HandleApplyDelta(svc.Accumulator))
			r.Get("/day", handler.HandleGetDay(svc.Accumulator))
			r.Get("/period", handler.HandleListPeriod(svc.Aggregator))
			r.Get("/foods", handler.HandleListEntries(svc.Accumulator))
			r.Get("/foods/period", handler.HandleListEntriesPeriod(svc.Accumulator))
		})
	})

	// Docs register themselves when the generated package is linked in.
	if _, err := swag.ReadDoc(); err == nil {
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// Handler exposes the routed middleware chain.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		for _, p := range quietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		if userID := middleware.GetUserID(ctx); userID != "" {
			log.Debug("Bearer identity", "user_id", userID)
		}
		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
		} else {
			out[k] = v
		}
	}
	return out
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
