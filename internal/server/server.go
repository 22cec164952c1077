// Package server exposes the REST API: trip and booking CRUD, the PDF
// upload-and-extract endpoint, and itinerary export.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"tripdeck/constants"
	"tripdeck/internal/common"
	"tripdeck/internal/export"
	"tripdeck/internal/extract"
	"tripdeck/internal/images"
	"tripdeck/internal/repository"
)

type Server struct {
	trips    repository.TripRepository
	bookings repository.BookingRepository
	pipeline *extract.Pipeline
	exporter *export.Service
	images   *images.Service // nil when no access key is configured
	logger   *slog.Logger

	maxUploadBytes int64
	mux            *chi.Mux
}

type Config struct {
	MaxUploadBytes int64
}

func New(cfg Config, trips repository.TripRepository, bookings repository.BookingRepository,
	pipeline *extract.Pipeline, exporter *export.Service, imgs *images.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = constants.DefaultMaxUploadBytes
	}

	s := &Server{
		trips:          trips,
		bookings:       bookings,
		pipeline:       pipeline,
		exporter:       exporter,
		images:         imgs,
		logger:         logger,
		maxUploadBytes: cfg.MaxUploadBytes,
	}

	m := chi.NewRouter()
	m.Use(chimw.RealIP)
	m.Use(chimw.RequestID)
	m.Use(chimw.Recoverer)
	m.Use(chimw.Timeout(60 * time.Second))
	m.Use(requestLogger(logger))
	m.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	m.Get("/healthz", s.handleHealth)
	m.Route("/api", func(r chi.Router) {
		r.Route("/trips", func(r chi.Router) {
			r.Get("/", s.handleListTrips)
			r.Post("/", s.handleCreateTrip)
			r.Route("/{tripID}", func(r chi.Router) {
				r.Get("/", s.handleGetTrip)
				r.Put("/", s.handleUpdateTrip)
				r.Delete("/", s.handleDeleteTrip)
				r.Get("/export", s.handleExportTrip)
				r.Get("/bookings", s.handleListBookings)
				r.Post("/bookings", s.handleCreateBooking)
			})
		})
		r.Route("/bookings/{bookingID}", func(r chi.Router) {
			r.Put("/", s.handleUpdateBooking)
			r.Delete("/", s.handleDeleteBooking)
		})
		r.Post("/pdf/parse", s.handleParsePDF)
	})
	s.mux = m
	return s
}

func (s *Server) Handler() http.Handler { return s.mux }

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("http.request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps application errors onto generic HTTP error bodies. No
// internals are leaked to the client.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, common.ErrInvalidInput), errors.Is(err, common.ErrInvalidFileType):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		s.logger.Error("http.internal_error", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": common.ErrInternal.Error()})
	}
}
