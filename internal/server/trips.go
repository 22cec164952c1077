package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"tripdeck/internal/common"
	"tripdeck/internal/entity"
)

type tripRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	ImageURL    string `json:"image"`
}

func (tr *tripRequest) validate() error {
	if strings.TrimSpace(tr.Title) == "" {
		return common.WrapError(common.ErrInvalidInput, "title is required")
	}
	if strings.TrimSpace(tr.Destination) == "" {
		return common.WrapError(common.ErrInvalidInput, "destination is required")
	}
	if strings.TrimSpace(tr.StartDate) == "" || strings.TrimSpace(tr.EndDate) == "" {
		return common.WrapError(common.ErrInvalidInput, "startDate and endDate are required")
	}
	return nil
}

func (s *Server) handleListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]*entity.Trip, 0, len(trips))
	for _, t := range trips {
		if bookings, err := s.bookings.ListByTrip(r.Context(), t.ID); err == nil {
			t.Bookings = bookings
		}
		out = append(out, t)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, common.WrapError(common.ErrInvalidInput, "malformed JSON body"))
		return
	}
	if err := req.validate(); err != nil {
		s.writeError(w, r, err)
		return
	}

	id := uuid.New()
	if req.ID != "" {
		parsed, err := uuid.Parse(req.ID)
		if err != nil {
			s.writeError(w, r, common.WrapError(common.ErrInvalidInput, "id must be a UUID"))
			return
		}
		id = parsed
	}

	trip := &entity.Trip{
		ID:          id,
		Title:       strings.TrimSpace(req.Title),
		Destination: strings.TrimSpace(req.Destination),
		StartDate:   strings.TrimSpace(req.StartDate),
		EndDate:     strings.TrimSpace(req.EndDate),
		ImageURL:    strings.TrimSpace(req.ImageURL),
		Bookings:    []entity.Booking{},
	}

	// Best-effort cover photo; a lookup failure must not block the create.
	if trip.ImageURL == "" && s.images != nil {
		trip.ImageURL = s.images.DestinationImage(r.Context(), trip.Destination)
	}

	if err := s.trips.Create(r.Context(), trip); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Info("trip.created", "trip_id", trip.ID, "destination", trip.Destination)
	writeJSON(w, http.StatusCreated, trip)
}

func (s *Server) handleGetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		s.writeError(w, r, common.WrapError(common.ErrInvalidInput, "trip id must be a UUID"))
		return
	}
	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if bookings, err := s.bookings.ListByTrip(r.Context(), id); err == nil {
		trip.Bookings = bookings
	}
	writeJSON(w, http.StatusOK, trip)
}

func (s *Server) handleUpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		s.writeError(w, r, common.WrapError(common.ErrInvalidInput, "trip id must be a UUID"))
		return
	}
	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, common.WrapError(common.ErrInvalidInput, "malformed JSON body"))
		return
	}
	if err := req.validate(); err != nil {
		s.writeError(w, r, err)
		return
	}

	trip := &entity.Trip{
		ID:          id,
		Title:       strings.TrimSpace(req.Title),
		Destination: strings.TrimSpace(req.Destination),
		StartDate:   strings.TrimSpace(req.StartDate),
		EndDate:     strings.TrimSpace(req.EndDate),
		ImageURL:    strings.TrimSpace(req.ImageURL),
		Bookings:    []entity.Booking{},
	}
	if err := s.trips.Update(r.Context(), trip); err != nil {
		s.writeError(w, r, err)
		return
	}
	if bookings, err := s.bookings.ListByTrip(r.Context(), id); err == nil {
		trip.Bookings = bookings
	}
	writeJSON(w, http.StatusOK, trip)
}

func (s *Server) handleDeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		s.writeError(w, r, common.WrapError(common.ErrInvalidInput, "trip id must be a UUID"))
		return
	}
	if err := s.trips.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Info("trip.deleted", "trip_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleExportTrip(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		s.writeError(w, r, common.WrapError(common.ErrInvalidInput, "trip id must be a UUID"))
		return
	}
	data, err := s.exporter.ExportTripXLSX(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="itinerary.xlsx"`)
	_, _ = w.Write(data)
}
