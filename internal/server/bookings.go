package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"tripdeck/constants"
	"tripdeck/internal/common"
	"tripdeck/internal/entity"
)

type bookingRequest struct {
	ID                 string `json:"id"`
	Type               string `json:"type"`
	Title              string `json:"title"`
	StartDate          string `json:"startDate"`
	EndDate            string `json:"endDate"`
	Location           string `json:"location"`
	Description        string `json:"description"`
	ConfirmationNumber string `json:"confirmationNumber"`
	From               string `json:"from"`
	To                 string `json:"to"`
	Airline            string `json:"airline"`
	FlightNumber       string `json:"flightNumber"`
	ImageURL           string `json:"image"`
}

func (br *bookingRequest) toEntity() (*entity.Booking, error) {
	btype, ok := constants.CanonicalBookingType(br.Type)
	if !ok {
		return nil, common.WrapError(common.ErrInvalidInput, "unknown booking type "+br.Type)
	}
	if strings.TrimSpace(br.Title) == "" {
		return nil, common.WrapError(common.ErrInvalidInput, "title is required")
	}
	if strings.TrimSpace(br.StartDate) == "" {
		return nil, common.WrapError(common.ErrInvalidInput, "startDate is required")
	}
	return &entity.Booking{
		Type:               btype,
		Title:              strings.TrimSpace(br.Title),
		StartDate:          strings.TrimSpace(br.StartDate),
		EndDate:            strings.TrimSpace(br.EndDate),
		Location:           strings.TrimSpace(br.Location),
		Description:        strings.TrimSpace(br.Description),
		ConfirmationNumber: strings.TrimSpace(br.ConfirmationNumber),
		From:               strings.TrimSpace(br.From),
		To:                 strings.TrimSpace(br.To),
		Airline:            strings.TrimSpace(br.Airline),
		FlightNumber:       strings.TrimSpace(br.FlightNumber),
		ImageURL:           strings.TrimSpace(br.ImageURL),
	}, nil
}

func (s *Server) handleListBookings(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		s.writeError(w, r, common.WrapError(common.ErrInvalidInput, "trip id must be a UUID"))
		return
	}
	if _, err := s.trips.GetByID(r.Context(), tripID); err != nil {
		s.writeError(w, r, err)
		return
	}
	bookings, err := s.bookings.ListByTrip(r.Context(), tripID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (s *Server) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		s.writeError(w, r, common.WrapError(common.ErrInvalidInput, "trip id must be a UUID"))
		return
	}
	if _, err := s.trips.GetByID(r.Context(), tripID); err != nil {
		s.writeError(w, r, err)
		return
	}

	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, common.WrapError(common.ErrInvalidInput, "malformed JSON body"))
		return
	}
	booking, err := req.toEntity()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	booking.ID = uuid.New()
	if req.ID != "" {
		parsed, err := uuid.Parse(req.ID)
		if err != nil {
			s.writeError(w, r, common.WrapError(common.ErrInvalidInput, "id must be a UUID"))
			return
		}
		booking.ID = parsed
	}
	booking.TripID = tripID

	if err := s.bookings.Create(r.Context(), booking); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Info("booking.created", "booking_id", booking.ID, "trip_id", tripID, "type", booking.Type)
	writeJSON(w, http.StatusCreated, booking)
}

func (s *Server) handleUpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "bookingID"))
	if err != nil {
		s.writeError(w, r, common.WrapError(common.ErrInvalidInput, "booking id must be a UUID"))
		return
	}
	existing, err := s.bookings.GetByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, common.WrapError(common.ErrInvalidInput, "malformed JSON body"))
		return
	}
	booking, err := req.toEntity()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	booking.ID = id
	booking.TripID = existing.TripID

	if err := s.bookings.Update(r.Context(), booking); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (s *Server) handleDeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "bookingID"))
	if err != nil {
		s.writeError(w, r, common.WrapError(common.ErrInvalidInput, "booking id must be a UUID"))
		return
	}
	if err := s.bookings.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Info("booking.deleted", "booking_id", id)
	w.WriteHeader(http.StatusNoContent)
}
