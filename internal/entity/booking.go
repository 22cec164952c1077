package entity

import (
	"time"

	"github.com/google/uuid"

	"tripdeck/constants"
)

// Booking represents one reservation attached to a trip. Flight-only fields
// stay empty for the other booking types.
type Booking struct {
	ID                 uuid.UUID             `json:"id"`
	TripID             uuid.UUID             `json:"trip_id"`
	Type               constants.BookingType `json:"type"`
	Title              string                `json:"title"`
	StartDate          string                `json:"startDate"`
	EndDate            string                `json:"endDate,omitempty"`
	Location           string                `json:"location,omitempty"`
	Description        string                `json:"description,omitempty"`
	ConfirmationNumber string                `json:"confirmationNumber,omitempty"`
	From               string                `json:"from,omitempty"`
	To                 string                `json:"to,omitempty"`
	Airline            string                `json:"airline,omitempty"`
	FlightNumber       string                `json:"flightNumber,omitempty"`
	ImageURL           string                `json:"image,omitempty"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}
