package entity

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a trip for data transfer between layers.
type Trip struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	ImageURL    string    `json:"image,omitempty"`
	Bookings    []Booking `json:"bookings"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
