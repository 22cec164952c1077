package constants

import "strings"

// BookingType classifies a booking within a trip.
type BookingType string

// Stable values (store these exact strings in DB and JSON).
const (
	BookingFlight   BookingType = "flight"
	BookingHotel    BookingType = "hotel"
	BookingCar      BookingType = "car"
	BookingActivity BookingType = "activity"
	BookingOther    BookingType = "other"
)

var allBookingTypes = []BookingType{
	BookingFlight,
	BookingHotel,
	BookingCar,
	BookingActivity,
	BookingOther,
}

func BookingTypesAsStrings() []string {
	result := make([]string, len(allBookingTypes))
	for i, bt := range allBookingTypes {
		result[i] = string(bt)
	}
	return result
}

// CanonicalBookingType maps free-form type strings onto a known BookingType.
// Unknown or empty input maps to BookingOther.
func CanonicalBookingType(input string) (BookingType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return BookingOther, false
	}

	synonyms := map[string]BookingType{
		"flights":    BookingFlight,
		"air":        BookingFlight,
		"plane":      BookingFlight,
		"lodging":    BookingHotel,
		"stay":       BookingHotel,
		"hostel":     BookingHotel,
		"rental":     BookingCar,
		"car rental": BookingCar,
		"restaurant": BookingActivity,
		"tour":       BookingActivity,
		"event":      BookingActivity,
	}
	if bt, ok := synonyms[normalized]; ok {
		return bt, true
	}

	for _, bt := range allBookingTypes {
		if normalized == string(bt) {
			return bt, true
		}
	}
	return BookingOther, false
}

// DefaultTitle returns the human label used when extraction could not
// resolve a title of its own.
func DefaultTitle(bt BookingType) string {
	switch bt {
	case BookingFlight:
		return "Flight Booking"
	case BookingHotel:
		return "Hotel Reservation"
	case BookingCar:
		return "Car Rental"
	case BookingActivity:
		return "Activity Booking"
	default:
		return "Travel Booking"
	}
}
