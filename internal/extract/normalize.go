package extract

import (
	"strings"
	"time"

	"tripdeck/constants"
)

// WhenLayout is the canonical serialization for draft dates. The form layer
// consumes local date-times, so no zone suffix is carried.
const WhenLayout = "2006-01-02T15:04:05"

// DateLayout serializes dates whose source carried no time of day. Extractors
// must use it for clockless dates so a midnight timestamp is never mistaken
// for an extracted departure or arrival time.
const DateLayout = "2006-01-02"

var whenLayouts = []struct {
	layout   string
	hasClock bool
}{
	{time.RFC3339, true},
	{"2006-01-02T15:04:05", true},
	{"2006-01-02T15:04", true},
	{"2006-01-02 15:04:05", true},
	{"2006-01-02 15:04", true},
	{"2006-01-02", false},
}

// ParseWhen parses a draft date string in any accepted layout. hasClock
// reports whether the input carried a time-of-day portion.
func ParseWhen(s string) (t time.Time, hasClock bool, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, false
	}
	for _, l := range whenLayouts {
		if parsed, err := time.Parse(l.layout, s); err == nil {
			return parsed, l.hasClock, true
		}
	}
	return time.Time{}, false, false
}

// FormatWhen renders a time in the canonical draft layout.
func FormatWhen(t time.Time) string {
	return t.Format(WhenLayout)
}

// Normalize folds variant inputs into the canonical draft shape: booking type
// coerced to a known value, dates reformatted to the canonical layout with
// the non-inversion invariant enforced, flight location synthesized from
// endpoints, and departure/arrival times derived from date-time values when
// no explicit time field resolved. Fields the source never produced stay
// absent; Normalize adds no defaults of its own.
func Normalize(d Draft) Draft {
	out := d
	out.Type, _ = constants.CanonicalBookingType(string(d.Type))

	trim := func(s *string) { *s = strings.TrimSpace(*s) }
	trim(&out.Title)
	trim(&out.Location)
	trim(&out.Description)
	trim(&out.ConfirmationNumber)
	trim(&out.From)
	trim(&out.To)
	trim(&out.Airline)
	trim(&out.FlightNumber)
	trim(&out.DepartureTime)
	trim(&out.ArrivalTime)

	start, startClock, startOK := ParseWhen(d.StartDate)
	end, endClock, endOK := ParseWhen(d.EndDate)
	if startOK {
		out.StartDate = FormatWhen(start)
	} else {
		out.StartDate = strings.TrimSpace(d.StartDate)
	}
	if endOK {
		out.EndDate = FormatWhen(end)
	} else {
		out.EndDate = strings.TrimSpace(d.EndDate)
	}

	// An end before the start is an incoherent pair, usually a stray date
	// picked up elsewhere in the document. Keep the start, drop the end.
	if startOK && endOK && end.Before(start) {
		out.EndDate = ""
		endOK = false
	}

	if out.Type == constants.BookingFlight {
		if out.Location == "" && out.From != "" && out.To != "" {
			out.Location = out.From + " to " + out.To
		}
		if out.DepartureTime == "" && startOK && startClock {
			out.DepartureTime = start.Format("15:04")
		}
		if out.ArrivalTime == "" && endOK && endClock {
			out.ArrivalTime = end.Format("15:04")
		}
	}

	return out
}
