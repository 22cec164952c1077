// Package heuristic is the local field extractor: ordered pattern rules over
// the acquired PDF text, with label matching in English and Swedish. It
// never fails; anything it cannot resolve degrades to a default or stays
// absent for the normalizer to deal with.
package heuristic

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"tripdeck/constants"
	"tripdeck/internal/extract"
)

// Keyword sets per booking type, checked in this order; the first set with a
// hit wins. Flight terms go first so a flight confirmation mentioning its
// destination hotel still classifies as a flight.
var typeKeywords = []struct {
	bt       constants.BookingType
	keywords []string
}{
	{constants.BookingFlight, []string{
		"flight", "flyg", "airline", "flygbolag", "boarding", "ombordstigning",
		"departure", "avgång", "avresa", "arrival", "ankomst",
		"passenger", "passagerare", "airport", "flygplats",
	}},
	{constants.BookingHotel, []string{
		"hotel", "hotell", "check-in", "incheckning", "check-out", "utcheckning",
		"room", "rum", "night", "natt", "nätter", "reservation",
	}},
	{constants.BookingCar, []string{
		"car rental", "hyrbil", "rental car", "biluthyrning",
		"pick-up", "upphämtning", "drop-off", "avlämning", "vehicle", "fordon",
	}},
	{constants.BookingActivity, []string{
		"activity", "aktivitet", "tour", "guidad", "ticket", "biljett",
		"museum", "event", "evenemang", "admission", "entré",
	}},
}

var (
	reFromTo   = regexp.MustCompile(`(?im)\bfrom\s+([\p{L}][\p{L} .'-]*?)\s+to\s+([\p{L}][\p{L} .'-]*?)\s*(?:$|[,.;(])`)
	reFranTill = regexp.MustCompile(`(?im)\bfrån\s+([\p{L}][\p{L} .'-]*?)\s+till\s+([\p{L}][\p{L} .'-]*?)\s*(?:$|[,.;(])`)
	reCodePair = regexp.MustCompile(`\b([A-Z]{3})\s*(?:-|–|→|->|to|till)\s*([A-Z]{3})\b`)
	reSpaces   = regexp.MustCompile(`\s+`)
	reFlightNo = regexp.MustCompile(`(?i)^[A-Z]{1,3}\s?\d{1,4}[A-Z]?$`)
)

// Hotel and car stays that resolve no end date get a type-specific span.
const (
	hotelStayDefault = 72 * time.Hour
	carRentalDefault = 24 * time.Hour
)

type Extractor struct {
	logger *slog.Logger
	now    func() time.Time
}

type Option func(*Extractor)

// WithClock overrides the time source used for defaulted dates.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) { e.now = now }
}

func New(logger *slog.Logger, opts ...Option) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Extractor{logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractDraft implements extract.TextExtractor. The filename is only
// consulted when the text itself classifies as "other". The returned error
// is always nil; unresolved fields stay absent apart from the guaranteed
// title and startDate.
func (e *Extractor) ExtractDraft(_ context.Context, text, filename string) (extract.Draft, error) {
	lower := strings.ToLower(text)
	lines := splitLines(text)

	d := extract.Draft{Type: classify(lower, filename)}

	d.ConfirmationNumber = lookupLabel(lines, confirmationLabels)
	d.Location = lookupLabel(lines, locationLabels)

	switch d.Type {
	case constants.BookingFlight:
		e.flightFields(&d, text, lines)
	case constants.BookingHotel:
		d.Title = hotelTitle(lines)
		d.Description = joinParts(
			lookupLabel(lines, roomLabels),
			lookupLabel(lines, guestLabels),
		)
	default:
		d.Description = joinParts(lookupLabel(lines, guestLabels))
	}

	e.resolveDates(&d, text, lines)

	if d.Title == "" {
		d.Title = constants.DefaultTitle(d.Type)
	}
	e.logger.Debug("heuristic.extracted",
		"type", d.Type,
		"has_confirmation", d.ConfirmationNumber != "",
		"has_location", d.Location != "",
	)
	return d, nil
}

func classify(lower, filename string) constants.BookingType {
	for _, set := range typeKeywords {
		for _, kw := range set.keywords {
			if strings.Contains(lower, kw) {
				return set.bt
			}
		}
	}
	// Last-resort signal: the uploaded filename.
	if filename != "" {
		lowerName := strings.ToLower(filename)
		for _, set := range typeKeywords {
			for _, kw := range set.keywords {
				if strings.Contains(lowerName, kw) {
					return set.bt
				}
			}
		}
	}
	return constants.BookingOther
}

func (e *Extractor) flightFields(d *extract.Draft, text string, lines []line) {
	if m := reFromTo.FindStringSubmatch(text); m != nil {
		d.From, d.To = cleanPlace(m[1]), cleanPlace(m[2])
	} else if m := reFranTill.FindStringSubmatch(text); m != nil {
		d.From, d.To = cleanPlace(m[1]), cleanPlace(m[2])
	} else if m := reCodePair.FindStringSubmatch(text); m != nil {
		d.From, d.To = m[1], m[2]
	}

	d.Airline = lookupLabel(lines, airlineLabels)
	if num := lookupLabel(lines, flightNumberLabels); reFlightNo.MatchString(num) {
		d.FlightNumber = num
	}

	if d.From != "" && d.To != "" {
		d.Location = d.From + " to " + d.To
	}
	if d.To != "" {
		d.Title = "Flight to " + d.To
	}
	d.Description = joinParts(d.Airline, d.FlightNumber)

	if ln, ok := lookupLabelLine(lines, departureTimeLabels); ok {
		d.DepartureTime, _ = firstClockIn(ln)
	}
	if ln, ok := lookupLabelLine(lines, arrivalTimeLabels); ok {
		d.ArrivalTime, _ = firstClockIn(ln)
	}
}

// resolveDates fills StartDate and EndDate. Label-guided dates win over
// positional matches; remaining gaps are filled from the chronologically
// sorted positional scan, and finally from type defaults. StartDate always
// resolves.
func (e *Extractor) resolveDates(d *extract.Draft, text string, lines []line) {
	var start, end time.Time
	var haveStart, haveEnd bool
	// Dates read out of the document are day-granular. Only a defaulted
	// start, and spans derived from it, carry a real time of day.
	var startClock, endClock bool

	startLabels := [][]string{checkInLabels, departureLabels, genericDate}
	endLabels := [][]string{checkOutLabels, arrivalLabels}
	for _, labels := range startLabels {
		if ln, ok := lookupLabelLine(lines, labels); ok {
			if t, ok := firstDateIn(ln); ok {
				start, haveStart = t, true
				break
			}
		}
	}
	for _, labels := range endLabels {
		if ln, ok := lookupLabelLine(lines, labels); ok {
			if t, ok := firstDateIn(ln); ok {
				end, haveEnd = t, true
				break
			}
		}
	}

	if !haveStart || !haveEnd {
		positional := findDates(text)
		if !haveStart && len(positional) > 0 {
			start, haveStart = positional[0], true
		}
		if !haveEnd {
			for _, t := range positional {
				if t.After(start) {
					end, haveEnd = t, true
					break
				}
			}
		}
	}

	if !haveStart {
		start = e.now()
		haveStart, startClock = true, true
	}
	if !haveEnd {
		switch d.Type {
		case constants.BookingHotel:
			end, haveEnd, endClock = start.Add(hotelStayDefault), true, startClock
		case constants.BookingCar:
			end, haveEnd, endClock = start.Add(carRentalDefault), true, startClock
		}
	}

	d.StartDate = formatWhen(start, startClock)
	if haveEnd {
		d.EndDate = formatWhen(end, endClock)
	}
}

// formatWhen keeps clockless dates clockless so the normalizer never reads
// midnight as an extracted departure or arrival time.
func formatWhen(t time.Time, hasClock bool) string {
	if hasClock {
		return extract.FormatWhen(t)
	}
	return t.Format(extract.DateLayout)
}

func hotelTitle(lines []line) string {
	name := lookupLabel(lines, hotelNameLabels)
	if name == "" {
		return ""
	}
	return "Hotel " + name
}

func cleanPlace(s string) string {
	return strings.Trim(reSpaces.ReplaceAllString(s, " "), " .,-")
}

func joinParts(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
