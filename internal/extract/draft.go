package extract

import (
	"context"
	"fmt"
	"strings"

	"tripdeck/constants"
)

// Draft is the unpersisted booking candidate produced by one extraction
// attempt. Every field except Type is optional until the pipeline finalizes
// the draft; absent fields serialize as omitted, never as empty strings.
// A Draft is a value object: extraction stages return new copies instead of
// mutating their input.
type Draft struct {
	Type               constants.BookingType `json:"type"`
	Title              string                `json:"title,omitempty"`
	StartDate          string                `json:"startDate,omitempty"`
	EndDate            string                `json:"endDate,omitempty"`
	Location           string                `json:"location,omitempty"`
	Description        string                `json:"description,omitempty"`
	ConfirmationNumber string                `json:"confirmationNumber,omitempty"`
	From               string                `json:"from,omitempty"`
	To                 string                `json:"to,omitempty"`
	Airline            string                `json:"airline,omitempty"`
	FlightNumber       string                `json:"flightNumber,omitempty"`
	DepartureTime      string                `json:"departureTime,omitempty"`
	ArrivalTime        string                `json:"arrivalTime,omitempty"`
}

// TextExtractor turns acquired PDF text into a partially populated Draft.
// The filename is a last-resort signal only; implementations may ignore it.
type TextExtractor interface {
	ExtractDraft(ctx context.Context, text, filename string) (Draft, error)
}

// FilenameClassifier derives a minimal draft from the uploaded filename.
// It is the terminal strategy and never fails.
type FilenameClassifier interface {
	Classify(filename string) Draft
}

// draftKeyLookup lists, per canonical draft field, the accepted key variants
// in priority order. The canonical key comes first so it always beats the
// synonyms seen in remote model output.
var draftKeyLookup = []struct {
	canonical string
	keys      []string
}{
	{"type", []string{"type"}},
	{"title", []string{"title"}},
	{"startDate", []string{"startdate"}},
	{"endDate", []string{"enddate"}},
	{"location", []string{"location", "destination", "place"}},
	{"description", []string{"description", "notes"}},
	{"confirmationNumber", []string{"confirmationnumber", "bookingreference", "booking_reference", "confirmation", "reference"}},
	{"from", []string{"from", "departure", "origin"}},
	{"to", []string{"to", "arrival"}},
	{"airline", []string{"airline"}},
	{"flightNumber", []string{"flightnumber"}},
	{"departureTime", []string{"departuretime"}},
	{"arrivalTime", []string{"arrivaltime"}},
}

// DraftFromMap builds a Draft from a loosely keyed JSON object, folding known
// synonym keys into their canonical names. The first non-empty variant in
// priority order wins.
func DraftFromMap(m map[string]any) Draft {
	lowered := make(map[string]any, len(m))
	for k, v := range m {
		lowered[strings.ToLower(strings.TrimSpace(k))] = v
	}

	fields := map[string]string{}
	for _, entry := range draftKeyLookup {
		for _, key := range entry.keys {
			if s := stringify(lowered[key]); s != "" {
				fields[entry.canonical] = s
				break
			}
		}
	}

	bt, _ := constants.CanonicalBookingType(fields["type"])
	return Draft{
		Type:               bt,
		Title:              fields["title"],
		StartDate:          fields["startDate"],
		EndDate:            fields["endDate"],
		Location:           fields["location"],
		Description:        fields["description"],
		ConfirmationNumber: fields["confirmationNumber"],
		From:               fields["from"],
		To:                 fields["to"],
		Airline:            fields["airline"],
		FlightNumber:       fields["flightNumber"],
		DepartureTime:      fields["departureTime"],
		ArrivalTime:        fields["arrivalTime"],
	}
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	case bool:
		return ""
	default:
		return ""
	}
}
