package heuristic

import "strings"

// Label synonyms per semantic field, English first, then Swedish. The lists
// are ordered: an earlier synonym beats a later one even when the later one
// appears higher up in the document.
var (
	confirmationLabels = []string{
		"confirmation number", "bekräftelsenummer",
		"booking reference", "bokningsreferens",
		"booking number", "bokningsnummer",
		"confirmation", "bekräftelse",
		"reference", "referens",
	}
	locationLabels = []string{
		"location", "plats",
		"address", "adress",
		"destination",
	}
	// "hotell" before "hotel": the shorter label would cut the Swedish
	// form mid-word.
	hotelNameLabels = []string{
		"hotell", "hotel",
	}
	airlineLabels = []string{
		"airline", "flygbolag",
		"carrier", "operated by",
	}
	// No bare "flight" synonym: it would match prose headings such as
	// "Flight confirmation" and swallow whatever follows.
	flightNumberLabels = []string{
		"flight number", "flightnummer", "flygnummer",
		"flight no",
	}
	roomLabels = []string{
		"room type", "rumstyp",
		"room", "rum",
	}
	guestLabels = []string{
		"guests", "gäster",
		"passengers", "passagerare",
		"participants", "deltagare",
	}

	checkInLabels   = []string{"check-in", "checkin", "incheckning"}
	checkOutLabels  = []string{"check-out", "checkout", "utcheckning"}
	departureLabels = []string{"departure", "avgång", "avresa"}
	arrivalLabels   = []string{"arrival", "ankomst"}
	genericDate     = []string{"date", "datum"}

	departureTimeLabels = []string{"departure time", "avgångstid"}
	arrivalTimeLabels   = []string{"arrival time", "ankomsttid"}
)

const valueCutset = ":/- \t –"

// lookupLabel finds the value for the first label synonym that yields a
// non-empty value anywhere in the document. For a matching line the value is
// the text after the first colon when one is present, otherwise the text
// immediately following the matched label. Leading and trailing separator
// characters are stripped.
func lookupLabel(lines []line, labels []string) string {
	for _, label := range labels {
		for _, ln := range lines {
			idx := strings.Index(ln.lower, label)
			if idx < 0 {
				continue
			}
			var value string
			if colon := strings.IndexByte(ln.raw, ':'); colon >= 0 {
				value = ln.raw[colon+1:]
			} else {
				value = ln.raw[idx+len(label):]
			}
			value = strings.Trim(value, valueCutset)
			if value != "" {
				return value
			}
		}
	}
	return ""
}

// lookupLabelLine returns the full raw line containing the first matching
// label synonym, for fields whose value needs pattern scanning (dates,
// times) rather than a plain suffix cut.
func lookupLabelLine(lines []line, labels []string) (string, bool) {
	for _, label := range labels {
		for _, ln := range lines {
			if strings.Contains(ln.lower, label) {
				return ln.raw, true
			}
		}
	}
	return "", false
}

// line pairs a raw text line with its lowercased form so label scans do not
// re-lowercase per label.
type line struct {
	raw   string
	lower string
}

func splitLines(text string) []line {
	raw := strings.Split(text, "\n")
	out := make([]line, 0, len(raw))
	for _, r := range raw {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		out = append(out, line{raw: r, lower: strings.ToLower(r)})
	}
	return out
}
