package heuristic

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Date-shaped substrings recognized by the positional scan. Numeric forms
// are day-first except ISO; textual months are matched in English and
// Swedish.
var (
	reISODate     = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	reSlashDate   = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
	reDotDate     = regexp.MustCompile(`\b(\d{1,2})\.(\d{1,2})\.(\d{4})\b`)
	reTextualDate = regexp.MustCompile(`(?i)\b(\d{1,2})(?::e)?\s+(jan\w*|feb\w*|mar\w*|apr\w*|may|maj|jun\w*|jul\w*|aug\w*|sep\w*|o[ck]t\w*|nov\w*|dec\w*)\.?\s+(\d{4})\b`)

	reClock = regexp.MustCompile(`\b([01]?\d|2[0-3]):([0-5]\d)\b`)
)

// monthByPrefix resolves English and Swedish month words by their first
// three letters (mars/march share "mar", maj is Swedish May, okt/oct differ).
var monthByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "maj": time.May,
	"jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "oct": time.October, "okt": time.October,
	"nov": time.November, "dec": time.December,
}

// findDates returns every distinct parseable date in the text, sorted
// chronologically.
func findDates(text string) []time.Time {
	seen := map[time.Time]struct{}{}
	var out []time.Time
	add := func(t time.Time, ok bool) {
		if !ok {
			return
		}
		if _, dup := seen[t]; dup {
			return
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	for _, m := range reISODate.FindAllStringSubmatch(text, -1) {
		add(makeDate(m[3], m[2], m[1]))
	}
	for _, m := range reSlashDate.FindAllStringSubmatch(text, -1) {
		add(makeDate(m[1], m[2], m[3]))
	}
	for _, m := range reDotDate.FindAllStringSubmatch(text, -1) {
		add(makeDate(m[1], m[2], m[3]))
	}
	for _, m := range reTextualDate.FindAllStringSubmatch(text, -1) {
		add(makeTextualDate(m[1], m[2], m[3]))
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// firstDateIn returns the first date-shaped substring of one line.
func firstDateIn(s string) (time.Time, bool) {
	if m := reISODate.FindStringSubmatch(s); m != nil {
		return makeDate(m[3], m[2], m[1])
	}
	if m := reSlashDate.FindStringSubmatch(s); m != nil {
		return makeDate(m[1], m[2], m[3])
	}
	if m := reDotDate.FindStringSubmatch(s); m != nil {
		return makeDate(m[1], m[2], m[3])
	}
	if m := reTextualDate.FindStringSubmatch(s); m != nil {
		return makeTextualDate(m[1], m[2], m[3])
	}
	return time.Time{}, false
}

// firstClockIn returns the first HH:MM substring of one line.
func firstClockIn(s string) (string, bool) {
	m := reClock.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return fmt.Sprintf("%02d:%s", atoi(m[1]), m[2]), true
}

func makeDate(day, month, year string) (time.Time, bool) {
	d, m, y := atoi(day), atoi(month), atoi(year)
	if d < 1 || d > 31 || m < 1 || m > 12 || y < 1900 || y > 2200 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes; reject overflowed days like 31 Feb.
	if t.Day() != d || t.Month() != time.Month(m) {
		return time.Time{}, false
	}
	return t, true
}

func makeTextualDate(day, month, year string) (time.Time, bool) {
	prefix := strings.ToLower(month)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	mon, ok := monthByPrefix[prefix]
	if !ok {
		return time.Time{}, false
	}
	d, y := atoi(day), atoi(year)
	if d < 1 || d > 31 || y < 1900 || y > 2200 {
		return time.Time{}, false
	}
	t := time.Date(y, mon, d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
