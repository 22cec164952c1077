package heuristic

import (
	"testing"
	"time"
)

func TestFindDates_FormatsAndOrder(t *testing.T) {
	text := `Issued 24/12/2025
Valid from 2025-06-01 until 3.7.2025
Event on 15 juni 2025`

	got := findDates(text)
	want := []time.Time{
		time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.July, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.December, 24, 0, 0, 0, 0, time.UTC),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d dates: %v", len(got), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("date %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFindDates_Dedup(t *testing.T) {
	got := findDates("2025-06-01 appears twice: 01/06/2025")
	if len(got) != 1 {
		t.Fatalf("expected a single deduped date, got %v", got)
	}
}

func TestFindDates_SwedishMonths(t *testing.T) {
	cases := map[string]time.Time{
		"3 maj 2025":        time.Date(2025, time.May, 3, 0, 0, 0, 0, time.UTC),
		"12:e oktober 2024": time.Date(2024, time.October, 12, 0, 0, 0, 0, time.UTC),
		"1 mars 2025":       time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		"9 augusti 2025":    time.Date(2025, time.August, 9, 0, 0, 0, 0, time.UTC),
	}
	for in, want := range cases {
		got, ok := firstDateIn(in)
		if !ok || !got.Equal(want) {
			t.Fatalf("%q: got %v ok=%v, want %v", in, got, ok, want)
		}
	}
}

func TestFindDates_RejectsImpossible(t *testing.T) {
	for _, in := range []string{"31/02/2025", "00/06/2025", "15/13/2025", "30 februari 2025"} {
		if got := findDates(in); len(got) != 0 {
			t.Fatalf("%q parsed as %v", in, got)
		}
	}
}

func TestFirstDateIn_NoDate(t *testing.T) {
	if _, ok := firstDateIn("no dates in this line"); ok {
		t.Fatal("found a date in plain text")
	}
}

func TestFirstClockIn(t *testing.T) {
	cases := map[string]string{
		"Departure time: 8:05": "08:05",
		"Avgångstid: 23:59":    "23:59",
		"gate closes 10:15 am": "10:15",
	}
	for in, want := range cases {
		got, ok := firstClockIn(in)
		if !ok || got != want {
			t.Fatalf("%q: got %q ok=%v, want %q", in, got, ok, want)
		}
	}
	if _, ok := firstClockIn("no clock here"); ok {
		t.Fatal("found a clock in plain text")
	}
}
