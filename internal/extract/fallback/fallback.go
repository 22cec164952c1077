// Package fallback derives a minimal booking draft from nothing but the
// uploaded filename. It is the terminal strategy of the extraction chain and
// is used when the PDF could not be read or the remote extractor failed with
// nothing local to show.
package fallback

import (
	"log/slog"
	"strings"
	"time"

	"tripdeck/constants"
	"tripdeck/internal/extract"
)

// Filename keyword sets, checked in order; first hit decides the type.
var filenameKeywords = []struct {
	bt       constants.BookingType
	keywords []string
}{
	{constants.BookingFlight, []string{"flight", "flyg", "airline", "boarding"}},
	{constants.BookingHotel, []string{"hotel", "hotell", "reservation", "booking"}},
	{constants.BookingCar, []string{"car", "hyrbil", "rental"}},
	{constants.BookingActivity, []string{"activity", "aktivitet", "tour", "ticket", "biljett"}},
}

type Classifier struct {
	logger  *slog.Logger
	now     func() time.Time
	confGen func() string
}

type Option func(*Classifier)

// WithClock overrides the time source used for the defaulted date span.
func WithClock(now func() time.Time) Option {
	return func(c *Classifier) { c.now = now }
}

// WithConfirmationGen overrides the placeholder confirmation generator.
func WithConfirmationGen(gen func() string) Option {
	return func(c *Classifier) { c.confGen = gen }
}

func New(logger *slog.Logger, opts ...Option) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Classifier{
		logger:  logger,
		now:     time.Now,
		confGen: extract.PlaceholderConfirmation,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify implements extract.FilenameClassifier. The result is always a
// fully populated minimal draft: type and title from filename keywords, a
// one-day span starting now, and a placeholder confirmation number.
func (c *Classifier) Classify(filename string) extract.Draft {
	bt := constants.BookingOther
	lower := strings.ToLower(filename)
	for _, set := range filenameKeywords {
		for _, kw := range set.keywords {
			if strings.Contains(lower, kw) {
				bt = set.bt
				break
			}
		}
		if bt != constants.BookingOther {
			break
		}
	}

	now := c.now()
	d := extract.Draft{
		Type:               bt,
		Title:              constants.DefaultTitle(bt),
		StartDate:          extract.FormatWhen(now),
		EndDate:            extract.FormatWhen(now.Add(24 * time.Hour)),
		Description:        "Booking information extracted from " + filename,
		ConfirmationNumber: c.confGen(),
	}
	c.logger.Info("fallback.classified", "filename", filename, "type", bt)
	return d
}
