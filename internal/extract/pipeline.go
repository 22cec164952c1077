package extract

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"tripdeck/constants"
	"tripdeck/internal/common"
)

// Source identifies which strategy produced a draft.
const (
	SourceRemote    = "remote"
	SourceHeuristic = "heuristic"
	SourceFilename  = "filename"
)

// Acquirer obtains the raw text of an uploaded PDF. A failure here means the
// document could not be parsed at all; an empty string with a nil error means
// the document parsed but carried no extractable text.
type Acquirer interface {
	Text(data []byte) (string, error)
}

// Result carries the finished draft plus which strategy produced it.
type Result struct {
	Draft  Draft  `json:"draft"`
	Source string `json:"source"`
}

// Pipeline runs the ordered strategy chain over one uploaded file:
// remote extraction when configured, then the local heuristics, then the
// filename fallback. Acquisition failure short-circuits to the fallback.
// Each run builds a fresh draft; the pipeline holds no per-request state and
// is safe for concurrent use.
type Pipeline struct {
	acquire  Acquirer
	remote   TextExtractor // nil when no credential is configured
	local    TextExtractor
	fallback FilenameClassifier
	logger   *slog.Logger

	now     func() time.Time
	confGen func() string
}

type Option func(*Pipeline)

// WithRemote enables the remote extraction strategy ahead of the local one.
func WithRemote(r TextExtractor) Option {
	return func(p *Pipeline) { p.remote = r }
}

// WithClock overrides the time source used for defaulted dates.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// WithConfirmationGen overrides the placeholder confirmation generator.
func WithConfirmationGen(gen func() string) Option {
	return func(p *Pipeline) { p.confGen = gen }
}

func NewPipeline(acquire Acquirer, local TextExtractor, fallback FilenameClassifier, logger *slog.Logger, opts ...Option) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pipeline{
		acquire:  acquire,
		local:    local,
		fallback: fallback,
		logger:   logger,
		now:      time.Now,
		confGen:  PlaceholderConfirmation,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run extracts a booking draft from one uploaded PDF. It never fails: every
// upstream failure degrades to the filename fallback.
func (p *Pipeline) Run(ctx context.Context, data []byte, filename string) Result {
	start := time.Now()

	text, err := p.acquire.Text(data)
	if err != nil {
		p.logger.Warn("extract.acquire.failed", "filename", filename, "error", err)
		return p.finish(p.fallback.Classify(filename), SourceFilename, filename, start)
	}
	if strings.TrimSpace(text) == "" {
		// Parsed but empty, typically an image-only scan. The filename is
		// the only signal left.
		p.logger.Warn("extract.acquire.empty", "filename", filename, "error", common.ErrNoExtractableContent)
		return p.finish(p.fallback.Classify(filename), SourceFilename, filename, start)
	}
	p.logger.Info("extract.acquire.ok", "filename", filename, "text_len", len(text))

	if p.remote != nil {
		draft, err := p.remote.ExtractDraft(ctx, text, filename)
		if err == nil {
			return p.finish(Normalize(draft), SourceRemote, filename, start)
		}
		p.logger.Warn("extract.remote.failed", "filename", filename, "error", err)
	}

	draft, err := p.local.ExtractDraft(ctx, text, filename)
	if err != nil {
		// The heuristic extractor degrades to defaults instead of failing;
		// an error here means a programming bug, not bad input.
		p.logger.Error("extract.heuristic.failed", "filename", filename, "error", err)
		return p.finish(p.fallback.Classify(filename), SourceFilename, filename, start)
	}
	return p.finish(Normalize(draft), SourceHeuristic, filename, start)
}

// finish applies the canonical-output guarantees: a non-empty title, a
// startDate, and a confirmation number placeholder when none was extracted.
func (p *Pipeline) finish(d Draft, source, filename string, start time.Time) Result {
	if d.Type == "" {
		d.Type = constants.BookingOther
	}
	if d.Title == "" {
		d.Title = constants.DefaultTitle(d.Type)
	}
	if d.StartDate == "" {
		d.StartDate = FormatWhen(p.now())
	}
	if d.ConfirmationNumber == "" {
		d.ConfirmationNumber = p.confGen()
	}
	p.logger.Info("extract.done",
		"filename", filename,
		"source", source,
		"type", d.Type,
		"title", d.Title,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{Draft: d, Source: source}
}

// PlaceholderConfirmation mints a random reference of the form PDF-1234 for
// drafts whose source material carried none.
func PlaceholderConfirmation() string {
	return fmt.Sprintf("PDF-%04d", rand.IntN(10000))
}
