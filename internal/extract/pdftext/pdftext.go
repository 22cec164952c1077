// Package pdftext acquires the raw text of an uploaded PDF confirmation.
//
// It wraps github.com/ledongthuc/pdf, a pure Go reader, so no external
// binaries are needed. Acquisition failure (corrupt file, encrypted content,
// zero pages) is reported as a typed error; a document that parses but holds
// no text runs returns an empty string and a nil error so callers can tell
// the two apart.
package pdftext

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"

	"tripdeck/internal/common"
)

type Extractor struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Text implements extract.Acquirer.
func (e *Extractor) Text(data []byte) (text string, err error) {
	// The pdf package panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("pdftext.panic_recovered", "panic", r)
			text, err = "", common.WrapError(common.ErrAcquisition, fmt.Sprintf("pdf reader panic: %v", r))
		}
	}()

	if len(data) == 0 {
		return "", common.WrapError(common.ErrAcquisition, "empty file")
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", common.WrapError(common.ErrAcquisition, err.Error())
	}

	pages := reader.NumPage()
	if pages == 0 {
		return "", common.WrapError(common.ErrAcquisition, "document has no pages")
	}

	var b strings.Builder
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// Image-only pages are common in confirmations; skip them.
			e.logger.Debug("pdftext.page_skipped", "page", i, "error", err)
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.TrimSpace(pageText))
	}

	return strings.TrimSpace(b.String()), nil
}
