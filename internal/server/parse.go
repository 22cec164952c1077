package server

import (
	"io"
	"net/http"

	"tripdeck/constants"
	"tripdeck/internal/common"
)

// handleParsePDF accepts a multipart upload under the "pdf" field and runs
// the extraction pipeline on it. The endpoint always answers 200 with a
// booking draft for well-formed uploads: unreadable PDFs degrade to the
// filename classifier inside the pipeline rather than failing the request.
func (s *Server) handleParsePDF(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		s.writeError(w, r, common.WrapError(common.ErrInvalidInput, "could not parse multipart form"))
		return
	}

	file, header, err := r.FormFile("pdf")
	if err != nil {
		s.writeError(w, r, common.WrapError(common.ErrInvalidInput, `missing "pdf" form field`))
		return
	}
	defer file.Close()

	if !constants.IsPDFUpload(header.Header.Get("Content-Type"), header.Filename) {
		s.writeError(w, r, common.WrapError(common.ErrInvalidFileType, "only PDF uploads are accepted"))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, r, common.WrapError(err, "read upload"))
		return
	}

	result := s.pipeline.Run(r.Context(), data, header.Filename)
	s.logger.Info("pdf.parse.done",
		"filename", header.Filename,
		"bytes", len(data),
		"source", result.Source,
		"type", result.Draft.Type)
	writeJSON(w, http.StatusOK, result.Draft)
}
