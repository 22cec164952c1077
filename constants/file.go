package constants

import "strings"

// PDFContentType is the only MIME type accepted by the upload endpoint.
const PDFContentType = "application/pdf"

// DefaultMaxUploadBytes bounds a single uploaded confirmation PDF.
const DefaultMaxUploadBytes = 5 << 20 // 5 MiB

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsPDFUpload reports whether the declared content type and filename look
// like a PDF upload. Some browsers omit the part content type, so the
// extension is accepted as a fallback signal.
func IsPDFUpload(contentType, filename string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ct == PDFContentType {
		return true
	}
	if ct != "" && ct != "application/octet-stream" {
		return false
	}
	return NormalizeExt(extOf(filename)) == "pdf"
}

func extOf(filename string) string {
	if i := strings.LastIndexByte(filename, '.'); i >= 0 {
		return filename[i:]
	}
	return ""
}
