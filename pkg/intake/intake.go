// Package intake decodes uploaded document content and normalizes office
// formats to PDF for downstream OCR.
package intake

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedType indicates the uploaded content type is not accepted.
var ErrUnsupportedType = errors.New("unsupported content type")

// extensionsByMIME is the fixed accept-list of upload content types. Anything
// outside this map is rejected.
var extensionsByMIME = map[string]string{
	"application/pdf": ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
	"application/vnd.ms-excel": ".xls",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":       ".xlsx",
	"text/csv":   ".csv",
	"text/plain": ".txt",
}

// ocrCapable lists the extensions the OCR stage can process. Other formats
// skip OCR entirely.
var ocrCapable = map[string]bool{
	".pdf": true,
}

// convertible lists the extensions the converter turns into PDF before OCR.
var convertible = map[string]bool{
	".doc":  true,
	".docx": true,
	".xls":  true,
	".xlsx": true,
}

// mimeByExtension is derived from extensionsByMIME at init.
var mimeByExtension = func() map[string]string {
	m := make(map[string]string, len(extensionsByMIME))
	for mime, ext := range extensionsByMIME {
		m[ext] = mime
	}
	return m
}()

// ExtensionFor maps an upload content type to its canonical file extension.
func ExtensionFor(mimeType string) (string, error) {
	// Parameters like "; charset=utf-8" are ignored.
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	ext, ok := extensionsByMIME[strings.TrimSpace(strings.ToLower(mimeType))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, mimeType)
	}
	return ext, nil
}

// MIMEForExtension infers the content type from a file extension. Unknown
// extensions fail.
func MIMEForExtension(ext string) (string, error) {
	mime, ok := mimeByExtension[strings.ToLower(ext)]
	if !ok {
		return "", fmt.Errorf("%w: extension %q", ErrUnsupportedType, ext)
	}
	return mime, nil
}

// IsOCRCapable reports whether a file with this extension goes through OCR.
func IsOCRCapable(ext string) bool { return ocrCapable[strings.ToLower(ext)] }

// NeedsConversion reports whether the extension must be converted to PDF
// before OCR.
func NeedsConversion(ext string) bool { return convertible[strings.ToLower(ext)] }

// DecodeContent decodes an uploaded content string. Both raw base64 and
// data-URL form ("data:application/pdf;base64,…") are accepted; a data URL's
// declared type is returned alongside the bytes.
func DecodeContent(content string) ([]byte, string, error) {
	declaredType := ""
	if strings.HasPrefix(content, "data:") {
		comma := strings.IndexByte(content, ',')
		if comma < 0 {
			return nil, "", fmt.Errorf("malformed data URL")
		}
		header := content[len("data:"):comma]
		content = content[comma+1:]
		declaredType = strings.TrimSuffix(header, ";base64")
	}
	data, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return nil, "", fmt.Errorf("decoding document content: %w", err)
	}
	return data, declaredType, nil
}
