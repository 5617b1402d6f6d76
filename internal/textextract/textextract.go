// Package textextract converts uploaded resume files into plain text.
// Supported formats: PDF, DOCX and plain text.
package textextract

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"resumebench/internal/errors"
)

var supportedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

// Supported reports whether the file extension has an extractor.
func Supported(filename string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// ExtractText converts a resume file to plain text, dispatching on the
// file extension.
func ExtractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDocx(data)
	case ".txt":
		return string(data), nil
	default:
		return "", errors.NewValidationError(errors.ErrCodeUnsupportedFormat,
			fmt.Sprintf("unsupported resume format %q, expected .pdf, .docx or .txt", filepath.Ext(filename)), nil)
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.NewIOError(errors.ErrCodeInvalidFormat,
			"failed to read PDF", err)
	}

	plainText, err := reader.GetPlainText()
	if err != nil {
		return "", errors.NewIOError(errors.ErrCodeInvalidFormat,
			"failed to extract PDF text", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plainText); err != nil {
		return "", errors.NewIOError(errors.ErrCodeInvalidFormat,
			"failed to extract PDF text", err)
	}
	return normalizeWhitespace(buf.String()), nil
}

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.NewIOError(errors.ErrCodeInvalidFormat,
			"failed to parse DOCX", err)
	}
	defer doc.Close() //nolint:errcheck // in-memory reader

	content := doc.Editable().GetContent()
	return normalizeWhitespace(stripDocumentXML(content)), nil
}

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// stripDocumentXML turns the raw document markup into readable text,
// keeping paragraph boundaries as newlines.
func stripDocumentXML(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	return xmlTagPattern.ReplaceAllString(content, " ")
}

var (
	spacesPattern   = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlinesPattern = regexp.MustCompile(`\n+`)
)

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = spacesPattern.ReplaceAllString(s, " ")
	s = newlinesPattern.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
