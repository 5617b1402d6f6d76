package textextract

import (
	"strings"
	"testing"

	"resumebench/internal/errors"
)

func TestSupported(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"resume.pdf", true},
		{"resume.PDF", true},
		{"resume.docx", true},
		{"resume.txt", true},
		{"resume.doc", false},
		{"resume.png", false},
		{"resume", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := Supported(tt.filename); got != tt.want {
				t.Errorf("Supported(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestExtractText(t *testing.T) {
	t.Run("plain text passthrough", func(t *testing.T) {
		text, err := ExtractText("resume.txt", []byte("Experienced engineer.\nPython, SQL."))
		if err != nil {
			t.Fatalf("ExtractText failed: %v", err)
		}
		if !strings.Contains(text, "Python") {
			t.Errorf("Unexpected text: %q", text)
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := ExtractText("resume.odt", []byte("data"))
		if err == nil {
			t.Fatal("Expected error, got nil")
		}
		appErr, ok := err.(*errors.AppError)
		if !ok || appErr.Code != errors.ErrCodeUnsupportedFormat {
			t.Errorf("Expected UNSUPPORTED_FORMAT, got %v", err)
		}
	})

	t.Run("corrupt pdf", func(t *testing.T) {
		if _, err := ExtractText("resume.pdf", []byte("not a pdf")); err == nil {
			t.Error("Expected error for corrupt PDF")
		}
	})

	t.Run("corrupt docx", func(t *testing.T) {
		if _, err := ExtractText("resume.docx", []byte("not a zip")); err == nil {
			t.Error("Expected error for corrupt DOCX")
		}
	})
}

func TestStripDocumentXML(t *testing.T) {
	markup := `<w:p><w:r><w:t>First paragraph</w:t></w:r></w:p><w:p><w:r><w:t>Second</w:t></w:r></w:p>`
	text := normalizeWhitespace(stripDocumentXML(markup))
	if !strings.Contains(text, "First paragraph") || !strings.Contains(text, "Second") {
		t.Errorf("Unexpected text: %q", text)
	}
	if !strings.Contains(text, "\n") {
		t.Errorf("Expected paragraph boundary newline in %q", text)
	}
}
