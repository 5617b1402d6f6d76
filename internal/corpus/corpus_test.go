package corpus

import (
	"strings"
	"testing"

	"resumebench/internal/errors"
)

func TestRead(t *testing.T) {
	t.Run("valid corpus", func(t *testing.T) {
		data := "Category,Resume\nData Science,machine learning and statistics\nHR,payroll and compliance\n"
		records, err := Read(strings.NewReader(data))
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("Expected 2 records, got %d", len(records))
		}
		if records[0].Category != "Data Science" {
			t.Errorf("Expected category 'Data Science', got %q", records[0].Category)
		}
		if records[1].Text != "payroll and compliance" {
			t.Errorf("Unexpected resume text: %q", records[1].Text)
		}
	})

	t.Run("extra columns ignored", func(t *testing.T) {
		data := "ID,Category,Resume\n1,Sales,targets and leads\n"
		records, err := Read(strings.NewReader(data))
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if len(records) != 1 || records[0].Category != "Sales" {
			t.Errorf("Unexpected records: %v", records)
		}
	})

	t.Run("empty resume text kept", func(t *testing.T) {
		data := "Category,Resume\nSales,\n"
		records, err := Read(strings.NewReader(data))
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if len(records) != 1 || records[0].Text != "" {
			t.Errorf("Expected one record with empty text, got %v", records)
		}
	})

	t.Run("rows without category skipped", func(t *testing.T) {
		data := "Category,Resume\n,orphaned text\nSales,targets\n"
		records, err := Read(strings.NewReader(data))
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if len(records) != 1 {
			t.Errorf("Expected 1 record, got %d", len(records))
		}
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := Read(strings.NewReader(""))
		assertErrorCode(t, err, errors.ErrCodeEmptyCorpus)
	})

	t.Run("header only", func(t *testing.T) {
		_, err := Read(strings.NewReader("Category,Resume\n"))
		assertErrorCode(t, err, errors.ErrCodeEmptyCorpus)
	})

	t.Run("missing required columns", func(t *testing.T) {
		_, err := Read(strings.NewReader("Name,Text\na,b\n"))
		assertErrorCode(t, err, errors.ErrCodeInvalidFormat)
	})
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/corpus.csv")
	assertErrorCode(t, err, errors.ErrCodeFileNotFound)
}

func TestCountByCategory(t *testing.T) {
	data := "Category,Resume\nSales,a\nSales,b\nHR,c\n"
	records, err := Read(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	counts := CountByCategory(records)
	if counts["Sales"] != 2 || counts["HR"] != 1 {
		t.Errorf("Unexpected counts: %v", counts)
	}
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("Expected AppError, got %T: %v", err, err)
	}
	if appErr.Code != code {
		t.Errorf("Expected code %s, got %s", code, appErr.Code)
	}
}
