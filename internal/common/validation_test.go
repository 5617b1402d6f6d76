package common

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	supported := []string{"json", "text", "markdown"}

	tests := []struct {
		name        string
		format      string
		supported   []string
		expectError bool
	}{
		{name: "json", format: "json", supported: supported},
		{name: "text", format: "text", supported: supported},
		{name: "markdown", format: "markdown", supported: supported},
		{name: "uppercase accepted", format: "JSON", supported: supported},
		{name: "mixed case accepted", format: "MarkDown", supported: supported},
		{name: "xml rejected", format: "xml", supported: supported, expectError: true},
		{name: "yaml rejected", format: "yaml", supported: supported, expectError: true},
		{name: "empty format rejected", format: "", supported: supported, expectError: true},
		{name: "no restrictions", format: "anything", supported: nil},
		{name: "custom list", format: "csv", supported: []string{"csv"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format, tt.supported)
			if tt.expectError {
				if err == nil {
					t.Fatalf("ValidateOutputFormat(%q) = nil, want error", tt.format)
				}
				if !strings.Contains(err.Error(), tt.format) {
					t.Errorf("error %q does not name the rejected format %q", err, tt.format)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateOutputFormat(%q) error: %v", tt.format, err)
			}
		})
	}
}

func TestGetSupportedFormats(t *testing.T) {
	formats := []string{"json", "text"}
	got := GetSupportedFormats(formats)
	if len(got) != 2 || got[0] != "json" || got[1] != "text" {
		t.Errorf("GetSupportedFormats = %v, want %v", got, formats)
	}
}
