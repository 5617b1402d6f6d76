package common

import (
	"fmt"
	"strings"
)

// ValidateOutputFormat checks a requested output format against the
// configured supported formats. Matching ignores case so that --format
// JSON and --format json behave the same.
func ValidateOutputFormat(format string, supportedFormats []string) error {
	if len(supportedFormats) == 0 {
		return nil // No restrictions configured
	}

	for _, supported := range supportedFormats {
		if strings.EqualFold(format, supported) {
			return nil
		}
	}

	return fmt.Errorf("unsupported output format '%s'. Supported formats: %v",
		format, supportedFormats)
}

// GetSupportedFormats returns the list of supported formats
func GetSupportedFormats(supportedFormats []string) []string {
	return supportedFormats
}
