package config

import (
	"strings"
	"testing"
)

func validBaseConfig() *Config {
	return &Config{
		Recognizer: RecognizerConfig{
			Enabled:  true,
			Provider: "gemini",
			Model:    "gemini-2.0-flash",
			APIKey:   "test-key",
		},
		Corpus: CorpusConfig{
			Path:          "testdata/resumes.csv",
			MaxFeatures:   2000,
			TopTermsCount: 20,
		},
		Server: ServerConfig{
			Host: "localhost",
			Port: "8080",
			TLS: TLSConfig{
				Mode: "disabled",
			},
		},
		App: AppConfig{
			LogLevel:           "info",
			DefaultFormat:      "text",
			SupportedFormats:   []string{"text", "json", "markdown"},
			GapThresholdMonths: 6,
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name: "recognizer enabled without API key",
			mutate: func(c *Config) {
				c.Recognizer.APIKey = ""
			},
			wantErr: "recognizer API key is required",
		},
		{
			name: "recognizer disabled without API key is fine",
			mutate: func(c *Config) {
				c.Recognizer.Enabled = false
				c.Recognizer.APIKey = ""
			},
		},
		{
			name: "missing corpus path",
			mutate: func(c *Config) {
				c.Corpus.Path = ""
			},
			wantErr: "corpus path is required",
		},
		{
			name: "non-positive max features",
			mutate: func(c *Config) {
				c.Corpus.MaxFeatures = 0
			},
			wantErr: "maxFeatures must be positive",
		},
		{
			name: "missing server port",
			mutate: func(c *Config) {
				c.Server.Port = ""
			},
			wantErr: "server port is required",
		},
		{
			name: "default format not in supported formats",
			mutate: func(c *Config) {
				c.App.DefaultFormat = "yaml"
			},
			wantErr: "invalid default format",
		},
		{
			name: "negative gap threshold",
			mutate: func(c *Config) {
				c.App.GapThresholdMonths = -1
			},
			wantErr: "gap threshold must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validBaseConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateTLSConfig(t *testing.T) {
	tests := []struct {
		name    string
		tls     TLSConfig
		wantErr string
	}{
		{
			name: "disabled mode",
			tls:  TLSConfig{Mode: "disabled"},
		},
		{
			name: "server mode with cert files",
			tls: TLSConfig{
				Mode:     "server",
				CertFile: "server.crt",
				KeyFile:  "server.key",
			},
		},
		{
			name: "server mode with cert content",
			tls: TLSConfig{
				Mode:        "server",
				CertContent: "PEM CERT",
				KeyContent:  "PEM KEY",
			},
		},
		{
			name: "server mode without certificates",
			tls: TLSConfig{
				Mode: "server",
			},
			wantErr: "certificate and key are required",
		},
		{
			name: "duplicate cert sources",
			tls: TLSConfig{
				Mode:        "server",
				CertFile:    "server.crt",
				CertContent: "PEM CERT",
				KeyFile:     "server.key",
			},
			wantErr: "both certFile and certContent",
		},
		{
			name: "mutual mode without CA",
			tls: TLSConfig{
				Mode:             "mutual",
				CertFile:         "server.crt",
				KeyFile:          "server.key",
				ClientAuthPolicy: "require",
			},
			wantErr: "CA certificate is required",
		},
		{
			name: "mutual mode with CA file",
			tls: TLSConfig{
				Mode:             "mutual",
				CertFile:         "server.crt",
				KeyFile:          "server.key",
				CAFile:           "ca.crt",
				ClientAuthPolicy: "require",
			},
		},
		{
			name: "mutual mode with invalid client auth policy",
			tls: TLSConfig{
				Mode:             "mutual",
				CertFile:         "server.crt",
				KeyFile:          "server.key",
				CAFile:           "ca.crt",
				ClientAuthPolicy: "optional",
			},
			wantErr: "invalid clientAuthPolicy",
		},
		{
			name: "unknown mode",
			tls: TLSConfig{
				Mode: "tunnel",
			},
			wantErr: "invalid TLS mode",
		},
		{
			name: "invalid min version",
			tls: TLSConfig{
				Mode:       "disabled",
				MinVersion: "1.1",
			},
			wantErr: "invalid TLS minVersion",
		},
		{
			name: "valid min version 1.3",
			tls: TLSConfig{
				Mode:       "disabled",
				MinVersion: "1.3",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validBaseConfig()
			cfg.Server.TLS = tt.tls
			err := cfg.ValidateTLSConfig()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateTLSConfig() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidateTLSConfig() expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ValidateTLSConfig() error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}
