package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseVersionValue(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    int64
		wantErr bool
	}{
		{name: "int64", raw: int64(3), want: 3},
		{name: "float64 from JSON", raw: float64(7), want: 7},
		{name: "numeric string", raw: "12", want: 12},
		{name: "non-numeric string", raw: "latest", wantErr: true},
		{name: "unexpected type", raw: []string{"1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseVersionValue(tt.raw, "secret/data/test")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseVersionValue(%v) expected error, got nil", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseVersionValue(%v) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("parseVersionValue(%v) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestResolveVaultToken(t *testing.T) {
	t.Run("explicit token wins", func(t *testing.T) {
		token, err := resolveVaultToken(VaultConfig{Token: "direct-token"}, nil)
		if err != nil {
			t.Fatalf("resolveVaultToken() unexpected error: %v", err)
		}
		if token != "direct-token" {
			t.Errorf("resolveVaultToken() = %q, want %q", token, "direct-token")
		}
	})

	t.Run("token file trimmed", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "token")
		if err := os.WriteFile(path, []byte("  file-token\n"), 0o600); err != nil {
			t.Fatalf("writing token file: %v", err)
		}
		token, err := resolveVaultToken(VaultConfig{TokenFile: path}, nil)
		if err != nil {
			t.Fatalf("resolveVaultToken() unexpected error: %v", err)
		}
		if token != "file-token" {
			t.Errorf("resolveVaultToken() = %q, want %q", token, "file-token")
		}
	})

	t.Run("missing token file", func(t *testing.T) {
		_, err := resolveVaultToken(VaultConfig{TokenFile: "/nonexistent/token"}, nil)
		if err == nil {
			t.Fatal("resolveVaultToken() expected error for missing token file")
		}
	})

	t.Run("no token configured", func(t *testing.T) {
		_, err := resolveVaultToken(VaultConfig{}, nil)
		if err == nil {
			t.Fatal("resolveVaultToken() expected error when no token is configured")
		}
	})
}

func TestLoadSingleCertificate(t *testing.T) {
	secret := &VaultSecret{
		Data: map[string]any{
			"cert":  "PEM CERT",
			"key":   "",
			"count": 3,
		},
	}

	var target string
	if got := loadSingleCertificate(secret, "cert", &target); got != 1 {
		t.Errorf("loadSingleCertificate(cert) = %d, want 1", got)
	}
	if target != "PEM CERT" {
		t.Errorf("target = %q, want %q", target, "PEM CERT")
	}

	var empty string
	if got := loadSingleCertificate(secret, "key", &empty); got != 0 {
		t.Errorf("loadSingleCertificate(empty key) = %d, want 0", got)
	}
	if got := loadSingleCertificate(secret, "count", &empty); got != 0 {
		t.Errorf("loadSingleCertificate(non-string) = %d, want 0", got)
	}
	if got := loadSingleCertificate(secret, "ca", &empty); got != 0 {
		t.Errorf("loadSingleCertificate(missing) = %d, want 0", got)
	}
	if empty != "" {
		t.Errorf("target modified unexpectedly: %q", empty)
	}
}

func TestNewVaultClientDisabled(t *testing.T) {
	client, err := NewVaultClient(VaultConfig{Enabled: false}, nil)
	if err != nil {
		t.Fatalf("NewVaultClient() unexpected error: %v", err)
	}
	if client != nil {
		t.Error("NewVaultClient() with vault disabled should return nil client")
	}
}

func TestApplyVaultSecretsDisabled(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Vault.Enabled = false
	if err := ApplyVaultSecrets(cfg, nil); err != nil {
		t.Fatalf("ApplyVaultSecrets() unexpected error with vault disabled: %v", err)
	}
}
