package server

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"
)

// configureTLS applies the TLS configuration to the HTTP server.
// Returns true when the server should listen with TLS.
func (s *Server) configureTLS(server *http.Server) (bool, error) {
	switch s.TLSConfig.Mode {
	case "", "disabled":
		return false, nil
	case "server", "mutual":
		tlsConfig, err := s.buildTLSConfig()
		if err != nil {
			return false, fmt.Errorf("failed to build TLS configuration: %w", err)
		}
		server.TLSConfig = tlsConfig
		return true, nil
	default:
		return false, fmt.Errorf("unsupported TLS mode: %s", s.TLSConfig.Mode)
	}
}

// buildTLSConfig creates a tls.Config from the server's TLS settings
func (s *Server) buildTLSConfig() (*tls.Config, error) {
	cert, err := s.loadServerCertificate()
	if err != nil {
		return nil, err
	}

	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   s.getMinTLSVersion(),
	}

	if s.TLSConfig.Mode == "mutual" {
		caPool, err := s.loadClientCAPool()
		if err != nil {
			return nil, err
		}
		tlsConfig.ClientCAs = caPool
		tlsConfig.ClientAuth = s.getClientAuthPolicy()
	}

	return tlsConfig, nil
}

// loadServerCertificate loads the certificate from content or files
func (s *Server) loadServerCertificate() (tls.Certificate, error) {
	if s.TLSConfig.CertContent != "" && s.TLSConfig.KeyContent != "" {
		cert, err := tls.X509KeyPair([]byte(s.TLSConfig.CertContent), []byte(s.TLSConfig.KeyContent))
		if err != nil {
			return tls.Certificate{}, fmt.Errorf("failed to parse certificate content: %w", err)
		}
		return cert, nil
	}

	cert, err := tls.LoadX509KeyPair(s.TLSConfig.CertFile, s.TLSConfig.KeyFile)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("failed to load certificate files: %w", err)
	}
	return cert, nil
}

// loadClientCAPool loads the CA pool used to verify client certificates
func (s *Server) loadClientCAPool() (*x509.CertPool, error) {
	var caData []byte
	if s.TLSConfig.CAContent != "" {
		caData = []byte(s.TLSConfig.CAContent)
	} else {
		data, err := os.ReadFile(s.TLSConfig.CAFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA certificate: %w", err)
		}
		caData = data
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caData) {
		return nil, fmt.Errorf("failed to parse CA certificate")
	}
	return pool, nil
}

// getMinTLSVersion returns the configured minimum TLS version
func (s *Server) getMinTLSVersion() uint16 {
	switch s.TLSConfig.MinVersion {
	case "1.3":
		return tls.VersionTLS13
	default:
		return tls.VersionTLS12
	}
}

// getClientAuthPolicy maps the configured policy to a tls.ClientAuthType
func (s *Server) getClientAuthPolicy() tls.ClientAuthType {
	switch s.TLSConfig.ClientAuthPolicy {
	case "request":
		return tls.RequestClientCert
	case "verify":
		return tls.VerifyClientCertIfGiven
	default:
		return tls.RequireAndVerifyClientCert
	}
}
