package server

import "fmt"

// displayServerInfo prints startup information for operators
func (s *Server) displayServerInfo(tlsEnabled bool) {
	scheme := "http"
	if tlsEnabled {
		scheme = "https"
	}
	baseURL := fmt.Sprintf("%s://%s:%s", scheme, s.Host, s.Port)

	fmt.Printf("Resume benchmark server %s listening on %s\n", s.Version, baseURL)
	fmt.Println("Endpoints:")
	fmt.Printf("  POST %s/score       - benchmark a resume against a category\n", baseURL)
	fmt.Printf("  POST %s/parse       - extract entities from resume text\n", baseURL)
	fmt.Printf("  POST %s/timeline    - analyze employment date spans\n", baseURL)
	fmt.Printf("  POST %s/advise      - career path and upskilling advice\n", baseURL)
	fmt.Printf("  POST %s/readability - readability and ATS analysis\n", baseURL)
	fmt.Printf("  POST %s/report      - full diagnostic report\n", baseURL)
	fmt.Printf("  POST %s/upload      - extract text from an uploaded file\n", baseURL)
	fmt.Printf("  GET  %s/health      - health status\n", baseURL)
	fmt.Printf("  GET  %s/stats       - engine and server statistics\n", baseURL)
	fmt.Printf("  GET  %s/categories  - known benchmark categories\n", baseURL)

	if tlsEnabled {
		fmt.Printf("TLS: enabled (mode: %s, min version: %s)\n", s.TLSConfig.Mode, s.getMinTLSVersionLabel())
	}
	if len(s.APIKeys) > 0 {
		fmt.Printf("Authentication: enabled (%d API keys)\n", len(s.APIKeys))
	} else {
		fmt.Println("Authentication: disabled")
	}
	if s.RateLimiter != nil {
		fmt.Printf("Rate limiting: enabled (%d requests/min, burst %d)\n",
			s.RateLimit.RequestsPerMin, s.RateLimit.BurstCapacity)
	}
	fmt.Printf("Max request size: %d bytes\n", s.MaxRequestSize)
}

func (s *Server) getMinTLSVersionLabel() string {
	if s.TLSConfig.MinVersion == "" {
		return "1.2"
	}
	return s.TLSConfig.MinVersion
}
