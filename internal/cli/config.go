package cli

import "os"

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Output    string
}

// DefaultConfig returns the default configuration, with the server URL
// taken from the LEAGUES_SERVER environment variable when set.
func DefaultConfig() *Config {
	serverURL := os.Getenv("LEAGUES_SERVER")
	if serverURL == "" {
		serverURL = "http://localhost:8080"
	}

	return &Config{
		ServerURL: serverURL,
		Output:    "text",
	}
}
