package mailer

// DefaultBaseURL is the Resend API endpoint
const DefaultBaseURL = "https://api.resend.com/"

// Config represents the configuration for the Resend sender
type Config struct {
	// APIKey authenticates against the Resend API
	APIKey string

	// BaseURL overrides the API endpoint; empty means DefaultBaseURL
	BaseURL string
}

// Validate checks if the configuration is usable
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrNotConfigured
	}
	return nil
}
