package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Auth.Enabled() && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Import.validate(); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	if err := c.Lookup.validate(); err != nil {
		return fmt.Errorf("lookup: %w", err)
	}

	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must be >= 0 (got %d)", c.Server.RateLimit)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (c *ImportConfig) validate() error {
	if c.MaxConcurrentTranscodes <= 0 {
		return fmt.Errorf("max_concurrent_transcodes must be > 0 (got %d)", c.MaxConcurrentTranscodes)
	}
	if strings.TrimSpace(c.Language) == "" {
		return fmt.Errorf("language is required")
	}
	if strings.TrimSpace(c.FFmpegPath) == "" {
		return fmt.Errorf("ffmpeg_path is required")
	}
	return nil
}

func (c *LookupConfig) validate() error {
	if c.SampleSize <= 0 {
		return fmt.Errorf("sample_size must be > 0 (got %d)", c.SampleSize)
	}
	if c.MaxSearchTerms <= 0 {
		return fmt.Errorf("max_search_terms must be > 0 (got %d)", c.MaxSearchTerms)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be > 0 (got %v)", c.RequestTimeout)
	}

	u, err := url.Parse(c.AudioBaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("audio_base_url must be an absolute URL (got %q)", c.AudioBaseURL)
	}
	if !strings.HasSuffix(c.AudioBaseURL, "/") {
		c.AudioBaseURL += "/"
	}
	return nil
}
