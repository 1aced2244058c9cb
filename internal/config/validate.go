package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// An empty labeler.target_did is filled with labeler.did.
func (c *Config) Validate() error {
	if err := c.Bluesky.validate(); err != nil {
		return fmt.Errorf("bluesky: %w", err)
	}

	if err := c.Labeler.validate(); err != nil {
		return fmt.Errorf("labeler: %w", err)
	}

	if err := c.Stream.validate(); err != nil {
		return fmt.Errorf("stream: %w", err)
	}

	if c.Resume.Cooldown <= 0 {
		return fmt.Errorf("resume: cooldown must be > 0 (got %v)", c.Resume.Cooldown)
	}
	if c.Resume.Margin < 0 {
		return fmt.Errorf("resume: margin must be >= 0 (got %v)", c.Resume.Margin)
	}
	if c.Resume.StatusInterval <= c.Stream.CheckpointInterval {
		return fmt.Errorf("resume: status_interval (%v) must be longer than stream.checkpoint_interval (%v)",
			c.Resume.StatusInterval, c.Stream.CheckpointInterval)
	}

	if c.Export.Enabled {
		if strings.TrimSpace(c.Export.Dir) == "" || strings.TrimSpace(c.Export.FileName) == "" {
			return fmt.Errorf("export: dir and file_name are required when enabled")
		}
		if c.Export.Interval <= 0 {
			return fmt.Errorf("export: interval must be > 0 (got %v)", c.Export.Interval)
		}
	}

	return nil
}

func (b *BlueskyConfig) validate() error {
	u, err := url.Parse(b.ServiceURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("service_url must be an absolute URL (got %q)", b.ServiceURL)
	}
	if b.Identifier == "" || b.Password == "" {
		return fmt.Errorf("identifier and password are required")
	}
	if b.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be > 0 (got %v)", b.RequestTimeout)
	}
	if b.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests_per_second must be > 0 (got %v)", b.RequestsPerSecond)
	}
	if b.Burst < 1 {
		return fmt.Errorf("burst must be >= 1 (got %d)", b.Burst)
	}
	return nil
}

func (l *LabelerConfig) validate() error {
	if !strings.HasPrefix(l.DID, "did:") {
		return fmt.Errorf("did must start with \"did:\" (got %q)", l.DID)
	}
	if l.TargetDID == "" {
		l.TargetDID = l.DID
	}
	if !strings.HasPrefix(l.TargetDID, "did:") {
		return fmt.Errorf("target_did must start with \"did:\" (got %q)", l.TargetDID)
	}
	return nil
}

func (s *StreamConfig) validate() error {
	u, err := url.Parse(s.Endpoint)
	if err != nil || (u.Scheme != "ws" && u.Scheme != "wss") {
		return fmt.Errorf("endpoint must be a ws:// or wss:// URL (got %q)", s.Endpoint)
	}
	if s.Collection == "" {
		return fmt.Errorf("collection is required")
	}
	if s.StartupDelay < 0 {
		return fmt.Errorf("startup_delay must be >= 0 (got %v)", s.StartupDelay)
	}
	if s.CheckpointInterval <= 0 {
		return fmt.Errorf("checkpoint_interval must be > 0 (got %v)", s.CheckpointInterval)
	}
	if s.BufferSize < 0 {
		return fmt.Errorf("buffer_size must be >= 0 (got %d)", s.BufferSize)
	}
	if s.MaxCheckpointFailures < 0 {
		return fmt.Errorf("max_checkpoint_failures must be >= 0 (got %d)", s.MaxCheckpointFailures)
	}
	return nil
}
