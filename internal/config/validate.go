package config

import (
	"strings"
	"time"
)

var (
	// Minimum and maximum countdown length.
	minOffset = 1 * time.Second
	maxOffset = 24 * time.Hour

	// Render cadence bounds.
	minTick = 10 * time.Millisecond
	maxTick = 1 * time.Minute
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateTimer(); err != nil {
		return err
	}

	if err := c.validateResults(); err != nil {
		return err
	}

	if strings.TrimSpace(c.Notifications.LowTimeMessage) == "" {
		return errEmptyMsg.Fmt("low time message")
	}

	return nil
}

// validateTimer validates the countdown constants.
func (c *Config) validateTimer() error {
	t := c.Timer

	if t.Offset < minOffset || t.Offset > maxOffset {
		return errInvalidDuration.Fmt("timer offset", minOffset, maxOffset)
	}

	if t.Tick < minTick || t.Tick > maxTick {
		return errInvalidDuration.Fmt("timer tick", minTick, maxTick)
	}

	if t.WarnThreshold < 0 {
		return errNegativeDuration.Fmt("warn threshold")
	}

	if t.BannerHide < 0 {
		return errNegativeDuration.Fmt("banner hide delay")
	}

	return nil
}

// validateResults validates the results destination.
func (c *Config) validateResults() error {
	if !strings.HasPrefix(c.Results.Path, "/") {
		return errInvalidResultsPath.Fmt(c.Results.Path)
	}

	if strings.TrimSpace(c.Results.ExpiredMessage) == "" {
		return errEmptyMsg.Fmt("expired message")
	}

	return nil
}
