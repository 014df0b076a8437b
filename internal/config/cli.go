package config

import (
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/quiztimer/internal/timeutil"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Session       string
	Offset        string
	Warn          string
	Tick          string
	BannerHide    string
	Until         string
	ResultsURL    string
	DisableNotify bool
	Plain         bool
	NoColor       bool
	now           func() time.Time
}

// CLIOptionsFromContext collects the global flags of a command invocation.
func CLIOptionsFromContext(ctx *cli.Context) CLIOptions {
	return CLIOptions{
		Session:       ctx.String("session"),
		Offset:        ctx.String("offset"),
		Warn:          ctx.String("warn"),
		Tick:          ctx.String("tick"),
		BannerHide:    ctx.String("banner-hide"),
		Until:         ctx.String("until"),
		ResultsURL:    ctx.String("results-url"),
		DisableNotify: ctx.Bool("disable-notification"),
		Plain:         ctx.Bool("plain"),
		NoColor:       ctx.Bool("no-color"),
	}
}

// WithCLIOptions returns an Option that applies already collected CLI
// options.
func WithCLIOptions(opts CLIOptions) Option {
	return func(c *Config) error {
		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if err := applyCLIDurations(c, opts); err != nil {
		return err
	}

	c.Session.ID = strings.TrimSpace(opts.Session)

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.ResultsURL != "" {
		c.Results.BaseURL = strings.TrimSuffix(opts.ResultsURL, "/")
	}

	c.Display.Plain = opts.Plain
	c.Display.NoColor = opts.NoColor

	if opts.Until != "" {
		now := time.Now
		if opts.now != nil {
			now = opts.now
		}

		until, err := timeutil.FromStr(opts.Until, now())
		if err != nil {
			return errInvalidUntil.Fmt(opts.Until).Wrap(err)
		}

		if !until.After(now()) {
			return errUntilInPast.Fmt(until.Format(time.RFC3339))
		}

		c.Session.Until = until
		c.Timer.Offset = until.Sub(now())
	}

	return nil
}

// applyCLIDurations handles parsing and applying duration settings from CLI.
func applyCLIDurations(c *Config, opts CLIOptions) error {
	durations := []struct {
		target *time.Duration
		value  string
		name   string
	}{
		{&c.Timer.Offset, opts.Offset, "offset"},
		{&c.Timer.WarnThreshold, opts.Warn, "warn"},
		{&c.Timer.Tick, opts.Tick, "tick"},
		{&c.Timer.BannerHide, opts.BannerHide, "banner-hide"},
	}

	for _, d := range durations {
		if d.value == "" {
			continue
		}

		dur, err := parseDuration(d.value)
		if err != nil {
			return errInvalidCLIDuration.Fmt(d.name).Wrap(err)
		}

		*d.target = dur
	}

	return nil
}

// parseDuration parses a duration string, treating unit-less values as
// seconds.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	return time.ParseDuration(s + "s")
}
