package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ayoisaiah/quiztimer/internal/pathutil"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Session       SessionConfig      `mapstructure:"-"`
		Results       ResultsConfig      `mapstructure:"results"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Quiz          QuizConfig         `mapstructure:"quiz"`
		Timer         TimerConfig        `mapstructure:"timer"`
		Display       DisplayConfig      `mapstructure:"display"`
	}

	// TimerConfig holds the countdown constants.
	TimerConfig struct {
		// Offset is the initial countdown length of a new deadline
		Offset time.Duration `mapstructure:"offset"`
		// WarnThreshold is the remaining time at which the low-time
		// notification fires
		WarnThreshold time.Duration `mapstructure:"warn_threshold"`
		// BannerHide is the delay before the in-page banner is dismissed
		BannerHide time.Duration `mapstructure:"banner_hide"`
		// Tick is the render cadence
		Tick time.Duration `mapstructure:"tick"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Title          string `mapstructure:"title"`
		LowTimeMessage string `mapstructure:"low_time_message"`
		Enabled        bool   `mapstructure:"enabled"`
		Sound          bool   `mapstructure:"sound"`
	}

	// ResultsConfig describes where the user is sent once time is up.
	ResultsConfig struct {
		BaseURL        string `mapstructure:"base_url"`
		Path           string `mapstructure:"path"`
		OpenCmd        string `mapstructure:"open_cmd"`
		ExpiredMessage string `mapstructure:"expired_message"`
	}

	// QuizConfig holds the hooks into the quiz page.
	QuizConfig struct {
		SubmitCmd string `mapstructure:"submit_cmd"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
		Plain     bool `mapstructure:"-"`
		NoColor   bool `mapstructure:"-"`
	}

	// SessionConfig identifies the quiz session being timed. It is only
	// set from the command-line.
	SessionConfig struct {
		ID    string
		Until time.Time
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// ResultsURL returns the full address of the results page.
func (c *Config) ResultsURL() string {
	return c.Results.BaseURL + c.Results.Path
}

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// Load reads the config file and applies command-line overrides. The
// first-run prompt is skipped in plain mode.
func Load(cli CLIOptions) (*Config, error) {
	configPath := pathutil.ConfigFilePath()

	var opts []Option

	if !cli.Plain {
		opts = append(opts, WithPromptConfig(configPath))
	}

	opts = append(opts, WithViperConfig(configPath), WithCLIOptions(cli))

	return New(opts...)
}

// Dump returns a human readable description of the effective timer config.
func (c *Config) Dump() string {
	return fmt.Sprintf(
		"offset=%s warn=%s banner=%s tick=%s results=%s",
		c.Timer.Offset,
		c.Timer.WarnThreshold,
		c.Timer.BannerHide,
		c.Timer.Tick,
		c.ResultsURL(),
	)
}
