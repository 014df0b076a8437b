package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/quiztimer/internal/apperr"
)

func defaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			Offset:        2403 * time.Second,
			WarnThreshold: 5 * time.Minute,
			BannerHide:    3 * time.Second,
			Tick:          time.Second,
		},
		Notifications: NotificationConfig{
			Title:          "Quiz Timer",
			LowTimeMessage: "Hurry Up! 5 minutes remaining!",
			Enabled:        true,
		},
		Results: ResultsConfig{
			BaseURL:        "http://localhost:5000",
			Path:           "/results",
			ExpiredMessage: "Time's Up! Thank you for Giving Us a Trial!!",
		},
		Display: DisplayConfig{
			DarkTheme: true,
		},
	}
}

func TestViperWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := New(WithViperConfig(path))
	require.NoError(t, err)

	if diff := cmp.Diff(defaultConfig(), cfg); diff != "" {
		t.Fatalf("default config mismatch (-want +got):\n%s", diff)
	}

	_, err = os.Stat(path)
	require.NoError(t, err, "default config file was not written")

	again, err := New(WithViperConfig(path))
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestViperReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	content := `timer:
  offset: 20m
  warn_threshold: 2m
  tick: 500ms
results:
  base_url: https://quiz.example.com
  open_cmd: firefox {url}
quiz:
  submit_cmd: curl -X POST http://localhost:5000/submit
`

	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := New(WithViperConfig(path))
	require.NoError(t, err)

	assert.Equal(t, 20*time.Minute, cfg.Timer.Offset)
	assert.Equal(t, 2*time.Minute, cfg.Timer.WarnThreshold)
	assert.Equal(t, 500*time.Millisecond, cfg.Timer.Tick)
	assert.Equal(t, 3*time.Second, cfg.Timer.BannerHide)
	assert.Equal(t, "https://quiz.example.com/results", cfg.ResultsURL())
	assert.Equal(t, "firefox {url}", cfg.Results.OpenCmd)
	assert.Equal(t, "curl -X POST http://localhost:5000/submit", cfg.Quiz.SubmitCmd)
}

func TestCLIOptionsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := New(
		WithViperConfig(path),
		WithCLIOptions(CLIOptions{
			Session:       " algebra ",
			Offset:        "90",
			Warn:          "1m",
			BannerHide:    "0",
			ResultsURL:    "http://127.0.0.1:8080/",
			DisableNotify: true,
			Plain:         true,
			NoColor:       true,
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, "algebra", cfg.Session.ID)
	assert.Equal(t, 90*time.Second, cfg.Timer.Offset)
	assert.Equal(t, time.Minute, cfg.Timer.WarnThreshold)
	assert.Equal(t, time.Duration(0), cfg.Timer.BannerHide)
	assert.False(t, cfg.Notifications.Enabled)
	assert.Equal(t, "http://127.0.0.1:8080/results", cfg.ResultsURL())
	assert.True(t, cfg.Display.Plain)
	assert.True(t, cfg.Display.NoColor)
}

func TestCLIUntil(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 0, 0, 0, time.UTC)
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := New(
		WithViperConfig(path),
		WithCLIOptions(CLIOptions{
			Until: "in 25 minutes",
			now:   func() time.Time { return now },
		}),
	)
	require.NoError(t, err)

	assert.True(t, now.Add(25*time.Minute).Equal(cfg.Session.Until))
	assert.Equal(t, 25*time.Minute, cfg.Timer.Offset)
}

func TestCLIErrors(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		opts CLIOptions
		want *apperr.Error
	}{
		{
			name: "bad duration",
			opts: CLIOptions{Tick: "often"},
			want: errInvalidCLIDuration,
		},
		{
			name: "until in the past",
			opts: CLIOptions{
				Until: "10 minutes ago",
				now:   func() time.Time { return now },
			},
			want: errUntilInPast,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yml")

			_, err := New(WithViperConfig(path), WithCLIOptions(tc.opts))
			require.Error(t, err)
			assert.ErrorIs(t, err, errConfigOption)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(c *Config)
		want   *apperr.Error
	}{
		{
			name:   "zero offset",
			modify: func(c *Config) { c.Timer.Offset = 0 },
			want:   errInvalidDuration,
		},
		{
			name:   "offset over a day",
			modify: func(c *Config) { c.Timer.Offset = 25 * time.Hour },
			want:   errInvalidDuration,
		},
		{
			name:   "tick too fast",
			modify: func(c *Config) { c.Timer.Tick = time.Millisecond },
			want:   errInvalidDuration,
		},
		{
			name:   "negative warn",
			modify: func(c *Config) { c.Timer.WarnThreshold = -time.Second },
			want:   errNegativeDuration,
		},
		{
			name:   "negative banner",
			modify: func(c *Config) { c.Timer.BannerHide = -time.Second },
			want:   errNegativeDuration,
		},
		{
			name:   "relative results path",
			modify: func(c *Config) { c.Results.Path = "results" },
			want:   errInvalidResultsPath,
		},
		{
			name:   "empty low time message",
			modify: func(c *Config) { c.Notifications.LowTimeMessage = " " },
			want:   errEmptyMsg,
		},
		{
			name:   "empty expired message",
			modify: func(c *Config) { c.Results.ExpiredMessage = "" },
			want:   errEmptyMsg,
		},
	}

	require.NoError(t, defaultConfig().Validate())

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := defaultConfig()
			tc.modify(c)

			assert.ErrorIs(t, c.Validate(), tc.want)
		})
	}
}
