package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyTimerOffset          = "timer.offset"
	keyTimerWarnThreshold   = "timer.warn_threshold"
	keyTimerBannerHide      = "timer.banner_hide"
	keyTimerTick            = "timer.tick"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationsSound   = "notifications.sound"
	keyNotificationsTitle   = "notifications.title"
	keyLowTimeMessage       = "notifications.low_time_message"
	keyResultsBaseURL       = "results.base_url"
	keyResultsPath          = "results.path"
	keyResultsOpenCmd       = "results.open_cmd"
	keyExpiredMessage       = "results.expired_message"
	keySubmitCmd            = "quiz.submit_cmd"
	keyDarkTheme            = "display.dark_theme"
)

// WithViperConfig returns an Option that loads configuration from Viper.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, os.ErrNotExist) && !errors.Is(err, fs.ErrNotExist) &&
			!errors.As(err, &notFound) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and prompt values.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyTimerOffset, "40m3s")
	v.SetDefault(keyTimerWarnThreshold, "5m")
	v.SetDefault(keyTimerBannerHide, "3s")
	v.SetDefault(keyTimerTick, "1s")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationsSound, false)
	v.SetDefault(keyNotificationsTitle, "Quiz Timer")
	v.SetDefault(keyLowTimeMessage, "Hurry Up! 5 minutes remaining!")
	v.SetDefault(keyResultsBaseURL, "http://localhost:5000")
	v.SetDefault(keyResultsPath, "/results")
	v.SetDefault(keyResultsOpenCmd, "")
	v.SetDefault(keyExpiredMessage, "Time's Up! Thank you for Giving Us a Trial!!")
	v.SetDefault(keySubmitCmd, "")
	v.SetDefault(keyDarkTheme, true)

	// values chosen in the first-run prompt
	if c.Timer.Offset != 0 {
		v.Set(keyTimerOffset, c.Timer.Offset.String())
	}

	if c.Timer.WarnThreshold != 0 {
		v.Set(keyTimerWarnThreshold, c.Timer.WarnThreshold.String())
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
