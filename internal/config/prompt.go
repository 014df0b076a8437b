package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm/putils"
)

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	QuizLength time.Duration
	WarnAt     time.Duration
}

// WithPromptConfig returns an Option that configures settings via
// interactive prompts. It only runs when no config file exists yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	_ = putils.BulletListFromString(`Follow the prompts below to configure quiztimer for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'quiztimer edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[time.Duration]().
				Title("Time allowed for a quiz").
				Options(
					huh.NewOption("40 minutes", 2403*time.Second).Selected(true),
					huh.NewOption("20 minutes", 20*time.Minute),
					huh.NewOption("30 minutes", 30*time.Minute),
					huh.NewOption("60 minutes", 60*time.Minute),
				).
				Value(&opts.QuizLength),
		),
		huh.NewGroup(
			huh.NewSelect[time.Duration]().
				Title("Warn me when this much time is left").
				Options(
					huh.NewOption("5 minutes", 5*time.Minute).Selected(true),
					huh.NewOption("2 minutes", 2*time.Minute),
					huh.NewOption("10 minutes", 10*time.Minute),
				).
				Value(&opts.WarnAt),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Timer.Offset = opts.QuizLength
	c.Timer.WarnThreshold = opts.WarnAt
}
