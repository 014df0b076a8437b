package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/quiztimer/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the quiztimer app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "quiztimer",
		Usage: `
		quiztimer bounds the time allowed for an online quiz. The deadline
		survives restarts within a quiz session, a notification warns you when
		time is running out and the results page opens once time is up.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "reset",
				Usage:  "Restart the countdown of a quiz session",
				Flags:  []cli.Flag{sessionFlag, offsetFlag, yesFlag},
				Action: resetAction,
			},
			{
				Name:   "end",
				Usage:  "End a quiz session and erase its saved state",
				Flags:  []cli.Flag{sessionFlag, yesFlag},
				Action: endAction,
			},
			{
				Name:   "status",
				Usage:  "Print the remaining time of a quiz session",
				Flags:  []cli.Flag{sessionFlag},
				Action: statusAction,
			},
			{
				Name:   "list",
				Usage:  "List quiz sessions and their deadlines",
				Flags:  []cli.Flag{jsonFlag},
				Action: listAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			sessionFlag,
			offsetFlag,
			warnFlag,
			tickFlag,
			bannerHideFlag,
			untilFlag,
			resultsURLFlag,
			plainFlag,
			noColorFlag,
			disableNotificationFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
