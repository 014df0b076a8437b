package app

import "github.com/urfave/cli/v2"

const envSession = "QUIZTIMER_SESSION"

var (
	sessionFlag = &cli.StringFlag{
		Name:    "session",
		Aliases: []string{"s"},
		Usage:   "The quiz session to time. A new session id is generated when empty",
		EnvVars: []string{envSession},
	}

	offsetFlag = &cli.StringFlag{
		Name:    "offset",
		Aliases: []string{"o"},
		Usage:   "Time allowed for a new quiz, e.g. 40m3s or 2403 (default: 40m3s)",
	}

	warnFlag = &cli.StringFlag{
		Name:    "warn",
		Aliases: []string{"w"},
		Usage:   "Remaining time at which the low-time notification fires. 0 disables it (default: 5m)",
	}

	tickFlag = &cli.StringFlag{
		Name:  "tick",
		Usage: "How often the remaining time is refreshed (default: 1s)",
	}

	bannerHideFlag = &cli.StringFlag{
		Name:  "banner-hide",
		Usage: "How long the low-time banner stays on screen. 0 keeps it (default: 3s)",
	}

	untilFlag = &cli.StringFlag{
		Name:    "until",
		Aliases: []string{"u"},
		Usage:   "End a new quiz at a specific time (e.g. '5pm' or 'in 30 minutes')",
	}

	resultsURLFlag = &cli.StringFlag{
		Name:  "results-url",
		Usage: "Base URL of the quiz site that serves the results page",
	}

	plainFlag = &cli.BoolFlag{
		Name:  "plain",
		Usage: "Print the countdown as plain lines instead of the interactive page",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the desktop notification that appears when time is running out",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Do not ask for confirmation",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}
)
