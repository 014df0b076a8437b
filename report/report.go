// Package report prints the outcome of quiztimer commands
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/quiztimer/countdown"
	"github.com/ayoisaiah/quiztimer/internal/ui"
)

const timeFormat = "Jan 02, 2006 03:04:05 PM"

func SessionStarted(id string) {
	pterm.Info.Printfln("quiz session: %s", ui.Highlight(id))
}

func DeadlineReset(id string, deadline time.Time) {
	pterm.Success.Printfln(
		"session %s now ends at %s",
		id,
		ui.Highlight(deadline.Local().Format(timeFormat)),
	)
}

func SessionEnded(id string) {
	pterm.Success.Printfln("session %s ended", id)
}

func NoSessions() {
	pterm.Info.Println("No quiz sessions found")
}

func NoDeadline(id string) {
	pterm.Info.Printfln("session %s has not started", id)
}

// Status writes the remaining time of a session as a single line.
func Status(w io.Writer, id string, p countdown.Payload) {
	remaining := ui.Green(p.String())

	switch {
	case p.Expired:
		remaining = ui.Red("time is up")
	case p.Urgent:
		remaining = ui.Red(p.String())
	}

	fmt.Fprintf(w, "[%s]: %s\n", id, remaining)
}

// PersistenceUnavailable warns that the deadline will not survive a
// restart.
func PersistenceUnavailable(err error) {
	pterm.Warning.Printfln(
		"deadline will not be saved: %v",
		err,
	)
}

func Error(err error) {
	pterm.Error.Println(err)
}
