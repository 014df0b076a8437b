package app

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/quiztimer/countdown"
	"github.com/ayoisaiah/quiztimer/deadline"
	"github.com/ayoisaiah/quiztimer/internal/config"
	"github.com/ayoisaiah/quiztimer/internal/pathutil"
	"github.com/ayoisaiah/quiztimer/internal/ui"
	"github.com/ayoisaiah/quiztimer/report"
	"github.com/ayoisaiah/quiztimer/store"
)

// sessionRow is one quiz session as reported by the list command.
type sessionRow struct {
	Deadline  time.Time `json:"deadline"`
	Session   string    `json:"session"`
	State     string    `json:"state"`
	Remaining int       `json:"remaining_seconds"`
	payload   countdown.Payload
}

// sessionRows returns the sessions of db that have a deadline, in natural
// order.
func sessionRows(db store.DB, now time.Time) ([]sessionRow, error) {
	ids, err := db.Sessions()
	if err != nil {
		return nil, err
	}

	sort.Sort(natural.StringSlice(ids))

	rows := make([]sessionRow, 0, len(ids))

	for _, id := range ids {
		d, err := deadline.Peek(db.Session(id))
		if err != nil {
			slog.Debug(
				"skipping session without a readable deadline",
				slog.String("session", id),
				slog.Any("error", err),
			)

			continue
		}

		p := countdown.Render(d, now)

		state := countdown.Running
		if p.Expired {
			state = countdown.Expired
		} else if p.Urgent {
			state = countdown.Warning
		}

		rows = append(rows, sessionRow{
			Session:   id,
			Deadline:  d,
			Remaining: p.Total,
			State:     state.String(),
			payload:   p,
		})
	}

	return rows, nil
}

// printSessionsTable prints a session table to the command-line.
func printSessionsTable(w io.Writer, rows []sessionRow) {
	tableBody := make([][]string, len(rows))

	for i := range rows {
		r := rows[i]

		remaining := ui.Green(r.payload.String())

		switch {
		case r.payload.Expired:
			remaining = ui.Red("time is up")
		case r.payload.Urgent:
			remaining = ui.Red(r.payload.String())
		}

		tableBody[i] = []string{
			fmt.Sprintf("%d", i+1),
			r.Session,
			r.Deadline.Local().Format("Jan 02, 2006 03:04:05 PM"),
			remaining,
		}
	}

	tableBody = append([][]string{
		{"#", "SESSION", "DEADLINE", "REMAINING"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// listAction prints a table of all quiz sessions.
func listAction(ctx *cli.Context) error {
	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	rows, err := sessionRows(db, time.Now())
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(rows)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	if len(rows) == 0 {
		report.NoSessions()
		return nil
	}

	printSessionsTable(config.Stdout, rows)

	return nil
}
