package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/quiztimer/countdown"
	"github.com/ayoisaiah/quiztimer/deadline"
	"github.com/ayoisaiah/quiztimer/internal/config"
	"github.com/ayoisaiah/quiztimer/internal/pathutil"
	"github.com/ayoisaiah/quiztimer/internal/ui"
	"github.com/ayoisaiah/quiztimer/report"
	"github.com/ayoisaiah/quiztimer/store"
	"github.com/ayoisaiah/quiztimer/timer"
)

const (
	envNoColor          = "NO_COLOR"
	envQuizTimerNoColor = "QUIZTIMER_NO_COLOR"

	// statusTimeout is how long status waits for the database before
	// falling back to the status file of a running instance.
	statusTimeout = 100 * time.Millisecond
)

var (
	errDeadlineNotSaved = errors.New(
		"the new deadline could not be saved",
	)

	errCancelled = errors.New("operation cancelled")
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// confirm asks a yes/no question unless --yes was passed.
func confirm(ctx *cli.Context, title string) error {
	if ctx.Bool("yes") {
		return nil
	}

	var ok bool

	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		return err
	}

	if !ok {
		return errCancelled
	}

	return nil
}

// defaultAction starts the countdown of a quiz session or resumes it if the
// session already has a deadline.
func defaultAction(ctx *cli.Context) error {
	cfg, err := config.Load(config.CLIOptionsFromContext(ctx))
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	if cfg.Display.NoColor {
		disableStyling()
	}

	id, created := sessionID(cfg.Session.ID)
	if created {
		report.SessionStarted(id)
	}

	log := slog.Default().With(slog.String("session", id))

	db := openStore(pathutil.DBFilePath(), log)
	defer db.Close()

	log.Debug("effective config", slog.String("config", cfg.Dump()))

	if cfg.Display.Plain {
		return runPlain(ctx.Context, cfg, db, id, log)
	}

	return runPage(ctx.Context, cfg, db, id, log)
}

// openStore opens the database at path. If it cannot be opened, the
// countdown still runs against an in-memory store and the deadline is lost
// when the process exits.
func openStore(path string, log *slog.Logger) store.DB {
	db, err := store.NewClient(path)
	if err == nil {
		return db
	}

	log.Warn(
		"database unavailable, keeping deadline in memory",
		slog.String("path", path),
		slog.Any("error", err),
	)

	report.PersistenceUnavailable(err)

	return store.NewMemoryDB()
}

// resetAction restarts the countdown of a session from the configured
// offset.
func resetAction(ctx *cli.Context) error {
	id, err := requireSession(ctx)
	if err != nil {
		return err
	}

	cfg, err := config.Load(config.CLIOptionsFromContext(ctx))
	if err != nil {
		return err
	}

	err = confirm(ctx, fmt.Sprintf("Restart the countdown of session %s?", id))
	if err != nil {
		return err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	d := deadline.New(db.Session(id))

	newDeadline := d.Reset(cfg.Timer.Offset)
	if !d.Durable() {
		return errDeadlineNotSaved
	}

	report.DeadlineReset(id, newDeadline)

	return nil
}

// endAction erases everything stored for a session.
func endAction(ctx *cli.Context) error {
	id, err := requireSession(ctx)
	if err != nil {
		return err
	}

	err = confirm(ctx, fmt.Sprintf("End session %s and erase its deadline?", id))
	if err != nil {
		return err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	err = db.EndSession(id)
	if err != nil {
		return err
	}

	report.SessionEnded(id)

	return nil
}

// statusAction prints the remaining time of a session. If another instance
// holds the database, the status file it publishes is read instead.
func statusAction(ctx *cli.Context) error {
	db, err := store.NewClientWithTimeout(pathutil.DBFilePath(), statusTimeout)
	if store.IsLocked(err) {
		return runningStatus()
	}

	if err != nil {
		return err
	}

	defer db.Close()

	id, err := requireSession(ctx)
	if err != nil {
		return err
	}

	d, err := deadline.Peek(db.Session(id))
	if errors.Is(err, store.ErrNotFound) {
		report.NoDeadline(id)
		return nil
	}

	if err != nil {
		return err
	}

	report.Status(config.Stdout, id, countdown.Render(d, time.Now()))

	return nil
}

// runningStatus reports the session of the instance that holds the
// database.
func runningStatus() error {
	s, err := timer.ReadStatus(pathutil.StatusFilePath())
	if err != nil {
		// a missing file should not return an error
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return err
	}

	report.Status(
		config.Stdout,
		s.Session,
		countdown.Render(s.Deadline, time.Now()),
	)

	return nil
}

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	setupLogging()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if QUIZTIMER_NO_COLOR is set
	if _, exists := os.LookupEnv(envQuizTimerNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting quiztimer")

	closeLogging()

	return nil
}
