package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/quiztimer/countdown"
	"github.com/ayoisaiah/quiztimer/deadline"
	"github.com/ayoisaiah/quiztimer/internal/config"
	"github.com/ayoisaiah/quiztimer/internal/pathutil"
	"github.com/ayoisaiah/quiztimer/notify"
	"github.com/ayoisaiah/quiztimer/store"
	"github.com/ayoisaiah/quiztimer/ticker"
	"github.com/ayoisaiah/quiztimer/timer"
)

// page is the set of regions a countdown is shown on.
type page struct {
	display  countdown.Display
	banner   notify.Banner
	prompter notify.Prompter
	// unload leaves the page once the results page has been opened
	unload func()
}

// quiz is a fully wired countdown for one session.
type quiz struct {
	countdown *countdown.Countdown
	notifier  *notify.Notifier
	status    *timer.StatusFile
}

// iconPath returns the notification icon if the user has installed one.
func iconPath() string {
	// an empty string is returned if the file is not found
	p, _ := xdg.SearchDataFile(filepath.Join(pathutil.Dir(), "icon.png"))

	return p
}

func newQuiz(
	ctx context.Context,
	cfg *config.Config,
	db store.DB,
	id string,
	pg page,
	log *slog.Logger,
) *quiz {
	status := timer.NewStatusFile(pathutil.StatusFilePath(), id, pg.display, log)

	notifyOpts := []notify.Option{
		notify.WithBanner(pg.banner),
		notify.WithTitle(cfg.Notifications.Title),
		notify.WithHideAfter(cfg.Timer.BannerHide),
		notify.WithLogger(log),
	}

	if cfg.Notifications.Enabled {
		desktopOpts := []notify.DesktopOption{
			notify.WithIcon(iconPath()),
			notify.WithDesktopLogger(log),
		}

		if pg.prompter != nil {
			desktopOpts = append(desktopOpts, notify.WithPrompter(pg.prompter))
		}

		if cfg.Notifications.Sound {
			desktopOpts = append(desktopOpts, notify.WithBell())
		}

		notifyOpts = append(
			notifyOpts,
			notify.WithSystem(notify.NewDesktop(db, desktopOpts...)),
		)
	}

	n := notify.New(ctx, notifyOpts...)

	browser := timer.NewBrowser(
		cfg.Results.BaseURL,
		cfg.Results.OpenCmd,
		pg.unload,
		log,
	)

	c := countdown.New(
		countdown.Options{
			LowTimeMessage: cfg.Notifications.LowTimeMessage,
			ExpiredMessage: cfg.Results.ExpiredMessage,
			Destination:    cfg.Results.Path,
			Offset:         cfg.Timer.Offset,
			WarnThreshold:  cfg.Timer.WarnThreshold,
			Tick:           cfg.Timer.Tick,
		},
		deadline.New(db.Session(id), deadline.WithLogger(log)),
		ticker.New(),
		countdown.WithDisplay(status),
		countdown.WithNotifier(n),
		countdown.WithNavigator(browser),
		countdown.WithLogger(log),
	)

	return &quiz{
		countdown: c,
		notifier:  n,
		status:    status,
	}
}

// close stops the countdown and removes the status file. The deadline
// stays persisted.
func (q *quiz) close() {
	q.countdown.Stop()
	q.status.Remove()
}

// runPage shows the countdown on the interactive terminal page until the
// user quits or time is up.
func runPage(
	ctx context.Context,
	cfg *config.Config,
	db store.DB,
	id string,
	log *slog.Logger,
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	screen := &timer.Screen{}

	q := newQuiz(ctx, cfg, db, id, page{
		display:  screen,
		banner:   screen.Banner(),
		prompter: screen,
		unload:   screen.Quit,
	}, log)

	defer q.close()

	model := timer.New(q.countdown, timer.Options{
		Style:     timer.NewStyle(cfg.Display.DarkTheme, cfg.Display.NoColor),
		Session:   id,
		SubmitCmd: cfg.Quiz.SubmitCmd,
		Offset:    cfg.Timer.Offset,
	}, log)

	p := tea.NewProgram(model, tea.WithContext(ctx))

	screen.Attach(p)

	_, err := p.Run()

	return err
}

// runPlain prints the countdown as lines on stdout until time is up or the
// process is interrupted.
func runPlain(
	ctx context.Context,
	cfg *config.Config,
	db store.DB,
	id string,
	log *slog.Logger,
) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var once sync.Once

	unloaded := make(chan struct{})

	plain := timer.NewPlain(config.Stdout)

	q := newQuiz(ctx, cfg, db, id, page{
		display: plain,
		banner:  plain.Banner(),
		unload: func() {
			once.Do(func() {
				close(unloaded)
			})
		},
	}, log)

	defer q.close()

	q.countdown.Start()

	select {
	case <-unloaded:
	case <-ctx.Done():
	}

	return nil
}
