package notify

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/gen2brain/beeep"

	"github.com/ayoisaiah/quiztimer/store"
)

// PermissionKey is the settings key that remembers the user's answer.
const PermissionKey = "notification_permission"

const permissionQuestion = "Allow desktop notifications from quiztimer?"

type (
	// Settings stores process-wide preferences.
	Settings interface {
		Setting(key string) ([]byte, error)
		SetSetting(key string, value []byte) error
	}

	// Prompter asks the user a yes/no question. The returned channel
	// receives the answer once, or never if the user does not answer.
	Prompter interface {
		Confirm(question string) <-chan bool
	}

	// PrompterFunc adapts a function to the Prompter interface.
	PrompterFunc func(question string) <-chan bool
)

// Confirm calls f(question).
func (f PrompterFunc) Confirm(question string) <-chan bool {
	return f(question)
}

// Desktop delivers notifications through the desktop notification daemon.
type Desktop struct {
	settings   Settings
	prompter   Prompter
	log        *slog.Logger
	send       func(title, message, icon string) error
	bell       func() error
	icon       string
	permission Permission
	mu         sync.Mutex
}

// DesktopOption configures a Desktop.
type DesktopOption func(*Desktop)

// WithPrompter sets who answers the permission question. Without one the
// desktop channel is granted unless a denial was stored.
func WithPrompter(p Prompter) DesktopOption {
	return func(d *Desktop) {
		d.prompter = p
	}
}

// WithIcon sets the notification icon path.
func WithIcon(path string) DesktopOption {
	return func(d *Desktop) {
		d.icon = path
	}
}

// WithBell plays a short tone after each notification.
func WithBell() DesktopOption {
	return func(d *Desktop) {
		d.bell = PlayBell
	}
}

// WithDesktopLogger sets the logger.
func WithDesktopLogger(l *slog.Logger) DesktopOption {
	return func(d *Desktop) {
		d.log = l
	}
}

// NewDesktop returns a desktop notification channel whose permission is
// remembered in settings. settings may be nil.
func NewDesktop(settings Settings, opts ...DesktopOption) *Desktop {
	d := &Desktop{
		settings: settings,
		log:      slog.Default(),
		send: func(title, message, icon string) error {
			return beeep.Notify(title, message, icon)
		},
	}

	for _, opt := range opts {
		opt(d)
	}

	d.permission = d.loadPermission()

	return d
}

func (d *Desktop) loadPermission() Permission {
	if d.settings != nil {
		b, err := d.settings.Setting(PermissionKey)

		switch {
		case err == nil:
			if p := ParsePermission(string(b)); p != PermissionDefault {
				return p
			}
		case !errors.Is(err, store.ErrNotFound):
			d.log.Warn(
				"unable to read notification permission",
				slog.Any("error", err),
			)
		}
	}

	if d.prompter == nil {
		return PermissionGranted
	}

	return PermissionDefault
}

func (d *Desktop) Permission() Permission {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.permission
}

// RequestPermission asks the prompter and stores the answer.
func (d *Desktop) RequestPermission(ctx context.Context) <-chan Permission {
	ch := make(chan Permission, 1)

	if p := d.Permission(); p != PermissionDefault || d.prompter == nil {
		ch <- p
		return ch
	}

	answers := d.prompter.Confirm(permissionQuestion)

	go func() {
		select {
		case ok := <-answers:
			p := PermissionDenied
			if ok {
				p = PermissionGranted
			}

			d.setPermission(p)

			ch <- p
		case <-ctx.Done():
		}
	}()

	return ch
}

func (d *Desktop) setPermission(p Permission) {
	d.mu.Lock()
	d.permission = p
	d.mu.Unlock()

	if d.settings == nil {
		return
	}

	err := d.settings.SetSetting(PermissionKey, []byte(p.String()))
	if err != nil {
		d.log.Warn(
			"unable to save notification permission",
			slog.Any("error", err),
		)
	}
}

// Notify displays a desktop notification and rings the bell if enabled.
func (d *Desktop) Notify(title, message string) error {
	err := d.send(title, message, d.icon)
	if err != nil {
		return err
	}

	if d.bell != nil {
		if berr := d.bell(); berr != nil {
			d.log.Warn("unable to play bell", slog.Any("error", berr))
		}
	}

	return nil
}
