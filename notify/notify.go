// Package notify delivers one-off messages to the user through an in-page
// banner and, when permitted, through the system notification centre
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ayoisaiah/quiztimer/ticker"
)

// Permission is the user's answer to the system notification prompt.
type Permission int

const (
	PermissionDefault Permission = iota
	PermissionGranted
	PermissionDenied
)

func (p Permission) String() string {
	switch p {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	case PermissionDefault:
	}

	return "default"
}

// ParsePermission is the inverse of Permission.String. Unknown values map to
// PermissionDefault.
func ParsePermission(s string) Permission {
	switch s {
	case "granted":
		return PermissionGranted
	case "denied":
		return PermissionDenied
	}

	return PermissionDefault
}

type (
	// Banner is a transient message region.
	Banner interface {
		Show(message string)
		Hide()
	}

	// System is a notification channel that needs the user's permission.
	System interface {
		Permission() Permission
		// RequestPermission asks the user and reports the answer on the
		// returned channel. The channel may never receive if the user never
		// answers; ctx bounds the wait.
		RequestPermission(ctx context.Context) <-chan Permission
		Notify(title, message string) error
	}
)

// DefaultHideAfter is how long a banner stays visible.
const DefaultHideAfter = 3 * time.Second

// Notifier delivers each keyed message at most once for the life of the
// process.
type Notifier struct {
	ctx       context.Context
	banner    Banner
	system    System
	clock     ticker.Clock
	hideTimer ticker.Timer
	log       *slog.Logger
	delivered map[string]bool
	title     string
	hideAfter time.Duration
	wg        sync.WaitGroup
	mu        sync.Mutex
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithBanner sets the in-page banner channel.
func WithBanner(b Banner) Option {
	return func(n *Notifier) {
		n.banner = b
	}
}

// WithSystem sets the system notification channel.
func WithSystem(s System) Option {
	return func(n *Notifier) {
		n.system = s
	}
}

// WithClock sets the clock that schedules the banner auto-hide.
func WithClock(c ticker.Clock) Option {
	return func(n *Notifier) {
		n.clock = c
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(n *Notifier) {
		n.log = l
	}
}

// WithTitle sets the title of system notifications.
func WithTitle(title string) Option {
	return func(n *Notifier) {
		n.title = title
	}
}

// WithHideAfter sets how long the banner stays up. Zero keeps it visible
// until the next message.
func WithHideAfter(d time.Duration) Option {
	return func(n *Notifier) {
		n.hideAfter = d
	}
}

// New returns a Notifier. Background permission requests end when ctx is
// cancelled.
func New(ctx context.Context, opts ...Option) *Notifier {
	n := &Notifier{
		ctx:       ctx,
		clock:     ticker.SystemClock,
		log:       slog.Default(),
		delivered: make(map[string]bool),
		hideAfter: DefaultHideAfter,
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// NotifyOnce shows message on every available channel unless a message
// with the same key was already delivered. It reports whether this call
// delivered. It never blocks on the user.
func (n *Notifier) NotifyOnce(key, message string) bool {
	n.mu.Lock()

	if n.delivered[key] {
		n.mu.Unlock()
		return false
	}

	n.delivered[key] = true

	n.showBanner(message)

	n.mu.Unlock()

	n.notifySystem(message)

	return true
}

// Delivered reports whether a message with key was delivered.
func (n *Notifier) Delivered(key string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.delivered[key]
}

// Wait blocks until every pending system delivery has finished.
func (n *Notifier) Wait() {
	n.wg.Wait()
}

// showBanner must be called with n.mu held.
func (n *Notifier) showBanner(message string) {
	if n.banner == nil {
		return
	}

	if n.hideTimer != nil {
		n.hideTimer.Stop()
		n.hideTimer = nil
	}

	n.banner.Show(message)

	if n.hideAfter > 0 {
		n.hideTimer = n.clock.AfterFunc(n.hideAfter, n.banner.Hide)
	}
}

func (n *Notifier) notifySystem(message string) {
	if n.system == nil {
		return
	}

	switch n.system.Permission() {
	case PermissionGranted:
		n.wg.Add(1)

		go func() {
			defer n.wg.Done()
			n.send(message)
		}()
	case PermissionDefault:
		n.wg.Add(1)

		go func() {
			defer n.wg.Done()
			n.requestAndSend(message)
		}()
	case PermissionDenied:
		n.log.Debug("system notification skipped: permission denied")
	}
}

func (n *Notifier) requestAndSend(message string) {
	select {
	case p := <-n.system.RequestPermission(n.ctx):
		if p != PermissionGranted {
			n.log.Info(
				"system notification permission not granted",
				slog.String("permission", p.String()),
			)

			return
		}

		n.send(message)
	case <-n.ctx.Done():
	}
}

func (n *Notifier) send(message string) {
	err := n.system.Notify(n.title, message)
	if err != nil {
		n.log.Warn(
			"unable to display system notification",
			slog.Any("error", err),
		)
	}
}
