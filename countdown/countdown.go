package countdown

import (
	"log/slog"
	"sync"
	"time"

	"github.com/ayoisaiah/quiztimer/deadline"
	"github.com/ayoisaiah/quiztimer/ticker"
)

// LowTimeKey identifies the low-time notification.
const LowTimeKey = "low-time"

type (
	// Display is the region of the page that shows the countdown.
	Display interface {
		Show(p Payload)
		Terminate(message string)
	}

	// Navigator takes the user to another page.
	Navigator interface {
		Navigate(destination string) error
	}

	// NavigatorFunc adapts a function to the Navigator interface.
	NavigatorFunc func(destination string) error

	// Notifier delivers a message at most once per key.
	Notifier interface {
		NotifyOnce(key, message string) bool
	}
)

// Navigate calls f(destination).
func (f NavigatorFunc) Navigate(destination string) error {
	return f(destination)
}

// Options holds the countdown constants.
type Options struct {
	LowTimeMessage string
	ExpiredMessage string
	Destination    string
	Offset         time.Duration
	// WarnThreshold is the remaining time at or below which the low-time
	// notification fires. Zero disables it.
	WarnThreshold time.Duration
	Tick          time.Duration
}

// Countdown ties the deadline store, the tick driver, the notifier and the
// expiry handler together.
type Countdown struct {
	deadlines *deadline.Store
	driver    *ticker.Driver
	handle    *ticker.Handle
	display   Display
	notifier  Notifier
	nav       Navigator
	expiry    *Expiry
	clock     ticker.Clock
	log       *slog.Logger
	opts      Options
	mu        sync.Mutex
}

// Option configures a Countdown.
type Option func(*Countdown)

// WithDisplay sets the display region.
func WithDisplay(d Display) Option {
	return func(c *Countdown) {
		c.display = d
	}
}

// WithNotifier sets the low-time notifier.
func WithNotifier(n Notifier) Option {
	return func(c *Countdown) {
		c.notifier = n
	}
}

// WithNavigator sets the navigator used once time is up.
func WithNavigator(n Navigator) Option {
	return func(c *Countdown) {
		c.nav = n
	}
}

// WithClock sets the clock used to render payloads.
func WithClock(clock ticker.Clock) Option {
	return func(c *Countdown) {
		c.clock = clock
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Countdown) {
		c.log = l
	}
}

// New creates a countdown. Collaborators that are not provided are treated
// as absent and skipped.
func New(
	opts Options,
	deadlines *deadline.Store,
	driver *ticker.Driver,
	options ...Option,
) *Countdown {
	c := &Countdown{
		opts:      opts,
		deadlines: deadlines,
		driver:    driver,
		clock:     ticker.SystemClock,
		log:       slog.Default(),
	}

	for _, o := range options {
		o(c)
	}

	c.expiry = NewExpiry(
		c.display,
		c.nav,
		opts.ExpiredMessage,
		opts.Destination,
		c.log,
	)

	return c
}

// Start restores or creates the session deadline, shows the remaining time
// straight away and starts ticking.
func (c *Countdown) Start() *ticker.Handle {
	c.mu.Lock()
	defer c.mu.Unlock()

	d := c.deadlines.GetOrCreate(c.opts.Offset)

	p := Render(d, c.clock.Now())
	if !p.Expired {
		c.show(p)
	}

	c.log.Info(
		"countdown started",
		slog.Time("deadline", d),
		slog.Bool("durable", c.deadlines.Durable()),
	)

	c.handle = c.driver.Start(c.opts.Tick, c.tick)

	return c.handle
}

// Stop cancels the tick schedule without expiring the countdown.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.driver.Cancel(c.handle)
}

// Reset erases persisted state, creates a fresh deadline and writes an
// up-to-date payload immediately. The tick schedule is left untouched.
func (c *Countdown) Reset() Payload {
	c.mu.Lock()
	defer c.mu.Unlock()

	d := c.deadlines.Reset(c.opts.Offset)

	p := Render(d, c.clock.Now())

	if c.expiry.State() != Expired {
		c.expiry.Observe(p, nil)
		c.show(p)
	}

	c.log.Info("countdown reset", slog.Time("deadline", d))

	return p
}

// State returns the lifecycle stage observed on the last tick.
func (c *Countdown) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.expiry.State()
}

// Payload renders the current deadline without side effects.
func (c *Countdown) Payload() Payload {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Render(c.deadlines.GetOrCreate(c.opts.Offset), c.clock.Now())
}

// tick renders, checks the low-time threshold and then checks for expiry,
// in that order.
func (c *Countdown) tick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.expiry.State() == Expired {
		c.handle.Cancel()

		return
	}

	p := Render(c.deadlines.GetOrCreate(c.opts.Offset), c.clock.Now())

	if !p.Expired {
		c.show(p)
	}

	c.checkThreshold(p)

	c.expiry.Observe(p, c.handle)
}

func (c *Countdown) checkThreshold(p Payload) {
	if c.notifier == nil || p.Expired || c.opts.WarnThreshold <= 0 {
		return
	}

	if p.Remaining() > c.opts.WarnThreshold {
		return
	}

	if c.notifier.NotifyOnce(LowTimeKey, c.opts.LowTimeMessage) {
		c.log.Info("low time notification sent", slog.Int("remaining", p.Total))
	}
}

func (c *Countdown) show(p Payload) {
	if c.display != nil {
		c.display.Show(p)
	}
}
