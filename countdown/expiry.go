package countdown

import (
	"log/slog"
	"sync"

	"github.com/ayoisaiah/quiztimer/ticker"
)

// State is the lifecycle stage of a countdown.
type State int

const (
	Running State = iota
	Warning
	Expired
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Warning:
		return "warning"
	case Expired:
		return "expired"
	}

	return "unknown"
}

// Expiry moves a countdown through Running, Warning and Expired, and
// performs the terminal action exactly once. It is not safe for concurrent
// use; Countdown serializes calls.
type Expiry struct {
	display     Display
	nav         Navigator
	log         *slog.Logger
	message     string
	destination string
	once        sync.Once
	state       State
}

// NewExpiry returns a handler that writes message to display and navigates
// to destination once time is up. display and nav may be nil.
func NewExpiry(
	display Display,
	nav Navigator,
	message, destination string,
	log *slog.Logger,
) *Expiry {
	if log == nil {
		log = slog.Default()
	}

	return &Expiry{
		display:     display,
		nav:         nav,
		message:     message,
		destination: destination,
		log:         log,
	}
}

// State returns the current lifecycle stage.
func (e *Expiry) State() State {
	return e.state
}

// Observe advances the state machine with the payload of the current tick.
// On the first expired payload it cancels h, writes the terminal message and
// navigates to the results destination. Expired is terminal: later calls do
// nothing.
func (e *Expiry) Observe(p Payload, h *ticker.Handle) State {
	if e.state == Expired {
		return e.state
	}

	switch {
	case p.Expired:
		e.expire(h)
	case p.Urgent:
		e.state = Warning
	default:
		e.state = Running
	}

	return e.state
}

func (e *Expiry) expire(h *ticker.Handle) {
	e.state = Expired

	h.Cancel()

	if e.display != nil {
		e.display.Terminate(e.message)
	}

	e.once.Do(func() {
		e.log.Info("time is up", slog.String("destination", e.destination))

		if e.nav == nil {
			return
		}

		if err := e.nav.Navigate(e.destination); err != nil {
			e.log.Error(
				"navigation to results failed",
				slog.String("destination", e.destination),
				slog.Any("error", err),
			)
		}
	})
}
