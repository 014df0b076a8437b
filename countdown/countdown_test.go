package countdown

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/quiztimer/deadline"
	"github.com/ayoisaiah/quiztimer/internal/testutil"
	"github.com/ayoisaiah/quiztimer/store"
	"github.com/ayoisaiah/quiztimer/ticker"
)

const (
	quizOffset     = 2403 * time.Second
	lowTimeMessage = "Hurry Up! 5 minutes remaining!"
	expiredMessage = "Time's Up! Thank you for Giving Us a Trial!!"
)

var quizStart = time.Date(2024, 3, 9, 14, 0, 0, 0, time.UTC)

type recordingDisplay struct {
	payloads   []Payload
	terminated []string
	mu         sync.Mutex
}

func (d *recordingDisplay) Show(p Payload) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.payloads = append(d.payloads, p)
}

func (d *recordingDisplay) Terminate(message string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.terminated = append(d.terminated, message)
}

func (d *recordingDisplay) last() Payload {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.payloads[len(d.payloads)-1]
}

type recordingNavigator struct {
	destinations []string
}

func (n *recordingNavigator) Navigate(destination string) error {
	n.destinations = append(n.destinations, destination)

	return nil
}

// onceNotifier records deliveries and de-duplicates by key.
type onceNotifier struct {
	seen      map[string]bool
	delivered []Payload
	calls     int
	current   func() Payload
}

func (n *onceNotifier) NotifyOnce(key, _ string) bool {
	n.calls++

	if n.seen[key] {
		return false
	}

	n.seen[key] = true
	n.delivered = append(n.delivered, n.current())

	return true
}

type fixture struct {
	countdown *Countdown
	clock     *testutil.FakeClock
	display   *recordingDisplay
	nav       *recordingNavigator
	notifier  *onceNotifier
	storage   *store.Memory
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		clock:   testutil.NewFakeClock(quizStart),
		display: &recordingDisplay{},
		nav:     &recordingNavigator{},
		storage: store.NewMemory(),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f.notifier = &onceNotifier{
		seen: make(map[string]bool),
		current: func() Payload {
			return f.display.last()
		},
	}

	deadlines := deadline.New(
		f.storage,
		deadline.WithClock(f.clock),
		deadline.WithLogger(logger),
	)

	f.countdown = New(
		Options{
			Offset:         quizOffset,
			WarnThreshold:  5 * time.Minute,
			Tick:           time.Hour, // ticks are driven by hand
			LowTimeMessage: lowTimeMessage,
			ExpiredMessage: expiredMessage,
			Destination:    "/results",
		},
		deadlines,
		ticker.New(),
		WithDisplay(f.display),
		WithNavigator(f.nav),
		WithNotifier(f.notifier),
		WithClock(f.clock),
		WithLogger(logger),
	)

	t.Cleanup(f.countdown.Stop)

	return f
}

// step advances the clock by one second and runs a tick.
func (f *fixture) step() {
	f.clock.Advance(time.Second)
	f.countdown.tick()
}

func TestStartShowsRemainingTimeImmediately(t *testing.T) {
	f := newFixture(t)

	h := f.countdown.Start()
	require.NotNil(t, h)

	require.Len(t, f.display.payloads, 1)
	assert.Equal(t, 40, f.display.payloads[0].Minutes)
	assert.Equal(t, 3, f.display.payloads[0].Seconds)
	assert.Equal(t, Running, f.countdown.State())
}

func TestLowTimeNotificationFiresOnce(t *testing.T) {
	f := newFixture(t)
	f.countdown.Start()

	for f.countdown.State() != Expired {
		f.step()
	}

	require.Len(t, f.notifier.delivered, 1)

	at := f.notifier.delivered[0]
	assert.Equal(t, 300, at.Total)
	assert.Equal(t, 5, at.Minutes)
	assert.Equal(t, 0, at.Seconds)

	// every tick from 5:00 down to 0:00 asked, only the first delivered
	assert.Equal(t, 301, f.notifier.calls)
}

func TestExpiry(t *testing.T) {
	f := newFixture(t)
	h := f.countdown.Start()

	ticks := 0

	for f.countdown.State() != Expired {
		f.step()
		ticks++
	}

	// the deadline itself still shows 0m 0s, the next tick is past it
	assert.Equal(t, 2404, ticks)
	assert.True(t, h.Cancelled())
	assert.Equal(t, []string{expiredMessage}, f.display.terminated)
	assert.Equal(t, []string{"/results"}, f.nav.destinations)

	shown := len(f.display.payloads)

	// late ticks are ignored
	f.step()
	f.step()

	assert.Equal(t, []string{"/results"}, f.nav.destinations)
	assert.Equal(t, []string{expiredMessage}, f.display.terminated)
	assert.Len(t, f.display.payloads, shown)
}

func TestUrgentStateBeforeExpiry(t *testing.T) {
	f := newFixture(t)
	f.countdown.Start()

	f.clock.Advance(quizOffset - 31*time.Second)
	f.countdown.tick()
	assert.Equal(t, Running, f.countdown.State())
	assert.False(t, f.display.last().Urgent)

	f.step()
	assert.Equal(t, Warning, f.countdown.State())
	assert.True(t, f.display.last().Urgent)
}

func TestResetMidCountdown(t *testing.T) {
	f := newFixture(t)
	h := f.countdown.Start()

	f.clock.Advance(25 * time.Minute)
	f.countdown.tick()

	before := f.display.last()
	assert.Equal(t, 15, before.Minutes)

	p := f.countdown.Reset()

	assert.Equal(t, 40, p.Minutes)
	assert.Equal(t, 3, p.Seconds)
	assert.Equal(t, p, f.display.last())
	assert.InDelta(t, quizOffset.Seconds(), Render(p.Deadline, f.clock.Now()).Remaining().Seconds(), 1)

	// the schedule keeps running
	assert.False(t, h.Cancelled())

	f.step()
	assert.Equal(t, 40, f.display.last().Minutes)
	assert.Equal(t, 2, f.display.last().Seconds)
}

func TestRestartRestoresDeadline(t *testing.T) {
	f := newFixture(t)
	f.countdown.Start()

	f.clock.Advance(10 * time.Minute)

	restarted := New(
		Options{Offset: quizOffset, Tick: time.Hour},
		deadline.New(f.storage, deadline.WithClock(f.clock)),
		ticker.New(),
		WithClock(f.clock),
	)

	p := restarted.Payload()
	assert.Equal(t, 30, p.Minutes)
	assert.Equal(t, 3, p.Seconds)
}

func TestAbsentCollaboratorsAreSkipped(t *testing.T) {
	clock := testutil.NewFakeClock(quizStart)

	c := New(
		Options{Offset: 2 * time.Second, Tick: time.Hour, WarnThreshold: time.Minute},
		deadline.New(nil, deadline.WithClock(clock)),
		ticker.New(),
		WithClock(clock),
	)

	h := c.Start()

	assert.NotPanics(t, func() {
		for range 4 {
			clock.Advance(time.Second)
			c.tick()
		}
	})

	assert.Equal(t, Expired, c.State())
	assert.True(t, h.Cancelled())
}

func TestExpiryObserveNavigatesOnce(t *testing.T) {
	display := &recordingDisplay{}
	nav := &recordingNavigator{}

	e := NewExpiry(display, nav, expiredMessage, "/results", nil)

	assert.Equal(t, Running, e.Observe(Payload{Minutes: 3}, nil))
	assert.Equal(t, Warning, e.Observe(Payload{Seconds: 12, Urgent: true}, nil))
	assert.Equal(t, Expired, e.Observe(Payload{Expired: true}, nil))
	assert.Equal(t, Expired, e.Observe(Payload{Expired: true}, nil))
	assert.Equal(t, Expired, e.Observe(Payload{Minutes: 40}, nil))

	assert.Equal(t, []string{"/results"}, nav.destinations)
	assert.Equal(t, []string{expiredMessage}, display.terminated)
}
