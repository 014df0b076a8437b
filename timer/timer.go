// Package timer is the terminal page of a quiz: it shows the countdown, the
// notification banner and the submission hook, and knows how to leave the
// page once time is up
package timer

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/quiztimer/countdown"
	"github.com/ayoisaiah/quiztimer/ticker"
)

// Controller drives the countdown shown on the page.
type Controller interface {
	Start() *ticker.Handle
	Reset() countdown.Payload
}

type (
	payloadMsg countdown.Payload

	terminalMsg string

	bannerMsg struct {
		message string
		visible bool
	}

	promptMsg struct {
		answer   chan<- bool
		question string
	}

	submittedMsg struct {
		err error
	}
)

type prompt struct {
	answer   chan<- bool
	question string
}

// Options configures the page.
type Options struct {
	Style     Style
	Session   string
	SubmitCmd string
	// Offset is the full length of the quiz, used to draw progress
	Offset time.Duration
}

// Timer is the bubbletea model of the quiz page.
type Timer struct {
	ctrl     Controller
	prompt   *prompt
	log      *slog.Logger
	status   string
	banner   string
	terminal string
	opts     Options
	help     help.Model
	progress progress.Model
	payload  countdown.Payload
	started  bool
	run      func(command string) error
}

// New returns the page model. The countdown is started from Init so that
// every payload reaches a running program.
func New(ctrl Controller, opts Options, log *slog.Logger) *Timer {
	if log == nil {
		log = slog.Default()
	}

	return &Timer{
		ctrl:     ctrl,
		opts:     opts,
		log:      log,
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
		run:      RunCommand,
	}
}

func (t *Timer) Init() tea.Cmd {
	return func() tea.Msg {
		t.ctrl.Start()

		return nil
	}
}

// Payload returns the last payload shown on the page.
func (t *Timer) Payload() countdown.Payload {
	return t.payload
}

// Expired reports whether the terminal message has been displayed.
func (t *Timer) Expired() bool {
	return t.terminal != ""
}

func (t *Timer) resetCmd() tea.Cmd {
	return func() tea.Msg {
		t.ctrl.Reset()

		return nil
	}
}

func (t *Timer) submitCmd() tea.Cmd {
	command := t.opts.SubmitCmd
	run := t.run

	return func() tea.Msg {
		return submittedMsg{err: run(command)}
	}
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, defaultKeymap.quit) {
		return t, tea.Quit
	}

	if t.prompt != nil {
		switch {
		case key.Matches(msg, defaultKeymap.yes):
			t.answer(true)
		case key.Matches(msg, defaultKeymap.no):
			t.answer(false)
		}

		return t, nil
	}

	if t.Expired() {
		return t, nil
	}

	switch {
	case key.Matches(msg, defaultKeymap.reset):
		t.status = ""

		return t, t.resetCmd()

	case key.Matches(msg, defaultKeymap.submit):
		if t.opts.SubmitCmd == "" {
			return t, nil
		}

		t.status = "submitting…"

		return t, t.submitCmd()
	}

	return t, nil
}

// answer must not block: the prompt channel is buffered.
func (t *Timer) answer(ok bool) {
	t.prompt.answer <- ok
	t.prompt = nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		t.log.Debug("key press", slog.String("key", msg.String()))

		return t.handleKeyPress(msg)

	case payloadMsg:
		t.payload = countdown.Payload(msg)
		t.started = true

		return t, nil

	case terminalMsg:
		t.log.Debug("terminal message", slog.String("msg", spew.Sdump(msg)))

		t.terminal = string(msg)
		t.banner = ""

		return t, nil

	case bannerMsg:
		t.log.Debug("banner", slog.String("msg", spew.Sdump(msg)))

		t.banner = ""
		if msg.visible {
			t.banner = msg.message
		}

		return t, nil

	case promptMsg:
		t.log.Debug("prompt", slog.String("question", msg.question))

		if t.prompt != nil {
			t.prompt.answer <- false
		}

		t.prompt = &prompt{question: msg.question, answer: msg.answer}

		return t, nil

	case submittedMsg:
		t.status = "answer submitted"

		if msg.err != nil {
			t.log.Error("submit command failed", slog.Any("error", msg.err))
			t.status = fmt.Sprintf("unable to submit answer: %v", msg.err)
		}

		return t, nil

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil
	}

	return t, nil
}

// elapsed returns the share of the quiz that has been used up.
func (t *Timer) elapsed() float64 {
	if t.opts.Offset <= 0 {
		return 0
	}

	left := float64(t.payload.Remaining()) / float64(t.opts.Offset)

	return min(max(1-left, 0), 1)
}

func (t *Timer) timerView() string {
	var s strings.Builder

	title := "Quiz"
	if t.opts.Session != "" {
		title += " " + t.opts.Session
	}

	s.WriteString(t.opts.Style.Title.Render(title))
	s.WriteString(" ")
	s.WriteString(
		t.opts.Style.Hint.Render(
			"until " + t.payload.Deadline.Local().Format("03:04:05 PM"),
		),
	)

	timeStyle := t.opts.Style.Time
	if t.payload.Urgent {
		timeStyle = t.opts.Style.Urgent
	}

	s.WriteString("\n\n")
	s.WriteString(timeStyle.Render("TIME: " + t.payload.String()))
	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(t.elapsed()))

	if t.banner != "" {
		s.WriteString("\n\n" + t.opts.Style.Banner.Render(t.banner))
	}

	if t.status != "" {
		s.WriteString("\n\n" + t.opts.Style.Hint.Render(t.status))
	}

	s.WriteString("\n\n" + t.helpView())

	return s.String()
}

func (t *Timer) helpView() string {
	bindings := []key.Binding{defaultKeymap.reset}

	if t.opts.SubmitCmd != "" {
		bindings = append(bindings, defaultKeymap.submit)
	}

	bindings = append(bindings, defaultKeymap.quit)

	return t.help.ShortHelpView(bindings)
}

func (t *Timer) promptView() string {
	var s strings.Builder

	s.WriteString(t.opts.Style.Title.Render(t.prompt.question))
	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.yes,
		defaultKeymap.no,
	}))

	return s.String()
}

func (t *Timer) View() string {
	if t.terminal != "" {
		return t.opts.Style.Base.Render(
			t.opts.Style.Terminal.Render(t.terminal),
		) + "\n"
	}

	if !t.started {
		return ""
	}

	view := t.timerView()

	if t.prompt != nil {
		view += "\n\n" + t.promptView()
	}

	return t.opts.Style.Base.Render(view)
}
