package timer

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/quiztimer/countdown"
	"github.com/ayoisaiah/quiztimer/ticker"
)

var quizStart = time.Date(2024, 3, 9, 14, 0, 0, 0, time.UTC)

type fakeController struct {
	starts int
	resets int
}

func (c *fakeController) Start() *ticker.Handle {
	c.starts++
	return nil
}

func (c *fakeController) Reset() countdown.Payload {
	c.resets++
	return countdown.Render(quizStart.Add(2403*time.Second), quizStart)
}

func newTestTimer(submitCmd string) (*Timer, *fakeController) {
	ctrl := &fakeController{}

	t := New(ctrl, Options{
		Style:     NewStyle(true, true),
		Session:   "algebra",
		SubmitCmd: submitCmd,
		Offset:    2403 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return t, ctrl
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitStartsCountdown(t *testing.T) {
	m, ctrl := newTestTimer("")

	cmd := m.Init()
	require.NotNil(t, cmd)

	assert.Nil(t, cmd())
	assert.Equal(t, 1, ctrl.starts)
	assert.Empty(t, m.View())
}

func TestPayloadIsRendered(t *testing.T) {
	m, _ := newTestTimer("")

	p := countdown.Render(quizStart.Add(12*time.Minute+5*time.Second), quizStart)
	m.Update(payloadMsg(p))

	assert.Equal(t, p, m.Payload())
	assert.Contains(t, m.View(), "TIME: 12m 5s")
	assert.Contains(t, m.View(), "Quiz algebra")
}

func TestElapsedShare(t *testing.T) {
	m, _ := newTestTimer("")

	m.Update(payloadMsg(countdown.Render(quizStart.Add(2403*time.Second), quizStart)))
	assert.InDelta(t, 0, m.elapsed(), 0.001)

	m.Update(payloadMsg(countdown.Render(quizStart.Add(1201*time.Second), quizStart)))
	assert.InDelta(t, 0.5, m.elapsed(), 0.001)

	m.Update(payloadMsg(countdown.Payload{Expired: true}))
	assert.InDelta(t, 1, m.elapsed(), 0.001)
}

func TestResetKey(t *testing.T) {
	m, ctrl := newTestTimer("")

	_, cmd := m.Update(runes("r"))
	require.NotNil(t, cmd)

	cmd()
	assert.Equal(t, 1, ctrl.resets)
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m, _ := newTestTimer("")

		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestSubmitKey(t *testing.T) {
	m, _ := newTestTimer("submit-answer --next")

	var ran []string

	m.run = func(command string) error {
		ran = append(ran, command)
		return nil
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	assert.Equal(t, []string{"submit-answer --next"}, ran)

	m.Update(payloadMsg(countdown.Payload{Minutes: 3}))
	m.Update(msg)
	assert.Contains(t, m.View(), "answer submitted")

	m.Update(submittedMsg{err: errors.New("exit status 1")})
	assert.Contains(t, m.View(), "unable to submit answer: exit status 1")
}

func TestSubmitWithoutCommandIsNoop(t *testing.T) {
	m, _ := newTestTimer("")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestBanner(t *testing.T) {
	m, _ := newTestTimer("")
	m.Update(payloadMsg(countdown.Payload{Minutes: 5}))

	m.Update(bannerMsg{message: "Hurry Up! 5 minutes remaining!", visible: true})
	assert.Contains(t, m.View(), "Hurry Up! 5 minutes remaining!")

	m.Update(bannerMsg{})
	assert.NotContains(t, m.View(), "Hurry Up!")
}

func TestPermissionPrompt(t *testing.T) {
	m, ctrl := newTestTimer("")
	m.Update(payloadMsg(countdown.Payload{Minutes: 5}))

	answer := make(chan bool, 1)
	m.Update(promptMsg{question: "Allow desktop notifications?", answer: answer})

	assert.Contains(t, m.View(), "Allow desktop notifications?")

	// other keys do not reach the timer while the prompt is open
	_, cmd := m.Update(runes("r"))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, ctrl.resets)

	m.Update(runes("y"))

	assert.True(t, <-answer)
	assert.NotContains(t, m.View(), "Allow desktop notifications?")
}

func TestNewPromptDeniesPending(t *testing.T) {
	m, _ := newTestTimer("")

	first := make(chan bool, 1)
	second := make(chan bool, 1)

	m.Update(promptMsg{question: "first", answer: first})
	m.Update(promptMsg{question: "second", answer: second})
	m.Update(runes("n"))

	assert.False(t, <-first)
	assert.False(t, <-second)
}

func TestTerminalMessage(t *testing.T) {
	m, ctrl := newTestTimer("submit")
	m.Update(payloadMsg(countdown.Payload{Seconds: 1, Urgent: true}))
	m.Update(bannerMsg{message: "Hurry Up!", visible: true})

	m.Update(terminalMsg("Time's Up! Thank you for Giving Us a Trial!!"))

	assert.True(t, m.Expired())

	view := m.View()
	assert.Contains(t, view, "Time's Up! Thank you for Giving Us a Trial!!")
	assert.NotContains(t, view, "TIME:")
	assert.NotContains(t, view, "Hurry Up!")

	_, cmd := m.Update(runes("r"))
	assert.Nil(t, cmd)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, ctrl.resets)
}

func TestWindowResizeCapsProgressWidth(t *testing.T) {
	m, _ := newTestTimer("")

	m.Update(tea.WindowSizeMsg{Width: 400, Height: 40})
	assert.Equal(t, maxWidth, m.progress.Width)

	m.Update(tea.WindowSizeMsg{Width: 50, Height: 40})
	assert.Equal(t, 50-padding*2-4, m.progress.Width)
}
