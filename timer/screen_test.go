package timer

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/quiztimer/countdown"
)

type recordingSender struct {
	msgs []tea.Msg
}

func (s *recordingSender) Send(msg tea.Msg) {
	s.msgs = append(s.msgs, msg)
}

func TestScreenDropsCallsWhenDetached(t *testing.T) {
	var s Screen

	assert.NotPanics(t, func() {
		s.Show(countdown.Payload{Minutes: 1})
		s.Terminate("done")
		s.Banner().Show("hello")
		s.Banner().Hide()
		s.Quit()
	})

	select {
	case <-s.Confirm("allow?"):
		t.Fatal("a detached screen answered a prompt")
	default:
	}
}

func TestScreenForwardsCalls(t *testing.T) {
	var s Screen

	sender := &recordingSender{}
	s.Attach(sender)

	p := countdown.Payload{Minutes: 39, Seconds: 58}

	s.Show(p)
	s.Banner().Show("Hurry Up!")
	s.Banner().Hide()
	s.Terminate("Time's Up!")
	s.Quit()

	answer := s.Confirm("allow?")

	require.Len(t, sender.msgs, 6)
	assert.Equal(t, payloadMsg(p), sender.msgs[0])
	assert.Equal(t, bannerMsg{message: "Hurry Up!", visible: true}, sender.msgs[1])
	assert.Equal(t, bannerMsg{}, sender.msgs[2])
	assert.Equal(t, terminalMsg("Time's Up!"), sender.msgs[3])
	assert.IsType(t, tea.QuitMsg{}, sender.msgs[4])

	prompt, ok := sender.msgs[5].(promptMsg)
	require.True(t, ok)
	assert.Equal(t, "allow?", prompt.question)

	prompt.answer <- true
	assert.True(t, <-answer)
}
