package timer

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/quiztimer/countdown"
)

// Sender is satisfied by *tea.Program.
type Sender interface {
	Send(msg tea.Msg)
}

// Screen forwards display, banner and prompt calls to a running program.
// Calls made before a program is attached are dropped. Its methods must not
// be called from the program's Update.
type Screen struct {
	program Sender
	mu      sync.RWMutex
}

// Attach connects the screen to a program.
func (s *Screen) Attach(p Sender) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.program = p
}

func (s *Screen) send(msg tea.Msg) bool {
	s.mu.RLock()
	p := s.program
	s.mu.RUnlock()

	if p == nil {
		return false
	}

	p.Send(msg)

	return true
}

// Show displays the remaining time.
func (s *Screen) Show(p countdown.Payload) {
	s.send(payloadMsg(p))
}

// Terminate replaces the countdown with message.
func (s *Screen) Terminate(message string) {
	s.send(terminalMsg(message))
}

// Quit stops the program.
func (s *Screen) Quit() {
	s.send(tea.Quit())
}

// Confirm asks a yes/no question on the page. The answer is never sent if
// no program is attached.
func (s *Screen) Confirm(question string) <-chan bool {
	answer := make(chan bool, 1)

	s.send(promptMsg{question: question, answer: answer})

	return answer
}

// Banner returns the banner region of the screen.
func (s *Screen) Banner() *ScreenBanner {
	return &ScreenBanner{screen: s}
}

// ScreenBanner is the banner region of a Screen.
type ScreenBanner struct {
	screen *Screen
}

func (b *ScreenBanner) Show(message string) {
	b.screen.send(bannerMsg{message: message, visible: true})
}

func (b *ScreenBanner) Hide() {
	b.screen.send(bannerMsg{})
}
