package timer

import (
	"fmt"
	"io"
	"sync"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/quiztimer/countdown"
	"github.com/ayoisaiah/quiztimer/internal/ui"
)

// Plain writes the page as lines of text, one per update.
type Plain struct {
	w        io.Writer
	lastLine string
	mu       sync.Mutex
}

// NewPlain returns a line-oriented display writing to w.
func NewPlain(w io.Writer) *Plain {
	return &Plain{w: w}
}

func (p *Plain) println(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.w, line)
}

// Show prints the remaining time. Repeated identical lines are skipped.
func (p *Plain) Show(payload countdown.Payload) {
	line := "TIME: " + payload.String()
	if payload.Urgent {
		line = ui.Red(line)
	} else {
		line = ui.Green(line)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if line == p.lastLine {
		return
	}

	p.lastLine = line

	fmt.Fprintln(p.w, line)
}

func (p *Plain) Terminate(message string) {
	p.println(pterm.Bold.Sprint(message))
}

// Banner returns a banner that prints each message on its own line.
func (p *Plain) Banner() *PlainBanner {
	return &PlainBanner{plain: p}
}

// PlainBanner prints banner messages. Hiding is a no-op.
type PlainBanner struct {
	plain *Plain
}

func (b *PlainBanner) Show(message string) {
	b.plain.println(ui.Yellow("» " + message))
}

func (b *PlainBanner) Hide() {}
