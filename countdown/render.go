// Package countdown turns the session deadline into what the user sees and
// carries out the low-time and expiry side effects on every tick
package countdown

import (
	"fmt"
	"time"
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute

	// urgentSeconds is the number of seconds left in the final minute at
	// which the display turns urgent.
	urgentSeconds = 30
)

// Payload is the display state for one instant.
type Payload struct {
	Deadline time.Time `json:"deadline"`
	// Hours is the number of whole hours left
	Hours int `json:"hours"`
	// Minutes is the whole-minute component within the current hour
	Minutes int `json:"minutes"`
	// Seconds is the whole-second component within the current minute
	Seconds int `json:"seconds"`
	// Total is the number of whole seconds left
	Total   int  `json:"total"`
	Urgent  bool `json:"urgent"`
	Expired bool `json:"expired"`
}

// Render computes the display payload for deadline as seen at now. It has no
// side effects.
func Render(deadline, now time.Time) Payload {
	delta := deadline.Sub(now).Milliseconds()

	p := Payload{
		Deadline: deadline,
	}

	if delta < 0 {
		p.Expired = true

		return p
	}

	p.Hours = int(delta / msPerHour)
	p.Minutes = int((delta % msPerHour) / msPerMinute)
	p.Seconds = int((delta % msPerMinute) / msPerSecond)
	p.Total = int(delta / msPerSecond)
	p.Urgent = p.Hours == 0 && p.Minutes == 0 && p.Seconds <= urgentSeconds

	return p
}

// Remaining returns the time left as a duration truncated to the second.
func (p Payload) Remaining() time.Duration {
	return time.Duration(p.Total) * time.Second
}

func (p Payload) String() string {
	if p.Hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", p.Hours, p.Minutes, p.Seconds)
	}

	return fmt.Sprintf("%dm %ds", p.Minutes, p.Seconds)
}
