package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/quiztimer/countdown"
)

func TestStatus(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	now := time.Date(2024, 3, 9, 14, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		deadline time.Time
		want     string
	}{
		{"running", now.Add(39*time.Minute + 58*time.Second), "[algebra]: 39m 58s\n"},
		{"urgent", now.Add(12 * time.Second), "[algebra]: 0m 12s\n"},
		{"hours", now.Add(time.Hour + 20*time.Second), "[algebra]: 1h 0m 20s\n"},
		{"expired", now.Add(-time.Second), "[algebra]: time is up\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer

			Status(&buf, "algebra", countdown.Render(tc.deadline, now))

			assert.Equal(t, tc.want, buf.String())
		})
	}
}
