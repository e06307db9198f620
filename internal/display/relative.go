package display

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// RelativeTimeText phrases t relative to now: "3 days ago", "in 2 hours" or
// "now". The zero time renders as "".
func RelativeTimeText(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	if t.Before(now) {
		return humanize.RelTime(t, now, "ago", "")
	}

	text := strings.TrimSpace(humanize.RelTime(t, now, "", ""))
	if text == "now" {
		return text
	}
	return "in " + text
}
