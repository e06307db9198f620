package display

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// DueStatus classifies a due date against the current day
type DueStatus int

const (
	DueNone DueStatus = iota
	DueOverdue
	DueToday
	DueSoon
	DueLater
)

func (s DueStatus) String() string {
	switch s {
	case DueOverdue:
		return "overdue"
	case DueToday:
		return "due-today"
	case DueSoon:
		return "due-soon"
	case DueLater:
		return "not-due"
	default:
		return "no-due-date"
	}
}

// MarshalText encodes the status by name
func (s DueStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// StyleTag names a presentation style. Renderers map tags to concrete styles.
type StyleTag string

const (
	StyleDanger  StyleTag = "danger"
	StyleWarning StyleTag = "warning"
	StyleNotice  StyleTag = "notice"
	StyleDefault StyleTag = "default"
	StyleMuted   StyleTag = "muted"
)

var styleColors = map[StyleTag]lipgloss.Color{
	StyleDanger:  lipgloss.Color("196"),
	StyleWarning: lipgloss.Color("214"),
	StyleNotice:  lipgloss.Color("39"),
	StyleDefault: lipgloss.Color("252"),
	StyleMuted:   lipgloss.Color("240"),
}

// Color returns the terminal colour for the tag
func (s StyleTag) Color() lipgloss.Color {
	if c, ok := styleColors[s]; ok {
		return c
	}
	return styleColors[StyleDefault]
}

// Style returns a lipgloss style for the tag
func (s StyleTag) Style() lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(s.Color())
	switch s {
	case StyleDanger:
		style = style.Bold(true)
	case StyleMuted:
		style = style.Italic(true)
	}
	return style
}

// DueInfo is the result of DueDateStatus
type DueInfo struct {
	Status DueStatus `json:"status"`
	Text   string    `json:"text"`
	Style  StyleTag  `json:"style"`
}

// DueDateStatus classifies due relative to now: anything before now is
// overdue, anything up to the end of today is due today, up to the end of
// tomorrow is due soon, and later dates are not due. A nil due date has no
// status.
func DueDateStatus(due *time.Time, now time.Time) DueInfo {
	if due == nil || due.IsZero() {
		return DueInfo{Status: DueNone, Text: "No due date", Style: StyleMuted}
	}

	endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, int(999*time.Millisecond), now.Location())
	endOfTomorrow := endOfToday.AddDate(0, 0, 1)

	switch {
	case due.Before(now):
		return DueInfo{Status: DueOverdue, Text: "Overdue", Style: StyleDanger}
	case !due.After(endOfToday):
		return DueInfo{Status: DueToday, Text: "Due today", Style: StyleWarning}
	case !due.After(endOfTomorrow):
		return DueInfo{Status: DueSoon, Text: "Due tomorrow", Style: StyleNotice}
	default:
		return DueInfo{Status: DueLater, Text: "Due " + FormatForDisplay(*due, LayoutShort), Style: StyleDefault}
	}
}
