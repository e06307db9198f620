package display

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Friday
var fixedNow = time.Date(2026, 10, 16, 10, 30, 0, 0, time.UTC)

func day(month time.Month, d, hour, min int) time.Time {
	year := 2026
	if month < time.October {
		year = 2027
	}
	return time.Date(year, month, d, hour, min, 0, 0, time.UTC)
}

func TestFormatForEditing(t *testing.T) {
	ts := day(time.October, 17, 14, 5)

	assert.Equal(t, "2026-10-17", FormatForEditing(ts, false))
	assert.Equal(t, "2026-10-17 14:05", FormatForEditing(ts, true))
	assert.Equal(t, "", FormatForEditing(time.Time{}, true))
}

func TestFormatForEditingRoundTrip(t *testing.T) {
	inputs := []time.Time{
		day(time.October, 17, 14, 5),
		day(time.December, 25, 0, 0),
		day(time.February, 28, 23, 59),
	}

	for _, ts := range inputs {
		text := FormatForEditing(ts, true)
		back, err := time.ParseInLocation(LayoutEditDateTime, text, time.UTC)
		require.NoError(t, err, text)
		assert.True(t, ts.Equal(back), "%s != %s", ts, back)
	}
}

func TestFormatForDisplay(t *testing.T) {
	ts := day(time.December, 25, 9, 0)

	tests := []struct {
		layout string
		want   string
	}{
		{"", "Dec 25, 2026"},
		{LayoutShort, "Dec 25"},
		{LayoutLong, "Friday, December 25, 2026"},
		{LayoutWeekday, "Fri, Dec 25"},
		{LayoutClock, "9:00 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatForDisplay(ts, tt.layout))
		})
	}

	assert.Equal(t, "", FormatForDisplay(time.Time{}, LayoutLong))
}

func TestFromUnixMilli(t *testing.T) {
	assert.True(t, FromUnixMilli(0).IsZero())
	assert.True(t, FromUnixMilli(-5).IsZero())
	assert.Equal(t, "", FormatForDisplay(FromUnixMilli(0), ""))

	ms := fixedNow.UnixMilli()
	assert.Equal(t, ms, FromUnixMilli(ms).UnixMilli())
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"same day", day(time.October, 16, 18, 0), "today"},
		{"next day", day(time.October, 17, 0, 0), "tomorrow"},
		{"previous day", day(time.October, 15, 0, 0), "yesterday"},
		{"this week", day(time.October, 19, 0, 0), "Monday"},
		{"recent past", day(time.October, 13, 0, 0), "3 days ago"},
		{"one week", day(time.October, 23, 0, 0), "in 1 week"},
		{"two weeks", day(time.October, 30, 0, 0), "in 2 weeks"},
		{"far", day(time.December, 25, 0, 0), "Dec 25, 2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.t, fixedNow))
		})
	}
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "Sat, Oct 17 at 10:00 AM (tomorrow)", Preview(day(time.October, 17, 10, 0), fixedNow))
	assert.Equal(t, "Mon, Oct 19 (Monday)", Preview(day(time.October, 19, 0, 0), fixedNow))
	assert.Equal(t, "Tue, Jan 5, 2027 (Jan 5, 2027)", Preview(day(time.January, 5, 0, 0), fixedNow))
	assert.Equal(t, "", Preview(time.Time{}, fixedNow))
}

func TestRelativeTimeText(t *testing.T) {
	assert.Equal(t, "3 days ago", RelativeTimeText(fixedNow.Add(-72*time.Hour), fixedNow))
	assert.Equal(t, "in 2 hours", RelativeTimeText(fixedNow.Add(2*time.Hour), fixedNow))
	assert.Equal(t, "now", RelativeTimeText(fixedNow, fixedNow))
	assert.Equal(t, "", RelativeTimeText(time.Time{}, fixedNow))
}

func TestDueDateStatus(t *testing.T) {
	ptr := func(ts time.Time) *time.Time { return &ts }

	tests := []struct {
		name   string
		due    *time.Time
		status DueStatus
		text   string
		style  StyleTag
	}{
		{"none", nil, DueNone, "No due date", StyleMuted},
		{"zero", ptr(time.Time{}), DueNone, "No due date", StyleMuted},
		{"just passed", ptr(fixedNow.Add(-time.Millisecond)), DueOverdue, "Overdue", StyleDanger},
		{"yesterday", ptr(day(time.October, 15, 9, 0)), DueOverdue, "Overdue", StyleDanger},
		{"later today", ptr(fixedNow.Add(time.Hour)), DueToday, "Due today", StyleWarning},
		{"end of today", ptr(time.Date(2026, 10, 16, 23, 59, 59, 999000000, time.UTC)), DueToday, "Due today", StyleWarning},
		{"tomorrow", ptr(day(time.October, 17, 9, 0)), DueSoon, "Due tomorrow", StyleNotice},
		{"next week", ptr(day(time.October, 20, 0, 0)), DueLater, "Due Oct 20", StyleDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := DueDateStatus(tt.due, fixedNow)
			assert.Equal(t, tt.status, info.Status)
			assert.Equal(t, tt.text, info.Text)
			assert.Equal(t, tt.style, info.Style)
		})
	}
}

func TestDueInfoJSON(t *testing.T) {
	due := fixedNow.Add(-time.Hour)
	data, err := json.Marshal(DueDateStatus(&due, fixedNow))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"overdue","text":"Overdue","style":"danger"}`, string(data))
}

func TestDueStatusString(t *testing.T) {
	assert.Equal(t, "no-due-date", DueNone.String())
	assert.Equal(t, "overdue", DueOverdue.String())
	assert.Equal(t, "due-today", DueToday.String())
	assert.Equal(t, "due-soon", DueSoon.String())
	assert.Equal(t, "not-due", DueLater.String())
}

func TestStyleTagColor(t *testing.T) {
	assert.Equal(t, "196", string(StyleDanger.Color()))
	assert.Equal(t, "252", string(StyleTag("bogus").Color()))
	assert.True(t, StyleDanger.Style().GetBold())
}

func TestConfidencePercentText(t *testing.T) {
	assert.Equal(t, "85%", ConfidencePercentText(0.85))
	assert.Equal(t, "100%", ConfidencePercentText(1))
	assert.Equal(t, "30%", ConfidencePercentText(0.3))
	assert.Equal(t, "0%", ConfidencePercentText(math.NaN()))
	assert.Equal(t, "0%", ConfidencePercentText(-0.2))
}

func TestConfidenceTier(t *testing.T) {
	tests := []struct {
		c    float64
		want Tier
	}{
		{1.0, TierHigh},
		{0.8, TierHigh},
		{0.79, TierMedium},
		{0.6, TierMedium},
		{0.59, TierLow},
		{0.3, TierLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ConfidenceTier(tt.c), "confidence %v", tt.c)
	}

	assert.Equal(t, "40", string(TierHigh.Color()))
	assert.Equal(t, "214", string(TierMedium.Color()))
	assert.Equal(t, "196", string(TierLow.Color()))
	assert.Contains(t, RenderConfidence(0.85), "85%")
}

type item struct {
	name string
	at   *time.Time
}

func itemTime(i item) *time.Time { return i.at }

func TestSortByDate(t *testing.T) {
	a := day(time.October, 20, 0, 0)
	b := day(time.October, 18, 0, 0)
	items := []item{
		{"nil-1", nil},
		{"a", &a},
		{"nil-2", nil},
		{"b", &b},
		{"b-again", &b},
	}

	sorted := SortByDate(items, itemTime)

	var names []string
	for _, i := range sorted {
		names = append(names, i.name)
	}
	assert.Equal(t, []string{"b", "b-again", "a", "nil-1", "nil-2"}, names)
	assert.Equal(t, "nil-1", items[0].name, "input must not be reordered")
}

func TestSortAndGroup_ZeroTimeIsMissing(t *testing.T) {
	var zero time.Time
	a := day(time.October, 20, 0, 0)
	items := []item{{"zero", &zero}, {"a", &a}, {"nil", nil}}

	var names []string
	for _, i := range SortByDate(items, itemTime) {
		names = append(names, i.name)
	}
	assert.Equal(t, []string{"a", "zero", "nil"}, names)

	groups := GroupByDate(items, itemTime, "")
	assert.Equal(t, []item{{"zero", &zero}, {"nil", nil}}, groups[NoDateKey])
}

func TestGroupByDate(t *testing.T) {
	a := day(time.October, 20, 9, 0)
	a2 := day(time.October, 20, 17, 0)
	b := day(time.October, 18, 0, 0)
	items := []item{{"a", &a}, {"none", nil}, {"b", &b}, {"a2", &a2}}

	groups := GroupByDate(items, itemTime, "")

	require.Len(t, groups, 3)
	assert.Equal(t, []item{{"a", &a}, {"a2", &a2}}, groups["2026-10-20"])
	assert.Equal(t, []item{{"b", &b}}, groups["2026-10-18"])
	assert.Equal(t, []item{{"none", nil}}, groups[NoDateKey])
}
