package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarGridShape(t *testing.T) {
	tests := []struct {
		name      string
		props     CalendarProps
		weeks     int
		firstCell string
		lastCell  string
	}{
		{
			name:      "sunday start",
			props:     CalendarProps{Month: "2024-02", Today: "2024-02-20"},
			weeks:     5,
			firstCell: "2024-01-28",
			lastCell:  "2024-03-02",
		},
		{
			name:      "monday start",
			props:     CalendarProps{Month: "2024-02", Today: "2024-02-20", WeekStart: 1},
			weeks:     5,
			firstCell: "2024-01-29",
			lastCell:  "2024-03-03",
		},
		{
			name:      "six week month",
			props:     CalendarProps{Month: "2024-09", Today: "2024-09-01", WeekStart: 1},
			weeks:     6,
			firstCell: "2024-08-26",
			lastCell:  "2024-10-06",
		},
		{
			name:      "fixed weeks",
			props:     CalendarProps{Month: "2024-02", Today: "2024-02-20", FixedWeeks: true},
			weeks:     6,
			firstCell: "2024-01-28",
			lastCell:  "2024-03-09",
		},
		{
			name:      "invalid week start falls back to sunday",
			props:     CalendarProps{Month: "2024-02", Today: "2024-02-20", WeekStart: 9},
			weeks:     5,
			firstCell: "2024-01-28",
			lastCell:  "2024-03-02",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.props.Grid()
			require.Len(t, m.Weeks, tt.weeks)
			for _, w := range m.Weeks {
				require.Len(t, w, 7)
			}
			assert.Equal(t, tt.firstCell, m.Weeks[0][0].Key())
			assert.Equal(t, tt.lastCell, m.Weeks[len(m.Weeks)-1][6].Key())
		})
	}
}

func TestCalendarFlags(t *testing.T) {
	p := CalendarProps{
		Month:    "2024-02",
		Selected: "2024-02-14",
		Today:    "2024-02-20",
		Min:      "2024-02-05",
		Max:      "2024-02-25",
	}
	m := p.Grid()
	days := map[string]CalendarDay{}
	for _, w := range m.Weeks {
		for _, d := range w {
			days[d.Key()] = d
		}
	}

	assert.True(t, days["2024-01-28"].Outside)
	assert.False(t, days["2024-02-01"].Outside)
	assert.True(t, days["2024-02-14"].Selected)
	assert.True(t, days["2024-02-20"].Today)
	assert.True(t, days["2024-02-04"].Disabled)
	assert.False(t, days["2024-02-05"].Disabled)
	assert.False(t, days["2024-02-25"].Disabled)
	assert.True(t, days["2024-02-26"].Disabled)

	assert.Equal(t, "2024-01", m.Prev.Format(monthLayout))
	assert.Equal(t, "2024-03", m.Next.Format(monthLayout))
	assert.True(t, m.PrevDisabled)
	assert.True(t, m.NextDisabled)
	assert.Equal(t, "2024-02-14", m.FocusDay())
}

func TestCalendarFocusDay(t *testing.T) {
	assert.Equal(t, "2024-02-20", CalendarProps{Month: "2024-02", Today: "2024-02-20"}.Grid().FocusDay())
	// The selected day and today both fall outside March.
	assert.Equal(t, "2024-03-01", CalendarProps{Month: "2024-03", Selected: "2024-02-14", Today: "2024-02-20"}.Grid().FocusDay())
}

func TestCalendarMonthFallbacks(t *testing.T) {
	assert.Equal(t, time.February, CalendarProps{Selected: "2024-02-14", Today: "2023-07-01"}.Grid().Month.Month())
	assert.Equal(t, time.July, CalendarProps{Month: "garbage", Today: "2023-07-01"}.Grid().Month.Month())
}

func TestCalendarRender(t *testing.T) {
	html := renderHTML(t, Calendar(CalendarProps{
		Base:     Base{ID: "cal"},
		Month:    "2024-02",
		Selected: "2024-02-14",
		Today:    "2024-02-20",
		Name:     "date",
	}))
	assert.Contains(t, html, `role="grid"`)
	assert.Contains(t, html, "February 2024")
	assert.Contains(t, html, `aria-labelledby="cal-caption"`)
	assert.Equal(t, 1, strings.Count(html, `tabindex="0"`))
	assert.Contains(t, html, `data-day="2024-02-14"`)
	assert.Contains(t, html, `aria-current="date"`)
	assert.Contains(t, html, `data-month="2024-01"`)
	assert.Contains(t, html, `data-month="2024-03"`)
	assert.Contains(t, html, `value="2024-02-14"`)
	assert.Equal(t, 35, strings.Count(html, `role="gridcell"`))

	hidden := renderHTML(t, Calendar(CalendarProps{Month: "2024-02", Today: "2024-02-20", HideOutside: true}))
	assert.Equal(t, 29, strings.Count(hidden, "data-day="))
}
