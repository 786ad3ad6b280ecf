package widget

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/listen/internal/models"
)

const cardWidth = 34

// Render draws the summary card for e.
func Render(e models.TimelineEntry, th Theme) string {
	st := th.Styles()
	s := e.Snapshot

	title := st.Title.Render(truncate(s.RecentTitle, cardWidth-4))

	stat := func(label string, value int, style lipgloss.Style) string {
		return lipgloss.JoinVertical(lipgloss.Center,
			style.Render(fmt.Sprintf("%d", value)),
			st.Label.Render(label),
		)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		stat("total", s.TotalEntries, st.Value),
		"   ",
		stat("today", s.TodayEntries, st.Value),
		"   ",
		stat(dayWord(s.StreakDays)+" streak", s.StreakDays, st.Streak),
	)

	footer := st.Footer.Render("updated " + e.Date.Format("15:04"))

	body := lipgloss.JoinVertical(lipgloss.Left,
		st.Label.Render("Recent entry"),
		title,
		"",
		row,
		"",
		footer,
	)
	return st.Card.Width(cardWidth).Render(body)
}

// Line renders e as a single plain line for non-terminal output.
func Line(e models.TimelineEntry) string {
	s := e.Snapshot
	return fmt.Sprintf("%s recent=%q total=%d today=%d streak=%d",
		e.Date.Format("2006-01-02T15:04:05Z07:00"), s.RecentTitle, s.TotalEntries, s.TodayEntries, s.StreakDays)
}

func dayWord(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}

func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
