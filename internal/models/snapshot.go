package models

import "time"

// StatsSnapshot is the derived summary shared by the journal and the widget.
type StatsSnapshot struct {
	RecentTitle  string `json:"recentEntry"`
	TotalEntries int    `json:"totalEntries"`
	TodayEntries int    `json:"todayEntries"`
	StreakDays   int    `json:"streakDays"`
}

// TimelineEntry is one rendered widget state.
type TimelineEntry struct {
	Date     time.Time
	Snapshot StatsSnapshot

	// Placeholder is true when the snapshot was not computed from stored
	// entries (empty or unreadable store).
	Placeholder bool
}
