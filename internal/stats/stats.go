// Package stats derives the journal summary from a sequence of entries.
//
// Every function is pure: the caller passes the entries and the reference
// time, and calendar days are taken in the reference time's location.
package stats

import (
	"sort"
	"time"

	"github.com/dmitrijs2005/listen/internal/common"
	"github.com/dmitrijs2005/listen/internal/models"
)

// TotalCount is the number of entries.
func TotalCount(entries []models.DiaryEntry) int {
	return len(entries)
}

// TodayCount counts entries dated on now's calendar day.
func TodayCount(entries []models.DiaryEntry, now time.Time) int {
	today := DayOf(now, nil)
	n := 0
	for _, e := range entries {
		if DayOf(e.Date, now.Location()) == today {
			n++
		}
	}
	return n
}

// StreakDays counts consecutive calendar days with at least one entry,
// walking backward from now's day. A day without an entry today means a
// streak of zero.
func StreakDays(entries []models.DiaryEntry, now time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	loc := now.Location()
	days := make(map[Day]struct{}, len(entries))
	for _, e := range entries {
		days[DayOf(e.Date, loc)] = struct{}{}
	}

	streak := 0
	for d := DayOf(now, nil); ; d = d.Prev() {
		if _, ok := days[d]; !ok {
			break
		}
		streak++
	}
	return streak
}

// MostRecentTitle returns the title of the latest-dated entry. Ties keep the
// earlier position in the sequence.
func MostRecentTitle(entries []models.DiaryEntry) string {
	if len(entries) == 0 {
		return common.NoEntriesTitle
	}
	latest := entries[0]
	for _, e := range entries[1:] {
		if e.Date.After(latest.Date) {
			latest = e
		}
	}
	if latest.Title == "" {
		return common.UntitledTitle
	}
	return latest.Title
}

// Compute builds the snapshot shown by the journal and the widget.
func Compute(entries []models.DiaryEntry, now time.Time) models.StatsSnapshot {
	return models.StatsSnapshot{
		RecentTitle:  MostRecentTitle(entries),
		TotalEntries: TotalCount(entries),
		TodayEntries: TodayCount(entries, now),
		StreakDays:   StreakDays(entries, now),
	}
}

// Empty is the snapshot rendered when nothing could be read.
func Empty() models.StatsSnapshot {
	return Compute(nil, time.Time{})
}

// SortByDateDesc returns a copy sorted newest first. Equal dates keep their
// relative order.
func SortByDateDesc(entries []models.DiaryEntry) []models.DiaryEntry {
	dup := models.CloneEntries(entries)
	sort.SliceStable(dup, func(i, j int) bool {
		return dup[i].Date.After(dup[j].Date)
	})
	return dup
}

// EntriesOn returns the entries dated on day, in sequence order.
func EntriesOn(entries []models.DiaryEntry, day Day, loc *time.Location) []models.DiaryEntry {
	out := []models.DiaryEntry{}
	for _, e := range entries {
		if DayOf(e.Date, loc) == day {
			out = append(out, e)
		}
	}
	return out
}

// SplitToday separates entries dated on now's day from the rest.
func SplitToday(entries []models.DiaryEntry, now time.Time) (today, earlier []models.DiaryEntry) {
	today = EntriesOn(entries, DayOf(now, nil), now.Location())
	earlier = []models.DiaryEntry{}
	d := DayOf(now, nil)
	for _, e := range entries {
		if DayOf(e.Date, now.Location()) != d {
			earlier = append(earlier, e)
		}
	}
	return today, earlier
}
