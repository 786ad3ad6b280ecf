package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/listen/internal/common"
)

// WritingTime is the user's preferred part of the day for writing.
type WritingTime string

const (
	WritingTimeMorning   WritingTime = "morning"
	WritingTimeAfternoon WritingTime = "afternoon"
	WritingTimeEvening   WritingTime = "evening"
	WritingTimeNight     WritingTime = "night"
)

// WritingTimes lists every valid value in display order.
var WritingTimes = []WritingTime{
	WritingTimeMorning,
	WritingTimeAfternoon,
	WritingTimeEvening,
	WritingTimeNight,
}

// DisplayName returns the label shown in settings.
func (w WritingTime) DisplayName() string {
	switch w {
	case WritingTimeMorning:
		return "Morning (6 AM - 12 PM)"
	case WritingTimeAfternoon:
		return "Afternoon (12 PM - 6 PM)"
	case WritingTimeEvening:
		return "Evening (6 PM - 12 AM)"
	case WritingTimeNight:
		return "Night (12 AM - 6 AM)"
	default:
		return string(w)
	}
}

// Hours returns the [start, end) hour range of the writing time.
func (w WritingTime) Hours() (start, end int) {
	switch w {
	case WritingTimeMorning:
		return 6, 12
	case WritingTimeAfternoon:
		return 12, 18
	case WritingTimeEvening:
		return 18, 24
	case WritingTimeNight:
		return 0, 6
	default:
		return 0, 0
	}
}

// Contains reports whether t falls inside the writing time's hour range.
func (w WritingTime) Contains(t time.Time) bool {
	start, end := w.Hours()
	h := t.Hour()
	return h >= start && h < end
}

func (w WritingTime) Valid() bool {
	for _, v := range WritingTimes {
		if v == w {
			return true
		}
	}
	return false
}

// ParseWritingTime accepts the raw value case-insensitively.
func ParseWritingTime(s string) (WritingTime, error) {
	w := WritingTime(strings.ToLower(strings.TrimSpace(s)))
	if !w.Valid() {
		return "", fmt.Errorf("%w: %q", common.ErrInvalidWritingTime, s)
	}
	return w, nil
}

// UnmarshalJSON rejects values outside the enumerated set.
func (w *WritingTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseWritingTime(s)
	if err != nil {
		return err
	}
	*w = v
	return nil
}

// UserProfile is the single profile record. TotalEntries, TodaysEntry and
// StreakDays are copies of the stats at save time.
type UserProfile struct {
	Name                 string      `json:"name"`
	Email                string      `json:"email"`
	Bio                  string      `json:"bio"`
	MemberSince          time.Time   `json:"memberSince"`
	PreferredWritingTime WritingTime `json:"preferredWritingTime"`
	DailyReminders       bool        `json:"dailyReminders"`
	TotalEntries         int         `json:"totalEntries"`
	TodaysEntry          int         `json:"todaysEntry"`
	StreakDays           int         `json:"streakDays"`
}

// NewUserProfile returns the profile created during onboarding.
func NewUserProfile(name, email, bio string, wt WritingTime, reminders bool, now time.Time) UserProfile {
	return UserProfile{
		Name:                 name,
		Email:                email,
		Bio:                  bio,
		MemberSince:          now,
		PreferredWritingTime: wt,
		DailyReminders:       reminders,
	}
}

// WithStats returns a copy of p carrying the given snapshot counts.
func (p UserProfile) WithStats(s StatsSnapshot) UserProfile {
	p.TotalEntries = s.TotalEntries
	p.TodaysEntry = s.TodayEntries
	p.StreakDays = s.StreakDays
	return p
}
