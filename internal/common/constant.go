// Package common contains shared constants and sentinel errors used by the
// journal application and its widget host.
package common

// Keys of the logical records held by the shared store. Both processes must
// agree on them.
const (
	EntriesKey = "diary_entries_key"
	ProfileKey = "user_profile_key"
	AvatarKey  = "user_avatar_key"
)

// DefaultWidgetKind is the kind the widget host registers for the stats
// summary.
const DefaultWidgetKind = "Info_Widget"

// Placeholder titles shown by the stats snapshot.
const (
	NoEntriesTitle = "No entries yet"
	UntitledTitle  = "Untitled Entry"
)
