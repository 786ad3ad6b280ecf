package services

import (
	"context"

	"github.com/dmitrijs2005/listen/internal/models"
	"github.com/google/uuid"
)

// Journal is the only surface the presentation layer depends on.
type Journal struct {
	Entries *EntryService
	Profile *ProfileService
}

func NewJournal(entries *EntryService, profile *ProfileService) *Journal {
	return &Journal{Entries: entries, Profile: profile}
}

// Start loads the stored entries. It is called once at process start.
func (j *Journal) Start(ctx context.Context) {
	j.Entries.Load(ctx)
}

func (j *Journal) ListEntries() []models.DiaryEntry {
	return j.Entries.List()
}

func (j *Journal) AddEntry(ctx context.Context, title, content, mood string) uuid.UUID {
	return j.Entries.Add(ctx, title, content, mood).ID
}

func (j *Journal) UpdateEntry(ctx context.Context, id uuid.UUID, title, content, mood string) error {
	_, err := j.Entries.Update(ctx, id, title, content, mood)
	return err
}

func (j *Journal) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	return j.Entries.Delete(ctx, id)
}

func (j *Journal) GetStatsSnapshot() models.StatsSnapshot {
	return j.Entries.Snapshot()
}

// LoadProfile returns the stored profile. A missing or undecodable record
// is reported as ok == false with the zero profile; the cause is logged by
// the profile service.
func (j *Journal) LoadProfile(ctx context.Context) (models.UserProfile, bool) {
	p, err := j.Profile.Load(ctx)
	if err != nil {
		return models.UserProfile{}, false
	}
	return p, true
}

// Sections splits the entries into today's and earlier ones.
func (j *Journal) Sections() (today, earlier []models.DiaryEntry) {
	return j.Entries.Sections()
}

func (j *Journal) SaveProfile(ctx context.Context, p models.UserProfile) models.UserProfile {
	return j.Profile.Save(ctx, p)
}

// ResetAccount clears the profile and its avatar. Entries are kept.
func (j *Journal) ResetAccount(ctx context.Context) {
	j.Profile.Clear(ctx)
}
