package services

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/listen/internal/common"
	"github.com/dmitrijs2005/listen/internal/logging"
	"github.com/dmitrijs2005/listen/internal/models"
	"github.com/dmitrijs2005/listen/internal/stats"
	"github.com/google/uuid"
)

// Observer receives the full entry sequence after each mutation. The slice
// is a copy owned by the observer. Observers may read the service but must
// not mutate it.
type Observer func(entries []models.DiaryEntry)

// EntryServiceOptions tunes an EntryService. Zero values pick defaults.
type EntryServiceOptions struct {
	WidgetKind string
	Now        func() time.Time
}

// EntryService owns the ordered entry collection. New entries go to the
// front; updates keep their position.
type EntryService struct {
	store    Store
	reloader Reloader
	logger   logging.Logger
	kind     string
	now      func() time.Time

	// writeMu orders mutations together with their persistence, so the
	// stores always end with the latest sequence.
	writeMu sync.Mutex

	mu        sync.Mutex
	entries   []models.DiaryEntry
	observers map[int]Observer
	nextObs   int
}

func NewEntryService(store Store, reloader Reloader, logger logging.Logger, opts EntryServiceOptions) *EntryService {
	if reloader == nil {
		reloader = NopReloader{}
	}
	if logger == nil {
		logger = logging.Nop{}
	}
	if opts.WidgetKind == "" {
		opts.WidgetKind = common.DefaultWidgetKind
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &EntryService{
		store:     store,
		reloader:  reloader,
		logger:    logger.With("module", "entries"),
		kind:      opts.WidgetKind,
		now:       opts.Now,
		entries:   []models.DiaryEntry{},
		observers: map[int]Observer{},
	}
}

// Load replaces the in-memory sequence with the stored one. Missing or
// undecodable data yields an empty sequence; Load never fails.
func (s *EntryService) Load(ctx context.Context) []models.DiaryEntry {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	loaded := readEntries(ctx, s.store, s.logger)

	s.mu.Lock()
	s.entries = loaded
	out := models.CloneEntries(s.entries)
	s.mu.Unlock()

	return out
}

// readEntries decodes the entry sequence, shared store first.
func readEntries(ctx context.Context, store Store, logger logging.Logger) []models.DiaryEntry {
	var decoded []models.DiaryEntry
	src, err := store.Read(ctx, common.EntriesKey, func(b []byte) error {
		decoded = nil
		return json.Unmarshal(b, &decoded)
	})
	if err != nil {
		logger.Warn(ctx, "no stored entries, starting empty", "error", err)
		return []models.DiaryEntry{}
	}
	logger.Debug(ctx, "entries loaded", "count", len(decoded), "store", src)
	return models.CloneEntries(decoded)
}

// List returns the entries in store order, newest addition first.
func (s *EntryService) List() []models.DiaryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneEntries(s.entries)
}

// Get returns the entry with the given id.
func (s *EntryService) Get(id uuid.UUID) (models.DiaryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return models.DiaryEntry{}, fmt.Errorf("entry %s: %w", id, common.ErrorNotFound)
	}
	return s.entries[i], nil
}

// Add creates an entry dated now, prepends it and persists.
func (s *EntryService) Add(ctx context.Context, title, content, mood string) models.DiaryEntry {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	e := models.NewDiaryEntry(title, content, mood, s.now())
	s.entries = slices.Insert(s.entries, 0, e)
	snapshot := models.CloneEntries(s.entries)
	s.mu.Unlock()

	s.logger.Info(ctx, "entry added", "id", e.ID)
	s.persist(ctx, snapshot)
	return e
}

// Update overwrites title, content and mood of the entry and resets its date
// to now. An unknown id is reported with common.ErrorNotFound and changes
// nothing.
func (s *EntryService) Update(ctx context.Context, id uuid.UUID, title, content, mood string) (models.DiaryEntry, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		s.logger.Info(ctx, "update of unknown entry ignored", "id", id)
		return models.DiaryEntry{}, fmt.Errorf("entry %s: %w", id, common.ErrorNotFound)
	}
	e := &s.entries[i]
	e.Title, e.Content, e.Mood = title, content, mood
	e.Date = s.now()
	updated := *e
	snapshot := models.CloneEntries(s.entries)
	s.mu.Unlock()

	s.logger.Info(ctx, "entry updated", "id", id)
	s.persist(ctx, snapshot)
	return updated, nil
}

// Delete removes every entry carrying id.
func (s *EntryService) Delete(ctx context.Context, id uuid.UUID) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	n := len(s.entries)
	s.entries = slices.DeleteFunc(s.entries, func(e models.DiaryEntry) bool { return e.ID == id })
	removed := n - len(s.entries)
	snapshot := models.CloneEntries(s.entries)
	s.mu.Unlock()

	if removed == 0 {
		s.logger.Info(ctx, "delete of unknown entry ignored", "id", id)
		return fmt.Errorf("entry %s: %w", id, common.ErrorNotFound)
	}

	s.logger.Info(ctx, "entry deleted", "id", id)
	s.persist(ctx, snapshot)
	return nil
}

// EntriesOn returns the entries dated on day in the local time zone, newest
// first.
func (s *EntryService) EntriesOn(day stats.Day) []models.DiaryEntry {
	return stats.SortByDateDesc(stats.EntriesOn(s.List(), day, s.now().Location()))
}

// Sections splits the list into today's entries and earlier ones, keeping
// store order inside each section.
func (s *EntryService) Sections() (today, earlier []models.DiaryEntry) {
	return stats.SplitToday(s.List(), s.now())
}

// Snapshot computes the stats of the current sequence.
func (s *EntryService) Snapshot() models.StatsSnapshot {
	return stats.Compute(s.List(), s.now())
}

// Subscribe registers o for change notifications and returns a function
// that removes it.
func (s *EntryService) Subscribe(o Observer) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = o
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

func (s *EntryService) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(s.entries, func(e models.DiaryEntry) bool { return e.ID == id })
}

// persist writes the sequence to both stores, then notifies observers and
// the widget host. The widget is only signalled when at least one store
// accepted the write.
func (s *EntryService) persist(ctx context.Context, entries []models.DiaryEntry) {
	data, err := json.Marshal(entries)
	if err != nil {
		s.logger.Error(ctx, "failed to encode entries", "error", err)
		return
	}

	res := s.store.Put(ctx, common.EntriesKey, data)
	if err := res.Err(); err != nil {
		s.logger.Error(ctx, "entries not persisted", "error", err)
	}

	s.notify(entries)

	if res.OK() {
		s.reloader.Reload(ctx, s.kind)
	}
}

func (s *EntryService) notify(entries []models.DiaryEntry) {
	s.mu.Lock()
	obs := make([]Observer, 0, len(s.observers))
	for _, o := range s.observers {
		obs = append(obs, o)
	}
	s.mu.Unlock()

	for _, o := range obs {
		o(models.CloneEntries(entries))
	}
}
