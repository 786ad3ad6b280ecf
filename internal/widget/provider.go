package widget

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dmitrijs2005/listen/internal/common"
	"github.com/dmitrijs2005/listen/internal/logging"
	"github.com/dmitrijs2005/listen/internal/models"
	"github.com/dmitrijs2005/listen/internal/stats"
	"github.com/dmitrijs2005/listen/internal/storage"
)

// Provider builds timeline entries from the shared store.
type Provider struct {
	store  storage.Reader
	logger logging.Logger
	now    func() time.Time
}

func NewProvider(store storage.Reader, logger logging.Logger, now func() time.Time) *Provider {
	if logger == nil {
		logger = logging.Nop{}
	}
	if now == nil {
		now = time.Now
	}
	return &Provider{store: store, logger: logger.With("module", "widget_provider"), now: now}
}

// Placeholder is the entry shown before the first read and whenever the
// store is empty or unreadable.
func Placeholder(now time.Time) models.TimelineEntry {
	return models.TimelineEntry{Date: now, Snapshot: stats.Empty(), Placeholder: true}
}

// Entry reads the stored entries and returns the current snapshot.
func (p *Provider) Entry(ctx context.Context) models.TimelineEntry {
	now := p.now()

	var entries []models.DiaryEntry
	_, err := p.store.Read(ctx, common.EntriesKey, func(b []byte) error {
		entries = nil
		return json.Unmarshal(b, &entries)
	})
	if err != nil {
		p.logger.Debug(ctx, "no readable entries, showing placeholder", "error", err)
		return Placeholder(now)
	}
	if len(entries) == 0 {
		return Placeholder(now)
	}

	return models.TimelineEntry{
		Date:     now,
		Snapshot: stats.Compute(stats.SortByDateDesc(entries), now),
	}
}
