package widget

import (
	"sync"

	"github.com/dmitrijs2005/listen/internal/models"
)

// Timeline holds the latest rendered entry. It is safe for concurrent use.
type Timeline struct {
	mu        sync.RWMutex
	entry     models.TimelineEntry
	has       bool
	refreshes int
}

func (t *Timeline) Update(e models.TimelineEntry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entry = e
	t.has = true
	t.refreshes++
}

// Current returns the latest entry and whether any refresh happened yet.
func (t *Timeline) Current() (models.TimelineEntry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.entry, t.has
}

// Refreshes counts the updates since start.
func (t *Timeline) Refreshes() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.refreshes
}
