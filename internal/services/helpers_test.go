package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/listen/internal/repositories/kv"
	"github.com/dmitrijs2005/listen/internal/storage"
)

var errInjected = errors.New("injected")

// switchRepo is a repository that can be taken offline during a test.
type switchRepo struct {
	kv.Repository
	mu   sync.Mutex
	down bool
}

func (r *switchRepo) setDown(v bool) {
	r.mu.Lock()
	r.down = v
	r.mu.Unlock()
}

func (r *switchRepo) isDown() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.down
}

func (r *switchRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if r.isDown() {
		return nil, errInjected
	}
	return r.Repository.Get(ctx, key)
}

func (r *switchRepo) Set(ctx context.Context, key string, value []byte) error {
	if r.isDown() {
		return errInjected
	}
	return r.Repository.Set(ctx, key, value)
}

func (r *switchRepo) DeleteKeys(ctx context.Context, keys ...string) error {
	if r.isDown() {
		return errInjected
	}
	return r.Repository.DeleteKeys(ctx, keys...)
}

type recordingReloader struct {
	mu    sync.Mutex
	kinds []string
}

func (r *recordingReloader) Reload(_ context.Context, kind string) {
	r.mu.Lock()
	r.kinds = append(r.kinds, kind)
	r.mu.Unlock()
}

func (r *recordingReloader) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.kinds)
}

// clock hands out strictly increasing times one minute apart.
type clock struct {
	mu sync.Mutex
	t  time.Time
}

func newClock(start time.Time) *clock { return &clock{t: start} }

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Minute)
	return c.t
}

type fixture struct {
	local, shared *switchRepo
	store         *storage.Store
	reloader      *recordingReloader
	clock         *clock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		local:    &switchRepo{Repository: kv.NewMemoryRepository()},
		shared:   &switchRepo{Repository: kv.NewMemoryRepository()},
		reloader: &recordingReloader{},
		clock:    newClock(time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)),
	}
	f.store = storage.New(f.local, f.shared, nil)
	return f
}

func (f *fixture) entries() *EntryService {
	return NewEntryService(f.store, f.reloader, nil, EntryServiceOptions{Now: f.clock.Now})
}
