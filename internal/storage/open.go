package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/listen/internal/dbx"
	"github.com/dmitrijs2005/listen/internal/filex"
	"github.com/dmitrijs2005/listen/internal/logging"
	"github.com/dmitrijs2005/listen/internal/migrations"
	"github.com/dmitrijs2005/listen/internal/repositories/kv"
)

// Closer releases the databases behind a Store.
type Closer func() error

// Open opens both stores for the journal process and applies migrations.
// The local store is required; a shared store that cannot be opened is
// logged and left out, in which case shared writes fail until restart.
func Open(ctx context.Context, localPath, sharedPath string, logger logging.Logger) (*Store, Closer, error) {
	if logger == nil {
		logger = logging.Nop{}
	}

	localDB, err := openWritable(ctx, localPath)
	if err != nil {
		return nil, nil, fmt.Errorf("local store: %w", err)
	}
	dbs := []*sql.DB{localDB}

	var shared kv.Repository
	if sharedDB, err := openWritable(ctx, sharedPath); err != nil {
		logger.Warn(ctx, "shared store unavailable", "path", sharedPath, "error", err)
	} else {
		dbs = append(dbs, sharedDB)
		shared = kv.NewSQLiteRepository(sharedDB)
	}

	return New(kv.NewSQLiteRepository(localDB), shared, logger), closeAll(dbs), nil
}

// ReadOnlyStore reads whichever of the two stores exist, without creating
// or migrating anything. A store that is missing at one read is looked for
// again at the next, so the widget host picks up a journal started after it.
type ReadOnlyStore struct {
	localPath, sharedPath string
	logger                logging.Logger

	mu            sync.Mutex
	local, shared *sql.DB
}

// OpenReadOnly returns a ReadOnlyStore over the given paths. localPath may
// be empty.
func OpenReadOnly(ctx context.Context, localPath, sharedPath string, logger logging.Logger) (*ReadOnlyStore, Closer) {
	if logger == nil {
		logger = logging.Nop{}
	}
	s := &ReadOnlyStore{localPath: localPath, sharedPath: sharedPath, logger: logger}
	s.mu.Lock()
	s.openMissing(ctx)
	s.mu.Unlock()
	return s, s.Close
}

// Read implements Reader with the shared-first order of Store.Read.
func (s *ReadOnlyStore) Read(ctx context.Context, key string, decode func([]byte) error) (Source, error) {
	s.mu.Lock()
	s.openMissing(ctx)
	var local, shared kv.Repository
	if s.local != nil {
		local = kv.NewSQLiteRepository(s.local)
	}
	if s.shared != nil {
		shared = kv.NewSQLiteRepository(s.shared)
	}
	s.mu.Unlock()

	return New(local, shared, s.logger).Read(ctx, key, decode)
}

// Close releases whichever databases were opened.
func (s *ReadOnlyStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var dbs []*sql.DB
	for _, db := range []*sql.DB{s.local, s.shared} {
		if db != nil {
			dbs = append(dbs, db)
		}
	}
	s.local, s.shared = nil, nil
	return closeAll(dbs)()
}

func (s *ReadOnlyStore) openMissing(ctx context.Context) {
	if s.shared == nil {
		s.shared = s.openPath(ctx, s.sharedPath)
	}
	if s.local == nil && s.localPath != "" {
		s.local = s.openPath(ctx, s.localPath)
	}
}

func (s *ReadOnlyStore) openPath(ctx context.Context, path string) *sql.DB {
	resolved, err := filex.ExpandPath(path)
	if err != nil || !filex.Exists(resolved) {
		return nil
	}
	db, err := dbx.OpenSQLite(ctx, resolved, true)
	if err != nil {
		s.logger.Warn(ctx, "store unreadable", "path", path, "error", err)
		return nil
	}
	return db
}

func openWritable(ctx context.Context, path string) (*sql.DB, error) {
	resolved, err := filex.EnsureParentDir(path)
	if err != nil {
		return nil, err
	}
	db, err := dbx.OpenSQLite(ctx, resolved, false)
	if err != nil {
		return nil, err
	}
	if err := migrations.Up(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func closeAll(dbs []*sql.DB) Closer {
	return func() error {
		var errs []error
		for _, db := range dbs {
			errs = append(errs, db.Close())
		}
		return errors.Join(errs...)
	}
}
