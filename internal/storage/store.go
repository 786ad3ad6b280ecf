// Package storage is the shared store: the same key space held by a
// process-local repository and a repository shared with the widget host.
//
// Writes go to the local store first and then to the shared store, as two
// independent steps; a failure of one does not stop the other and nothing is
// rolled back. Reads prefer the shared store and fall back to the local one
// when the shared copy is missing, unreadable or undecodable.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/listen/internal/common"
	"github.com/dmitrijs2005/listen/internal/logging"
	"github.com/dmitrijs2005/listen/internal/repositories/kv"
)

// Source names the physical store a value was read from.
type Source string

const (
	SourceShared Source = "shared"
	SourceLocal  Source = "local"
)

var errNotConfigured = errors.New("store not configured")

// WriteResult records the outcome of each half of a dual write.
type WriteResult struct {
	Local  error
	Shared error
}

// OK reports whether at least one store accepted the write.
func (r WriteResult) OK() bool {
	return r.Local == nil || r.Shared == nil
}

// Diverged reports whether exactly one store accepted the write.
func (r WriteResult) Diverged() bool {
	return (r.Local == nil) != (r.Shared == nil)
}

// Err is nil when the write landed somewhere.
func (r WriteResult) Err() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("%w: %w", common.ErrStoreUnavailable, errors.Join(r.Local, r.Shared))
}

// Reader is the read-only side of the store. The widget host depends on
// nothing else.
type Reader interface {
	Read(ctx context.Context, key string, decode func([]byte) error) (Source, error)
}

// Store writes to both repositories and reads shared-first.
type Store struct {
	local  kv.Repository
	shared kv.Repository
	logger logging.Logger
}

// New returns a Store. Either repository may be nil when it could not be
// opened; the missing half then fails its writes and is skipped on reads.
func New(local, shared kv.Repository, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Store{local: local, shared: shared, logger: logger.With("module", "storage")}
}

// WriteLocal stores value in the process-local repository only.
func (s *Store) WriteLocal(ctx context.Context, key string, value []byte) error {
	if s.local == nil {
		return errNotConfigured
	}
	return s.local.Set(ctx, key, value)
}

// WriteShared stores value in the shared repository only.
func (s *Store) WriteShared(ctx context.Context, key string, value []byte) error {
	if s.shared == nil {
		return errNotConfigured
	}
	return s.shared.Set(ctx, key, value)
}

// Put writes value to the local store, then to the shared store.
func (s *Store) Put(ctx context.Context, key string, value []byte) WriteResult {
	r := WriteResult{
		Local: s.WriteLocal(ctx, key, value),
	}
	r.Shared = s.WriteShared(ctx, key, value)
	s.report(ctx, "put", key, r)
	return r
}

// Remove deletes key from both stores.
func (s *Store) Remove(ctx context.Context, keys ...string) WriteResult {
	var r WriteResult
	if s.local == nil {
		r.Local = errNotConfigured
	} else {
		r.Local = s.local.DeleteKeys(ctx, keys...)
	}
	if s.shared == nil {
		r.Shared = errNotConfigured
	} else {
		r.Shared = s.shared.DeleteKeys(ctx, keys...)
	}
	s.report(ctx, "remove", strings.Join(keys, ","), r)
	return r
}

func (s *Store) report(ctx context.Context, op, key string, r WriteResult) {
	switch {
	case !r.OK():
		s.logger.Error(ctx, "write failed on both stores", "op", op, "key", key,
			"local_error", r.Local, "shared_error", r.Shared)
	case r.Diverged():
		s.logger.Warn(ctx, "stores diverged", "op", op, "key", key,
			"local_error", r.Local, "shared_error", r.Shared)
	default:
		s.logger.Debug(ctx, "stores written", "op", op, "key", key)
	}
}

// Read hands the value stored under key to decode, trying the shared store
// first. It returns common.ErrorNotFound when no store holds the key and
// common.ErrDecode when every stored copy failed to decode.
func (s *Store) Read(ctx context.Context, key string, decode func([]byte) error) (Source, error) {
	candidates := []struct {
		src  Source
		repo kv.Repository
	}{
		{SourceShared, s.shared},
		{SourceLocal, s.local},
	}

	var decodeErr error
	for _, c := range candidates {
		if c.repo == nil {
			continue
		}
		data, err := c.repo.Get(ctx, key)
		if err != nil {
			s.logger.Warn(ctx, "store read failed", "key", key, "store", c.src, "error", err)
			continue
		}
		if data == nil {
			continue
		}
		if err := decode(data); err != nil {
			s.logger.Warn(ctx, "decode failure", "key", key, "store", c.src, "error", err)
			decodeErr = errors.Join(decodeErr, err)
			continue
		}
		if c.src == SourceLocal && s.shared != nil {
			s.logger.Debug(ctx, "served from local fallback", "key", key)
		}
		return c.src, nil
	}

	if decodeErr != nil {
		return "", fmt.Errorf("%w: %s: %w", common.ErrDecode, key, decodeErr)
	}
	return "", fmt.Errorf("%s: %w", key, common.ErrorNotFound)
}
